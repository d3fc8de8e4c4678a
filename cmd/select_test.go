package cmd

import (
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"

	"github.com/olegyurchik/kubenv/store"
	"github.com/olegyurchik/kubenv/testhelper"
)

func TestSelectConfig(t *testing.T) {
	fm := testhelper.FilesystemManager{Storedir: testStoreDir, KubeconfigPath: testKubeconfigPath}

	tt := map[string]struct {
		fsCreator func() afero.Fs
		selPos    int
		expName   string
		expError  error
	}{
		"selection returns the name": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU, fm.DevASIA),
			selPos:    1,
			expName:   "dev-eu", // configs are sorted, dev-asia comes first
			expError:  nil,
		},
		"empty store": {
			fsCreator: testhelper.FSWithFiles(),
			selPos:    0,
			expName:   "",
			expError:  &store.EmptyStore{Store: testStoreDir},
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			sm := &store.Storemanager{Fs: tc.fsCreator(), Storedir: testStoreDir, KubeconfigPath: testKubeconfigPath}
			pf := func(*promptui.Select) (int, error) { return tc.selPos, nil }

			res, err := selectConfig(sm, pf)

			if !testhelper.EqualError(tc.expError, err) {
				t.Errorf("Exp error %q, got %q", tc.expError, err)
			}
			if res != tc.expName {
				t.Errorf("Exp name %q, got %q", tc.expName, res)
			}
		})
	}

	t.Run("selection out of range", func(t *testing.T) {
		sm := &store.Storemanager{Fs: testhelper.FSWithFiles(fm.DevEU)(), Storedir: testStoreDir, KubeconfigPath: testKubeconfigPath}
		pf := func(*promptui.Select) (int, error) { return 5, nil }

		if _, err := selectConfig(sm, pf); err == nil {
			t.Errorf("Exp an error for an out of range selection, got none")
		}
	})
}
