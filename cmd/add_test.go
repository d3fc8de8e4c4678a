package cmd

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/olegyurchik/kubenv/store"
	"github.com/olegyurchik/kubenv/testhelper"
)

func TestAdd(t *testing.T) {
	setTestConfig()
	fm := testhelper.FilesystemManager{Storedir: testStoreDir, KubeconfigPath: testKubeconfigPath}
	sk := testhelper.SampleConfigManager{}

	tt := map[string]struct {
		fsCreator  func() afero.Fs
		name       string
		file       string
		fileConten string
		stdin      string
		expError   error
		expStored  string // path of the file the add has to create
		expContent string
	}{
		"add from file": {
			fsCreator:  testhelper.FSWithFiles(),
			name:       "dev",
			file:       "dev.yaml",
			fileConten: "apiVersion: v1",
			expError:   nil,
			expStored:  testStoreDir + "/dev.kubeconfig",
			expContent: "apiVersion: v1",
		},
		"add from stdin": {
			fsCreator:  testhelper.FSWithFiles(),
			name:       "dev-eu",
			stdin:      sk.DevEU(),
			expError:   nil,
			expStored:  testStoreDir + "/dev-eu.kubeconfig",
			expContent: sk.DevEU(),
		},
		"name conflict": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU),
			name:      "dev-eu",
			stdin:     sk.DevASIA(),
			expError:  &store.NameConflict{Name: "dev-eu"},
		},
		"duplicate content": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU),
			name:      "dev-eu-copy",
			stdin:     sk.DevEU(),
			expError:  &store.DuplicateContent{Name: "dev-eu"},
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			f := tc.fsCreator()
			if tc.file != "" {
				afero.WriteFile(f, tc.file, []byte(tc.fileConten), store.ConfigPerm)
			}

			ac := newAddCommand()
			ac.fs = f
			ac.in = strings.NewReader(tc.stdin)
			ac.name = tc.name
			ac.file = tc.file

			err := ac.add(ac.cmd, []string{})

			if !testhelper.EqualError(tc.expError, err) {
				t.Errorf("Exp error %q, got %q", tc.expError, err)
			}

			if tc.expStored != "" {
				stored, err := afero.ReadFile(f, tc.expStored)
				if err != nil {
					t.Fatalf("Exp stored file to be readable, got %q", err)
				}
				if string(stored) != tc.expContent {
					t.Errorf("Exp stored content to round-trip, got:\n%s", stored)
				}
			}
		})
	}

	t.Run("file does not exist", func(t *testing.T) {
		ac := newAddCommand()
		ac.fs = testhelper.FSWithFiles()()
		ac.file = "nope.yaml"

		err := ac.add(ac.cmd, []string{})

		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Exp error to be fs.ErrNotExist, got %q", err)
		}
	})
}
