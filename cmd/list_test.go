package cmd

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/olegyurchik/kubenv/testhelper"
)

func TestList(t *testing.T) {
	setTestConfig()
	fm := testhelper.FilesystemManager{Storedir: testStoreDir, KubeconfigPath: testKubeconfigPath}

	tt := map[string]struct {
		fsCreator func() afero.Fs
		output    string
		expOut    string
		expError  bool
	}{
		"empty store prints nothing": {
			fsCreator: testhelper.FSWithFiles(),
			output:    "name",
			expOut:    "",
		},
		"names sorted, active marked": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU, fm.DevASIA, fm.ActiveDevEU),
			output:    "name",
			expOut:    "  dev-asia\n* dev-eu\n",
		},
		"no active config": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU, fm.DevASIA),
			output:    "name",
			expOut:    "  dev-asia\n  dev-eu\n",
		},
		"wide output": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU, fm.DevASIA, fm.ActiveDevEU),
			output:    "wide",
			expOut:    "ACTIVE   NAME       CONTEXT    CLUSTER\n         dev-asia   dev-asia   dev-asia-1\n*        dev-eu     dev-eu     dev-eu-1\n",
		},
		"unsupported output format": {
			fsCreator: testhelper.FSWithFiles(fm.DevEU),
			output:    "json",
			expOut:    "",
			expError:  true,
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			lc := newListCommand()
			lc.fs = tc.fsCreator()
			lc.out = buf
			lc.output = tc.output

			err := lc.list(lc.cmd, []string{})

			if tc.expError && err == nil {
				t.Errorf("Exp an error, got none")
			}
			if !tc.expError && err != nil {
				t.Errorf("Exp no error, got %q", err)
			}

			if diff := cmp.Diff(tc.expOut, buf.String()); diff != "" {
				t.Errorf("Exp output to match (-want +got):\n%s", diff)
			}
		})
	}
}
