package testhelper

import (
	"io/fs"

	"github.com/spf13/afero"
)

// mirrors of the store permissions, reimplemented here so this package can
// be imported by the store tests without creating an import cycle
const configPerm fs.FileMode = 0600
const dirPerm fs.FileMode = 0700

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}

type filefunc = func(afero.Fs)

// FSWithFiles is a testhelper that can be used to quickly setup a MemMapFs with required files
func FSWithFiles(ff ...filefunc) func() afero.Fs {
	return func() afero.Fs {
		fs := afero.NewMemMapFs()

		for _, f := range ff {
			f(fs)
		}
		return fs
	}
}

// FilesystemManager is used to manage filefuncs. It is feature identical to
// its string counterpart SampleConfigManager
type FilesystemManager struct {
	Storedir       string
	KubeconfigPath string
}

func (f *FilesystemManager) storePathForName(name string) string {
	return f.Storedir + "/" + name + ".kubeconfig"
}

// StoreDir creates the standard kubenv store
func (f *FilesystemManager) StoreDir(fs afero.Fs) {
	fs.MkdirAll(f.Storedir, dirPerm)
}

// DevEU creates a valid kubeconfig named dev-eu in the store
func (f *FilesystemManager) DevEU(fs afero.Fs) {
	afero.WriteFile(fs, f.storePathForName("dev-eu"), []byte(devEU), configPerm)
}

// DevASIA creates a valid kubeconfig named dev-asia in the store
func (f *FilesystemManager) DevASIA(fs afero.Fs) {
	afero.WriteFile(fs, f.storePathForName("dev-asia"), []byte(devASIA), configPerm)
}

// PlainText creates a store entry whose content is no valid yaml.
// The store must treat it like any other config
func (f *FilesystemManager) PlainText(fs afero.Fs) {
	afero.WriteFile(fs, f.storePathForName("scratch"), []byte(plainText), configPerm)
}

// ActiveDevEU makes dev-eu the currently active config
func (f *FilesystemManager) ActiveDevEU(fs afero.Fs) {
	afero.WriteFile(fs, f.KubeconfigPath, []byte(devEU), configPerm)
}

// ActiveForeign fills the kubeconfig with content that matches no store entry
func (f *FilesystemManager) ActiveForeign(fs afero.Fs) {
	afero.WriteFile(fs, f.KubeconfigPath, []byte("managed by some other tool"), configPerm)
}

// DSStore creates a .DS_Store file, which store listings have to skip
func (f *FilesystemManager) DSStore(fs afero.Fs) {
	afero.WriteFile(fs, f.Storedir+"/.DS_Store", nil, configPerm)
}

// StrayFile creates a file without the store suffix, which store listings have to skip
func (f *FilesystemManager) StrayFile(fs afero.Fs) {
	afero.WriteFile(fs, f.Storedir+"/README.md", []byte("# not a config"), configPerm)
}

// EmptyDir creates a subdirectory inside the store, which store listings have to skip
func (f *FilesystemManager) EmptyDir(fs afero.Fs) {
	fs.Mkdir(f.Storedir+"/empty-dir", dirPerm)
}

// SampleConfigManager is used to manage kubeconfig strings. It is feature
// identical to its file counterpart FilesystemManager
type SampleConfigManager struct{}

// DevEU returns a valid kubeconfig
func (*SampleConfigManager) DevEU() string {
	return devEU
}

// DevASIA returns a valid kubeconfig
func (*SampleConfigManager) DevASIA() string {
	return devASIA
}

// PlainText returns content that is no valid yaml
func (*SampleConfigManager) PlainText() string {
	return plainText
}

var devEU = `
apiVersion: v1
clusters:
  - cluster:
      server: https://10.1.1.0
    name: dev-eu-1
contexts:
  - context:
      namespace: kube-public
      cluster: dev-eu-1
      user: dev-eu
    name: dev-eu
current-context: dev-eu
kind: Config
preferences: {}
users:
  - name: dev-eu
    user: {}
`

var devASIA = `
apiVersion: v1
clusters:
  - cluster:
      server: https://10.1.1.0
    name: dev-asia-1
contexts:
  - context:
      namespace: kube-public
      cluster: dev-asia-1
      user: dev-asia
    name: dev-asia
current-context: dev-asia
kind: Config
preferences: {}
users:
  - name: dev-asia
    user: {}
`

var plainText = `I am no valid yaml`
