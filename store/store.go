package store

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	k8s "k8s.io/client-go/tools/clientcmd/api/v1"
	"sigs.k8s.io/yaml"
)

const ConfigPerm fs.FileMode = 0600 // based on the standard file-permissions for .kube/config
const DirPerm fs.FileMode = 0700    // needed so we can create files inside

// storeExt is the suffix carried by every file in the store. Files without
// it are not considered configs
const storeExt = ".kubeconfig"

// tmpSuffix is appended to the kubeconfig path while Apply stages the new
// content. The staged file is renamed into place so a failed Apply can never
// leave a truncated kubeconfig behind
const tmpSuffix = ".kubenv-tmp"

// Storemanager is a collection of dependencies needed to operate the store.
// Store root and kubeconfig path are explicit fields rather than globals so
// tests can run against temporary locations on a MemMapFs
type Storemanager struct {
	Fs             afero.Fs
	Storedir       string
	KubeconfigPath string
}

// Metadata describes a formatting of config information.
// It is mainly being used to present the user a nice table selection
type Metadata struct {
	Name    string
	Context string
	Cluster string
	File    string
	Active  bool
}

// SanitizeName escapes any characters from a config name that are reserved
// by the filesystem and therefore cannot appear in a file name
func SanitizeName(name string) string {
	illegalChars := []string{"/", ":"}
	for _, c := range illegalChars {
		name = strings.ReplaceAll(name, c, "-")
	}
	return strings.TrimPrefix(name, ".")
}

func (s *Storemanager) storePathForName(name string) string {
	return filepath.Join(s.Storedir, name+storeExt)
}

// FetchAllConfigs retrieves metadata for all configs currently in the store,
// sorted by name. An empty or not yet created store yields an empty slice.
// Config content is treated as opaque: context and cluster are filled in on
// a best-effort basis and stay empty when the content is no parseable
// kubeconfig
func (s *Storemanager) FetchAllConfigs() ([]*Metadata, error) {
	files, err := afero.ReadDir(s.Fs, s.Storedir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*Metadata{}, nil
		}
		return nil, err
	}

	// a missing or unreadable kubeconfig simply means no config is active
	activeHash, _ := s.ActiveHash()

	out := []*Metadata{}
	for _, fi := range files {
		if fi.IsDir() {
			continue
		}
		// skip hidden files, to protect against automatically created
		// files like the .DS_Store on MacOs
		if strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		if !strings.HasSuffix(fi.Name(), storeExt) {
			continue
		}

		m := &Metadata{
			Name: strings.TrimSuffix(fi.Name(), storeExt),
			File: filepath.Join(s.Storedir, fi.Name()),
		}

		val, err := afero.ReadFile(s.Fs, m.File)
		if err != nil {
			return nil, err
		}

		if activeHash != "" && Sum(val) == activeHash {
			m.Active = true
		}

		kubeconf := &k8s.Config{}
		if err := yaml.Unmarshal(val, kubeconf); err == nil {
			if len(kubeconf.Contexts) > 0 {
				m.Context = kubeconf.Contexts[0].Name
			}
			if len(kubeconf.Clusters) > 0 {
				m.Cluster = kubeconf.Clusters[0].Name
			}
		}

		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// OpenConfig returns a reader over the content of the named config. It is
// the single read primitive behind show, export and apply. The caller is
// responsible for closing the reader
func (s *Storemanager) OpenConfig(name string) (io.ReadCloser, error) {
	path := s.storePathForName(name)
	if ok, err := afero.Exists(s.Fs, path); err != nil {
		return nil, err
	} else if !ok {
		return nil, &NotFound{Name: name}
	}
	return s.Fs.Open(path)
}

// Add stores the supplied content under the given name and returns the name
// the config ended up with. An empty name defaults to a prefix of the
// content hash. Adding fails if the name is already taken or if identical
// content is already stored under another name
func (s *Storemanager) Add(name string, content io.Reader) (string, error) {
	val, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	hash := Sum(val)
	if name == "" {
		name = hash[:12]
	}
	name = SanitizeName(name)

	configs, err := s.FetchAllConfigs()
	if err != nil {
		return "", err
	}
	for _, m := range configs {
		if m.Name == name {
			return "", &NameConflict{Name: name}
		}
	}
	for _, m := range configs {
		stored, err := afero.ReadFile(s.Fs, m.File)
		if err != nil {
			return "", err
		}
		if Sum(stored) == hash {
			return "", &DuplicateContent{Name: m.Name}
		}
	}

	if err := s.Fs.MkdirAll(s.Storedir, DirPerm); err != nil {
		return "", err
	}
	if err := afero.WriteFile(s.Fs, s.storePathForName(name), val, ConfigPerm); err != nil {
		return "", err
	}

	return name, nil
}

// Remove deletes the named config from the store
func (s *Storemanager) Remove(name string) error {
	path := s.storePathForName(name)
	if ok, err := afero.Exists(s.Fs, path); err != nil {
		return err
	} else if !ok {
		return &NotFound{Name: name}
	}
	return s.Fs.Remove(path)
}

// Apply makes the named config the active one by replacing the kubeconfig
// the kubernetes client reads from. The replacement is staged in a temp file
// and renamed into place, so the kubeconfig is never left truncated
func (s *Storemanager) Apply(name string) error {
	r, err := s.OpenConfig(name)
	if err != nil {
		return err
	}
	defer r.Close()

	val, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	activeHash, _ := s.ActiveHash()
	if activeHash != "" && activeHash == Sum(val) {
		return &AlreadyActive{Name: name}
	}

	if err := s.Fs.MkdirAll(filepath.Dir(s.KubeconfigPath), DirPerm); err != nil {
		return err
	}

	tmp := s.KubeconfigPath + tmpSuffix
	if err := afero.WriteFile(s.Fs, tmp, val, ConfigPerm); err != nil {
		return err
	}
	if err := s.Fs.Rename(tmp, s.KubeconfigPath); err != nil {
		// do not leave the staging file around on a failed rename
		_ = s.Fs.Remove(tmp)
		return err
	}

	return nil
}

// ActiveHash returns the content hash of the kubeconfig the kubernetes
// client currently reads from. It returns an empty hash if no kubeconfig
// exists yet
func (s *Storemanager) ActiveHash() (string, error) {
	val, err := afero.ReadFile(s.Fs, s.KubeconfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return Sum(val), nil
}
