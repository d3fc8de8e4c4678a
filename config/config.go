package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var curConf *Config = &Config{}

// Config describes all values that can currently be configured for kubenv
type Config struct {
	// KubenvDir is the store holding all named kubeconfigs
	KubenvDir string
	// KubeDir is the directory whose "config" file the kubernetes
	// client toolchain reads
	KubeDir string
	Silent  bool
}

// DefaultConfig returns an initialized config based on the users HomeDir
func DefaultConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	c := &Config{
		KubenvDir: filepath.Join(home, ".kube", "kubenv"),
		KubeDir:   filepath.Join(home, ".kube"),
		Silent:    false,
	}

	return c, nil
}

// Init assembles the effective config out of the config file, environment
// variables and any flag overrides. Precedence is flags > env > file >
// defaults. An absent config file is not an error.
func Init(cfgFile, kubenvDir, kubeDir string, silent bool) error {
	def, err := DefaultConfig()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetDefault("kubenv-dir", def.KubenvDir)
	v.SetDefault("kube-dir", def.KubeDir)
	v.SetDefault("silent", def.Silent)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		v.SetConfigName("kubenv")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".config", "kubenv"))
	}
	v.SetEnvPrefix("KUBENV")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// only a config file that was explicitly requested has to exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("could not read config file: %v", err)
		}
	}

	c := &Config{
		KubenvDir: v.GetString("kubenv-dir"),
		KubeDir:   v.GetString("kube-dir"),
		Silent:    v.GetBool("silent"),
	}
	if kubenvDir != "" {
		c.KubenvDir = kubenvDir
	}
	if kubeDir != "" {
		c.KubeDir = kubeDir
	}
	if silent {
		c.Silent = true
	}

	SetGlobalConfig(c)
	return nil
}

// SetGlobalConfig sets the config to the config supplied as its argument
func SetGlobalConfig(c *Config) {
	curConf = c
}

// StoreDir returns the currently configured store directory
func StoreDir() string {
	return curConf.KubenvDir
}

// KubeconfigPath returns the active pointer the kubernetes client reads from
func KubeconfigPath() string {
	return filepath.Join(curConf.KubeDir, "config")
}

// Silent reports whether log output should be suppressed
func Silent() bool {
	return curConf.Silent
}
