package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/config"
	"github.com/olegyurchik/kubenv/log"
	"github.com/olegyurchik/kubenv/store"
)

var (
	cfgFile   string
	kubenvDir string
	kubeDir   string
	silent    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kubenv",
	Short: "Manage kubernetes environments",
	Long: `
kubenv is a lightweight manager for kubernetes environments

It keeps a store of named kubeconfigs and switches between them by making
one of them the config your kubernetes tooling reads from.

Store a config via 'kubenv add' and activate it via 'kubenv apply'.
	`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	rootCmd.SetOut(os.Stderr)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(wrapInit)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/kubenv/kubenv.yaml)")
	rootCmd.PersistentFlags().StringVar(&kubenvDir, "kubenv-dir", "", "directory holding the stored kubeconfigs (default is $HOME/.kube/kubenv)")
	rootCmd.PersistentFlags().StringVar(&kubeDir, "kube-dir", "", "directory whose 'config' file the kubernetes client reads (default is $HOME/.kube)")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "suppress log output if set to true (default is false)")
}

// wrapInit is required as cobra.OnInitialize only accepts func() as interface
func wrapInit() {
	err := config.Init(cfgFile, kubenvDir, kubeDir, silent)
	cobra.CheckErr(err)

	if config.Silent() {
		log.Silence()
	}
}

// newStoremanager assembles a Storemanager out of the effective config.
// Must only be called after cobra initialization has run
func newStoremanager(f afero.Fs) *store.Storemanager {
	return &store.Storemanager{
		Fs:             f,
		Storedir:       config.StoreDir(),
		KubeconfigPath: config.KubeconfigPath(),
	}
}
