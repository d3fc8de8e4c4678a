package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/log"
	"github.com/olegyurchik/kubenv/prompt"
	"github.com/olegyurchik/kubenv/store"
)

type removeCmd struct {
	fs afero.Fs

	selectConfig func(*store.Storemanager, prompt.RunFunc) (string, error)
	prompt       prompt.RunFunc

	cmd *cobra.Command
}

func newRemoveCommand() *removeCmd {
	rc := &removeCmd{
		fs:           afero.NewOsFs(),
		selectConfig: selectConfig,
		prompt:       prompt.Terminal,
	}

	rc.cmd = &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a config from the store",
		Long: `Remove a config from the store

Examples:
	-> 'remove' run selection dialogue for removal
	-> 'remove dev' remove the config named dev

Removing a currently active config does not touch the kubeconfig your
kubernetes client reads from, it only deletes the store entry.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfigNames,
		RunE:              rc.remove,
	}

	return rc
}

func (c *removeCmd) remove(cmd *cobra.Command, args []string) error {
	sm := newStoremanager(c.fs)

	var name string
	var err error
	if len(args) == 0 {
		name, err = c.selectConfig(sm, c.prompt)
		if err != nil {
			return err
		}
	} else {
		name = args[0]
	}

	if err := sm.Remove(name); err != nil {
		return err
	}

	log.Info("Successfully removed config %q from the store", name)
	return nil
}

func init() {
	rootCmd.AddCommand(newRemoveCommand().cmd)
}
