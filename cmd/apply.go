package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/log"
	"github.com/olegyurchik/kubenv/prompt"
	"github.com/olegyurchik/kubenv/store"
)

type applyCmd struct {
	fs afero.Fs

	selectConfig func(*store.Storemanager, prompt.RunFunc) (string, error)
	prompt       prompt.RunFunc

	cmd *cobra.Command
}

func newApplyCommand() *applyCmd {
	ac := &applyCmd{
		fs:           afero.NewOsFs(),
		selectConfig: selectConfig,
		prompt:       prompt.Terminal,
	}

	ac.cmd = &cobra.Command{
		Use:   "apply [name]",
		Short: "Activate a stored config",
		Long: `Activate a stored config by making it the kubeconfig your kubernetes
client reads from

Examples:
	-> 'apply' run selection dialogue for activation
	-> 'apply dev' activate the config named dev

The previous kubeconfig content is replaced. The replacement is atomic, a
failed apply leaves the current kubeconfig untouched.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfigNames,
		RunE:              ac.apply,
	}

	return ac
}

func (c *applyCmd) apply(cmd *cobra.Command, args []string) error {
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

	if err := sm.Apply(name); err != nil {
		return err
	}

	log.Info("Successfully applied config %q", name)
	return nil
}

func init() {
	rootCmd.AddCommand(newApplyCommand().cmd)
}
