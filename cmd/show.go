package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type showCmd struct {
	fs  afero.Fs
	out io.Writer

	cmd *cobra.Command
}

func newShowCommand() *showCmd {
	sc := &showCmd{
		fs:  afero.NewOsFs(),
		out: os.Stdout,
	}

	sc.cmd = &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored config to stdout",
		Long: `Print the content of a stored config to stdout

The content is printed byte for byte as it was added, no parsing or
reformatting takes place.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigNames,
		RunE:              sc.show,
	}

	return sc
}

func (c *showCmd) show(cmd *cobra.Command, args []string) error {
	sm := newStoremanager(c.fs)

	r, err := sm.OpenConfig(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = io.Copy(c.out, r)
	return err
}

func init() {
	rootCmd.AddCommand(newShowCommand().cmd)
}
