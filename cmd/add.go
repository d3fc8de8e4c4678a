package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/log"
)

type addCmd struct {
	fs afero.Fs
	in io.Reader

	name string
	file string

	cmd *cobra.Command
}

func newAddCommand() *addCmd {
	ac := &addCmd{
		fs: afero.NewOsFs(),
		in: os.Stdin,
	}

	ac.cmd = &cobra.Command{
		Use:   "add",
		Short: "Add a config to the store",
		Long: `Add a config to the store, either from a file or from stdin

Examples:
	-> 'add --name dev --file dev.yaml' store the content of dev.yaml under the name dev
	-> 'add --name dev < dev.yaml' same, but read from stdin
	-> 'add --file dev.yaml' store under a name derived from the content hash

Adding never overwrites: use 'remove' first to replace an existing config.
The content is stored as is, kubenv does not validate or modify it.`,
		Args: cobra.ExactArgs(0),
		RunE: ac.add,
	}
	ac.cmd.Flags().StringVarP(&ac.name, "name", "n", "", "name to store the config under (default is a content hash prefix)")
	ac.cmd.Flags().StringVarP(&ac.file, "file", "f", "", "file to read the config from (default is stdin)")

	return ac
}

func (c *addCmd) add(cmd *cobra.Command, args []string) error {
	content := c.in
	if c.file != "" {
		f, err := c.fs.Open(c.file)
		if err != nil {
			return err
		}
		defer f.Close()
		content = f
	}

	sm := newStoremanager(c.fs)
	name, err := sm.Add(c.name, content)
	if err != nil {
		return err
	}

	log.Info("Successfully added config %q to the store", name)
	return nil
}

func init() {
	rootCmd.AddCommand(newAddCommand().cmd)
}
