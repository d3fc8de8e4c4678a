package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/log"
	"github.com/olegyurchik/kubenv/store"
)

type exportCmd struct {
	fs  afero.Fs
	out io.Writer

	file string

	cmd *cobra.Command
}

func newExportCommand() *exportCmd {
	ec := &exportCmd{
		fs:  afero.NewOsFs(),
		out: os.Stdout,
	}

	ec.cmd = &cobra.Command{
		Use:   "export <name>",
		Short: "Copy a stored config to a destination",
		Long: `Copy the content of a stored config to a destination file

Examples:
	-> 'export dev --file dev.yaml' write the config named dev to dev.yaml
	-> 'export dev' write the config named dev to stdout`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigNames,
		RunE:              ec.export,
	}
	ec.cmd.Flags().StringVarP(&ec.file, "file", "f", "", "file to write the config to (default is stdout)")

	return ec
}

func (c *exportCmd) export(cmd *cobra.Command, args []string) error {
	sm := newStoremanager(c.fs)

	r, err := sm.OpenConfig(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	if c.file == "" {
		_, err = io.Copy(c.out, r)
		return err
	}

	f, err := c.fs.OpenFile(c.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, store.ConfigPerm)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}

	log.Info("Successfully exported config %q to %q", args[0], c.file)
	return nil
}

func init() {
	rootCmd.AddCommand(newExportCommand().cmd)
}
