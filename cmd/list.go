package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/store"
)

type listCmd struct {
	fs  afero.Fs
	out io.Writer

	output string

	cmd *cobra.Command
}

func newListCommand() *listCmd {
	lc := &listCmd{
		fs:  afero.NewOsFs(),
		out: os.Stdout,
	}

	lc.cmd = &cobra.Command{
		Use:   "list",
		Short: "List all stored configs",
		Long: `List all configs currently in the store, one per line

The config whose content matches the kubeconfig your kubernetes client
currently reads from is marked with '*'`,
		Args: cobra.ExactArgs(0),
		RunE: lc.list,
	}
	lc.cmd.Flags().StringVarP(&lc.output, "output", "o", "name", "output format. One of: name|wide")

	return lc
}

func (c *listCmd) list(cmd *cobra.Command, args []string) error {
	sm := newStoremanager(c.fs)

	configs, err := sm.FetchAllConfigs()
	if err != nil {
		return err
	}

	if c.output == "wide" {
		return printWide(c.out, configs)
	}
	if c.output != "name" {
		return fmt.Errorf("unsupported output format %q. Must be one of: name|wide", c.output)
	}

	for _, m := range configs {
		marker := " "
		if m.Active {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %s\n", marker, m.Name)
	}
	return nil
}

func printWide(out io.Writer, configs []*store.Metadata) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ACTIVE\tNAME\tCONTEXT\tCLUSTER")
	for _, m := range configs {
		marker := ""
		if m.Active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, m.Name, m.Context, m.Cluster)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(newListCommand().cmd)
}
