package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// The preset for this file is taken from https://github.com/spf13/cobra/blob/master/shell_completions.md

type completionCmd struct {
	cmd *cobra.Command
}

func newCompletionCommand() *completionCmd {
	cc := &completionCmd{}

	cc.cmd = &cobra.Command{
		Use:   "completion [bash|zsh]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  # To load completions for each session, add this to your bashrc:

  source <(kubenv completion bash)

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Simply add the following to your .zshrc:

  autoload -U compinit && compinit

  # To load completions for each session, add this to your zshrc:

  source <(kubenv completion zsh)

`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE:                  cc.completion,
	}

	return cc
}

func (c *completionCmd) completion(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "zsh":
		// adding the compdef header allows for also using
		// 'source <(kubenv completion zsh)' with zsh, similar to bash.
		// Taken from kubectl, who do a similar thing
		if _, err := os.Stdout.WriteString("#compdef _kubenv kubenv\ncompdef _kubenv kubenv\n"); err != nil {
			return err
		}
		return rootCmd.GenZshCompletion(os.Stdout)
	case "bash":
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newCompletionCommand().cmd)
}
