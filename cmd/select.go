package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/olegyurchik/kubenv/prompt"
	"github.com/olegyurchik/kubenv/store"
)

// selectConfig runs the selection dialogue over all configs in the store and
// returns the name of the selected one. It is used by all commands that take
// an optional name argument
func selectConfig(sm *store.Storemanager, pf prompt.RunFunc) (string, error) {
	configs, err := sm.FetchAllConfigs()
	if err != nil {
		return "", err
	}
	if len(configs) == 0 {
		return "", &store.EmptyStore{Store: sm.Storedir}
	}

	// wrapper is required as the searcher signature from promptui only
	// hands us an index, but our fuzzy filter needs the full metadata
	wrapFuzzyFilterConfig := func(input string, index int) bool {
		return prompt.FuzzyFilterConfig(input, configs[index])
	}

	inactive, active, label, fmap := prompt.NewTableOutputTemplates(25)
	p := &promptui.Select{
		Label: label,
		Items: configs,
		Templates: &promptui.SelectTemplates{
			Active:   active,
			Inactive: inactive,
			FuncMap:  fmap,
		},
		HideSelected: true,
		Stdout:       os.Stderr,
		Searcher:     wrapFuzzyFilterConfig,
	}

	selPos, err := pf(p)
	if err != nil {
		return "", err
	}
	if selPos >= len(configs) {
		return "", fmt.Errorf("invalid selection %d", selPos)
	}

	return configs[selPos].Name, nil
}

// completeConfigNames provides the names of all stored configs for shell
// completion of the name-taking commands
func completeConfigNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// any errors here are logged to the completion debug file by cobra,
	// there is no meaningful way to surface them to the user mid-completion
	sm := newStoremanager(afero.NewOsFs())
	configs, err := sm.FetchAllConfigs()
	if err != nil {
		cobra.CompDebugln(err.Error(), false)
		return nil, cobra.ShellCompDirectiveError
	}

	names := []string{}
	for _, m := range configs {
		names = append(names, m.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
