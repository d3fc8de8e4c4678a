package prompt

import (
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"

	"github.com/olegyurchik/kubenv/store"
)

// RunFunc describes a generic function of a prompt. It returns the selected item.
// Its main purpose is to be easily mockable for unit-tests
type RunFunc func(*promptui.Select) (int, error)

// Terminal runs a given prompt in the terminal of the user and
// returns the selected items position
func Terminal(prompt *promptui.Select) (sel int, err error) {
	pos, _, err := prompt.Run()
	if err != nil {
		return -1, fmt.Errorf("prompt failed %v", err)
	}
	return pos, nil
}

// FuzzyFilterConfig allows fuzzy searching of a list of config metadata
func FuzzyFilterConfig(searchTerm string, curItem *store.Metadata) bool {
	// since there is no weight on any of the columns, we can just combine
	// them to one string and run the match on it, which automatically is
	// going to match any of the three values
	r := fmt.Sprintf("%s %s %s", curItem.Name, curItem.Context, curItem.Cluster)
	return fuzzy.Match(searchTerm, r)
}

// NewTableOutputTemplates returns templating strings for creating a nicely
// formatted table out of a store.Metadata. Additionally it returns a
// template.FuncMap with all required templating funcs for the strings.
// Maximum length per column can be configured
func NewTableOutputTemplates(maxColumnLen int) (inactive, active, label string, fmap template.FuncMap) {
	// minColumnLen is determined by the length of the largest word in the label line
	minColumnLen := 7
	if maxColumnLen < minColumnLen {
		maxColumnLen = minColumnLen
	}

	fmap = sprig.TxtFuncMap()
	fmap["cyan"] = promptui.Styler(promptui.FGCyan)
	fmap["bold"] = promptui.Styler(promptui.FGBold)
	fmap["faint"] = promptui.Styler(promptui.FGFaint) // needed to display promptui tooltip https://github.com/manifoldco/promptui/blob/v0.9.0/select.go#L473
	fmap["green"] = promptui.Styler(promptui.FGGreen) // needed to display the successful selection https://github.com/manifoldco/promptui/blob/v0.9.0/select.go#L454

	// each cell pads the field with spaces and truncates it to the column
	// width. The style segment is only appended when set, as an empty
	// trailing pipe would not parse
	cell := func(field, style string) string {
		if style != "" {
			style = " | " + style
		}
		return fmt.Sprintf(`{{ repeat %[1]d " " | print .%[2]s | trunc %[1]d%[3]s }}`, maxColumnLen, field, style)
	}

	inactive = "  " + cell("Name", "") + " | " + cell("Context", "") + " | " + cell("Cluster", "") + " |"
	active = "▸ " + cell("Name", "bold | cyan") + " | " + cell("Context", "bold | cyan") + " | " + cell("Cluster", "bold | cyan") + " |"
	label = "  Name" + strings.Repeat(" ", maxColumnLen-4) + " | " + "Context" + strings.Repeat(" ", maxColumnLen-7) + " | " + "Cluster" + strings.Repeat(" ", maxColumnLen-7) + " " // repeat = trunc - length of the word before it
	return inactive, active, label, fmap
}
