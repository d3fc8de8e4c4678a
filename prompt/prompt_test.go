package prompt

import (
	"bytes"
	"strings"
	"testing"
	"text/template"

	"github.com/olegyurchik/kubenv/store"
)

func TestFuzzyFilterConfig(t *testing.T) {
	tt := map[string]struct {
		search string
		item   *store.Metadata
		expRes bool
	}{
		"full match across all": {
			"a b c",
			&store.Metadata{Name: "a", Context: "b", Cluster: "c"},
			true,
		},
		"full match across all - fuzzy": {
			"abc",
			&store.Metadata{Name: "a", Context: "b", Cluster: "c"},
			true,
		},
		"partial match across fields": {
			"metext",
			&store.Metadata{Name: "name", Context: "context", Cluster: "cluster"},
			true,
		},
		"no match": {
			"oranges",
			&store.Metadata{Name: "apples", Context: "and", Cluster: "bananas"},
			false,
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			res := FuzzyFilterConfig(tc.search, tc.item)
			if res != tc.expRes {
				t.Errorf("Exp res to be %t got %t", tc.expRes, res)
			}
		})
	}
}

func TestNewTableOutputTemplates(t *testing.T) {
	tt := map[string]struct {
		Values      store.Metadata
		Trunc       int
		ExpInactive string
		ExpActive   string
		ExpLabel    string
	}{
		"values < trunc": {
			store.Metadata{
				Name:    "dev-eu",
				Context: "dev-eu",
				Cluster: "dev-eu-1",
			},
			10,
			"  dev-eu     | dev-eu     | dev-eu-1   |",
			"▸ dev-eu     | dev-eu     | dev-eu-1   |",
			"  Name       | Context    | Cluster    ",
		},
		"values == trunc": {
			store.Metadata{
				Name:    "0123456789",
				Context: "0123456789",
				Cluster: "0123456789",
			},
			10,
			"  0123456789 | 0123456789 | 0123456789 |",
			"▸ 0123456789 | 0123456789 | 0123456789 |",
			"  Name       | Context    | Cluster    ",
		},
		"values > trunc": {
			store.Metadata{
				Name:    "0123456789-andlotsmore",
				Context: "0123456789-andlotsmore",
				Cluster: "0123456789-andlotsmore",
			},
			10,
			"  0123456789 | 0123456789 | 0123456789 |",
			"▸ 0123456789 | 0123456789 | 0123456789 |",
			"  Name       | Context    | Cluster    ",
		},
		"trunc is below minLength": {
			store.Metadata{
				Name:    "0123456789",
				Context: "0123456789",
				Cluster: "0123456789",
			},
			5,
			"  0123456 | 0123456 | 0123456 |",
			"▸ 0123456 | 0123456 | 0123456 |",
			"  Name    | Context | Cluster ",
		},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			inactive, active, label, fmap := NewTableOutputTemplates(tc.Trunc)

			checkTemplate(t, inactive, tc.Values, tc.ExpInactive, fmap)
			checkTemplate(t, active, tc.Values, tc.ExpActive, fmap)
			checkTemplate(t, label, tc.Values, tc.ExpLabel, fmap)
		})
	}
}

func checkTemplate(t *testing.T, stpl string, val store.Metadata, exp string, fmap template.FuncMap) {
	t.Helper()

	tmpl, err := template.New("t").Funcs(fmap).Parse(stpl)
	if err != nil {
		t.Fatalf("Could not create template for test '%v'. Please check test code", err)
	}

	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, val)
	if err != nil {
		t.Fatalf("Could not execute template for test '%v'. Please check test code", err)
	}

	res := buf.String()
	// remove any formatting as we do not care about that
	cyan := "\x1b[36m"
	bold := "\x1b[1m"
	normal := "\x1b[0m"
	res = strings.Replace(res, cyan, "", -1)
	res = strings.Replace(res, bold, "", -1)
	res = strings.Replace(res, normal, "", -1)
	if exp != res {
		t.Errorf("Exp res: '%s', got: '%s'", exp, res)
	}
}
