package formula

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scheerer/hello-formula/internal/resolver"
)

// Convention names the variables a formula reads its inputs from.
type Convention struct {
	Name     string
	Text     string
	List     string
	Boolean  string
	Password string
}

var (
	Ritchie = Convention{
		Name:     "RIT",
		Text:     "RIT_INPUT_TEXT",
		List:     "RIT_INPUT_LIST",
		Boolean:  "RIT_INPUT_BOOLEAN",
		Password: "RIT_INPUT_PASSWORD",
	}
	Sample = Convention{
		Name:     "SAMPLE",
		Text:     "SAMPLE_TEXT",
		List:     "SAMPLE_LIST",
		Boolean:  "SAMPLE_BOOL",
		Password: "SAMPLE_PASSWORD",
	}

	conventions = map[string]Convention{
		Ritchie.Name: Ritchie,
		Sample.Name:  Sample,
	}
)

func ConventionByName(name string) (Convention, error) {
	if c, ok := conventions[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return Convention{}, fmt.Errorf("unknown convention %q, valid values are %v", name, ConventionNames())
}

func ConventionNames() []string {
	names := make([]string, 0, len(conventions))
	for n := range conventions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Refs lists the variables of c in output order.
func (c Convention) Refs() []resolver.Ref {
	return []resolver.Ref{
		{Name: c.Text, Kind: resolver.Text},
		{Name: c.Boolean, Kind: resolver.Boolean},
		{Name: c.List, Kind: resolver.List},
		{Name: c.Password, Kind: resolver.Text},
	}
}
