package node

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tanant/knobwrangler/knob"
)

//go:embed classes.yaml
var classesYAML []byte

// catalogEntry is one knob row in the embedded class catalog.
type catalogEntry struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// catalogFile is the root of the embedded class catalog.
type catalogFile struct {
	// Default is the base knob layout for any class without its own
	// entry.
	Default []catalogEntry `yaml:"default"`

	// Classes overrides the layout per node class.
	Classes map[string][]catalogEntry `yaml:"classes"`
}

var catalog catalogFile

func init() {
	if err := yaml.Unmarshal(classesYAML, &catalog); err != nil {
		panic(fmt.Sprintf("node: embedded class catalog is invalid: %v", err))
	}
}

// baseKnobs materializes the fixed knob list for a class. Each call
// builds fresh knob identities; nodes never share knobs.
func baseKnobs(class string) []knob.Knob {
	rows, ok := catalog.Classes[class]
	if !ok {
		rows = catalog.Default
	}

	out := make([]knob.Knob, 0, len(rows))

	for _, row := range rows {
		kind, ok := knob.ParseKind(row.Kind)
		if !ok {
			kind = knob.KindString
		}

		out = append(out, knob.New(kind, row.Name, row.Name))
	}

	return out
}
