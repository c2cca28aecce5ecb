// Command knoblayout applies a YAML-described knob layout to an
// in-memory node and prints the resulting knob order. It exists for
// poking at layout behaviour without a live host session.
//
// Layout file shape:
//
//	class: Grade
//	knobs:
//	  - {name: size, kind: double, label: Size}
//	  - {name: mode, kind: string, after: size}
//	  - {name: fast, kind: bool, before: mode}
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tanant/knobwrangler/knob"
	"github.com/tanant/knobwrangler/node"
	"github.com/tanant/knobwrangler/wrangler"
)

type layoutFile struct {
	// Class selects the node's base knob layout.
	Class string `yaml:"class"`

	// Knobs are applied in order; each entry may anchor itself before
	// or after an already-placed knob by name.
	Knobs []layoutKnob `yaml:"knobs"`
}

type layoutKnob struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label,omitempty"`
	Kind   string `yaml:"kind,omitempty"`
	After  string `yaml:"after,omitempty"`
	Before string `yaml:"before,omitempty"`
}

func main() {
	verbose := flag.Bool("v", false, "log every insertion")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: knoblayout [-v] <layout.yaml>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "knoblayout:", err)
		os.Exit(1)
	}
}

func run(path string, verbose bool) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var layout layoutFile
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return fmt.Errorf("failed to parse layout file: %w", err)
	}

	if layout.Class == "" {
		layout.Class = "NoOp"
	}

	n := node.New(layout.Class)

	for _, row := range layout.Knobs {
		kind, ok := knob.ParseKind(row.Kind)
		if !ok {
			kind = knob.KindString
		}

		label := row.Label
		if label == "" {
			label = row.Name
		}

		at, before := wrangler.Anchor{}, false
		switch {
		case row.Before != "":
			at, before = wrangler.ByName(row.Before), true
		case row.After != "":
			at = wrangler.ByName(row.After)
		}

		added, err := wrangler.Insert(n, []knob.Knob{knob.New(kind, row.Name, label)}, at, before)
		if err != nil {
			return fmt.Errorf("placing knob %q: %w", row.Name, err)
		}

		log.Debug("placed knob", "name", row.Name, "added", len(added))
	}

	for i, k := range n.AllKnobs() {
		fmt.Printf("%3d  %-24s %s\n", i, k.Name(), k.Kind())
	}

	return nil
}
