// Package fixture loads YAML-encoded sample IR programs, resolving the
// symbolic label/region/handler names a fixture file uses into the
// *ir.Label/*ir.TryRegion/*ir.CatchHandler pointer identities cfg.Build
// requires. It is CLI- and test-only tooling; the core never reads YAML.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redex-go/flowcore/ir"
)

// rawRegion is a region's declaration: the ordered chain of catch handlers
// guarding it.
type rawRegion struct {
	Handlers []string `yaml:"handlers"`
}

// rawItem is one instruction-stream entry as written in a fixture file.
type rawItem struct {
	Kind    string   `yaml:"kind"`
	Op      string   `yaml:"op,omitempty"`
	Target  string   `yaml:"target,omitempty"`
	Cases   []string `yaml:"cases,omitempty"`
	Default string   `yaml:"default,omitempty"`
	Label   string   `yaml:"label,omitempty"`
	Region  string   `yaml:"region,omitempty"`
	Handler string   `yaml:"handler,omitempty"`
	Text    string   `yaml:"text,omitempty"`
}

// program is the top-level shape of a fixture file.
type program struct {
	Regions map[string]rawRegion `yaml:"regions"`
	Items   []rawItem            `yaml:"items"`
}

// LoadFile reads and parses the fixture at path.
func LoadFile(path string) ([]*ir.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return Load(data)
}

// Load parses a fixture document already in memory.
func Load(data []byte) ([]*ir.Item, error) {
	var prog program
	if err := yaml.Unmarshal(data, &prog); err != nil {
		return nil, fmt.Errorf("parsing fixture YAML: %w", err)
	}
	return build(&prog)
}

type resolver struct {
	labels   map[string]*ir.Label
	handlers map[string]*ir.CatchHandler
	regions  map[string]*ir.TryRegion
}

func (r *resolver) label(name string) *ir.Label {
	if l, ok := r.labels[name]; ok {
		return l
	}
	l := ir.NewLabel(name)
	r.labels[name] = l
	return l
}

func (r *resolver) handler(name string) *ir.CatchHandler {
	if h, ok := r.handlers[name]; ok {
		return h
	}
	h := &ir.CatchHandler{Name: name}
	r.handlers[name] = h
	return h
}

func build(prog *program) ([]*ir.Item, error) {
	r := &resolver{
		labels:   map[string]*ir.Label{},
		handlers: map[string]*ir.CatchHandler{},
		regions:  map[string]*ir.TryRegion{},
	}

	for name, raw := range prog.Regions {
		region := &ir.TryRegion{}
		var head, tail *ir.CatchHandler
		for _, hn := range raw.Handlers {
			h := r.handler(hn)
			if head == nil {
				head = h
			} else {
				tail.Next = h
			}
			tail = h
		}
		region.CatchStart = head
		r.regions[name] = region
	}

	items := make([]*ir.Item, 0, len(prog.Items))
	for i, raw := range prog.Items {
		item, err := buildItem(r, i, raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(r *resolver, index int, raw rawItem) (*ir.Item, error) {
	switch raw.Kind {
	case "instruction":
		return ir.NewInstruction(raw.Op), nil
	case "goto":
		return ir.NewGoto(raw.Op, r.label(raw.Target)), nil
	case "implicit-goto":
		return ir.NewImplicitGoto(raw.Op, r.label(raw.Target)), nil
	case "if":
		return ir.NewIf(raw.Op, r.label(raw.Target)), nil
	case "switch":
		cases := make([]*ir.Label, len(raw.Cases))
		for j, c := range raw.Cases {
			cases[j] = r.label(c)
		}
		var def *ir.Label
		if raw.Default != "" {
			def = r.label(raw.Default)
		}
		return ir.NewSwitch(raw.Op, cases, def), nil
	case "throw":
		return ir.NewThrow(raw.Op), nil
	case "return":
		return ir.NewReturn(raw.Op), nil
	case "target":
		if raw.Label == "" {
			return nil, fmt.Errorf("item %d: target entry missing label", index)
		}
		return ir.NewTarget(r.label(raw.Label)), nil
	case "try-start":
		region, ok := r.regions[raw.Region]
		if !ok {
			return nil, fmt.Errorf("item %d: try-start references undeclared region %q", index, raw.Region)
		}
		return ir.NewTryStart(region), nil
	case "try-end":
		region, ok := r.regions[raw.Region]
		if !ok {
			return nil, fmt.Errorf("item %d: try-end references undeclared region %q", index, raw.Region)
		}
		return ir.NewTryEnd(region), nil
	case "catch":
		if raw.Handler == "" {
			return nil, fmt.Errorf("item %d: catch entry missing handler", index)
		}
		return ir.NewCatch(r.handler(raw.Handler)), nil
	case "debug":
		return ir.NewDebug(raw.Text), nil
	case "position":
		return ir.NewPosition(raw.Text), nil
	default:
		return nil, fmt.Errorf("item %d: unknown kind %q", index, raw.Kind)
	}
}
