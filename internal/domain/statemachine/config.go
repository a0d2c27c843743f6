package statemachine

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// Definition is the YAML layout of a state machine graph
type Definition struct {
	Name        string                 `yaml:"name"`
	Initial     string                 `yaml:"initial"`
	States      []string               `yaml:"states"`
	Operations  []string               `yaml:"operations"`
	Transitions []TransitionDefinition `yaml:"transitions"`
}

// TransitionDefinition declares the targets of one (state, operation) pair
type TransitionDefinition struct {
	From        []string          `yaml:"from"`
	Operation   string            `yaml:"operation"`
	Outcomes    map[string]string `yaml:"outcomes"`
	Unreachable []string          `yaml:"unreachable"`
}

type transitionKey struct {
	state     string
	operation string
}

// Config is an immutable, validated state machine graph
type Config struct {
	name        string
	initial     string
	states      map[string]struct{}
	operations  map[string]struct{}
	transitions map[transitionKey]map[OutcomeKind]string
}

// Load parses and validates a YAML graph definition
//
// Every (state, operation) pair must map all four outcomes, or list the
// missing ones as unreachable.
func Load(data []byte) (*Config, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: parse state machine definition: %v", errs.ErrConfiguration, err)
	}
	return New(def)
}

// MustLoad is Load for embedded definitions; it panics on an invalid graph
func MustLoad(data []byte) *Config {
	cfg, err := Load(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// New validates a definition and builds its Config
func New(def Definition) (*Config, error) {
	cfg := &Config{
		name:        def.Name,
		initial:     def.Initial,
		states:      make(map[string]struct{}, len(def.States)),
		operations:  make(map[string]struct{}, len(def.Operations)),
		transitions: make(map[transitionKey]map[OutcomeKind]string),
	}

	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: state machine %q: %s", errs.ErrConfiguration, def.Name, fmt.Sprintf(format, args...))
	}

	for _, s := range def.States {
		if _, dup := cfg.states[s]; dup {
			return nil, invalid("duplicate state %s", s)
		}
		cfg.states[s] = struct{}{}
	}
	for _, op := range def.Operations {
		cfg.operations[op] = struct{}{}
	}
	if _, ok := cfg.states[def.Initial]; !ok {
		return nil, invalid("initial state %q is not declared", def.Initial)
	}

	for _, tr := range def.Transitions {
		if _, ok := cfg.operations[tr.Operation]; !ok {
			return nil, invalid("unknown operation %s", tr.Operation)
		}

		targets := make(map[OutcomeKind]string, len(tr.Outcomes))
		for name, target := range tr.Outcomes {
			kind, err := ParseOutcomeKind(name)
			if err != nil {
				return nil, invalid("%v", err)
			}
			if _, ok := cfg.states[target]; !ok {
				return nil, invalid("unknown target state %s", target)
			}
			targets[kind] = target
		}

		unreachable := make(map[OutcomeKind]bool, len(tr.Unreachable))
		for _, name := range tr.Unreachable {
			kind, err := ParseOutcomeKind(name)
			if err != nil {
				return nil, invalid("%v", err)
			}
			unreachable[kind] = true
		}

		for _, kind := range OutcomeKinds {
			_, mapped := targets[kind]
			if !mapped && !unreachable[kind] {
				return nil, invalid("operation %s from %v does not cover outcome %s", tr.Operation, tr.From, kind)
			}
		}

		for _, from := range tr.From {
			if _, ok := cfg.states[from]; !ok {
				return nil, invalid("unknown source state %s", from)
			}
			key := transitionKey{state: from, operation: tr.Operation}
			if _, dup := cfg.transitions[key]; dup {
				return nil, invalid("operation %s declared twice from %s", tr.Operation, from)
			}
			cfg.transitions[key] = targets
		}
	}

	return cfg, nil
}

// Name returns the graph name
func (c *Config) Name() string {
	return c.name
}

// InitialState returns the state new entities start in
func (c *Config) InitialState() string {
	return c.initial
}

// HasState reports whether the state is declared
func (c *Config) HasState(state string) bool {
	_, ok := c.states[state]
	return ok
}

// States returns the declared states in sorted order
func (c *Config) States() []string {
	out := make([]string, 0, len(c.states))
	for s := range c.states {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// IsOperationAllowed reports whether the operation may run from the state
func (c *Config) IsOperationAllowed(state, operation string) bool {
	_, ok := c.transitions[transitionKey{state: state, operation: operation}]
	return ok
}

// AllowedOperations returns the operations that may run from the state in sorted order
func (c *Config) AllowedOperations(state string) []string {
	var out []string
	for key := range c.transitions {
		if key.state == state {
			out = append(out, key.operation)
		}
	}
	sort.Strings(out)
	return out
}

// Target returns the state entered after running the operation with the given outcome
func (c *Config) Target(state, operation string, outcome OutcomeKind) (string, bool) {
	targets, ok := c.transitions[transitionKey{state: state, operation: operation}]
	if !ok {
		return "", false
	}
	target, ok := targets[outcome]
	return target, ok
}
