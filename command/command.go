// Package command declares the sdocker command-line surface: the known
// commands, the options each one accepts, and the parser that turns input
// tokens into an Invocation.
package command

import (
	"errors"
	"fmt"
)

type Command int

const (
	CreateHost Command = iota + 1
)

var commandNames = map[Command]string{
	CreateHost: "create-host",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// MarshalYAML renders the command by name.
func (c Command) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// ParseCommand maps a command name to its Command. Unknown names return false.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Requirement tells whether an option must be supplied. The zero value is
// invalid, so every OptionSpec has to choose one.
type Requirement int

const (
	Required Requirement = iota + 1
	Optional
)

type OptionSpec struct {
	Name        string
	Usage       string
	Requirement Requirement
}

// Flag returns the option as typed on the command line.
func (o OptionSpec) Flag() string {
	return "--" + o.Name
}

func (o OptionSpec) Required() bool {
	return o.Requirement == Required
}

type Schema struct {
	Program  string
	Short    string
	Commands []Command
	Options  map[Command][]OptionSpec
	Help     map[Command]string
}

// Default returns the sdocker schema.
func Default() *Schema {
	return &Schema{
		Program:  "sdocker",
		Short:    "sdocker manages docker hosts",
		Commands: []Command{CreateHost},
		Options: map[Command][]OptionSpec{
			CreateHost: {
				{Name: "instance-type", Usage: "instance type of the host", Requirement: Required},
			},
		},
		Help: map[Command]string{
			CreateHost: "creates a docker host",
		},
	}
}

// Validate checks that the command enumeration and the option mapping agree
// and that every option is well formed.
func (s *Schema) Validate() error {
	if s.Program == "" {
		return errors.New("schema has no program name")
	}
	if len(s.Commands) == 0 {
		return errors.New("schema has no commands")
	}
	seen := map[Command]bool{}
	for _, c := range s.Commands {
		if _, ok := commandNames[c]; !ok {
			return fmt.Errorf("unknown command %s", c)
		}
		if seen[c] {
			return fmt.Errorf("command %s declared twice", c)
		}
		seen[c] = true
		opts, ok := s.Options[c]
		if !ok {
			return fmt.Errorf("command %s has no option specification", c)
		}
		names := map[string]bool{}
		for _, o := range opts {
			if o.Name == "" {
				return fmt.Errorf("command %s has an option without a name", c)
			}
			if names[o.Name] {
				return fmt.Errorf("command %s declares option %s twice", c, o.Flag())
			}
			names[o.Name] = true
			if o.Requirement != Required && o.Requirement != Optional {
				return fmt.Errorf("option %s of command %s does not declare whether it is required", o.Flag(), c)
			}
		}
	}
	for c := range s.Options {
		if !seen[c] {
			return fmt.Errorf("option specification for undeclared command %s", c)
		}
	}
	return nil
}

// Invocation is the result of a successful parse.
type Invocation struct {
	Command Command           `yaml:"command"`
	Options map[string]string `yaml:"options"`
	Verbose bool              `yaml:"verbose"`
	Tokens  []string          `yaml:"tokens"`
}

// Value returns the value supplied for the named option.
func (i *Invocation) Value(name string) (string, bool) {
	v, ok := i.Options[name]
	return v, ok
}
