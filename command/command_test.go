package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "create-host", CreateHost.String())
	assert.Equal(t, "Command(42)", Command(42).String())

	c, ok := ParseCommand("create-host")
	require.True(t, ok)
	assert.Equal(t, CreateHost, c)

	_, ok = ParseCommand("delete-host")
	assert.False(t, ok)
}

func TestCommandMarshalsByName(t *testing.T) {
	out, err := yaml.Marshal(&Invocation{
		Command: CreateHost,
		Options: map[string]string{"instance-type": "t2.micro"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "command: create-host")
	assert.Contains(t, string(out), "instance-type: t2.micro")
}

func TestOptionSpec(t *testing.T) {
	o := OptionSpec{Name: "instance-type", Requirement: Required}
	assert.Equal(t, "--instance-type", o.Flag())
	assert.True(t, o.Required())
	assert.False(t, OptionSpec{Name: "x", Requirement: Optional}.Required())
}

func TestDefaultSchemaIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, "sdocker", s.Program)
	assert.Equal(t, []Command{CreateHost}, s.Commands)
	require.Len(t, s.Options[CreateHost], 1)
	assert.Equal(t, "instance-type", s.Options[CreateHost][0].Name)
	assert.True(t, s.Options[CreateHost][0].Required())
}

func TestValidateRejectsBrokenSchemas(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Schema)
		wantErr string
	}{
		{
			name:    "no program",
			mutate:  func(s *Schema) { s.Program = "" },
			wantErr: "no program name",
		},
		{
			name:    "no commands",
			mutate:  func(s *Schema) { s.Commands = nil },
			wantErr: "no commands",
		},
		{
			name:    "command without options entry",
			mutate:  func(s *Schema) { delete(s.Options, CreateHost) },
			wantErr: "has no option specification",
		},
		{
			name: "options for undeclared command",
			mutate: func(s *Schema) {
				s.Options[Command(99)] = nil
			},
			wantErr: "undeclared command",
		},
		{
			name:    "unknown command variant",
			mutate:  func(s *Schema) { s.Commands = append(s.Commands, Command(99)) },
			wantErr: "unknown command",
		},
		{
			name:    "duplicate command",
			mutate:  func(s *Schema) { s.Commands = append(s.Commands, CreateHost) },
			wantErr: "declared twice",
		},
		{
			name: "option without requirement",
			mutate: func(s *Schema) {
				s.Options[CreateHost] = []OptionSpec{{Name: "instance-type"}}
			},
			wantErr: "does not declare whether it is required",
		},
		{
			name: "duplicate option",
			mutate: func(s *Schema) {
				o := OptionSpec{Name: "instance-type", Requirement: Required}
				s.Options[CreateHost] = []OptionSpec{o, o}
			},
			wantErr: "declares option --instance-type twice",
		},
		{
			name: "unnamed option",
			mutate: func(s *Schema) {
				s.Options[CreateHost] = []OptionSpec{{Requirement: Optional}}
			},
			wantErr: "option without a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInvocationValue(t *testing.T) {
	inv := &Invocation{Command: CreateHost, Options: map[string]string{"instance-type": ""}}
	v, ok := inv.Value("instance-type")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = inv.Value("region")
	assert.False(t, ok)
}
