package command

import (
	"fmt"
	"strings"
)

// UsageExitCode is the exit status for every invalid invocation.
const UsageExitCode = 2

type ErrorKind int

const (
	MissingCommand ErrorKind = iota + 1
	UnknownCommand
	MissingOption
	InvalidOption
	UnexpectedArgument
)

func (k ErrorKind) String() string {
	switch k {
	case MissingCommand:
		return "missing command"
	case UnknownCommand:
		return "unknown command"
	case MissingOption:
		return "missing option"
	case InvalidOption:
		return "invalid option"
	case UnexpectedArgument:
		return "unexpected argument"
	default:
		return "usage error"
	}
}

// UsageError reports an invocation the schema does not accept. Usage holds
// the usage text of the parser that rejected it.
type UsageError struct {
	Kind    ErrorKind
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) ExitCode() int {
	return UsageExitCode
}

var _ error = (*UsageError)(nil)

func missingCommand(commands []Command) *UsageError {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.String())
	}
	return &UsageError{
		Kind:    MissingCommand,
		Message: fmt.Sprintf("a command is required (choose from %s)", strings.Join(names, ", ")),
	}
}

func unknownCommand(name string, suggestions []string) *UsageError {
	msg := fmt.Sprintf("unknown command %q", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", strings.Join(suggestions, ", "))
	}
	return &UsageError{
		Kind:    UnknownCommand,
		Message: msg,
	}
}

func missingOptions(c Command, flags []string) *UsageError {
	return &UsageError{
		Kind:    MissingOption,
		Message: fmt.Sprintf("the following options are required for %s: %s", c, strings.Join(flags, ", ")),
	}
}

func invalidOption(err error) *UsageError {
	return &UsageError{
		Kind:    InvalidOption,
		Message: err.Error(),
	}
}

func unexpectedArguments(c Command, args []string) *UsageError {
	return &UsageError{
		Kind:    UnexpectedArgument,
		Message: fmt.Sprintf("unrecognized arguments for %s: %s", c, strings.Join(args, " ")),
	}
}
