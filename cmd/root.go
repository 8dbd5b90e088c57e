package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/michaelhenkel/sdocker/command"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// Handler runs a parsed command. Output meant for the user goes to out.
type Handler func(inv *command.Invocation, out io.Writer) error

var handlers = map[command.Command]Handler{
	command.CreateHost: createHost,
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run parses args, dispatches the selected command and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	schema := command.Default()
	inv, err := schema.Parse(args, stdout)
	if err != nil {
		var usageErr *command.UsageError
		switch {
		case errors.Is(err, pflag.ErrHelp):
			return 0
		case errors.As(err, &usageErr):
			fmt.Fprint(stderr, usageErr.Usage)
			fmt.Fprintf(stderr, "%s: error: %s\n", schema.Program, usageErr.Message)
			return usageErr.ExitCode()
		default:
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	initLogging(inv, stderr)

	handler, ok := handlers[inv.Command]
	if !ok {
		fmt.Fprintf(stderr, "no handler for command %s\n", inv.Command)
		return 1
	}
	if err := handler(inv, stdout); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func initLogging(inv *command.Invocation, stderr io.Writer) {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.InfoLevel)
	if inv.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		invYaml, err := yaml.Marshal(inv)
		if err != nil {
			log.Debugf("cannot render invocation: %v", err)
			return
		}
		log.Debugf("parsed invocation:\n%s", invYaml)
	}
}
