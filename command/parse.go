package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Build registers the parser tree for the schema. The returned Invocation is
// filled in when one of the command parsers runs; it stays nil-valued
// otherwise.
func (s *Schema) Build(out io.Writer) (*cobra.Command, *Invocation) {
	inv := &Invocation{}
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           s.Program,
		Short:         s.Short,
		Long:          ``,
		SilenceErrors: true,
		SilenceUsage:  true,

		SuggestionsMinimumDistance: 2,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return unknownCommand(args[0], cmd.SuggestionsFor(args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return missingCommand(s.Commands)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		// pflag keeps the positional tokens it consumed before failing, so an
		// unknown command followed by its flags is still reported as such.
		if name, ok := strayCommand(cmd); ok {
			return unknownCommand(name, cmd.SuggestionsFor(name))
		}
		return invalidOption(err)
	})

	// -h on the root with an unknown command in front must not print help;
	// Parse turns it into an UnknownCommand error instead.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if _, ok := strayCommand(cmd); ok {
			return
		}
		defaultHelp(cmd, args)
	})
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help [command]",
		Short: "help about any command",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := rootCmd
			if len(args) > 0 {
				if _, ok := ParseCommand(args[0]); !ok {
					return unknownCommand(args[0], rootCmd.SuggestionsFor(args[0]))
				}
				target, _, _ = rootCmd.Find(args[:1])
			}
			target.InitDefaultHelpFlag()
			return target.Help()
		},
	})

	for _, c := range s.Commands {
		rootCmd.AddCommand(s.commandParser(c, inv, &verbose))
	}
	return rootCmd, inv
}

// strayCommand reports the first positional token the root parser consumed
// when it does not name a known command.
func strayCommand(cmd *cobra.Command) (string, bool) {
	if cmd.HasParent() || cmd.Flags().NArg() == 0 {
		return "", false
	}
	name := cmd.Flags().Arg(0)
	if _, ok := ParseCommand(name); ok {
		return "", false
	}
	return name, true
}

func (s *Schema) commandParser(c Command, inv *Invocation, verbose *bool) *cobra.Command {
	opts := s.Options[c]
	cmd := &cobra.Command{
		Use:   c.String(),
		Short: s.Help[c],
		Long:  ``,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return unexpectedArguments(c, args)
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var missing []string
			for _, o := range opts {
				if o.Required() && !cmd.Flags().Changed(o.Name) {
					missing = append(missing, o.Flag())
				}
			}
			if len(missing) > 0 {
				return missingOptions(c, missing)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv.Command = c
			inv.Verbose = *verbose
			inv.Options = map[string]string{}
			for _, o := range opts {
				f := cmd.Flags().Lookup(o.Name)
				if f != nil && f.Changed {
					inv.Options[o.Name] = f.Value.String()
				}
			}
			return nil
		},
	}
	for _, o := range opts {
		cmd.Flags().String(o.Name, "", o.Usage)
		if o.Required() {
			cmd.MarkFlagRequired(o.Name)
		}
	}
	return cmd
}

// Parse runs tokens through a freshly built parser tree. Help output goes to
// out and is reported as pflag.ErrHelp. Invalid invocations return a
// *UsageError carrying the usage text of the rejecting parser.
func (s *Schema) Parse(tokens []string, out io.Writer) (*Invocation, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command schema: %w", err)
	}
	rootCmd, inv := s.Build(out)

	// cobra falls back to os.Args when the argument slice is nil.
	args := make([]string, len(tokens))
	copy(args, tokens)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			usageErr.Usage = cmd.UsageString()
			if usageErr.Kind == UnknownCommand {
				usageErr.Usage = rootCmd.UsageString()
			}
			return nil, usageErr
		}
		return nil, err
	}
	if name, ok := strayCommand(cmd); ok {
		usageErr := unknownCommand(name, rootCmd.SuggestionsFor(name))
		usageErr.Usage = rootCmd.UsageString()
		return nil, usageErr
	}
	if inv.Command == 0 {
		return nil, pflag.ErrHelp
	}
	inv.Tokens = append([]string{}, tokens...)
	return inv, nil
}
