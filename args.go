package grep

import (
	"bytes"
	"strconv"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Long names of the output flags, shared between the schema table and the
// presence checks of the configuration assembler.
const (
	flagOnlyMatching        = "only-matching"
	flagByteOffset          = "byte-offset"
	flagFilesWithMatches    = "files-with-matches"
	flagFilesWithoutMatches = "files-without-matches"
)

// outputFlags is the declarative schema of the output override group. All
// precedence between these four flags reduces to a single rule applied by
// outputValue below: the one given last on the command line wins.
var outputFlags = []struct {
	name  string
	short string
	mode  OutputMode
	usage string
}{
	{flagOnlyMatching, "o", MatchedBytes, "print the matched bytes of each match"},
	{flagByteOffset, "b", ByteOffset, "print the byte offset of each match"},
	{flagFilesWithMatches, "l", FileName, "print the name of the matched files"},
	{flagFilesWithoutMatches, "L", FileName, "print the name of non-matched files (equivalent to '-vl')"},
}

// outputGroup tracks which flag of a mutually-overriding set is currently in
// effect. Flags are parsed left to right, so the last one set wins, and a
// superseded flag no longer counts as present at all.
type outputGroup struct {
	selected string
}

func (g *outputGroup) present(name string) bool {
	return g.selected == name
}

// outputValue is a boolean-style pflag.Value that registers its flag as the
// winner of its override group when set. The flags carry NoOptDefVal, so
// shorthand stacking (as in -ob) parses the same way as for plain bools.
type outputValue struct {
	name  string
	group *outputGroup
}

func (v *outputValue) Set(val string) error {
	on, err := strconv.ParseBool(val)
	if err != nil {
		return err
	}

	if on {
		v.group.selected = v.name
	}

	return nil
}

func (v *outputValue) String() string {
	return strconv.FormatBool(v.group.present(v.name))
}

func (v *outputValue) Type() string {
	return "bool"
}

// registerOutputFlags binds the override group schema onto a flag set.
func registerOutputFlags(flags *pflag.FlagSet, group *outputGroup) {
	for _, spec := range outputFlags {
		val := &outputValue{name: spec.name, group: group}
		flag := flags.VarPF(val, spec.name, spec.short, spec.usage)
		flag.NoOptDefVal = "true"
	}
}

// newCommand builds the argument schema as a cobra command, binding parse
// results into the given matches. A fresh command is built on every Parse
// call, so that the resolver stays a pure function of its input.
func newCommand(raw *matches, group *outputGroup) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grep [flags] <pattern> [files...]",
		Short:   shortDesc,
		Version: version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return newError(ErrMissingPattern, "the required argument <pattern> was not provided")
			}

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			raw.pattern = args[0]
			raw.files = args[1:]
			raw.ran = true

			return nil
		},
	}

	// Rendering and error reporting are owned by the caller of Parse.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags := cmd.Flags()
	flags.BoolVarP(&raw.invertMatch, "invert-match", "v", false, "inverse matching")
	flags.BoolVarP(&raw.ignoreCase, "ignore-case", "i", false, "case insensitive matching")
	registerOutputFlags(flags, group)

	// Completions: nothing to suggest for the pattern,
	// filesystem paths for every operand after it.
	comps := carapace.Gen(cmd)
	comps.PositionalCompletion(carapace.ActionValues())
	comps.PositionalAnyCompletion(carapace.ActionFiles())
	comps.Standalone()

	return cmd
}

// Parse resolves a raw argument vector (the process arguments, excluding the
// program name) into a Command. Three outcomes are possible: a HelpRequest
// or VersionRequest carrying rendered informational text, or a SearchRequest
// ready for the engine. A malformed invocation returns a nil Command and an
// *Error; nothing is ever printed from here.
func Parse(args []string) (Command, error) {
	raw := &matches{}
	group := &outputGroup{}
	cmd := newCommand(raw, group)

	// A nil slice would make cobra fall back to the process arguments.
	if args == nil {
		args = []string{}
	}

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return nil, wrapError(err)
	}

	// Informational requests are rendered by the schema itself: the help
	// flag wins over everything else, then the version flag. Any other
	// successful execution that never reached the run function also only
	// produced text (the help subcommand, completion script generation).
	if helped, _ := cmd.Flags().GetBool("help"); helped {
		return &HelpRequest{Text: buf.String()}, nil
	}

	if versioned, _ := cmd.Flags().GetBool("version"); versioned {
		return &VersionRequest{Text: buf.String()}, nil
	}

	if !raw.ran {
		return &HelpRequest{Text: buf.String()}, nil
	}

	raw.onlyMatching = group.present(flagOnlyMatching)
	raw.byteOffset = group.present(flagByteOffset)
	raw.filesWithMatches = group.present(flagFilesWithMatches)
	raw.filesWithoutMatches = group.present(flagFilesWithoutMatches)

	req := buildRequest(raw)

	// Contract check: a well-formed request always carries a pattern and
	// at least one file operand.
	if err := validate.Struct(req); err != nil {
		return nil, wrapError(err)
	}

	return req, nil
}
