package grep

// Command is the result of resolving a raw argument list. Exactly one of
// the three variants below is produced per invocation; malformed argument
// lists are returned from Parse as an *Error instead of a Command.
type Command interface {
	command()
}

// HelpRequest carries rendered usage text: the user asked for help, and the
// program should print the text and stop. Not an error.
type HelpRequest struct {
	Text string
}

// VersionRequest carries rendered version text. Not an error.
type VersionRequest struct {
	Text string
}

// SearchRequest is a fully resolved search invocation. The engine consuming
// it is responsible for compiling the pattern (honoring CaseInsensitive),
// scanning the files, deciding match/non-match (honoring Inverse) and
// rendering results per the output mode.
type SearchRequest struct {
	Options MatchOptions
	Pattern string   `validate:"required"`
	Files   []string `validate:"required,min=1"`
}

func (*HelpRequest) command() {}

func (*VersionRequest) command() {}

func (*SearchRequest) command() {}
