package grep

// OutputMode selects which property of a match the engine prints.
type OutputMode uint

// ORDER IN WHICH THE MODE CONSTANTS APPEAR MATTERS.
const (
	// FileName prints the names of the matched files (the default mode).
	FileName OutputMode = iota

	// MatchedBytes prints the matched bytes of each match.
	MatchedBytes

	// ByteOffset prints the byte offset of each match.
	ByteOffset
)

func (m OutputMode) String() string {
	modes := [...]string{
		"file-name",     // FileName
		"matched-bytes", // MatchedBytes
		"byte-offset",   // ByteOffset
	}
	if int(m) >= len(modes) {
		return "unrecognized output mode"
	}

	return modes[m]
}

// MatchOptions is the semantic configuration of a search, derived from raw
// flag presence. The zero value is a plain, case-sensitive search printing
// file names.
type MatchOptions struct {
	Inverse         bool
	CaseInsensitive bool
	Output          OutputMode
}

// stdinFile is the conventional operand meaning "read from standard input",
// substituted when the user supplies no file operands.
const stdinFile = "-"

// matches holds the raw resolver results before semantic assembly. The four
// output booleans reflect post-override presence: flags superseded within
// their override group have already been cleared, so at most one is true.
type matches struct {
	pattern string
	files   []string
	ran     bool

	invertMatch bool
	ignoreCase  bool

	onlyMatching        bool
	byteOffset          bool
	filesWithMatches    bool
	filesWithoutMatches bool
}

// buildRequest derives the final search configuration from the raw matches.
// Every input has been validated by the resolver already, so this step
// cannot fail: it only applies defaulting and boolean-combination rules.
func buildRequest(raw *matches) *SearchRequest {
	files := raw.files
	if len(files) == 0 {
		files = []string{stdinFile}
	}

	var output OutputMode

	switch {
	case raw.onlyMatching:
		output = MatchedBytes
	case raw.byteOffset:
		output = ByteOffset
	case raw.filesWithMatches:
		output = FileName
	case raw.filesWithoutMatches:
		output = FileName
	default:
		output = FileName
	}

	return &SearchRequest{
		Options: MatchOptions{
			// -L means -vl, so giving both -v and -L cancels out.
			Inverse:         raw.invertMatch != raw.filesWithoutMatches,
			CaseInsensitive: raw.ignoreCase,
			Output:          output,
		},
		Pattern: raw.pattern,
		Files:   files,
	}
}
