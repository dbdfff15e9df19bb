// Package grep implements the command-line surface of a grep-like search
// tool. It resolves a raw argument vector into a structured Command: either
// an informational request (help, version) or a fully assembled search
// request, ready to be handed to a matching engine.
//
// The package owns no I/O besides rendering help and version text: it never
// reads file contents, never compiles the pattern, and never prints. The
// engine consuming the SearchRequest is responsible for all of that.
package grep

import (
	"github.com/go-playground/validator/v10"
)

// version is rendered for --version requests.
const version = "0.1.0"

const shortDesc = "search the input files for a pattern"

// validate checks the invariants of assembled search requests before they
// are returned. A failure here is a resolver bug, never a user error.
var validate = validator.New()
