package main

import (
	"fmt"
	"os"

	"github.com/reeflective/grep"
)

//
// A minimal front end for the resolver: parse the process arguments, then
// dispatch on the resulting command. A real engine would consume the search
// request; this example prints the resolved configuration instead.
//

func main() {
	cmd, err := grep.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch cmd := cmd.(type) {
	case *grep.HelpRequest:
		fmt.Print(cmd.Text)
	case *grep.VersionRequest:
		fmt.Print(cmd.Text)
	case *grep.SearchRequest:
		fmt.Printf("pattern (string):           %v\n", cmd.Pattern)
		fmt.Printf("files ([]string):           %v\n", cmd.Files)
		fmt.Printf("inverse (bool):             %v\n", cmd.Options.Inverse)
		fmt.Printf("case-insensitive (bool):    %v\n", cmd.Options.CaseInsensitive)
		fmt.Printf("output (OutputMode):        %v\n", cmd.Options.Output)
	}
}
