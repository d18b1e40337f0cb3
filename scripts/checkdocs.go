// Command checkdocs validates the markdown test documents without
// running the test suite: every document must parse, every case must
// have an input value in the notation and at least one assertion.
//
// Usage: go run scripts/checkdocs.go [glob]
// The glob defaults to test/*_test.md, relative to the repo root.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fudge-lang/rt/notation"
)

func main() {
	pattern := "test/*_test.md"
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}

	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad glob %q: %v\n", pattern, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no documents match %q\n", pattern)
		os.Exit(1)
	}

	failed := false
	total := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", file, err)
			failed = true
			continue
		}

		cases, err := notation.ExtractTestCases(string(content))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", file, err)
			failed = true
			continue
		}

		fmt.Printf("%s: %d cases\n", file, len(cases))
		total += len(cases)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Printf("OK: %d cases across %d documents\n", total, len(files))
}
