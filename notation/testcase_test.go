package notation

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractTestCases_BasicDocument(t *testing.T) {
	markdown := `# Printing

## Test: answer
` + "```fudge-value" + `
42
` + "```" + `
` + "```printed" + `
42
` + "```" + `

## Test: empty list
` + "```fudge-value" + `
()
` + "```" + `
` + "```printed" + `
(,)
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)

	tc1 := testCases[0]
	be.Equal(t, tc1.Name, "answer")
	be.Equal(t, tc1.Input, "42")
	be.Equal(t, tc1.InputType, InputTypeValue)
	be.Equal(t, tc1.Parsed.Type, NodeInteger)
	be.Equal(t, len(tc1.Assertions), 1)
	be.Equal(t, tc1.Assertions[0].Type, AssertionTypePrinted)
	be.Equal(t, tc1.Assertions[0].Content, "42")

	tc2 := testCases[1]
	be.Equal(t, tc2.Name, "empty list")
	be.Equal(t, tc2.Parsed.Type, NodeList)
	be.Equal(t, tc2.Assertions[0].Content, "(,)")
}

func TestExtractTestCases_MultipleAssertions(t *testing.T) {
	markdown := `## Test: truth
` + "```fudge-value" + `
True
` + "```" + `
` + "```printed" + `
True
` + "```" + `
` + "```tag-bool" + `
1
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, len(testCases[0].Assertions), 2)
	be.Equal(t, testCases[0].Assertions[0].Type, AssertionTypePrinted)
	be.Equal(t, testCases[0].Assertions[1].Type, AssertionTypeTagBool)
	be.Equal(t, testCases[0].Assertions[1].Content, "1")
}

func TestExtractTestCases_ProseAndPlainFencesIgnored(t *testing.T) {
	markdown := `# Printing

Some prose about the printer.

` + "```" + `
this plain block is prose, not test data
` + "```" + `

## Test: tag
` + "```fudge-value" + `
Greater
` + "```" + `
` + "```printed" + `
Greater
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Name, "tag")
}

func TestExtractTestCases_Errors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		wantErr  string
	}{
		{
			name:     "input fence outside test case",
			markdown: "```fudge-value\n42\n```",
			wantErr:  "outside of test case",
		},
		{
			name:     "unknown fence language",
			markdown: "## Test: x\n```fudge-value\n1\n```\n```mystery\n?\n```",
			wantErr:  "unknown fence language",
		},
		{
			name:     "missing input",
			markdown: "## Test: x\n```printed\n1\n```",
			wantErr:  "no input fence",
		},
		{
			name:     "missing assertions",
			markdown: "## Test: x\n```fudge-value\n1\n```",
			wantErr:  "no assertion fences",
		},
		{
			name:     "duplicate input",
			markdown: "## Test: x\n```fudge-value\n1\n```\n```fudge-value\n2\n```\n```printed\n1\n```",
			wantErr:  "multiple input fences",
		},
		{
			name:     "unparseable value",
			markdown: "## Test: x\n```fudge-value\n(1\n```\n```printed\n1\n```",
			wantErr:  "failed to parse value",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ExtractTestCases(test.markdown)
			be.True(t, err != nil)
			be.True(t, strings.Contains(err.Error(), test.wantErr))
		})
	}
}
