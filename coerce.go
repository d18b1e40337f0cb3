package rt

import (
	"fmt"
	"os"
)

// ToBool converts a native bool into the shared True or False tag.
// The result is a process-wide singleton: it is pointer-identical
// across calls and freeing it is a no-op.
func ToBool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// TagToBool interprets a boolean tag, returning 1 for "True" and 0 for
// "False". Anything else is a fatal error: the offending value is
// printed and the process exits. Callers must pass a Tag; every other
// variant has no tag text and lands on the fatal path too.
func TagToBool(v *Value) int {
	switch string(v.text) {
	case "True":
		return 1
	case "False":
		return 0
	}
	fmt.Print("Got invalid value ")
	PrintValue(v)
	fmt.Println()
	os.Exit(1)
	return 0
}
