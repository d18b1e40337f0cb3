package rt

import (
	"fmt"
	"os"
)

// Panic prints the reason and terminates the process with a non-zero
// status. It is the language's sole error primitive: there is no
// catch, no recovery, no unwinding.
func Panic(reason *Value) {
	fmt.Println("The program panicked for the following reason: ")
	PrintValue(reason)
	fmt.Println()
	os.Exit(1)
}
