package rt

import (
	"fmt"
	"io"
	"os"
)

// PrintValue renders v to standard output in its diagnostic textual
// form. The format is for humans and test expectations; it does not
// round-trip.
func PrintValue(v *Value) {
	FprintValue(os.Stdout, v)
}

// FprintValue renders v to w, recursing through list elements.
func FprintValue(w io.Writer, v *Value) {
	switch v.kind {
	case KindInt:
		fmt.Fprintf(w, "%d", v.integer)
	case KindText, KindTag:
		w.Write(v.text)
	case KindList:
		io.WriteString(w, "(")
		length := ListLength(v)
		n := int(length.integer)
		Free(length)
		switch n {
		case 0:
			// A bare "," distinguishes the empty list from unit
			// parentheses.
			io.WriteString(w, ",")
		case 1:
			// Trailing comma distinguishes a one-element list from a
			// parenthesized scalar.
			FprintValue(w, v.list[0])
			io.WriteString(w, ",")
		default:
			for i := 0; i < n; i++ {
				FprintValue(w, v.list[i])
				if i != n-1 {
					io.WriteString(w, ", ")
				}
			}
		}
		io.WriteString(w, ")")
	case KindFunction:
		fmt.Fprintf(w, "Function %p", v.entry)
	default:
		// Structs have no textual form yet; they land here together
		// with corrupted kinds.
		fmt.Fprintf(w, "<unknown type %d>", v.kind)
	}
}
