package rt

import "fmt"

// The builtin operations the code generator lowers primitive calls to.
// They live in the same package as the value core: the printer needs
// ListLength, and the builtins need the constructors and singletons.

// Equals compares two values the way generated code observes equality:
// same variant, and for Int and Tag an equal payload. Every other
// variant compares False, including against itself.
func Equals(left, right *Value) *Value {
	if left.kind != right.kind {
		return False
	}
	switch left.kind {
	case KindInt:
		return ToBool(left.integer == right.integer)
	case KindTag:
		return ToBool(string(left.text) == string(right.text))
	default:
		return False
	}
}

// IfElse coerces the condition and invokes the chosen branch. Branches
// are thunks: their entry point receives the closure's own environment
// as the single argument, per the code generator's convention for
// zero-argument functions.
func IfElse(condition, then, otherwise *Value) *Value {
	branch := otherwise
	if TagToBool(condition) != 0 {
		branch = then
	}
	env, _ := branch.env.(*Value)
	return branch.entry(env)
}

func IntAdd(left, right *Value) *Value {
	return MakeInt(left.integer + right.integer)
}

func IntSubtract(left, right *Value) *Value {
	return MakeInt(left.integer - right.integer)
}

// IntBitLength reports the width of the integer representation. Ints
// are fixed 64-bit boxes.
func IntBitLength(v *Value) *Value {
	return MakeInt(64)
}

func IntBitwiseAnd(left, right *Value) *Value {
	return MakeInt(left.integer & right.integer)
}

func IntBitwiseOr(left, right *Value) *Value {
	return MakeInt(left.integer | right.integer)
}

func IntBitwiseXor(left, right *Value) *Value {
	return MakeInt(left.integer ^ right.integer)
}

// IntCompareTo orders two integers, returning the shared Less, Equal,
// or Greater tag.
func IntCompareTo(left, right *Value) *Value {
	switch {
	case left.integer < right.integer:
		return Less
	case left.integer == right.integer:
		return Equal
	default:
		return Greater
	}
}

// ListLength counts a list's elements and boxes the count in a fresh
// Int. Lists carry no length field; the element array is terminated by
// a nil entry.
func ListLength(list *Value) *Value {
	n := 0
	for n < len(list.list) && list.list[n] != nil {
		n++
	}
	return MakeInt(int64(n))
}

// StructGet returns the value stored under key, scanning keys in
// insertion order. A missing key is fatal.
func StructGet(structure, key *Value) *Value {
	for i := 0; i < len(structure.keys) && structure.keys[i] != nil; i++ {
		if TagToBool(Equals(structure.keys[i], key)) != 0 {
			return structure.values[i]
		}
	}
	Panic(MakeText("Attempted to access non-existent struct member"))
	return nil
}

// StructGetKeys returns the keys as a list. The list aliases the
// struct's key array; the struct keeps ownership of it.
func StructGetKeys(structure *Value) *Value {
	return MakeList(structure.keys)
}

// StructHasKey reports whether key is present, as a boolean tag.
func StructHasKey(structure, key *Value) *Value {
	for i := 0; i < len(structure.keys) && structure.keys[i] != nil; i++ {
		if TagToBool(Equals(structure.keys[i], key)) != 0 {
			return True
		}
	}
	return False
}

// TypeOf returns the reified type name of v as a shared tag.
func TypeOf(v *Value) *Value {
	switch v.kind {
	case KindInt:
		return TagInt
	case KindText:
		return TagText
	case KindTag:
		return TagTag
	case KindList:
		return TagList
	case KindStruct:
		return TagStruct
	case KindFunction:
		return TagFunction
	default:
		Panic(TagUnknown)
		return nil
	}
}

// PrintLine prints v followed by a newline and returns Nothing.
func PrintLine(v *Value) *Value {
	PrintValue(v)
	fmt.Println()
	return Nothing
}
