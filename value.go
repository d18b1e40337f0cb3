// Package rt is the runtime support library linked into native code
// emitted by the Fudge compiler backend. It supplies the one boxed
// value representation generated code manipulates, together with the
// operations the backend emits calls to: constructors, the printer,
// boolean coercion, closure invocation, the fatal-error path, and
// explicit deallocation.
//
// Allocation failure is not checked anywhere; running out of memory
// aborts the process, consistent with the fatal-only error model.
package rt

// Kind discriminates the active variant of a Value.
type Kind int32

const (
	KindInt Kind = iota
	KindText
	KindTag
	KindList
	KindStruct
	KindFunction
)

// Function is the shape of every compiled entry point: one boxed
// argument in, one boxed result out. Multi-argument application is
// chained single-argument calls built by the code generator.
type Function func(*Value) *Value

// Value is the boxed representation all generated code operates on.
// Exactly one variant is active, selected by kind; the remaining
// payload fields are zero.
type Value struct {
	kind    Kind
	integer int64    // Int
	text    []byte   // Text, Tag: owned buffer
	list    []*Value // List: nil-terminated element array, owned (elements are not)
	keys    []*Value // Struct: nil-terminated key array, owned
	values  []*Value // Struct: value array parallel to keys, owned
	entry   Function // Function: entry point
	env     any      // Function: captured state, layout known only to the code generator

	// pinned marks the process-wide singletons. Their buffers are not
	// in the owned class, so Free leaves them alone.
	pinned bool
}

// Kind reports which variant is active.
func (v *Value) Kind() Kind { return v.kind }

// The enum-like tags generated code compares against and the reified
// type names returned by TypeOf. All of them live for the whole
// process and are never freed.
var (
	True    = pinnedTag("True")
	False   = pinnedTag("False")
	Nothing = pinnedTag("Nothing")
	Less    = pinnedTag("Less")
	Greater = pinnedTag("Greater")
	Equal   = pinnedTag("Equal")

	TagInt      = pinnedTag("Int")
	TagText     = pinnedTag("Text")
	TagTag      = pinnedTag("Tag")
	TagList     = pinnedTag("List")
	TagStruct   = pinnedTag("Struct")
	TagFunction = pinnedTag("Function")
	TagUnknown  = pinnedTag("Unknown type")
)

// Environment is the sentinel standing in for the ambient execution
// context. Generated code passes it where a closure has nothing
// captured; Free recognizes it by identity.
var Environment = pinnedTag("Environment")

func pinnedTag(label string) *Value {
	return &Value{kind: KindTag, text: []byte(label), pinned: true}
}

// MakeInt boxes a 64-bit signed integer.
func MakeInt(v int64) *Value {
	return &Value{kind: KindInt, integer: v}
}

// MakeText boxes a copy of s. The new Value owns the copy; the caller
// keeps ownership of s.
func MakeText(s string) *Value {
	return &Value{kind: KindText, text: []byte(s)}
}

// MakeTag boxes a copy of the label.
func MakeTag(label string) *Value {
	return &Value{kind: KindTag, text: []byte(label)}
}

// MakeList wraps a nil-terminated element array. The Value takes
// ownership of the array itself, not of the elements it points to;
// they stay with whatever scope constructed them.
func MakeList(elems []*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// MakeStruct wraps two parallel nil-terminated arrays of keys and
// values, insertion order preserved. Ownership follows the MakeList
// rule: the arrays transfer, their members do not.
func MakeStruct(keys, values []*Value) *Value {
	return &Value{kind: KindStruct, keys: keys, values: values}
}

// MakeFunction wraps a compiled entry point and its captured state.
// The environment is opaque here; its layout belongs to the code
// generator and the runtime never interprets or frees it.
func MakeFunction(entry Function, env any) *Value {
	return &Value{kind: KindFunction, entry: entry, env: env}
}
