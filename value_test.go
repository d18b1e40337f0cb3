package rt

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected Kind
	}{
		{name: "int", value: MakeInt(7), expected: KindInt},
		{name: "text", value: MakeText("hello"), expected: KindText},
		{name: "tag", value: MakeTag("Blue"), expected: KindTag},
		{name: "list", value: MakeList([]*Value{nil}), expected: KindList},
		{name: "struct", value: MakeStruct([]*Value{nil}, []*Value{nil}), expected: KindStruct},
		{name: "function", value: MakeFunction(func(v *Value) *Value { return v }, nil), expected: KindFunction},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, test.value.Kind(), test.expected)
		})
	}
}

func TestConstructorsAllocateFreshBoxes(t *testing.T) {
	a := MakeInt(1)
	b := MakeInt(1)
	be.True(t, a != b)
}

func TestTextConstructorCopiesInput(t *testing.T) {
	s := "mutable source"
	v := MakeText(s)
	// The box owns its buffer; the caller's string is untouched and
	// unshared.
	v.text[0] = 'X'
	be.Equal(t, s, "mutable source")
}

func TestSingletonLabels(t *testing.T) {
	tests := []struct {
		value    *Value
		expected string
	}{
		{True, "True"},
		{False, "False"},
		{Nothing, "Nothing"},
		{Less, "Less"},
		{Greater, "Greater"},
		{Equal, "Equal"},
		{TagInt, "Int"},
		{TagText, "Text"},
		{TagTag, "Tag"},
		{TagList, "List"},
		{TagStruct, "Struct"},
		{TagFunction, "Function"},
		{TagUnknown, "Unknown type"},
		{Environment, "Environment"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			be.Equal(t, test.value.Kind(), KindTag)
			be.Equal(t, string(test.value.text), test.expected)
			be.True(t, test.value.pinned)
		})
	}
}

func TestFunctionEnvironmentIsOpaque(t *testing.T) {
	type captured struct{ x, y int64 }
	env := &captured{x: 1, y: 2}
	f := MakeFunction(func(v *Value) *Value { return v }, env)
	be.Equal(t, FunctionEnvironment(f), any(env))
}
