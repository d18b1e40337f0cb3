package rt

// CallWith invokes f's entry point with the single argument and
// returns its result. This is the runtime's only call mechanism;
// currying in generated code chains these one-argument calls.
func CallWith(f *Value, arg *Value) *Value {
	return f.entry(arg)
}

// FunctionPointer exposes the raw entry point so generated code can
// apply its own calling convention.
func FunctionPointer(f *Value) Function {
	return f.entry
}

// FunctionEnvironment returns the opaque captured state stored in f.
// Reconstructing captured variables from it is the code generator's
// business; the runtime passes it through untouched.
func FunctionEnvironment(f *Value) any {
	return f.env
}
