package rt

// Free releases v's box and the buffers it owns. Ownership is the
// generated program's contract: each value is freed exactly once, by
// the scope responsible for it at that point in control flow.
//
// Free never recurses. A list or struct owns its pointer arrays but
// not the elements they reference; elements shared between containers
// are freed on their own, so freeing both containers stays safe.
//
// The Environment sentinel, nil, and the process-wide singleton tags
// are all no-ops.
func Free(v *Value) {
	if v == Environment || v == nil || v.pinned {
		return
	}
	if v.kind == KindText || v.kind == KindTag {
		v.text = nil
	}
	v.list = nil
	v.keys = nil
	v.values = nil
	v.entry = nil
	v.env = nil
}
