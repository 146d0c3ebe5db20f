package gofront

import (
	"go/types"
	"slices"
)

// shadowedBy returns the distinct methods fn hides from the embedded
// fields of its receiver. Diamond embedding promoting one and the same
// method through several fields collapses to a single entry. A method a
// self-embedding receiver promotes from itself is no candidate: a method
// cannot be its own base.
func shadowedBy(fn *types.Func) []*types.Func {
	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return nil
	}

	named := namedOf(recv.Type())
	if named == nil {
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var found []*types.Func
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		obj, _, _ := types.LookupFieldOrMethod(field.Type(), true, fn.Pkg(), fn.Name())
		base, ok := obj.(*types.Func)
		if !ok {
			// A promoted field under the same name hides nothing callable.
			continue
		}

		if base == fn {
			// Self embedding, the lookup came back to the method itself.
			continue
		}

		if !slices.Contains(found, base) {
			found = append(found, base)
		}
	}

	return found
}

// namedOf unwraps a receiver type down to its named type, if any.
func namedOf(t types.Type) *types.Named {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, _ := t.(*types.Named)
	return named
}
