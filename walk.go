package configtype

import (
	"fmt"

	ir "github.com/reoring/configtype/internal/ir"
)

// parse resolves every field of s in order into an object node.
func parse(s Schema, at PathRef) (*ir.Object, error) {
	obj := &ir.Object{Fields: make([]ir.Field, 0, len(s))}
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		fp := at.Field(f.Name)
		if _, dup := seen[f.Name]; dup {
			return nil, Issues{fp.Issue(CodeDuplicateKey, "", map[string]any{"key": f.Name})}
		}
		seen[f.Name] = struct{}{}
		node, err := resolve(f.Value, fp)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, ir.Field{Name: f.Name, Schema: node})
	}
	return obj, nil
}

// resolve classifies v and turns it into a node.
func resolve(v Value, at PathRef) (ir.Schema, error) {
	switch t := v.(type) {
	case nil:
		return nil, invalidType(at, "missing value")
	case Deferred:
		if t == nil {
			return nil, invalidType(at, "nil deferred descriptor")
		}
		d := t()
		if d == nil {
			return nil, invalidType(at, "deferred descriptor returned nil")
		}
		return resolveDescriptor(d, at)
	case *Descriptor:
		if t == nil {
			return nil, invalidType(at, "nil descriptor")
		}
		return resolveDescriptor(t, at)
	case ArrayOf:
		return resolveArray(t.Elem, at)
	case Schema:
		return parse(t, at)
	}
	// pointer forms of the value types also satisfy Value
	return nil, invalidType(at, fmt.Sprintf("%T", v))
}

func resolveDescriptor(d *Descriptor, at PathRef) (ir.Schema, error) {
	switch d.Tag {
	case TagNumber, TagString, TagBoolean, TagAny:
		return &ir.Primitive{Name: string(d.Tag)}, nil
	case TagObject:
		return ir.IndexSignature(), nil
	case TagArray:
		return resolveArray(d.Nested, at)
	}
	return nil, invalidType(at, fmt.Sprintf("unknown tag %q", d.Tag))
}

func resolveArray(elem Value, at PathRef) (ir.Schema, error) {
	if untyped(elem) {
		return &ir.Array{}, nil
	}
	item, err := resolve(elem, at.Index(0))
	if err != nil {
		return nil, err
	}
	return &ir.Array{Item: item}, nil
}

// untyped reports whether an array element is absent: nil, a nil descriptor,
// an empty schema or an empty shorthand.
func untyped(elem Value) bool {
	switch t := elem.(type) {
	case nil:
		return true
	case *Descriptor:
		return t == nil
	case Schema:
		return len(t) == 0
	case ArrayOf:
		return t.Elem == nil
	}
	return false
}

func invalidType(at PathRef, got string) error {
	return Issues{at.Issue(CodeInvalidType, got, map[string]any{"got": got})}
}
