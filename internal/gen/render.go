package gen

import (
	"strings"

	ir "github.com/reoring/configtype/internal/ir"
)

// DefaultTypeName is the declaration name used when none is given.
const DefaultTypeName = "ConfigType"

// Render prints obj as a type literal. level is the indentation depth of the
// object's fields; the closing brace sits one tab to the left.
func Render(obj *ir.Object, level int) string {
	b := &strings.Builder{}
	writeObject(b, obj, level)
	return b.String()
}

// Declare wraps a rendered body in a named type declaration.
func Declare(name, body string) string {
	if name == "" {
		name = DefaultTypeName
	}
	return "type " + name + "=" + body + ";"
}

func writeObject(b *strings.Builder, obj *ir.Object, level int) {
	b.WriteString("{\n")
	for _, f := range obj.Fields {
		writeTabs(b, level)
		b.WriteString(f.Name)
		b.WriteString(": ")
		writeValue(b, f.Schema, level)
		b.WriteString(",\n")
	}
	writeTabs(b, level-1)
	b.WriteByte('}')
}

// writeValue renders a node inline, without key or separator.
func writeValue(b *strings.Builder, s ir.Schema, level int) {
	switch n := s.(type) {
	case *ir.Primitive:
		if n != nil {
			b.WriteString(n.Name)
		}
	case *ir.Object:
		if n != nil {
			writeObject(b, n, level+1)
		}
	case *ir.Array:
		if n == nil {
			return
		}
		if n.Item != nil {
			writeValue(b, n.Item, level)
		}
		b.WriteString("[]")
	default:
		// nil or unknown nodes print nothing
	}
}

func writeTabs(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte('\t')
	}
}
