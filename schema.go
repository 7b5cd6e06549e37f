package configtype

// Field binds a name to a Value.
type Field struct {
	Name  string
	Value Value
}

// Schema is an ordered set of fields. Field names must be unique; output
// follows the order given here.
type Schema []Field

// Provider is implemented by anything that owns a Schema. Schema itself
// implements it, so Generate accepts both bare schemas and wrapper types.
type Provider interface {
	ConfigSchema() Schema
}

// ConfigSchema returns s.
func (s Schema) ConfigSchema() Schema { return s }

// F builds a Field.
func F(name string, v Value) Field { return Field{Name: name, Value: v} }

// Fields builds a Schema from fields in order.
func Fields(fs ...Field) Schema {
	out := make(Schema, len(fs))
	copy(out, fs)
	return out
}

// With returns a copy of s with one more field appended.
func (s Schema) With(name string, v Value) Schema {
	out := make(Schema, len(s), len(s)+1)
	copy(out, s)
	return append(out, Field{Name: name, Value: v})
}

// Names lists field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the value of the named field.
func (s Schema) Lookup(name string) (Value, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
