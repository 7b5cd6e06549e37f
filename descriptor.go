package configtype

// Tag names the kind of a Descriptor.
type Tag string

const (
	TagNumber  Tag = "number"
	TagString  Tag = "string"
	TagBoolean Tag = "boolean"
	TagAny     Tag = "any"
	TagObject  Tag = "object"
	TagArray   Tag = "array"
)

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	switch t {
	case TagNumber, TagString, TagBoolean, TagAny, TagObject, TagArray:
		return true
	}
	return false
}

// Value is anything that may stand on the right-hand side of a schema field:
// *Descriptor, Deferred, ArrayOf or Schema. The set is closed.
type Value interface {
	isValue()
}

// Descriptor describes the expected type of one field. Nested is only
// consulted for TagArray and holds the element type; nil means an untyped
// array.
type Descriptor struct {
	Tag    Tag
	Nested Value
}

// Deferred returns a descriptor on demand. It lets a schema refer to a
// descriptor that is constructed later.
type Deferred func() *Descriptor

// ArrayOf is shorthand for an array descriptor whose element is Elem. A nil
// Elem yields an untyped array.
type ArrayOf struct {
	Elem Value
}

func (*Descriptor) isValue() {}
func (Deferred) isValue()    {}
func (ArrayOf) isValue()     {}
func (Schema) isValue()      {}

func Number() *Descriptor  { return &Descriptor{Tag: TagNumber} }
func String() *Descriptor  { return &Descriptor{Tag: TagString} }
func Boolean() *Descriptor { return &Descriptor{Tag: TagBoolean} }
func Any() *Descriptor     { return &Descriptor{Tag: TagAny} }

// Object describes a free-form object: any string key, any value.
func Object() *Descriptor { return &Descriptor{Tag: TagObject} }

// Array describes an array whose elements are nested. Pass nil for an
// untyped array.
func Array(nested Value) *Descriptor { return &Descriptor{Tag: TagArray, Nested: nested} }

// Lazy wraps fn as a Deferred value.
func Lazy(fn func() *Descriptor) Deferred { return Deferred(fn) }

// Of is the array shorthand, equivalent to Array(elem).
func Of(elem Value) ArrayOf { return ArrayOf{Elem: elem} }

// EmptyOf is the array shorthand with no element type.
func EmptyOf() ArrayOf { return ArrayOf{} }
