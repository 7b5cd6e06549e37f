package ir

// Package ir defines the intermediate tree produced by the schema walker and
// consumed by the printer. This package is internal and not part of the public API.

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeArray
	NodeObject
)

// IndexKey is the field name of the generic index signature used for bare
// object fields.
const IndexKey = "[s:string]"

// Schema is the root IR node interface.
type Schema interface {
	Kind() NodeKind
}

// Primitive represents number/string/boolean/any.
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Array represents an array of items. A nil Item is the empty sequence and
// renders as a bare "[]".
type Array struct {
	Item Schema
}

func (a *Array) Kind() NodeKind { return NodeArray }

// Object represents a mapping with ordered fields.
type Object struct {
	Fields []Field
}

func (o *Object) Kind() NodeKind { return NodeObject }

// Field maps a name to a Schema.
type Field struct {
	Name   string
	Schema Schema
}

// IndexSignature returns the object node standing in for an untyped object:
// any string key maps to any.
func IndexSignature() *Object {
	return &Object{Fields: []Field{{Name: IndexKey, Schema: &Primitive{Name: "any"}}}}
}
