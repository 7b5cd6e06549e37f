package configtype

import (
	"reflect"

	gen "github.com/reoring/configtype/internal/gen"
)

// DefaultTypeName is the name used by declarations when Options.TypeName is empty.
const DefaultTypeName = gen.DefaultTypeName

// Options controls Generate output.
type Options struct {
	// WithDef wraps the body as "type <TypeName>=<body>;".
	WithDef bool
	// TypeName defaults to DefaultTypeName.
	TypeName string
}

// Generate renders the schema owned by p as a type literal. With withDef the
// literal is wrapped as "type ConfigType=...;". On error the returned string is
// empty; the error is an Issues value whose path points at the offending field.
func Generate(p Provider, withDef bool) (string, error) {
	return GenerateWith(p, Options{WithDef: withDef})
}

// GenerateWith is Generate with explicit options.
func GenerateWith(p Provider, opts Options) (string, error) {
	if isNilProvider(p) {
		return "", invalidType(RootPath(), "nil schema")
	}
	obj, err := parse(p.ConfigSchema(), RootPath())
	if err != nil {
		return "", err
	}
	body := gen.Render(obj, 1)
	if opts.WithDef {
		return gen.Declare(opts.TypeName, body), nil
	}
	return body, nil
}

// MustGenerate is like Generate but panics on error. It is meant for schemas
// built from literals in init code.
func MustGenerate(p Provider, withDef bool) string {
	out, err := Generate(p, withDef)
	if err != nil {
		panic(err)
	}
	return out
}

// isNilProvider catches nil interfaces and typed nil pointers. A nil Schema
// slice is a valid empty schema.
func isNilProvider(p Provider) bool {
	if p == nil {
		return true
	}
	rv := reflect.ValueOf(p)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
