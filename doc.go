package configtype

// Package configtype converts a configuration-schema description into a
// textual type definition that a static type checker can consume.
//
// - Type descriptors (Number, String, Boolean, Any, Object, Array) describe one field each
// - Schema is an ordered list of fields; nested Schemas become nested object types
// - Of is the "array of" shorthand; Lazy defers construction of a descriptor
// - Generate walks the schema into an internal tree and prints it
//
// Design policy:
// - Keep only public APIs in the root package; the tree lives in internal/ir and
//   the printer in internal/gen.
// - Loading schema descriptions from JSON/YAML lives under schemafile/, the CLI
//   under cmd/configtype.
// - Generation is all-or-nothing: any unsupported field aborts the call and no
//   text is returned.
//
// Typical usage:
//
//  s := configtype.Fields(
//  	configtype.F("port", configtype.Number()),
//  	configtype.F("tags", configtype.Of(configtype.String())),
//  )
//  body, err := configtype.Generate(s, false)
//  // {
//  // 	port: number,
//  // 	tags: string[],
//  // }
//
