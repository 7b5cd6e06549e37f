// Package schemafile loads configuration-schema descriptions from JSON or YAML.
//
// A description is a mapping. Each value is one of:
//
//   - a tag string: "number", "string", "boolean", "any", "object" or "array"
//   - a sequence of zero or one element, shorthand for "array of" that element
//   - a nested mapping, which becomes a nested object type
//
// Key order is preserved. Any other value (numbers, booleans, null, unknown tag
// strings, longer sequences) is reported as an invalid_type issue whose path is
// the JSON Pointer of the offending value.
package schemafile
