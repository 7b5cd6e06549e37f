package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ct "github.com/reoring/configtype"
)

// File is a schema loaded from disk. It implements configtype.Provider.
type File struct {
	Path   string
	Schema ct.Schema
}

// ConfigSchema returns the loaded schema.
func (f *File) ConfigSchema() ct.Schema { return f.Schema }

// Load reads path and parses it by extension (.json, .yaml, .yml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	var s ct.Schema
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		s, err = ParseJSON(data)
	case ".yaml", ".yml":
		s, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("schemafile: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Schema: s}, nil
}

// descriptorFor maps a tag string to its descriptor.
func descriptorFor(tag string, at ct.PathRef) (ct.Value, error) {
	switch t := ct.Tag(tag); t {
	case ct.TagArray:
		return ct.Array(nil), nil
	default:
		if !t.Valid() {
			return nil, invalidType(at, fmt.Sprintf("unknown tag %q", tag))
		}
		return &ct.Descriptor{Tag: t}, nil
	}
}

// shorthand turns decoded sequence elements into array sugar.
func shorthand(elems []ct.Value, at ct.PathRef) (ct.Value, error) {
	switch len(elems) {
	case 0:
		return ct.EmptyOf(), nil
	case 1:
		return ct.Of(elems[0]), nil
	}
	return nil, invalidType(at, fmt.Sprintf("array shorthand takes at most one element, got %d", len(elems)))
}

func invalidType(at ct.PathRef, got string) error {
	return ct.Issues{at.Issue(ct.CodeInvalidType, got, map[string]any{"got": got})}
}

func duplicateKey(at ct.PathRef, key string) error {
	return ct.Issues{at.Issue(ct.CodeDuplicateKey, "", map[string]any{"key": key})}
}

func parseError(at ct.PathRef, err error) error {
	it := at.Issue(ct.CodeParseError, err.Error(), nil)
	it.Cause = err
	return ct.Issues{it}
}
