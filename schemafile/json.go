package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	ct "github.com/reoring/configtype"
)

// ParseJSON decodes a JSON schema description. The token stream is walked
// directly so that object key order survives. The decoder's token stream does
// not check punctuation, so the document is validated as a whole first.
func ParseJSON(data []byte) (ct.Schema, error) {
	root := ct.RootPath()
	if !j.Valid(data) {
		return nil, parseError(root, errors.New("invalid JSON document"))
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, parseError(root, err)
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return nil, invalidType(root, "root must be an object, got "+describeToken(tok))
	}
	s, err := readObject(dec, root)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after root object")
		}
		return nil, parseError(root, err)
	}
	return s, nil
}

// readObject reads fields up to and including the closing '}'.
func readObject(dec *j.Decoder, at ct.PathRef) (ct.Schema, error) {
	s := ct.Fields()
	seen := map[string]struct{}{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, parseError(at, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, parseError(at, fmt.Errorf("expected object key, got %s", describeToken(tok)))
		}
		fp := at.Field(key)
		if _, dup := seen[key]; dup {
			return nil, duplicateKey(fp, key)
		}
		seen[key] = struct{}{}
		v, err := readValue(dec, fp)
		if err != nil {
			return nil, err
		}
		s = append(s, ct.F(key, v))
	}
	if _, err := dec.Token(); err != nil {
		return nil, parseError(at, err)
	}
	return s, nil
}

func readArray(dec *j.Decoder, at ct.PathRef) (ct.Value, error) {
	var elems []ct.Value
	for dec.More() {
		v, err := readValue(dec, at.Index(len(elems)))
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, parseError(at, err)
	}
	return shorthand(elems, at)
}

func readValue(dec *j.Decoder, at ct.PathRef) (ct.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, parseError(at, err)
	}
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return readObject(dec, at)
		case '[':
			return readArray(dec, at)
		}
	case string:
		return descriptorFor(t, at)
	}
	return nil, invalidType(at, describeToken(tok))
}

func describeToken(tok j.Token) string {
	switch t := tok.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean literal"
	case j.Number:
		return "number literal " + string(t)
	case float64:
		return "number literal"
	case string:
		return fmt.Sprintf("string %q", t)
	case j.Delim:
		return fmt.Sprintf("delimiter %q", rune(t))
	}
	return fmt.Sprintf("%T", tok)
}
