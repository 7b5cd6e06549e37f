package configtype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/configtype/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, hint string, params map[string]any) Issue
}

// RootPath returns the PathRef of a document root.
func RootPath() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue at this path with a translated message. invalid_type
// issues carry ErrUnsupportedType as their cause.
func (p *pathRef) Issue(code, hint string, params map[string]any) Issue {
	it := Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, messageData(params)), Hint: hint, Params: params}
	if code == CodeInvalidType {
		it.Cause = ErrUnsupportedType
	}
	return it
}

// messageData renders params as strings for the translator.
func messageData(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	return data
}
