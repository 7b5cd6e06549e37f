package schemafile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	ct "github.com/reoring/configtype"
)

// maxAliasExpansions bounds how many times aliases may be followed in one
// document, so nested aliases cannot blow up exponentially.
const maxAliasExpansions = 10000

// ParseYAML decodes a YAML schema description. Only the first document is
// read. An empty document yields an empty schema. Aliases are followed and
// merge keys ("<<") are spliced in; explicitly written keys win over merged ones.
func ParseYAML(data []byte) (ct.Schema, error) {
	root := ct.RootPath()
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError(root, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return ct.Fields(), nil
	}
	w := &yamlWalker{active: map[*yaml.Node]struct{}{}}
	n, err := w.deref(doc.Content[0], root)
	if err != nil {
		return nil, err
	}
	if n.Kind != yaml.MappingNode {
		return nil, invalidType(root, "root must be a mapping, got "+describeNode(n))
	}
	return w.fromMapping(n, root)
}

// yamlWalker carries per-document state: the containers currently being
// walked (for cycle detection) and the alias expansion count.
type yamlWalker struct {
	active   map[*yaml.Node]struct{}
	expanded int
}

func (w *yamlWalker) enter(n *yaml.Node, at ct.PathRef) error {
	if _, ok := w.active[n]; ok {
		return invalidType(at, "recursive alias")
	}
	w.active[n] = struct{}{}
	return nil
}

func (w *yamlWalker) leave(n *yaml.Node) { delete(w.active, n) }

// deref follows aliases to their anchored node, charging each hop against
// the expansion budget.
func (w *yamlWalker) deref(n *yaml.Node, at ct.PathRef) (*yaml.Node, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		w.expanded++
		if w.expanded > maxAliasExpansions {
			return nil, parseError(at, errors.New("document contains excessive aliasing"))
		}
		n = n.Alias
	}
	return n, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func (w *yamlWalker) fromMapping(n *yaml.Node, at ct.PathRef) (ct.Schema, error) {
	if err := w.enter(n, at); err != nil {
		return nil, err
	}
	defer w.leave(n)

	explicit := map[string]struct{}{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, err := w.deref(n.Content[i], at)
		if err != nil {
			return nil, err
		}
		if k.Kind == yaml.ScalarNode && !isMergeKey(k) {
			explicit[k.Value] = struct{}{}
		}
	}

	s := ct.Fields()
	seen := map[string]struct{}{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, err := w.deref(n.Content[i], at)
		if err != nil {
			return nil, err
		}
		if k.Kind != yaml.ScalarNode {
			return nil, invalidType(at, fmt.Sprintf("mapping key at line %d is not a scalar", k.Line))
		}
		if isMergeKey(k) {
			merged, err := w.mergeSources(n.Content[i+1], at)
			if err != nil {
				return nil, err
			}
			for _, f := range merged {
				if _, ok := explicit[f.Name]; ok {
					continue
				}
				if _, ok := seen[f.Name]; ok {
					continue
				}
				seen[f.Name] = struct{}{}
				s = append(s, f)
			}
			continue
		}
		fp := at.Field(k.Value)
		if _, dup := seen[k.Value]; dup {
			return nil, duplicateKey(fp, k.Value)
		}
		seen[k.Value] = struct{}{}
		v, err := w.fromNode(n.Content[i+1], fp)
		if err != nil {
			return nil, err
		}
		s = append(s, ct.F(k.Value, v))
	}
	return s, nil
}

// mergeSources resolves the value of a merge key: a mapping, or a sequence
// of mappings where earlier entries win.
func (w *yamlWalker) mergeSources(v *yaml.Node, at ct.PathRef) (ct.Schema, error) {
	v, err := w.deref(v, at)
	if err != nil {
		return nil, err
	}
	switch v.Kind {
	case yaml.MappingNode:
		return w.fromMapping(v, at)
	case yaml.SequenceNode:
		var out ct.Schema
		seen := map[string]struct{}{}
		for _, c := range v.Content {
			c, err := w.deref(c, at)
			if err != nil {
				return nil, err
			}
			if c.Kind != yaml.MappingNode {
				return nil, invalidType(at, "merge key value must be a mapping, got "+describeNode(c))
			}
			m, err := w.fromMapping(c, at)
			if err != nil {
				return nil, err
			}
			for _, f := range m {
				if _, ok := seen[f.Name]; ok {
					continue
				}
				seen[f.Name] = struct{}{}
				out = append(out, f)
			}
		}
		return out, nil
	}
	return nil, invalidType(at, "merge key value must be a mapping, got "+describeNode(v))
}

func (w *yamlWalker) fromNode(n *yaml.Node, at ct.PathRef) (ct.Value, error) {
	n, err := w.deref(n, at)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.MappingNode:
		return w.fromMapping(n, at)
	case yaml.SequenceNode:
		if err := w.enter(n, at); err != nil {
			return nil, err
		}
		defer w.leave(n)
		elems := make([]ct.Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.fromNode(c, at.Index(i))
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return shorthand(elems, at)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" {
			return descriptorFor(n.Value, at)
		}
	}
	return nil, invalidType(at, describeNode(n))
}

func describeNode(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return fmt.Sprintf("%s %q at line %d", n.ShortTag(), n.Value, n.Line)
	}
	return fmt.Sprintf("node kind %d", n.Kind)
}
