package configtype_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	ct "github.com/reoring/configtype"
)

var primitiveTags = []ct.Tag{ct.TagNumber, ct.TagString, ct.TagBoolean, ct.TagAny}

// genUniqueNames yields 1..12 distinct identifiers in generation order.
func genUniqueNames() gopter.Gen {
	return gen.SliceOfN(12, gen.Identifier()).Map(func(in []string) []string {
		seen := map[string]bool{}
		out := make([]string, 0, len(in))
		for _, n := range in {
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
		return out
	}).SuchThat(func(names []string) bool { return len(names) > 0 })
}

type primitiveCase struct {
	names []string
	tags  []ct.Tag
}

// For all schemas with only primitive fields, every field is one line
// "<name>: <tag>," at one tab of indentation.
func TestProperty_PrimitiveFieldsRenderOnePerLine(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genCase := gopter.CombineGens(
		genUniqueNames(),
		gen.SliceOfN(12, gen.IntRange(0, len(primitiveTags)-1)),
	).Map(func(vals []interface{}) primitiveCase {
		names := vals[0].([]string)
		idx := vals[1].([]int)
		c := primitiveCase{names: names}
		for i := range names {
			c.tags = append(c.tags, primitiveTags[idx[i%len(idx)]])
		}
		return c
	})

	properties.Property("one line per primitive field", prop.ForAll(
		func(c primitiveCase) bool {
			s := ct.Fields()
			want := &strings.Builder{}
			want.WriteString("{\n")
			for i, n := range c.names {
				s = s.With(n, &ct.Descriptor{Tag: c.tags[i]})
				want.WriteString("\t" + n + ": " + string(c.tags[i]) + ",\n")
			}
			want.WriteString("}")
			got, err := ct.Generate(s, false)
			if err != nil {
				t.Logf("generate failed: %v", err)
				return false
			}
			def, err := ct.Generate(s, true)
			if err != nil {
				return false
			}
			return got == want.String() && def == "type ConfigType="+got+";"
		},
		genCase,
	))

	properties.TestingRun(t)
}

var keyLine = regexp.MustCompile(`(?m)^\t+([A-Za-z0-9_]+): `)

// buildNested consumes names in order; a name flagged in open becomes a nested
// schema holding the next couple of names, so pre-order equals input order.
func buildNested(names []string, open func(int) bool, base, depth int) ct.Schema {
	s := ct.Fields()
	for i := 0; i < len(names); {
		name := names[i]
		i++
		if open(base+i-1) && depth < 3 && i < len(names) {
			end := i + 2
			if end > len(names) {
				end = len(names)
			}
			child := buildNested(names[i:end], open, base+i, depth+1)
			if open(base + i) {
				s = s.With(name, ct.Of(child))
			} else {
				s = s.With(name, child)
			}
			i = end
			continue
		}
		s = s.With(name, ct.Number())
	}
	return s
}

func TestProperty_FieldOrderPreservedWhenNested(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("output keys follow input order", prop.ForAll(
		func(names []string, flags []bool) bool {
			open := func(i int) bool { return flags[i%len(flags)] }
			out, err := ct.Generate(buildNested(names, open, 0, 0), false)
			if err != nil {
				t.Logf("generate failed: %v", err)
				return false
			}
			var got []string
			for _, m := range keyLine.FindAllStringSubmatch(out, -1) {
				got = append(got, m[1])
			}
			if len(got) != len(names) {
				t.Logf("got keys %v, want %v", got, names)
				return false
			}
			for i := range names {
				if got[i] != names[i] {
					return false
				}
			}
			return true
		},
		genUniqueNames(),
		gen.SliceOfN(16, gen.Bool()),
	))

	properties.TestingRun(t)
}
