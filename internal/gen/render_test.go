package gen

import (
	"testing"

	ir "github.com/reoring/configtype/internal/ir"
)

func prim(name string) *ir.Primitive { return &ir.Primitive{Name: name} }

func TestRender_Primitives(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{
		{Name: "port", Schema: prim("number")},
		{Name: "host", Schema: prim("string")},
	}}
	got := Render(obj, 1)
	want := "{\n\tport: number,\n\thost: string,\n}"
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EmptyObject(t *testing.T) {
	if got := Render(&ir.Object{}, 1); got != "{\n}" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_Arrays(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{
		{Name: "none", Schema: &ir.Array{}},
		{Name: "tags", Schema: &ir.Array{Item: prim("string")}},
		{Name: "grid", Schema: &ir.Array{Item: &ir.Array{Item: prim("number")}}},
	}}
	got := Render(obj, 1)
	want := "{\n\tnone: [],\n\ttags: string[],\n\tgrid: number[][],\n}"
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_NestedIndentation(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{
		{Name: "db", Schema: &ir.Object{Fields: []ir.Field{
			{Name: "a", Schema: prim("string")},
			{Name: "deep", Schema: &ir.Object{Fields: []ir.Field{{Name: "b", Schema: prim("boolean")}}}},
		}}},
	}}
	got := Render(obj, 1)
	want := "{\n\tdb: {\n\t\ta: string,\n\t\tdeep: {\n\t\t\tb: boolean,\n\t\t},\n\t},\n}"
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ArrayOfObject(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{
		{Name: "users", Schema: &ir.Array{Item: &ir.Object{Fields: []ir.Field{{Name: "id", Schema: prim("number")}}}}},
	}}
	got := Render(obj, 1)
	want := "{\n\tusers: {\n\t\tid: number,\n\t}[],\n}"
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_IndexSignature(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{{Name: "extra", Schema: ir.IndexSignature()}}}
	got := Render(obj, 1)
	want := "{\n\textra: {\n\t\t[s:string]: any,\n\t},\n}"
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_NilNodePrintsNothing(t *testing.T) {
	obj := &ir.Object{Fields: []ir.Field{
		{Name: "x", Schema: nil},
		{Name: "a", Schema: (*ir.Array)(nil)},
		{Name: "o", Schema: (*ir.Object)(nil)},
		{Name: "p", Schema: (*ir.Primitive)(nil)},
	}}
	if got := Render(obj, 1); got != "{\n\tx: ,\n\ta: ,\n\to: ,\n\tp: ,\n}" {
		t.Fatalf("got %q", got)
	}
}

func TestDeclare(t *testing.T) {
	if got := Declare("", "{\n}"); got != "type ConfigType={\n};" {
		t.Fatalf("got %q", got)
	}
	if got := Declare("AppConfig", "{}"); got != "type AppConfig={};" {
		t.Fatalf("got %q", got)
	}
}
