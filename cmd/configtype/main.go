package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	ct "github.com/reoring/configtype"
	"github.com/reoring/configtype/i18n"
	"github.com/reoring/configtype/schemafile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "configtype CLI\n\nUsage:\n  configtype gen -i schema.(json|yaml) [-def] [-name TypeName] [-o out.d.ts] [-lang en|ja] [-v]\n\nNotes:\n  - Without -o the type definition is written to stdout.")
}

// run dispatches subcommands and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "gen":
		return genCmd(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func genCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in, out, name, lang string
	var withDef, verbose bool
	fs.StringVar(&in, "i", "", "schema description file (.json, .yaml, .yml)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.StringVar(&name, "name", ct.DefaultTypeName, "declaration name used with -def")
	fs.StringVar(&lang, "lang", "en", "message language (en|ja)")
	fs.BoolVar(&withDef, "def", false, "wrap the type literal in a named declaration")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in == "" {
		fs.Usage()
		return 2
	}
	i18n.SetLanguage(lang)

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}
	fatalf := func(format string, a ...any) int {
		fmt.Fprintf(stderr, format+"\n", a...)
		return 1
	}

	logf("gen: in=%s out=%s def=%v name=%s", in, out, withDef, name)
	f, err := schemafile.Load(in)
	if err != nil {
		return fatalf("load schema: %s", describe(err))
	}
	logf("loaded schema: fields=%d", len(f.Schema))

	code, err := ct.GenerateWith(f, ct.Options{WithDef: withDef, TypeName: name})
	if err != nil {
		return fatalf("generate: %s", describe(err))
	}

	if out == "" {
		fmt.Fprintln(stdout, code)
		return 0
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fatalf("creating output dir: %v", err)
	}
	if err := os.WriteFile(out, []byte(code+"\n"), 0o644); err != nil {
		return fatalf("writing output: %v", err)
	}
	logf("wrote type definition: %s", out)
	return 0
}

// describe prefers the translated issue message over the raw error text.
func describe(err error) string {
	iss, ok := ct.AsIssues(err)
	if !ok || len(iss) == 0 {
		return err.Error()
	}
	it := iss[0]
	msg := fmt.Sprintf("%s at %s", it.Message, it.Path)
	if it.Hint != "" {
		msg += " (" + it.Hint + ")"
	}
	return msg
}
