package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"

	binschema "github.com/reoring/binschema"
	"github.com/reoring/binschema/i18n"
	"github.com/reoring/binschema/layout"
	"github.com/reoring/binschema/schemayaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "parse":
		parseCmd(os.Args[2:])
	case "sizeof":
		sizeofCmd(os.Args[2:])
	case "describe":
		describeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "binschema CLI\n\nUsage:\n  binschema parse -schema layout.yaml -in data.bin\n  binschema sizeof -schema layout.yaml\n  binschema describe -schema layout.yaml\n\nNotes:\n  - parse prints the parsed container as JSON, fields in declaration order.\n  - all subcommands take -lang en|ja for issue messages.")
}

func langFlag(fs *flag.FlagSet) *string {
	return fs.String("lang", "en", "issue message language (en, ja)")
}

func loadSchema(path string) binschema.Construct {
	if path == "" {
		usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	c, err := schemayaml.Import(data)
	if err != nil {
		reportIssues("importing schema", err)
	}
	return c
}

// reportIssues prints every issue with its translated label and exits. Errors
// outside the issue model fall back to the raw message.
func reportIssues(stage string, err error) {
	iss, ok := binschema.AsIssues(err)
	if !ok {
		fatalf("%s: %v", stage, err)
	}
	fmt.Fprintf(os.Stderr, "%s:\n", stage)
	for _, it := range iss {
		data := make(map[string]string, len(it.Params))
		for k, v := range it.Params {
			data[k] = fmt.Sprint(v)
		}
		fmt.Fprintf(os.Stderr, "  %s at %s: %s\n", i18n.T(it.Code, data), it.Path, it.Message)
	}
	os.Exit(1)
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var schemaPath, inPath string
	var maxBytes int64
	fs.StringVar(&schemaPath, "schema", "", "layout YAML file")
	fs.StringVar(&inPath, "in", "", "binary input file")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "reject inputs longer than this cap (0 = no cap)")
	failFast := fs.Bool("fail-fast", false, "stop at the first issue instead of collecting")
	lang := langFlag(fs)
	_ = fs.Parse(args)
	i18n.SetLanguage(*lang)
	if inPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	c := loadSchema(schemaPath)
	data, err := os.ReadFile(inPath)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	v, err := binschema.Parse(context.Background(), c, data, binschema.ParseOpt{MaxBytes: maxBytes, FailFast: *failFast})
	if err != nil {
		reportIssues("parse", err)
	}
	out, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("rendering output: %v", err)
	}
	fmt.Println(string(out))
}

func sizeofCmd(args []string) {
	fs := flag.NewFlagSet("sizeof", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "layout YAML file")
	lang := langFlag(fs)
	_ = fs.Parse(args)
	i18n.SetLanguage(*lang)
	c := loadSchema(schemaPath)
	n, err := binschema.SizeOf(c)
	if err != nil {
		reportIssues("sizeof", err)
	}
	fmt.Println(n)
}

func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "layout YAML file")
	lang := langFlag(fs)
	_ = fs.Parse(args)
	i18n.SetLanguage(*lang)
	c := loadSchema(schemaPath)
	out, err := layout.MarshalJSON(c)
	if err != nil {
		fatalf("rendering description: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
