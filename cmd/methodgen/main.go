// Command methodgen renders one Caller method per entry of the RPC method table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"elementsrpc/internal/methods"
)

const header = `// Code generated by methodgen. DO NOT EDIT.

package client

import (
	"context"
	"encoding/json"

	"elementsrpc/internal/methods"
)

const generatedTableVersion = {{.Version}}
{{range .Methods}}
var m{{.GoName}} = methods.Default.MustLookup({{printf "%q" .Name}})

// {{.GoName}} calls {{.Name}}.{{if .Args}} Argument types: {{.Args}}.{{end}}
func (cl *Caller) {{.GoName}}(ctx context.Context, args ...interface{}) (json.RawMessage, error) {
	return cl.invoke(ctx, m{{.GoName}}, args)
}
{{end}}`

type method struct {
	Name   string
	GoName string
	Args   string
}

func main() {
	out := flag.String("out", "methods_gen.go", "output file")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	src, err := render(methods.Table(), methods.TableVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to render methods")
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal().Err(err).Str("out", *out).Msg("failed to write output")
	}
	logger.Info().Str("out", *out).Int("methods", len(methods.Table())).Msg("generated")
}

var tmpl = template.Must(template.New("methods").Parse(header))

// render produces gofmt-formatted source for the given table
func render(entries []methods.Entry, version int) ([]byte, error) {
	data := struct {
		Version int
		Methods []method
	}{Version: version}

	for _, e := range entries {
		data.Methods = append(data.Methods, method{
			Name:   e.Name,
			GoName: exported(e.Name),
			Args:   e.Args,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// exported upper-cases the first letter of an RPC name
func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
