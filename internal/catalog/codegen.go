package catalog

//go:generate go run ../../cmd/harvest index --artifact ../../data/generated/category_suggestions.json --out index_gen.go

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"text/template"
)

// GeneratedFile is the file name the index generator writes into this package.
const GeneratedFile = "index_gen.go"

var sourceTemplate = template.Must(template.New("index").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`// Code generated by "harvest index"; DO NOT EDIT.

package {{ .Package }}

import "github.com/geektoshi/nebula-harvest/internal/model"

// generatedEntries holds {{ len .Entries }} package categories from the harvest artifact.
var generatedEntries = map[string]model.Category{
{{- range .Entries }}
	{{ quote .Package }}: {{ quote (print .Category) }},
{{- end }}
}
`))

// GenerateSource renders ix as a gofmt'd Go source file declaring the
// compiled-in index for package pkgName. Entries are sorted so the output is
// byte-for-byte reproducible.
func GenerateSource(ix Index, pkgName string) ([]byte, error) {
	if !token.IsIdentifier(pkgName) {
		return nil, fmt.Errorf("invalid package name %q", pkgName)
	}

	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Package string
		Entries []Entry
	}{Package: pkgName, Entries: ix.Entries()})
	if err != nil {
		return nil, fmt.Errorf("render index source: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format index source: %w", err)
	}
	return src, nil
}

// WriteSource generates the index source and writes it to path.
func WriteSource(path string, ix Index, pkgName string) error {
	src, err := GenerateSource(ix, pkgName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil { //nolint:gosec // generated source is world-readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
