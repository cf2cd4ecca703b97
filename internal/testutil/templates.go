// Package testutil provides test utilities for building source-package trees
// and seeded databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Template describes the assignments rendered into a template file.
type Template struct {
	PkgName         string
	ShortDesc       string
	Homepage        string
	Maintainer      string
	Categories      []string
	Depends         []string
	HostMakeDepends []string
	MakeDepends     []string
	Subpackages     []string
	// Extra is appended verbatim after the assignments.
	Extra string
}

// Render produces template text in the style of a real void-packages template.
func (tmpl Template) Render() string {
	var b strings.Builder
	b.WriteString("# Template file for '" + tmpl.PkgName + "'\n")
	if tmpl.PkgName != "" {
		fmt.Fprintf(&b, "pkgname=%s\n", tmpl.PkgName)
	}
	b.WriteString("version=1.0.0\nrevision=1\nbuild_style=gnu-configure\n")
	writeList(&b, "hostmakedepends", tmpl.HostMakeDepends)
	writeList(&b, "makedepends", tmpl.MakeDepends)
	writeList(&b, "depends", tmpl.Depends)
	writeList(&b, "subpackages", tmpl.Subpackages)
	writeList(&b, "categories", tmpl.Categories)
	if tmpl.ShortDesc != "" {
		fmt.Fprintf(&b, "short_desc=%q\n", tmpl.ShortDesc)
	}
	if tmpl.Maintainer != "" {
		fmt.Fprintf(&b, "maintainer=%q\n", tmpl.Maintainer)
	}
	b.WriteString("license=\"MIT\"\n")
	if tmpl.Homepage != "" {
		fmt.Fprintf(&b, "homepage=%q\n", tmpl.Homepage)
	}
	if tmpl.Extra != "" {
		b.WriteString(tmpl.Extra)
		if !strings.HasSuffix(tmpl.Extra, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s=\"%s\"\n", key, strings.Join(values, " "))
}

// TemplateTree is a temporary srcpkgs directory populated by tests.
type TemplateTree struct {
	t    *testing.T
	Root string
}

// NewTemplateTree creates an empty srcpkgs directory under t.TempDir().
func NewTemplateTree(t *testing.T) *TemplateTree {
	t.Helper()
	root := filepath.Join(t.TempDir(), "srcpkgs")
	if err := os.MkdirAll(root, 0o750); err != nil {
		t.Fatalf("failed to create template tree: %v", err)
	}
	return &TemplateTree{t: t, Root: root}
}

// With writes tmpl to <dir>/template.
func (tt *TemplateTree) With(dir string, tmpl Template) *TemplateTree {
	tt.t.Helper()
	return tt.WithRaw(dir, tmpl.Render())
}

// WithPackages writes each template into a directory named after its pkgname.
func (tt *TemplateTree) WithPackages(tmpls ...Template) *TemplateTree {
	tt.t.Helper()
	for _, tmpl := range tmpls {
		tt.With(tmpl.PkgName, tmpl)
	}
	return tt
}

// WithRaw writes content verbatim to <dir>/template.
func (tt *TemplateTree) WithRaw(dir, content string) *TemplateTree {
	tt.t.Helper()
	target := filepath.Join(tt.Root, filepath.FromSlash(dir))
	if err := os.MkdirAll(target, 0o750); err != nil {
		tt.t.Fatalf("failed to create %s: %v", target, err)
	}
	if err := os.WriteFile(filepath.Join(target, "template"), []byte(content), 0o600); err != nil {
		tt.t.Fatalf("failed to write template in %s: %v", target, err)
	}
	return tt
}

// WriteFile writes an auxiliary file relative to the tree root.
func (tt *TemplateTree) WriteFile(rel, content string) string {
	tt.t.Helper()
	path := filepath.Join(tt.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		tt.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tt.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
