package gqlschema

import (
	"bytes"
	"io"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SchemaPrinter = (*Printer)(nil)

// Printer implements ports.SchemaPrinter with the gqlparser formatter.
type Printer struct{}

// NewPrinter creates a new Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Print re-parses the schema's sources and writes SDL that declares only the
// types in keep. Directive definitions are kept, together with the input
// types their arguments need, so the output stays a valid schema.
func (p *Printer) Print(w io.Writer, schema *domain.Schema, keep *domain.ReachableSet) error {
	sources := make([]*ast.Source, 0, len(schema.Sources()))
	for _, src := range schema.Sources() {
		sources = append(sources, &ast.Source{Name: src.Name, Input: src.Input})
	}

	parsed, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return invalidSchema(err)
	}

	retained := directiveInputs(parsed)

	pruned := *parsed
	pruned.Types = make(map[string]*ast.Definition, keep.Len())
	for name, def := range parsed.Types {
		if def.BuiltIn || keep.Has(name) || retained[name] {
			pruned.Types[name] = def
		}
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(&pruned)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return zerr.Wrap(err, "failed to write schema")
	}
	return nil
}

// directiveInputs returns the input types reachable from the arguments of
// user-defined directive definitions.
func directiveInputs(parsed *ast.Schema) map[string]bool {
	retained := make(map[string]bool)
	var queue []string

	for _, dir := range parsed.Directives {
		if dir.Position != nil && dir.Position.Src != nil && dir.Position.Src.BuiltIn {
			continue
		}
		for _, arg := range dir.Arguments {
			queue = append(queue, arg.Type.Name())
		}
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if retained[name] {
			continue
		}
		retained[name] = true

		def := parsed.Types[name]
		if def == nil || def.Kind != ast.InputObject {
			continue
		}
		for _, f := range def.Fields {
			queue = append(queue, f.Type.Name())
		}
	}

	return retained
}
