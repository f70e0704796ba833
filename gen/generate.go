// generate.go — Go source emission for the virtstack generator.
//
// Each declared variant becomes one constructor function:
//
//	func NewReadConfig(path string, cause error) virtstack.Error {
//		return virtstack.WrapSkip(1, cause, fmt.Sprintf("Failed to read configuration file %v", path))
//	}
//
// The skip=1 delegation is the load-bearing detail: the recorded Location
// is the call expression that invoked NewReadConfig, never the generated
// body. Output is gofmt-formatted and carries the standard generated-code
// marker so tooling skips it.
package gen

import (
	"bytes"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	virtstack "github.com/xgx-io/xgx-virtstack"
)

const fileTemplate = `// Code generated by virtstack-gen. DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedsFmt}}
	"fmt"
{{end}}
	virtstack "{{.Import}}"
)
{{range .Variants}}
// New{{.Name}} reports the {{.Name}} condition, recording the coordinates
// of the call site that invoked it.{{if .Cause}} The cause (which may be nil)
// appears as the next frame of the virtual stack.{{end}}
func New{{.Name}}({{.Params}}) virtstack.Error {
	{{- if .Cause}}
	return virtstack.WrapSkip(1, cause, {{.MessageExpr}})
	{{- else}}
	return virtstack.NewSkip(1, {{.MessageExpr}})
	{{- end}}
}
{{end}}`

var fileTmpl = template.Must(template.New("virtstack-gen").Parse(fileTemplate))

// fileModel is the fully resolved input handed to the template.
type fileModel struct {
	Package  string
	Import   string
	NeedsFmt bool
	Variants []variantModel
}

type variantModel struct {
	Name        string
	Cause       bool
	Params      string
	MessageExpr string
}

// Generate emits the gofmt-formatted Go source for a parsed declaration
// file. It assumes f came from Parse (i.e., is valid); the only failure
// modes left are template or formatting defects in the emitted text.
func Generate(f *File) ([]byte, error) {
	model := buildModel(f)

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, model); err != nil {
		return nil, virtstack.Wrap(err, "constructor template execution failed")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Unformattable output means the emitter itself is broken; return
		// the raw text inside the error for diagnosis.
		return nil, virtstack.Wrapf(err, "emitted source does not parse:\n%s", buf.String())
	}
	return src, nil
}

func buildModel(f *File) fileModel {
	m := fileModel{
		Package:  f.Package,
		Import:   f.Import,
		Variants: make([]variantModel, 0, len(f.Errors)),
	}
	for i := range f.Errors {
		v := &f.Errors[i]
		vm := variantModel{
			Name:        v.Name,
			Cause:       v.Cause,
			Params:      paramList(v),
			MessageExpr: messageExpr(v),
		}
		if len(v.placeholders()) > 0 {
			m.NeedsFmt = true
		}
		m.Variants = append(m.Variants, vm)
	}
	return m
}

// paramList renders the constructor parameter list: declared fields in
// order, then the trailing cause when requested.
func paramList(v *Variant) string {
	parts := make([]string, 0, len(v.Fields)+1)
	for _, fd := range v.Fields {
		parts = append(parts, fd.Name+" "+fd.Type)
	}
	if v.Cause {
		parts = append(parts, "cause error")
	}
	return strings.Join(parts, ", ")
}

// messageExpr renders the message template as a Go expression: a plain
// string literal when the template has no placeholders, otherwise a
// fmt.Sprintf call with one %v per placeholder, in order of appearance.
func messageExpr(v *Variant) string {
	names := v.placeholders()
	if len(names) == 0 {
		return strconv.Quote(v.Message)
	}

	// Literal percent signs must survive the trip through Sprintf.
	formatStr := strings.ReplaceAll(v.Message, "%", "%%")
	formatStr = placeholderRe.ReplaceAllString(formatStr, "%v")

	var b strings.Builder
	b.WriteString("fmt.Sprintf(")
	b.WriteString(strconv.Quote(formatStr))
	for _, n := range names {
		b.WriteString(", ")
		b.WriteString(n)
	}
	b.WriteString(")")
	return b.String()
}
