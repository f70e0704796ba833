// gen.go — variant declarations for the virtstack instrumentation generator.
//
// Scope:
//   - The declarative input model: a YAML file naming error variants, each
//     with a message template ({placeholder} syntax), typed fields, and an
//     optional cause flag.
//   - Parsing and validation. Emission lives in generate.go.
//
// A declaration file looks like:
//
//	package: apperrors
//	errors:
//	  - name: ReadConfig
//	    message: "Failed to read configuration file {path}"
//	    fields:
//	      - name: path
//	        type: string
//	    cause: true
//
// and produces one constructor per variant; each constructor records the
// coordinates of ITS call site (not its body) by delegating to
// virtstack.WrapSkip / virtstack.NewSkip with skip=1.
package gen

import (
	"regexp"

	yaml "gopkg.in/yaml.v2"

	virtstack "github.com/xgx-io/xgx-virtstack"
)

// DefaultImport is the module path emitted when a declaration file does not
// override it.
const DefaultImport = "github.com/xgx-io/xgx-virtstack"

// File is one parsed declaration file.
type File struct {
	// Package is the Go package name of the emitted file.
	Package string `yaml:"package"`
	// Import overrides the virtstack import path (defaults to DefaultImport).
	Import string `yaml:"import"`
	// Errors lists the variants to generate constructors for.
	Errors []Variant `yaml:"errors"`
}

// Variant declares one error variant.
type Variant struct {
	// Name is the exported variant name; the constructor is "New<Name>".
	Name string `yaml:"name"`
	// Message is the template; {field} placeholders interpolate field values.
	Message string `yaml:"message"`
	// Fields are the constructor parameters, in declaration order.
	Fields []Field `yaml:"fields"`
	// Cause adds a trailing "cause error" parameter; the constructor wraps
	// it so the variant appears as one frame above the cause's frames.
	Cause bool `yaml:"cause"`
}

// Field is one named, typed constructor parameter.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

var (
	packageRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	variantRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	fieldRe   = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)

	// placeholderRe matches {name} interpolation sites in message templates.
	placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)
)

// goReservedWords are identifiers a field may not shadow. "cause" is
// reserved by the generator itself for the wrap parameter.
var goReservedWords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
	"cause": {},
}

// Parse decodes and validates a declaration file. The returned File is
// ready for Generate. Validation failures are reported as virtstack errors
// so CLI output carries the offending coordinates of this code path too.
func Parse(src []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(src, &f); err != nil {
		return nil, virtstack.Wrap(err, "declaration file is not valid YAML")
	}
	if f.Import == "" {
		f.Import = DefaultImport
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if !packageRe.MatchString(f.Package) {
		return virtstack.Newf("invalid package name %q", f.Package)
	}
	if len(f.Errors) == 0 {
		return virtstack.New("declaration file declares no error variants")
	}

	seen := make(map[string]struct{}, len(f.Errors))
	for i := range f.Errors {
		v := &f.Errors[i]
		if err := v.validate(); err != nil {
			return err
		}
		if _, dup := seen[v.Name]; dup {
			return virtstack.Newf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = struct{}{}
	}
	return nil
}

func (v *Variant) validate() error {
	if !variantRe.MatchString(v.Name) {
		return virtstack.Newf("invalid variant name %q (want an exported identifier)", v.Name)
	}
	if v.Message == "" {
		return virtstack.Newf("variant %q has an empty message template", v.Name)
	}

	fieldNames := make(map[string]struct{}, len(v.Fields))
	for _, fd := range v.Fields {
		if !fieldRe.MatchString(fd.Name) {
			return virtstack.Newf("variant %q: invalid field name %q", v.Name, fd.Name)
		}
		if _, reserved := goReservedWords[fd.Name]; reserved {
			return virtstack.Newf("variant %q: field name %q is reserved", v.Name, fd.Name)
		}
		if fd.Type == "" {
			return virtstack.Newf("variant %q: field %q has no type", v.Name, fd.Name)
		}
		if _, dup := fieldNames[fd.Name]; dup {
			return virtstack.Newf("variant %q: duplicate field %q", v.Name, fd.Name)
		}
		fieldNames[fd.Name] = struct{}{}
	}

	// Every placeholder must resolve to a declared field. Declared fields
	// without a placeholder are allowed (they still become parameters).
	for _, m := range placeholderRe.FindAllStringSubmatch(v.Message, -1) {
		if _, ok := fieldNames[m[1]]; !ok {
			return virtstack.Newf("variant %q: placeholder {%s} has no matching field", v.Name, m[1])
		}
	}
	return nil
}

// placeholders returns the placeholder names of v's message template, in
// order of appearance (duplicates preserved).
func (v *Variant) placeholders() []string {
	matches := placeholderRe.FindAllStringSubmatch(v.Message, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
