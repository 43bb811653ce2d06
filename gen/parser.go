// Package gen derives argument parsers for annotated struct types.
//
// The generator reads a Go source file, finds struct types marked with a
// "//onlyargs:parser" comment, and emits a ParseArgs method plus an aligned
// usage text for each of them. The generated code consumes only the cursor
// and converter primitives of the onlyargs package; it is exactly what a
// user would write by hand, minus the typing.
//
// Field rules:
//
//   - bool fields become flags; all other supported fields become options.
//   - string, all int/uint widths and both float widths are required
//     options. A pointer to one of these is an optional option. RawArg
//     accepts any byte sequence without conversion.
//   - At most one slice field is allowed. It becomes the positional sink
//     for unmatched tokens and for everything after the "--" sentinel.
//   - Long names derive from the field name: humps and underscores become
//     hyphens, letters become lowercase. Short names use the first ASCII
//     letter of the long name.
//   - The doc comment on a field becomes its usage line.
//
// The `args` struct tag refines a field with up to four pipe-separated
// parts, spelled "long|short|default|markers":
//
//	Out string `args:"output-file"`        // explicit long name
//	Out string `args:"|o"`                 // explicit short name
//	Out string `args:"|long"`              // no short name
//	Num int    `args:"||42"`               // default value (field stays non-pointer)
//	Out string `args:"|||path"`            // convert with AsPath instead of AsString
//	In  []string `args:"|||required"`      // positional sink must not be empty
//
// A tag of "-" excludes the field entirely. Fields named Help and Version
// of type bool are bound to the always-generated "--help|-h" and
// "--version|-V" flags instead of defining their own.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

// marker is the annotation that selects a struct for generation.
const marker = "//onlyargs:parser"

// Kind classifies the converter a field needs.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindPath
	KindInt
	KindUint
	KindFloat
	KindRaw
)

// Arg describes one flag, option or positional sink of a parser.
type Arg struct {
	Field    string // Go field name
	GoType   string // element type, e.g. "int32" or "onlyargs.RawArg"
	Kind     Kind
	Long     string // long name without the leading "--"
	Short    string // one ASCII letter, or "" for long-only
	Doc      []string
	Default    string // literal default value, "" when absent
	Optional   bool   // pointer field
	Positional bool   // slice field, the positional sink
	Required   bool   // positional sink marked required
}

// ParserDef is the parsing model for one annotated struct.
type ParserDef struct {
	Struct     string
	Doc        []string
	Flags      []Arg
	Options    []Arg
	Positional *Arg

	// HasHelpField and HasVersionField report whether the struct carries
	// bool fields for the built-in "--help" and "--version" flags.
	HasHelpField    bool
	HasVersionField bool
}

// File is the generation model for one source file.
type File struct {
	Package string
	Parsers []ParserDef
}

// ParseFile extracts the generation model from a Go source file. The src
// argument may be nil, in which case the file is read from disk.
func ParseFile(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	var parseSrc any
	if src != nil {
		parseSrc = src
	}
	f, err := parser.ParseFile(fset, filename, parseSrc, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	out := &File{Package: f.Name.Name}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}
			if !hasMarker(doc) {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: %s is marked %s but is not a struct", filename, ts.Name.Name, marker)
			}
			def, err := parseStruct(ts.Name.Name, docLines(doc), st)
			if err != nil {
				return nil, fmt.Errorf("%s: struct %s: %w", filename, ts.Name.Name, err)
			}
			out.Parsers = append(out.Parsers, *def)
		}
	}
	if len(out.Parsers) == 0 {
		return nil, fmt.Errorf("%s: no struct marked %s", filename, marker)
	}
	return out, nil
}

func hasMarker(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if strings.TrimSpace(c.Text) == marker {
			return true
		}
	}
	return false
}

// docLines returns the doc comment as trimmed lines, without the marker and
// without trailing empties.
func docLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	var lines []string
	for _, c := range cg.List {
		text := strings.TrimSpace(c.Text)
		if text == marker {
			continue
		}
		text = strings.TrimPrefix(text, "//")
		text = strings.TrimPrefix(text, " ")
		lines = append(lines, strings.TrimRight(text, " \t"))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseStruct(name string, doc []string, st *ast.StructType) (*ParserDef, error) {
	def := &ParserDef{Struct: name, Doc: doc}

	// Short names already taken by the built-in flags.
	shorts := map[string]string{"h": "--help", "V": "--version"}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded fields are not supported")
		}
		for _, ident := range field.Names {
			arg, err := parseField(ident.Name, field)
			if err != nil {
				return nil, err
			}
			if arg == nil {
				continue
			}

			if arg.Kind == KindBool && (arg.Long == "help" || arg.Long == "version") {
				if arg.Long == "help" {
					def.HasHelpField = true
				} else {
					def.HasVersionField = true
				}
				continue
			}

			if arg.Short != "" {
				if other, dup := shorts[arg.Short]; dup {
					return nil, fmt.Errorf("field %s: short name %q is already used by %s", arg.Field, "-"+arg.Short, other)
				}
				shorts[arg.Short] = "--" + arg.Long
			}

			switch {
			case arg.Positional:
				if def.Positional != nil {
					return nil, fmt.Errorf("field %s: positional arguments can only be specified once (already on field %s)", arg.Field, def.Positional.Field)
				}
				def.Positional = arg
			case arg.Kind == KindBool:
				def.Flags = append(def.Flags, *arg)
			default:
				def.Options = append(def.Options, *arg)
			}
		}
	}
	return def, nil
}

func parseField(name string, field *ast.Field) (*Arg, error) {
	var tag string
	if field.Tag != nil {
		unquoted, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: malformed struct tag", name)
		}
		tag = reflect.StructTag(unquoted).Get("args")
	}
	if tag == "-" {
		return nil, nil
	}

	long, short, def, markers, err := splitTag(tag)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}

	goType, kind, optional, positional, err := typeInfo(field.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}

	arg := &Arg{
		Field:      name,
		GoType:     goType,
		Kind:       kind,
		Doc:        docLines(field.Doc),
		Optional:   optional,
		Positional: positional,
	}

	if long == "" {
		long = toArgName(name)
	}
	arg.Long = long

	switch short {
	case "long":
		// Long-only, no short name.
	case "":
		arg.Short = firstLetter(long)
	default:
		if len(short) != 1 || !isASCIILetter(short[0]) {
			return nil, fmt.Errorf("field %s: short name must be a single ASCII letter, got %q", name, short)
		}
		arg.Short = short
	}

	for _, m := range markers {
		switch m {
		case "path":
			if kind != KindString {
				return nil, fmt.Errorf("field %s: the path marker requires a string field", name)
			}
			arg.Kind = KindPath
		case "required":
			if !positional {
				return nil, fmt.Errorf("field %s: the required marker is only valid on the positional slice", name)
			}
			arg.Required = true
		default:
			return nil, fmt.Errorf("field %s: unknown tag marker %q", name, m)
		}
	}

	if def != "" {
		if optional || positional {
			return nil, fmt.Errorf("field %s: default values are only valid on plain scalar fields", name)
		}
		if kind == KindRaw {
			return nil, fmt.Errorf("field %s: default values are not supported for RawArg fields", name)
		}
		if kind == KindBool && def != "true" && def != "false" {
			return nil, fmt.Errorf("field %s: flag default must be true or false, got %q", name, def)
		}
		arg.Default = def
	}

	if kind == KindBool && (optional || positional) {
		return nil, fmt.Errorf("field %s: bool fields must be plain flags", name)
	}

	return arg, nil
}

func splitTag(tag string) (long, short, def string, markers []string, err error) {
	if tag == "" {
		return "", "", "", nil, nil
	}
	parts := strings.Split(tag, "|")
	if len(parts) > 4 {
		return "", "", "", nil, fmt.Errorf("tag has %d parts, want at most 4", len(parts))
	}
	long = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		short = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		def = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		for _, m := range strings.Split(parts[3], ",") {
			if m = strings.TrimSpace(m); m != "" {
				markers = append(markers, m)
			}
		}
	}
	return long, short, def, markers, nil
}

func typeInfo(expr ast.Expr) (goType string, kind Kind, optional, positional bool, err error) {
	switch t := expr.(type) {
	case *ast.StarExpr:
		goType, kind, optional, positional, err = typeInfo(t.X)
		if err == nil && (optional || positional) {
			err = fmt.Errorf("only one level of pointer or slice is supported")
		}
		if err != nil {
			return "", 0, false, false, err
		}
		return goType, kind, true, false, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", 0, false, false, fmt.Errorf("array fields are not supported, use a slice")
		}
		goType, kind, optional, positional, err = typeInfo(t.Elt)
		if err == nil && (optional || positional) {
			err = fmt.Errorf("only one level of pointer or slice is supported")
		}
		if err != nil {
			return "", 0, false, false, err
		}
		return goType, kind, false, true, nil
	case *ast.Ident:
		kind, err = scalarKind(t.Name)
		if err != nil {
			return "", 0, false, false, err
		}
		return t.Name, kind, false, false, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if ok && pkg.Name == "onlyargs" && t.Sel.Name == "RawArg" {
			return "onlyargs.RawArg", KindRaw, false, false, nil
		}
	}
	return "", 0, false, false, fmt.Errorf("unsupported field type; want bool, string, an integer or float type, or onlyargs.RawArg")
}

func scalarKind(name string) (Kind, error) {
	switch name {
	case "bool":
		return KindBool, nil
	case "string":
		return KindString, nil
	case "int", "int8", "int16", "int32", "int64":
		return KindInt, nil
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return KindUint, nil
	case "float32", "float64":
		return KindFloat, nil
	case "RawArg":
		return KindRaw, nil
	}
	return 0, fmt.Errorf("unsupported field type %q", name)
}

// toArgName derives the long argument name from a Go field name: humps and
// underscores become hyphens, letters become lowercase.
func toArgName(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteByte(byte(r) + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstLetter(s string) string {
	for i := 0; i < len(s); i++ {
		if isASCIILetter(s[i]) {
			return s[i : i+1]
		}
	}
	return ""
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
