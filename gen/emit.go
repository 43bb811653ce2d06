package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
)

// modulePath is the import path of the runtime package the generated code
// depends on.
const modulePath = "github.com/parasyte/onlyargs"

// Emit renders the generated source for every parser in the file. The
// result is gofmt-formatted and carries the standard generated-code header.
func Emit(f *File) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by onlyargs-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", f.Package)
	fmt.Fprintf(&b, "import (\n\t\"os\"\n\t\"path/filepath\"\n\t\"strings\"\n\n\t%q\n)\n", modulePath)

	for i := range f.Parsers {
		emitParser(&b, &f.Parsers[i])
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func emitParser(b *bytes.Buffer, def *ParserDef) {
	fmt.Fprintf(b, "\n// %sUsage is the usage text for %s. The {bin} placeholder is replaced\n// with the program name by the Usage method.\n", def.Struct, def.Struct)
	fmt.Fprintf(b, "const %sUsage = %q\n", def.Struct, buildUsage(def))

	fmt.Fprintf(b, "\n// Usage returns the usage text with the program name filled in.\nfunc (a *%s) Usage() string {\n", def.Struct)
	fmt.Fprintf(b, "\treturn strings.ReplaceAll(%sUsage, \"{bin}\", filepath.Base(os.Args[0]))\n}\n", def.Struct)

	emitParseArgs(b, def)
}

// builtinFlags are always matched, whether or not the struct carries the
// corresponding fields.
var builtinFlags = []Arg{
	{Long: "help", Short: "h", Doc: []string{"Show this help message."}},
	{Long: "version", Short: "V", Doc: []string{"Show the application version."}},
}

func buildUsage(def *ParserDef) string {
	var s strings.Builder
	for _, line := range def.Doc {
		s.WriteString(line)
		s.WriteByte('\n')
	}
	if len(def.Doc) > 0 {
		s.WriteByte('\n')
	}

	s.WriteString("Usage:\n  {bin} [flags]")
	if len(def.Options) > 0 {
		s.WriteString(" [options]")
	}
	if def.Positional != nil {
		fmt.Fprintf(&s, " [%s...]", def.Positional.Long)
	}
	s.WriteString("\n\nFlags:\n")

	flags := append(append([]Arg{}, builtinFlags...), def.Flags...)
	s.WriteString(helpBlock(flags, false))

	if len(def.Options) > 0 {
		s.WriteString("\nOptions:\n")
		s.WriteString(helpBlock(def.Options, true))
	}

	if pos := def.Positional; pos != nil {
		doc := append([]string{}, pos.Doc...)
		if pos.Required {
			doc = appendSuffix(doc, "[required]")
		}
		fmt.Fprintf(&s, "\n%s:\n  %s\n", pos.Long, strings.Join(doc, "\n  "))
	}

	return s.String()
}

// helpBlock renders one aligned block of argument lines, derive style:
// short name, long name, a type placeholder for options, then the doc
// column.
func helpBlock(args []Arg, withType bool) string {
	labels := make([]string, len(args))
	maxWidth := 0
	for i, arg := range args {
		label := "  "
		if arg.Short != "" {
			label += "-" + arg.Short + " "
		}
		label += "--" + arg.Long
		if withType {
			label += typePlaceholder(arg.Kind)
		}
		labels[i] = label
		if len(label) > maxWidth {
			maxWidth = len(label)
		}
	}

	var s strings.Builder
	for i, arg := range args {
		doc := append([]string{}, arg.Doc...)
		if withType {
			switch {
			case arg.Default != "":
				doc = appendSuffix(doc, "[default: "+arg.Default+"]")
			case !arg.Optional:
				doc = appendSuffix(doc, "[required]")
			}
		}

		s.WriteString(labels[i])
		if len(doc) == 0 {
			s.WriteByte('\n')
			continue
		}
		s.WriteString(strings.Repeat(" ", maxWidth-len(labels[i])+2))
		pad := "\n" + strings.Repeat(" ", maxWidth+2)
		s.WriteString(strings.Join(doc, pad))
		s.WriteByte('\n')
	}
	return s.String()
}

func appendSuffix(doc []string, suffix string) []string {
	if len(doc) == 0 {
		return []string{suffix}
	}
	doc[len(doc)-1] += " " + suffix
	return doc
}

func typePlaceholder(kind Kind) string {
	switch kind {
	case KindInt, KindUint:
		return " INTEGER"
	case KindFloat:
		return " FLOAT"
	case KindPath:
		return " PATH"
	default:
		return " STRING"
	}
}

func emitParseArgs(b *bytes.Buffer, def *ParserDef) {
	required := requiredOptions(def)
	needSkip := len(required) > 0 || (def.Positional != nil && def.Positional.Required)

	fmt.Fprintf(b, "\n// ParseArgs populates %s from the raw argument list.\n", def.Struct)
	fmt.Fprintf(b, "func (a *%s) ParseArgs(args []onlyargs.RawArg) error {\n", def.Struct)
	b.WriteString("\tcur := onlyargs.NewCursor(args)\n")

	emitVars(b, def, needSkip)
	emitLoop(b, def, needSkip)
	emitAssignments(b, def, required, needSkip)

	b.WriteString("\n\treturn nil\n}\n")
}

func requiredOptions(def *ParserDef) []Arg {
	var out []Arg
	for _, opt := range def.Options {
		if !opt.Optional && opt.Default == "" {
			out = append(out, opt)
		}
	}
	return out
}

func emitVars(b *bytes.Buffer, def *ParserDef, needSkip bool) {
	var lines []string
	if needSkip && !def.HasHelpField {
		lines = append(lines, "helpVal bool")
	}
	if needSkip && !def.HasVersionField {
		lines = append(lines, "versionVal bool")
	}
	for _, flag := range def.Flags {
		line := localVar(flag) + " bool"
		if flag.Default == "true" {
			line += " = true"
		}
		lines = append(lines, line)
	}
	for _, opt := range def.Options {
		if opt.Default != "" {
			lines = append(lines, fmt.Sprintf("%s %s = %s", localVar(opt), opt.GoType, defaultLiteral(opt)))
		} else {
			lines = append(lines, fmt.Sprintf("%s *%s", localVar(opt), opt.GoType))
		}
	}
	if pos := def.Positional; pos != nil {
		lines = append(lines, fmt.Sprintf("%s []%s", localVar(*pos), pos.GoType))
	}

	if len(lines) == 0 {
		b.WriteByte('\n')
		return
	}
	if len(lines) == 1 {
		fmt.Fprintf(b, "\tvar %s\n\n", lines[0])
		return
	}
	b.WriteString("\tvar (\n")
	for _, line := range lines {
		fmt.Fprintf(b, "\t\t%s\n", line)
	}
	b.WriteString("\t)\n\n")
}

func emitLoop(b *bytes.Buffer, def *ParserDef, needSkip bool) {
	b.WriteString("\tfor {\n\t\tname, ok := cur.Peek()\n\t\tif !ok {\n\t\t\tif cur.Len() == 0 {\n\t\t\t\tbreak\n\t\t\t}\n")
	b.WriteString("\t\t\traw, err := cur.NextValue(onlyargs.PositionalName)\n\t\t\tif err != nil {\n\t\t\t\treturn err\n\t\t\t}\n")
	if def.Positional != nil {
		emitAppend(b, *def.Positional, "\t\t\t")
		b.WriteString("\t\t\tcontinue\n")
	} else {
		b.WriteString("\t\t\treturn &onlyargs.UnknownArgumentError{Raw: raw}\n")
	}
	b.WriteString("\t\t}\n\n\t\tswitch name {\n")

	emitFlagCase(b, "help", "h", def.HasHelpField, "Help", needSkip)
	emitFlagCase(b, "version", "V", def.HasVersionField, "Version", needSkip)

	for _, flag := range def.Flags {
		fmt.Fprintf(b, "\t\tcase %s:\n\t\t\t%s = true\n\t\t\tcur.AdvanceFlag()\n", caseSpellings(flag), localVar(flag))
	}

	for _, opt := range def.Options {
		fmt.Fprintf(b, "\t\tcase %s:\n\t\t\tcur.AdvanceFlag()\n", caseSpellings(opt))
		b.WriteString("\t\t\traw, err := cur.NextValue(name)\n\t\t\tif err != nil {\n\t\t\t\treturn err\n\t\t\t}\n")
		emitConvert(b, opt, "name", "\t\t\t")
		if opt.Default != "" {
			fmt.Fprintf(b, "\t\t\t%s = v\n", localVar(opt))
		} else {
			fmt.Fprintf(b, "\t\t\t%s = &v\n", localVar(opt))
		}
	}

	b.WriteString("\t\tcase \"--\":\n\t\t\tcur.AdvanceFlag()\n")
	if pos := def.Positional; pos != nil {
		fmt.Fprintf(b, "\t\t\trest, err := onlyargs.Drain(cur, onlyargs.PositionalName, %s)\n", drainConverter(*pos))
		b.WriteString("\t\t\tif err != nil {\n\t\t\t\treturn err\n\t\t\t}\n")
		fmt.Fprintf(b, "\t\t\t%s = append(%s, rest...)\n", localVar(*pos), localVar(*pos))
	} else {
		b.WriteString("\t\t\tfor cur.Len() > 0 {\n\t\t\t\tcur.AdvanceFlag()\n\t\t\t}\n")
	}

	if def.Positional != nil {
		b.WriteString("\t\tdefault:\n")
		b.WriteString("\t\t\traw, err := cur.NextValue(onlyargs.PositionalName)\n\t\t\tif err != nil {\n\t\t\t\treturn err\n\t\t\t}\n")
		emitAppend(b, *def.Positional, "\t\t\t")
	} else {
		b.WriteString("\t\tdefault:\n\t\t\treturn &onlyargs.UnknownArgumentError{Raw: onlyargs.RawArg(name)}\n")
	}

	b.WriteString("\t\t}\n\t}\n")
}

// emitFlagCase writes the case arm for a built-in flag. The flag is always
// matched and consumed; it is recorded only when a struct field or the
// required-skip logic needs it.
func emitFlagCase(b *bytes.Buffer, long, short string, hasField bool, field string, needSkip bool) {
	fmt.Fprintf(b, "\t\tcase \"--%s\", \"-%s\":\n", long, short)
	switch {
	case hasField:
		fmt.Fprintf(b, "\t\t\ta.%s = true\n", field)
	case needSkip:
		fmt.Fprintf(b, "\t\t\t%sVal = true\n", long)
	}
	b.WriteString("\t\t\tcur.AdvanceFlag()\n")
}

// emitConvert writes the conversion of raw into v, using the argument name
// expression for error attribution.
func emitConvert(b *bytes.Buffer, arg Arg, nameExpr, indent string) {
	switch arg.Kind {
	case KindPath:
		fmt.Fprintf(b, "%sv := onlyargs.AsPath(%s, raw)\n", indent, nameExpr)
	case KindRaw:
		fmt.Fprintf(b, "%sv := onlyargs.AsRaw(%s, raw)\n", indent, nameExpr)
	default:
		fmt.Fprintf(b, "%sv, err := %s(%s, raw)\n", indent, converter(arg), nameExpr)
		fmt.Fprintf(b, "%sif err != nil {\n%s\treturn err\n%s}\n", indent, indent, indent)
	}
}

func emitAppend(b *bytes.Buffer, pos Arg, indent string) {
	emitConvert(b, pos, "onlyargs.PositionalName", indent)
	fmt.Fprintf(b, "%s%s = append(%s, v)\n", indent, localVar(pos), localVar(pos))
}

func emitAssignments(b *bytes.Buffer, def *ParserDef, required []Arg, needSkip bool) {
	if needSkip {
		fmt.Fprintf(b, "\n\tskip := %s || %s\n", boolExpr(def.HasHelpField, "Help"), boolExpr(def.HasVersionField, "Version"))
	}

	for _, opt := range required {
		fmt.Fprintf(b, "\n\t%s, err := onlyargs.Required(skip, %q, %s)\n\tif err != nil {\n\t\treturn err\n\t}\n", finalVar(opt), "--"+opt.Long, localVar(opt))
	}
	if pos := def.Positional; pos != nil && pos.Required {
		fmt.Fprintf(b, "\n\t%s, err := onlyargs.RequiredSlice(skip, %q, %s)\n\tif err != nil {\n\t\treturn err\n\t}\n", finalVar(*pos), pos.Long, localVar(*pos))
	}

	b.WriteByte('\n')
	for _, flag := range def.Flags {
		fmt.Fprintf(b, "\ta.%s = %s\n", flag.Field, localVar(flag))
	}
	for _, opt := range def.Options {
		src := localVar(opt)
		if !opt.Optional && opt.Default == "" {
			src = finalVar(opt)
		}
		fmt.Fprintf(b, "\ta.%s = %s\n", opt.Field, src)
	}
	if pos := def.Positional; pos != nil {
		src := localVar(*pos)
		if pos.Required {
			src = finalVar(*pos)
		}
		fmt.Fprintf(b, "\ta.%s = %s\n", pos.Field, src)
	}
}

func boolExpr(hasField bool, field string) string {
	if hasField {
		return "a." + field
	}
	return strings.ToLower(field) + "Val"
}

func caseSpellings(arg Arg) string {
	if arg.Short == "" {
		return fmt.Sprintf("%q", "--"+arg.Long)
	}
	return fmt.Sprintf("%q, %q", "--"+arg.Long, "-"+arg.Short)
}

func converter(arg Arg) string {
	switch arg.Kind {
	case KindString:
		return "onlyargs.AsString"
	case KindInt:
		return "onlyargs.AsInt[" + arg.GoType + "]"
	case KindUint:
		return "onlyargs.AsUint[" + arg.GoType + "]"
	case KindFloat:
		return "onlyargs.AsFloat[" + arg.GoType + "]"
	case KindBool:
		return "onlyargs.AsBool"
	}
	return ""
}

func drainConverter(arg Arg) string {
	switch arg.Kind {
	case KindPath:
		return "onlyargs.PathConverter"
	case KindRaw:
		return "onlyargs.RawConverter"
	}
	return converter(arg)
}

func defaultLiteral(arg Arg) string {
	if arg.Kind == KindString || arg.Kind == KindPath {
		return strconv.Quote(arg.Default)
	}
	return arg.Default
}

// localVar names the loop-phase variable for a field. The suffix keeps the
// name clear of the fixed identifiers in the generated function.
func localVar(arg Arg) string {
	return lowerFirst(arg.Field) + "Val"
}

// finalVar names the unwrapped value of a required argument.
func finalVar(arg Arg) string {
	return lowerFirst(arg.Field) + "Arg"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
