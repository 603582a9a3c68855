package merge

import (
	"fmt"
	"strings"
	"unicode"

	"viewgen/internal/discover"
	"viewgen/internal/settings"
	"viewgen/scene"
)

const indentStep = "    "

// header is the artifact preamble. Kept to one line so hand-written using
// directives below it survive merges untouched.
const header = "// Generated by viewgen. Hand-written code outside the marked regions is preserved."

// renderFields renders the fields-region payload, one declaration per
// descriptor. Reference mode marks each field for external persistence.
func renderFields(descs []discover.Descriptor, cfg settings.Settings) []string {
	var lines []string

	for _, d := range descs {
		decl := fmt.Sprintf("private %s %s;", d.TypeName, d.FieldName)
		if cfg.Mode == settings.ModeReference {
			decl = "[AutoBind] " + decl
		}

		lines = append(lines, decl)
	}

	return lines
}

// renderProps renders the properties-region payload: one read-only
// accessor per descriptor.
func renderProps(descs []discover.Descriptor) []string {
	var lines []string

	for _, d := range descs {
		if d.PropertyName == "" {
			continue
		}

		lines = append(lines, fmt.Sprintf("public %s %s => %s;", d.TypeName, d.PropertyName, d.FieldName))
	}

	return lines
}

// renderInit renders the initializer-region payload. In reference mode the
// payload is empty: resolution happens externally through the reference
// assigner, not through generated lookup code.
func renderInit(className string, descs []discover.Descriptor, cfg settings.Settings) []string {
	if cfg.Mode == settings.ModeReference {
		return nil
	}

	lines := []string{
		"private void InitBindings()",
		"{",
	}

	for i, d := range descs {
		if i > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, renderBinding(className, d)...)
	}

	lines = append(lines, "}")

	return lines
}

// renderBinding renders the lookup for one descriptor: resolve the node by
// path, then the capability by type and index. Both failures produce a
// runtime diagnostic and leave the field unset; neither stops the rest of
// the initializer.
func renderBinding(className string, d discover.Descriptor) []string {
	body := indentStep

	if len(d.Path) == 0 {
		return indentLines(body, assignFrom(className, "Node", d, ""))
	}

	nodeVar := nodeVarName(d.FieldName)
	path := d.PathString()

	lines := []string{
		fmt.Sprintf("var %s = FindNode(\"%s\");", nodeVar, path),
		fmt.Sprintf("if (%s == null)", nodeVar),
		"{",
		fmt.Sprintf("%sDiag.Warn(\"%s: node '%s' not found\");", indentStep, className, path),
		"}",
		"else",
		"{",
	}
	lines = append(lines, indentLines(indentStep, assignFrom(className, nodeVar, d, path))...)
	lines = append(lines, "}")

	return indentLines(body, lines)
}

// assignFrom renders the assignment of d.FieldName from a resolved node
// expression.
func assignFrom(className, nodeExpr string, d discover.Descriptor, path string) []string {
	at := path
	if at == "" {
		at = "root"
	} else {
		at = "'" + at + "'"
	}

	switch {
	case !d.IsCapability:
		return []string{fmt.Sprintf("%s = %s;", d.FieldName, nodeExpr)}

	case d.TypeName == scene.TypeContainer:
		return []string{fmt.Sprintf("%s = %s.Container;", d.FieldName, nodeExpr)}

	default:
		return []string{
			fmt.Sprintf("%s = %s.Capability<%s>(%d);", d.FieldName, nodeExpr, d.TypeName, d.CapabilityIndex),
			fmt.Sprintf("if (%s == null)", d.FieldName),
			"{",
			fmt.Sprintf("%sDiag.Warn(\"%s: capability '%s' missing at %s\");", indentStep, className, d.TypeName, at),
			"}",
		}
	}
}

// nodeVarName derives a local variable name from a field name:
// "_btnOkButton" becomes "btnOkButtonNode". Field names are unique, so the
// locals are too.
func nodeVarName(fieldName string) string {
	name := strings.TrimPrefix(fieldName, "_")
	name = strings.TrimRight(name, "_")

	if name == "" {
		name = "node"
	}

	r := []rune(name)
	r[0] = unicode.ToLower(r[0])

	return string(r) + "Node"
}

// indentLines prefixes every non-empty line with the given indent.
func indentLines(indent string, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = ""
			continue
		}

		out[i] = indent + line
	}

	return out
}

// regionText renders a full region: start marker, indented payload, end
// marker. An empty payload yields just the marker pair.
func regionText(indent, start, end string, payload []string) string {
	lines := make([]string, 0, len(payload)+2)
	lines = append(lines, indent+start)
	lines = append(lines, indentLines(indent, payload)...)
	lines = append(lines, indent+end)

	return strings.Join(lines, "\n")
}

// renderSkeleton renders a brand-new artifact: preamble, optional
// namespace wrapper, class declaration, the managed regions, and the free
// user-code region.
func renderSkeleton(className string, descs []discover.Descriptor, cfg settings.Settings) string {
	classIndent := ""
	if cfg.Class.Namespace != "" {
		classIndent = indentStep
	}

	memberIndent := classIndent + indentStep

	var b strings.Builder

	b.WriteString(header + "\n\n")

	if cfg.Class.Namespace != "" {
		b.WriteString("namespace " + cfg.Class.Namespace + "\n{\n")
	}

	b.WriteString(classIndent + "public class " + className + " : " + cfg.Class.Base + "\n")
	b.WriteString(classIndent + "{\n")

	b.WriteString(regionText(memberIndent, FieldsStart, FieldsEnd, renderFields(descs, cfg)) + "\n")

	if cfg.Naming.Properties {
		b.WriteString("\n" + regionText(memberIndent, PropsStart, PropsEnd, renderProps(descs)) + "\n")
	}

	b.WriteString("\n" + regionText(memberIndent, InitStart, InitEnd, renderInit(className, descs, cfg)) + "\n")

	b.WriteString("\n" + memberIndent + "// user code\n")

	b.WriteString(classIndent + "}\n")

	if cfg.Class.Namespace != "" {
		b.WriteString("}\n")
	}

	return b.String()
}
