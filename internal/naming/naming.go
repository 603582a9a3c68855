// Package naming turns provisional descriptor names into final, unique
// field identifiers, plus the derived property names when property
// generation is on.
//
// Stages run in a fixed order, each gated by its own setting:
//  1. Prefixing: prepend the configured type prefix.
//  2. Casing: camelCase with a leading underscore.
//  3. Uniqueness: append _1, _2, ... on collision.
//
// Property names are derived from the final field names (strip underscore,
// optionally strip the type prefix, PascalCase). Property collisions are
// accepted as-is: a property is a read-only accessor, not a storage slot.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"viewgen/internal/diagnostic"
	"viewgen/internal/discover"
	"viewgen/internal/settings"
)

// Rename rewrites descriptor field names in place, preserving order, and
// fills in property names when cfg.Naming.Properties is set. Collisions
// resolved by the uniqueness stage are reported to diag (which may be
// nil). Returns the same slice for convenience.
func Rename(descs []discover.Descriptor, cfg settings.Settings, diag *diagnostic.Diagnostics) []discover.Descriptor {
	rules := cfg.Naming

	for i := range descs {
		name := descs[i].FieldName

		if prefix := rules.PrefixFor(descs[i].TypeName); prefix != "" {
			name = applyPrefix(name, prefix)
		}

		if rules.UnderscoreCamel {
			name = underscoreCamel(name)
		}

		descs[i].FieldName = name
	}

	uniquify(descs, diag)

	if rules.Properties {
		for i := range descs {
			descs[i].PropertyName = propertyName(descs[i], rules)
		}
	}

	return descs
}

// applyPrefix prepends "prefix_" unless the name already starts with the
// prefix, bare or underscore-joined.
func applyPrefix(name, prefix string) string {
	if strings.HasPrefix(name, prefix+"_") || strings.HasPrefix(name, prefix) {
		return name
	}

	return prefix + "_" + name
}

// underscoreCamel converts a name to camelCase and prepends an underscore
// unless the name is already private-style prefixed.
func underscoreCamel(name string) string {
	if strings.HasPrefix(name, "_") {
		return name
	}

	return "_" + camelCase(name)
}

// camelCase joins underscore-separated tokens, lowercasing the first
// token's leading rune and uppercasing each later token's leading rune.
// Trailing underscores survive so names disambiguated against a type name
// stay distinct.
func camelCase(name string) string {
	trailing := len(name) - len(strings.TrimRight(name, "_"))
	tokens := strings.Split(strings.TrimRight(name, "_"), "_")

	var b strings.Builder

	first := true
	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		r := []rune(tok)
		if first {
			r[0] = unicode.ToLower(r[0])
			first = false
		} else {
			r[0] = unicode.ToUpper(r[0])
		}

		b.WriteString(string(r))
	}

	b.WriteString(strings.Repeat("_", trailing))

	return b.String()
}

// uniquify walks the list in order and suffixes _1, _2, ... onto later
// duplicates until every field name is distinct.
func uniquify(descs []discover.Descriptor, diag *diagnostic.Diagnostics) {
	used := map[string]struct{}{}

	for i := range descs {
		name := descs[i].FieldName

		for n := 1; ; n++ {
			if _, taken := used[name]; !taken {
				break
			}

			name = fmt.Sprintf("%s_%d", descs[i].FieldName, n)
		}

		if name != descs[i].FieldName {
			diag.AddInfo(diagnostic.CodeNameCollision,
				fmt.Sprintf("field %q renamed to %q", descs[i].FieldName, name),
				"", descs[i].PathString())
		}

		used[name] = struct{}{}
		descs[i].FieldName = name
	}
}

// propertyName derives the accessor name from a final field name: strip
// the leading underscore, optionally strip the type prefix, PascalCase.
func propertyName(d discover.Descriptor, rules settings.NamingRules) string {
	name := strings.TrimPrefix(d.FieldName, "_")

	if rules.StripPrefix {
		if prefix := rules.PrefixFor(d.TypeName); prefix != "" {
			name = stripPrefix(name, prefix)
		}
	}

	return pascalCase(name)
}

// stripPrefix removes a leading "prefix" or "prefix_" unless that would
// leave nothing.
func stripPrefix(name, prefix string) string {
	stripped := name

	switch {
	case strings.HasPrefix(name, prefix+"_"):
		stripped = name[len(prefix)+1:]
	case strings.HasPrefix(name, prefix):
		stripped = name[len(prefix):]
	}

	if stripped == "" {
		return name
	}

	return stripped
}

// pascalCase joins underscore-separated tokens, uppercasing each token's
// leading rune.
func pascalCase(name string) string {
	tokens := strings.Split(name, "_")

	var b strings.Builder

	for _, tok := range tokens {
		if tok == "" {
			continue
		}

		r := []rune(tok)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}
