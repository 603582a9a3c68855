package merge

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"viewgen/internal/ctxlog"
	"viewgen/internal/diagnostic"
	"viewgen/internal/discover"
	"viewgen/internal/settings"
)

// ErrNoClass reports an existing artifact with no recognizable class
// declaration. The artifact is left untouched.
var ErrNoClass = errors.New("no class declaration found")

// classDeclRe locates the first class declaration: optional modifiers, the
// class keyword, the class name.
var classDeclRe = regexp.MustCompile(`(?m)^[ \t]*(?:[A-Za-z_]\w*[ \t]+)*class[ \t]+([A-Za-z_]\w*)`)

// baseTokenRe matches the first base-type token of an inheritance clause.
var baseTokenRe = regexp.MustCompile(`[A-Za-z_][\w.]*`)

// Merge produces the new artifact text for the given descriptors. An empty
// existing text means first generation and yields a fresh skeleton;
// otherwise the existing text is patched region by region, leaving
// everything outside the markers byte-identical. Marker recoveries are
// reported to diag (which may be nil). The caller decides whether the
// result warrants a file write.
func Merge(ctx context.Context, existing, className string, descs []discover.Descriptor, cfg settings.Settings, diag *diagnostic.Diagnostics) (string, error) {
	if existing == "" {
		return renderSkeleton(className, descs, cfg), nil
	}

	text, err := renameClass(existing, className, cfg.Class.Base)
	if err != nil {
		return "", err
	}

	regions := []struct {
		kind    regionKind
		start   string
		end     string
		payload []string
	}{
		{regionFields, FieldsStart, FieldsEnd, renderFields(descs, cfg)},
		{regionProps, PropsStart, PropsEnd, propsPayload(descs, cfg)},
		{regionInit, InitStart, InitEnd, renderInit(className, descs, cfg)},
	}

	for _, r := range regions {
		text, err = upsertRegion(ctx, text, r.kind, r.start, r.end, r.payload, diag)
		if err != nil {
			return "", fmt.Errorf("upserting %s region: %w", r.kind, err)
		}
	}

	return text, nil
}

// propsPayload returns the properties payload, or nil when property
// generation is off. The region is still upserted with the empty payload
// so switching the setting off clears previously generated properties.
func propsPayload(descs []discover.Descriptor, cfg settings.Settings) []string {
	if !cfg.Naming.Properties {
		return nil
	}

	return renderProps(descs)
}

type regionKind int

const (
	regionFields regionKind = iota
	regionProps
	regionInit
)

func (k regionKind) String() string {
	switch k {
	case regionFields:
		return "fields"
	case regionProps:
		return "properties"
	case regionInit:
		return "initializer"
	default:
		return "unknown"
	}
}

// renameClass renames the first class declaration and swaps the first
// base-type token of its inheritance clause for the configured base,
// inserting a clause when none exists.
func renameClass(text, className, base string) (string, error) {
	m := classDeclRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", ErrNoClass
	}

	nameStart, nameEnd := m[2], m[3]

	// Patch the inheritance clause first; it sits after the name, so the
	// name offsets stay valid.
	rest := text[nameEnd:]
	trimmed := strings.TrimLeft(rest, " \t")

	if strings.HasPrefix(trimmed, ":") {
		afterColon := nameEnd + (len(rest) - len(trimmed)) + 1

		tok := baseTokenRe.FindStringIndex(text[afterColon:])
		if tok != nil {
			text = text[:afterColon+tok[0]] + base + text[afterColon+tok[1]:]
		} else {
			text = text[:afterColon] + " " + base + text[afterColon:]
		}
	} else {
		text = text[:nameEnd] + " : " + base + text[nameEnd:]
	}

	return text[:nameStart] + className + text[nameEnd:], nil
}

// locateClassBody returns the offsets of the class body's opening and
// closing braces, found by counting depth from the declaration's opening
// brace. Assumes a single top-level class.
func locateClassBody(text string) (bodyOpen, bodyClose int, err error) {
	m := classDeclRe.FindStringIndex(text)
	if m == nil {
		return 0, 0, ErrNoClass
	}

	bodyOpen = strings.IndexByte(text[m[1]:], '{')
	if bodyOpen < 0 {
		return 0, 0, fmt.Errorf("class body: %w", ErrNoClass)
	}
	bodyOpen += m[1]

	depth := 0
	for i := bodyOpen; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return bodyOpen, i, nil
			}
		}
	}

	return 0, 0, errors.New("unbalanced braces in class body")
}

// upsertRegion replaces the marker-delimited region inside the class body,
// whole lines included, or reinserts it at the canonical fallback position
// when the markers went missing. A missing properties region with an empty
// payload is left out entirely: there is nothing to clear.
func upsertRegion(ctx context.Context, text string, kind regionKind, start, end string, payload []string, diag *diagnostic.Diagnostics) (string, error) {
	bodyOpen, bodyClose, err := locateClassBody(text)
	if err != nil {
		return "", err
	}

	startLine, ok := findMarkerLine(text, bodyOpen+1, bodyClose, start)
	if ok {
		endLine, endOK := findMarkerLine(text, startLine.contentEnd, bodyClose, end)
		if endOK {
			line := text[startLine.start:startLine.contentEnd]
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

			return text[:startLine.start] + regionText(indent, start, end, payload) + text[endLine.contentEnd:], nil
		}
	}

	if len(payload) == 0 && kind == regionProps {
		return text, nil
	}

	ctxlog.FromContext(ctx).Debug("region markers missing, reinserting",
		"region", kind.String(), "marker", start)
	diag.AddWarning(diagnostic.CodeMarkerRecovered,
		fmt.Sprintf("%s region markers were missing and were reinserted", kind), "", "")

	return insertRegion(text, kind, start, end, payload, bodyOpen, bodyClose), nil
}

// insertRegion inserts a freshly rendered region at the canonical fallback
// position: fields right after the opening brace, properties after fields
// (or before the initializer, or before the closing brace), initializer
// before the closing brace.
func insertRegion(text string, kind regionKind, start, end string, payload []string, bodyOpen, bodyClose int) string {
	indent := memberIndent(text, bodyOpen)
	region := regionText(indent, start, end, payload)

	switch kind {
	case regionFields:
		return insertAfterBrace(text, bodyOpen, region)

	case regionProps:
		if fieldsEnd, ok := findMarkerLine(text, bodyOpen+1, bodyClose, FieldsEnd); ok {
			return insertAfterLine(text, fieldsEnd, region)
		}

		if initStart, ok := findMarkerLine(text, bodyOpen+1, bodyClose, InitStart); ok {
			return text[:initStart.start] + region + "\n\n" + text[initStart.start:]
		}

		return insertBeforeLine(text, bodyClose, region)

	default: // regionInit
		return insertBeforeLine(text, bodyClose, region)
	}
}

// insertAfterBrace inserts the region on a fresh line right after the
// opening brace.
func insertAfterBrace(text string, bodyOpen int, region string) string {
	at := bodyOpen + 1
	if at < len(text) && text[at] == '\n' {
		return text[:at+1] + region + "\n" + text[at+1:]
	}

	return text[:at] + "\n" + region + "\n" + text[at:]
}

// insertAfterLine inserts the region, preceded by a blank line, right
// after the given marker line.
func insertAfterLine(text string, line markerLine, region string) string {
	at := line.contentEnd
	if at < len(text) && text[at] == '\n' {
		at++
	}

	return text[:at] + "\n" + region + "\n" + text[at:]
}

// insertBeforeLine inserts the region on its own lines right before the
// line containing offset at.
func insertBeforeLine(text string, at int, region string) string {
	lineStart := strings.LastIndexByte(text[:at], '\n') + 1

	return text[:lineStart] + region + "\n" + text[lineStart:]
}

// memberIndent derives the member indentation from the line holding the
// class body's opening brace.
func memberIndent(text string, bodyOpen int) string {
	lineStart := strings.LastIndexByte(text[:bodyOpen], '\n') + 1
	line := text[lineStart:bodyOpen]

	return line[:len(line)-len(strings.TrimLeft(line, " \t"))] + indentStep
}

// markerLine is a located marker line: start is the offset of its first
// byte, contentEnd the offset of its newline (or end of text).
type markerLine struct {
	start      int
	contentEnd int
}

// findMarkerLine scans lines within [lo, hi) for one whose trimmed content
// equals the marker.
func findMarkerLine(text string, lo, hi int, marker string) (markerLine, bool) {
	if hi > len(text) {
		hi = len(text)
	}

	for pos := lo; pos < hi; {
		nl := strings.IndexByte(text[pos:hi], '\n')

		end := hi
		if nl >= 0 {
			end = pos + nl
		}

		if strings.TrimSpace(text[pos:end]) == marker {
			return markerLine{start: pos, contentEnd: end}, true
		}

		if nl < 0 {
			break
		}

		pos = end + 1
	}

	return markerLine{}, false
}
