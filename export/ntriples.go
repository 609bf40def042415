// Package export renders a sealed triple set into the two canonical
// artifacts: a sorted flat N-Triples listing for version-control diffing and
// a grouped Turtle listing for human consumption. Both renderings are pure
// functions of the set; serializing the same set twice yields identical
// bytes.
package export

import (
	"strings"

	"github.com/c360studio/semschema/graph"
)

// SortedNTriples renders every triple as one `subject predicate object .`
// line, sorted by (subject, predicate, object) rendering, with a trailing
// newline. An empty set renders as an empty string. No blank lines, no
// comments: byte-identical output for structurally identical sets is the
// property downstream diff tooling depends on.
func SortedNTriples(set *graph.Set) string {
	if set.Empty() {
		return ""
	}

	var sb strings.Builder
	for _, t := range set.Triples() {
		sb.WriteString("<")
		sb.WriteString(t.Subject)
		sb.WriteString("> <")
		sb.WriteString(t.Predicate)
		sb.WriteString("> ")
		sb.WriteString(renderObject(t.Object))
		sb.WriteString(" .\n")
	}
	return sb.String()
}

// renderObject renders an object term in N-Triples syntax.
func renderObject(o graph.Term) string {
	if !o.Literal {
		return "<" + o.Value + ">"
	}
	rendered := "\"" + escapeLiteral(o.Value) + "\""
	if o.Lang != "" {
		rendered += "@" + o.Lang
	}
	return rendered
}

// escapeLiteral escapes special characters in literal values.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
