// Package graph materializes a normalized GraphQL schema model into an RDF
// triple set: concept URIs for every schema element, per-kind triple
// patterns, and an optional publish path into a knowledge-graph ingest
// subject.
package graph

import "sort"

// Term is the object position of a triple: either an IRI or a literal,
// optionally language-tagged.
type Term struct {
	Value   string
	Literal bool
	Lang    string
}

// IRITerm returns an IRI object term.
func IRITerm(iri string) Term { return Term{Value: iri} }

// LiteralTerm returns a plain literal object term.
func LiteralTerm(text string) Term { return Term{Value: text, Literal: true} }

// LangLiteralTerm returns a language-tagged literal object term.
func LangLiteralTerm(text, lang string) Term {
	return Term{Value: text, Literal: true, Lang: lang}
}

// Triple is one RDF statement. Subject and Predicate are always IRIs.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Set is the triple accumulator for one materialization run. It is
// append-only until sealed by Materialize; serializers treat it as
// immutable after that.
type Set struct {
	triples []Triple
}

// Add appends triples to the set.
func (s *Set) Add(ts ...Triple) {
	s.triples = append(s.triples, ts...)
}

// Len returns the number of triples in the set.
func (s *Set) Len() int { return len(s.triples) }

// Empty reports whether the set holds no triples.
func (s *Set) Empty() bool { return len(s.triples) == 0 }

// Triples returns the triples ordered by their rendered (subject,
// predicate, object) forms. The comparison is the single total order every
// serializer uses; no caller may rely on insertion order.
func (s *Set) Triples() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Subjects returns the distinct subject IRIs, ordered by their rendered
// form so the grouped serialization tracks the flat one.
func (s *Set) Subjects() []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, t := range s.triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}
	sort.Slice(subjects, func(i, j int) bool {
		return iriKey(subjects[i]) < iriKey(subjects[j])
	})
	return subjects
}

// less is the total order over triples: rendered subject, then rendered
// predicate, then rendered object. Comparing rendered forms rather than raw
// IRIs matters when one IRI is a prefix of another (a type and its fields):
// the closing '>' sorts after '.', so raw order and rendered-line order
// disagree there.
func less(a, b Triple) bool {
	if a.Subject != b.Subject {
		return iriKey(a.Subject) < iriKey(b.Subject)
	}
	if a.Predicate != b.Predicate {
		return iriKey(a.Predicate) < iriKey(b.Predicate)
	}
	return objectKey(a.Object) < objectKey(b.Object)
}

// iriKey renders an IRI for comparison purposes only.
func iriKey(iri string) string { return "<" + iri + ">" }

// objectKey renders an object term for comparison purposes only.
func objectKey(o Term) string {
	if o.Literal {
		key := "\"" + o.Value + "\""
		if o.Lang != "" {
			key += "@" + o.Lang
		}
		return key
	}
	return iriKey(o.Value)
}
