// Package w3c provides the W3C vocabulary terms (RDF, SKOS) used by the
// materialization engine, plus the canonical prefix table for grouped output.
package w3c

// RDF namespace and terms.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFType is rdf:type, abbreviated as "a" in Turtle output.
	RDFType = RDFNamespace + "type"
)

// SKOS namespace and terms.
const (
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

	// SKOSConcept is the class every materialized schema element instantiates.
	SKOSConcept = SKOSNamespace + "Concept"

	// SKOSPrefLabel carries the element's qualified name as a language-tagged literal.
	SKOSPrefLabel = SKOSNamespace + "prefLabel"

	// SKOSDefinition carries the element's schema description, when present.
	SKOSDefinition = SKOSNamespace + "definition"
)
