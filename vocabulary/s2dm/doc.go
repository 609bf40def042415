// Package s2dm provides the s2dm ontology terms used when materializing a
// GraphQL schema into an RDF knowledge graph.
//
// Every retained schema element (type, field, enum value) becomes a
// skos:Concept annotated with an s2dm class describing its kind and with
// s2dm properties describing its structural relationships:
//
//	Schema element → s2dm class
//	type T { ... }        → s2dm:ObjectType
//	interface I { ... }   → s2dm:InterfaceType
//	input In { ... }      → s2dm:InputObjectType
//	union U = A | B       → s2dm:UnionType
//	enum E { ... }        → s2dm:EnumType
//	scalar S (custom)     → s2dm:ScalarType
//	T.field               → s2dm:Field
//	E.VALUE               → s2dm:EnumValue
//
// Field concepts additionally carry s2dm:hasOutputType (the field's base
// type) and s2dm:usesTypeWrapperPattern (one of the six wrapper terms
// classifying the field's list/non-null nesting).
//
// Built-in GraphQL scalars (Int, Float, String, Boolean, ID) resolve to
// fixed terms in this namespace, never to a user namespace.
package s2dm
