// Package schema provides the normalized GraphQL schema model consumed by
// the RDF materialization engine, the type-wrapper classifier, and the
// loader that builds the model from GraphQL SDL sources.
package schema

import (
	"sort"
	"strings"
)

// Kind identifies the kind of a schema type definition. The set is closed:
// emission logic switches exhaustively over these values.
type Kind string

const (
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindInputObject Kind = "INPUT_OBJECT"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindScalar      Kind = "SCALAR"
)

// Model is the set of type definitions retained for materialization.
// Root operation types and introspection types are excluded before the
// model is built. The model is read-only input to the emitter.
type Model struct {
	Definitions []*Definition
}

// Definition is one retained type definition with kind-specific children.
type Definition struct {
	Kind        Kind
	Name        string
	Description string

	// Fields, in declaration order. Object, Interface, and InputObject only.
	Fields []*FieldDefinition

	// Members holds union member type names. Union only.
	Members []string

	// Values, in declaration order. Enum only.
	Values []*EnumValueDefinition
}

// FieldDefinition is a field of an object, interface, or input object type.
type FieldDefinition struct {
	Name string
	Type *TypeRef
}

// EnumValueDefinition is a value of an enum type.
type EnumValueDefinition struct {
	Name string
}

// TypeRef is a raw type signature: either a named terminal (Name set) or a
// list (Elem set), optionally non-null. Mirrors the SDL wrapper structure.
type TypeRef struct {
	Name    string
	Elem    *TypeRef
	NonNull bool
}

// NamedType returns a bare named type ref.
func NamedType(name string) *TypeRef { return &TypeRef{Name: name} }

// NonNullNamedType returns a non-null named type ref.
func NonNullNamedType(name string) *TypeRef { return &TypeRef{Name: name, NonNull: true} }

// ListType wraps elem in a list.
func ListType(elem *TypeRef) *TypeRef { return &TypeRef{Elem: elem} }

// NonNullListType wraps elem in a non-null list.
func NonNullListType(elem *TypeRef) *TypeRef { return &TypeRef{Elem: elem, NonNull: true} }

// String renders the signature as it appears in SDL, e.g. "[Door!]!".
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	if t.Elem != nil {
		sb.WriteString("[")
		sb.WriteString(t.Elem.String())
		sb.WriteString("]")
	} else {
		sb.WriteString(t.Name)
	}
	if t.NonNull {
		sb.WriteString("!")
	}
	return sb.String()
}

// Sort orders definitions by name. The triple set is independently sorted at
// serialization; a sorted model just keeps logs and tests stable.
func (m *Model) Sort() {
	sort.Slice(m.Definitions, func(i, j int) bool {
		return m.Definitions[i].Name < m.Definitions[j].Name
	})
}

// Empty reports whether no type definitions were retained after exclusions.
func (m *Model) Empty() bool { return m == nil || len(m.Definitions) == 0 }
