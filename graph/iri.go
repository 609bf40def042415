package graph

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/c360studio/semschema/vocabulary/s2dm"
)

// pathSeparator joins the segments of a qualified path (Type.field,
// Enum.VALUE). A name containing it would make two distinct paths render to
// the same URI, so such names are rejected outright.
const pathSeparator = "."

// InvalidIdentifierError reports a schema element name that cannot be
// represented as a valid, unambiguous IRI path segment.
type InvalidIdentifierError struct {
	Path   string // qualified path being minted
	Name   string // offending segment
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q in %s: %s", e.Name, e.Path, e.Reason)
}

// DuplicateDefinitionError reports two schema elements resolving to the same
// qualified path. This is a generator-invariant violation, never silently
// overwritten.
type DuplicateDefinitionError struct {
	Path string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate definition for qualified path %q", e.Path)
}

// IRIMinter produces stable concept URIs under one namespace. Minting is
// injective over qualified paths: equal paths always yield equal URIs and
// distinct paths never collide.
type IRIMinter struct {
	namespace string
}

// NewIRIMinter creates a minter for the given namespace, which must be an
// absolute IRI ending in a separator ('#' or '/'); config validation
// enforces that before a minter is built.
func NewIRIMinter(namespace string) *IRIMinter {
	return &IRIMinter{namespace: namespace}
}

// TypeURI mints the URI for a type concept: {namespace}{TypeName}.
func (m *IRIMinter) TypeURI(typeName string) (string, error) {
	seg, err := m.segment(typeName, typeName)
	if err != nil {
		return "", err
	}
	return m.namespace + seg, nil
}

// FieldURI mints the URI for a field concept: {namespace}{TypeName}.{fieldName}.
func (m *IRIMinter) FieldURI(typeName, fieldName string) (string, error) {
	return m.qualified(typeName, fieldName)
}

// EnumValueURI mints the URI for an enum value concept: {namespace}{EnumName}.{ValueName}.
func (m *IRIMinter) EnumValueURI(enumName, valueName string) (string, error) {
	return m.qualified(enumName, valueName)
}

// OutputTypeURI resolves a field's base output type. Built-in scalars map to
// fixed s2dm vocabulary terms; everything else is minted in the user
// namespace exactly like a type concept.
func (m *IRIMinter) OutputTypeURI(baseTypeName string) (string, error) {
	if term, ok := s2dm.BuiltinScalars[baseTypeName]; ok {
		return term, nil
	}
	return m.TypeURI(baseTypeName)
}

func (m *IRIMinter) qualified(owner, member string) (string, error) {
	path := owner + pathSeparator + member
	ownerSeg, err := m.segment(path, owner)
	if err != nil {
		return "", err
	}
	memberSeg, err := m.segment(path, member)
	if err != nil {
		return "", err
	}
	return m.namespace + ownerSeg + pathSeparator + memberSeg, nil
}

// segment validates and percent-escapes one name for use as an IRI path
// segment. Escaping never emits '.' or whitespace, so segment boundaries in
// qualified paths stay unambiguous and the minting stays injective.
func (m *IRIMinter) segment(path, name string) (string, error) {
	if name == "" {
		return "", &InvalidIdentifierError{Path: path, Name: name, Reason: "empty name"}
	}
	if strings.Contains(name, pathSeparator) {
		return "", &InvalidIdentifierError{
			Path: path, Name: name,
			Reason: "contains the qualified-path separator '.'",
		}
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return "", &InvalidIdentifierError{
				Path: path, Name: name,
				Reason: "contains a control character",
			}
		}
	}
	return url.PathEscape(name), nil
}
