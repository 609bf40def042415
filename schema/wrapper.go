package schema

import (
	"fmt"

	"github.com/c360studio/semschema/vocabulary/s2dm"
)

// WrapperShape classifies a field's list/non-null nesting into one of six
// canonical shapes.
type WrapperShape string

const (
	ShapeBare                 WrapperShape = "bare"                 // field: T
	ShapeNonNull              WrapperShape = "nonNull"              // field: T!
	ShapeList                 WrapperShape = "list"                 // field: [T]
	ShapeListOfNonNull        WrapperShape = "listOfNonNull"        // field: [T!]
	ShapeNonNullList          WrapperShape = "nonNullList"          // field: [T]!
	ShapeNonNullListOfNonNull WrapperShape = "nonNullListOfNonNull" // field: [T!]!
)

// Term returns the s2dm ontology IRI for the shape.
func (s WrapperShape) Term() string {
	switch s {
	case ShapeBare:
		return s2dm.TypeWrapperBare
	case ShapeNonNull:
		return s2dm.TypeWrapperNonNull
	case ShapeList:
		return s2dm.TypeWrapperList
	case ShapeListOfNonNull:
		return s2dm.TypeWrapperListOfNonNull
	case ShapeNonNullList:
		return s2dm.TypeWrapperNonNullList
	case ShapeNonNullListOfNonNull:
		return s2dm.TypeWrapperNonNullListOfNonNull
	}
	return ""
}

// UnsupportedShapeError reports a type signature outside the six recognized
// wrapper patterns, e.g. a nested list.
type UnsupportedShapeError struct {
	Path      string // qualified path of the field, when known
	Signature string // rendered signature, e.g. "[[Door]]"
}

func (e *UnsupportedShapeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported type wrapper shape %q on %s", e.Signature, e.Path)
	}
	return fmt.Sprintf("unsupported type wrapper shape %q", e.Signature)
}

// Classify reduces a raw type signature to exactly one wrapper shape and the
// resolved base type name. Only single-level lists are supported; nested
// lists return an UnsupportedShapeError. Classify is a pure function.
func Classify(t *TypeRef) (WrapperShape, string, error) {
	if t == nil {
		return "", "", &UnsupportedShapeError{Signature: ""}
	}

	if t.Elem == nil {
		if t.NonNull {
			return ShapeNonNull, t.Name, nil
		}
		return ShapeBare, t.Name, nil
	}

	elem := t.Elem
	if elem.Elem != nil {
		return "", "", &UnsupportedShapeError{Signature: t.String()}
	}

	switch {
	case t.NonNull && elem.NonNull:
		return ShapeNonNullListOfNonNull, elem.Name, nil
	case t.NonNull:
		return ShapeNonNullList, elem.Name, nil
	case elem.NonNull:
		return ShapeListOfNonNull, elem.Name, nil
	default:
		return ShapeList, elem.Name, nil
	}
}
