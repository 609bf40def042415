package schema

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		ref       *TypeRef
		wantShape WrapperShape
		wantBase  string
	}{
		{
			name:      "bare",
			ref:       NamedType("Door"),
			wantShape: ShapeBare,
			wantBase:  "Door",
		},
		{
			name:      "non-null",
			ref:       NonNullNamedType("String"),
			wantShape: ShapeNonNull,
			wantBase:  "String",
		},
		{
			name:      "list",
			ref:       ListType(NamedType("Door")),
			wantShape: ShapeList,
			wantBase:  "Door",
		},
		{
			name:      "list of non-null",
			ref:       ListType(NonNullNamedType("Door")),
			wantShape: ShapeListOfNonNull,
			wantBase:  "Door",
		},
		{
			name:      "non-null list",
			ref:       NonNullListType(NamedType("Door")),
			wantShape: ShapeNonNullList,
			wantBase:  "Door",
		},
		{
			name:      "non-null list of non-null",
			ref:       NonNullListType(NonNullNamedType("Door")),
			wantShape: ShapeNonNullListOfNonNull,
			wantBase:  "Door",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, base, err := Classify(tt.ref)
			if err != nil {
				t.Fatalf("Classify(%s) returned error: %v", tt.ref, err)
			}
			if shape != tt.wantShape {
				t.Errorf("Classify(%s) shape = %s, want %s", tt.ref, shape, tt.wantShape)
			}
			if base != tt.wantBase {
				t.Errorf("Classify(%s) base = %s, want %s", tt.ref, base, tt.wantBase)
			}
		})
	}
}

func TestClassifyNestedListUnsupported(t *testing.T) {
	refs := []*TypeRef{
		ListType(ListType(NamedType("Door"))),                           // [[Door]]
		NonNullListType(ListType(NamedType("Door"))),                    // [[Door]]!
		ListType(NonNullListType(NonNullNamedType("Door"))),             // [[Door!]!]
		NonNullListType(NonNullListType(NonNullNamedType("Door"))),      // [[Door!]!]!
		ListType(ListType(ListType(NamedType("Door")))),                 // [[[Door]]]
	}

	for _, ref := range refs {
		_, _, err := Classify(ref)
		if err == nil {
			t.Fatalf("Classify(%s) should fail for nested lists", ref)
		}
		var shapeErr *UnsupportedShapeError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("Classify(%s) error = %T, want *UnsupportedShapeError", ref, err)
		}
		if shapeErr.Signature != ref.String() {
			t.Errorf("error signature = %q, want %q", shapeErr.Signature, ref.String())
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	ref := NonNullListType(NonNullNamedType("Door"))
	for i := 0; i < 3; i++ {
		shape, base, err := Classify(ref)
		if err != nil || shape != ShapeNonNullListOfNonNull || base != "Door" {
			t.Fatalf("call %d: Classify changed behavior: %s %s %v", i, shape, base, err)
		}
	}
}

func TestWrapperShapeTerms(t *testing.T) {
	shapes := []WrapperShape{
		ShapeBare, ShapeNonNull, ShapeList,
		ShapeListOfNonNull, ShapeNonNullList, ShapeNonNullListOfNonNull,
	}
	seen := make(map[string]WrapperShape)
	for _, s := range shapes {
		term := s.Term()
		if term == "" {
			t.Errorf("shape %s has no ontology term", s)
		}
		if prev, dup := seen[term]; dup {
			t.Errorf("shapes %s and %s share term %s", prev, s, term)
		}
		seen[term] = s
	}
}

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		ref  *TypeRef
		want string
	}{
		{NamedType("Door"), "Door"},
		{NonNullNamedType("Door"), "Door!"},
		{ListType(NamedType("Door")), "[Door]"},
		{ListType(NonNullNamedType("Door")), "[Door!]"},
		{NonNullListType(NamedType("Door")), "[Door]!"},
		{NonNullListType(NonNullNamedType("Door")), "[Door!]!"},
		{ListType(ListType(NamedType("Door"))), "[[Door]]"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
