package schema

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// introspectionPrefix marks reserved introspection type names (__Type, __Schema, ...).
const introspectionPrefix = "__"

// Extract builds the normalized model from a parsed schema. Root operation
// types, built-in types, and introspection types contribute no definitions;
// references to them from retained fields are left intact for the emitter to
// resolve. Field and enum value order follows declaration order.
func Extract(s *ast.Schema) *Model {
	model := &Model{}
	roots := rootTypeNames(s)

	for name, def := range s.Types {
		if def.BuiltIn || roots[name] || strings.HasPrefix(name, introspectionPrefix) {
			continue
		}

		kind, ok := kindOf(def.Kind)
		if !ok {
			continue
		}

		d := &Definition{
			Kind:        kind,
			Name:        name,
			Description: def.Description,
		}

		switch kind {
		case KindObject, KindInterface, KindInputObject:
			for _, f := range def.Fields {
				if strings.HasPrefix(f.Name, introspectionPrefix) {
					continue
				}
				d.Fields = append(d.Fields, &FieldDefinition{
					Name: f.Name,
					Type: convertType(f.Type),
				})
			}
		case KindUnion:
			d.Members = append(d.Members, def.Types...)
		case KindEnum:
			for _, v := range def.EnumValues {
				d.Values = append(d.Values, &EnumValueDefinition{Name: v.Name})
			}
		}

		model.Definitions = append(model.Definitions, d)
	}

	model.Sort()
	return model
}

// rootTypeNames collects the names of the schema's root operation types.
func rootTypeNames(s *ast.Schema) map[string]bool {
	roots := make(map[string]bool, 3)
	for _, def := range []*ast.Definition{s.Query, s.Mutation, s.Subscription} {
		if def != nil {
			roots[def.Name] = true
		}
	}
	return roots
}

func kindOf(k ast.DefinitionKind) (Kind, bool) {
	switch k {
	case ast.Object:
		return KindObject, true
	case ast.Interface:
		return KindInterface, true
	case ast.InputObject:
		return KindInputObject, true
	case ast.Union:
		return KindUnion, true
	case ast.Enum:
		return KindEnum, true
	case ast.Scalar:
		return KindScalar, true
	}
	return "", false
}

func convertType(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	return &TypeRef{
		Name:    t.NamedType,
		Elem:    convertType(t.Elem),
		NonNull: t.NonNull,
	}
}
