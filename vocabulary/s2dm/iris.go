package s2dm

// Namespace is the base IRI for all s2dm ontology terms.
const Namespace = "https://covesa.global/models/s2dm#"

// Class IRIs describe the kind of schema element a concept represents.
const (
	// ClassObjectType marks a GraphQL object type concept.
	ClassObjectType = Namespace + "ObjectType"

	// ClassInterfaceType marks a GraphQL interface type concept.
	ClassInterfaceType = Namespace + "InterfaceType"

	// ClassInputObjectType marks a GraphQL input object type concept.
	ClassInputObjectType = Namespace + "InputObjectType"

	// ClassUnionType marks a GraphQL union type concept.
	ClassUnionType = Namespace + "UnionType"

	// ClassEnumType marks a GraphQL enum type concept.
	ClassEnumType = Namespace + "EnumType"

	// ClassScalarType marks a user-defined scalar type concept.
	ClassScalarType = Namespace + "ScalarType"

	// ClassField marks a field concept (Type.field).
	ClassField = Namespace + "Field"

	// ClassEnumValue marks an enum value concept (Enum.VALUE).
	ClassEnumValue = Namespace + "EnumValue"
)

// Property IRIs describe structural relationships between concepts.
const (
	// PropHasField links a field-bearing type to each of its field concepts.
	// Domain: ObjectType | InterfaceType | InputObjectType, Range: Field
	PropHasField = Namespace + "hasField"

	// PropHasOutputType links a field to the concept of its base output type.
	// Domain: Field, Range: any type concept or builtin scalar term
	PropHasOutputType = Namespace + "hasOutputType"

	// PropHasEnumValue links an enum type to each of its value concepts.
	// Domain: EnumType, Range: EnumValue
	PropHasEnumValue = Namespace + "hasEnumValue"

	// PropHasUnionMember links a union type to each member type concept.
	// Domain: UnionType, Range: ObjectType
	PropHasUnionMember = Namespace + "hasUnionMember"

	// PropUsesTypeWrapperPattern links a field to its wrapper-shape term.
	// Domain: Field, Range: one of the TypeWrapper* terms
	PropUsesTypeWrapperPattern = Namespace + "usesTypeWrapperPattern"
)

// Type-wrapper pattern IRIs, one per canonical field shape.
const (
	// TypeWrapperBare is a nullable singular element: field: T
	TypeWrapperBare = Namespace + "bare"

	// TypeWrapperNonNull is a non-null singular element: field: T!
	TypeWrapperNonNull = Namespace + "nonNull"

	// TypeWrapperList is a nullable list of nullable elements: field: [T]
	TypeWrapperList = Namespace + "list"

	// TypeWrapperListOfNonNull is a nullable list of non-null elements: field: [T!]
	TypeWrapperListOfNonNull = Namespace + "listOfNonNull"

	// TypeWrapperNonNullList is a non-null list of nullable elements: field: [T]!
	TypeWrapperNonNullList = Namespace + "nonNullList"

	// TypeWrapperNonNullListOfNonNull is a non-null list of non-null elements: field: [T!]!
	TypeWrapperNonNullListOfNonNull = Namespace + "nonNullListOfNonNull"
)

// Built-in scalar IRIs. Fields whose base type is a built-in GraphQL scalar
// point here rather than into the user namespace.
const (
	ScalarInt     = Namespace + "Int"
	ScalarFloat   = Namespace + "Float"
	ScalarString  = Namespace + "String"
	ScalarBoolean = Namespace + "Boolean"
	ScalarID      = Namespace + "ID"
)

// BuiltinScalars maps built-in GraphQL scalar names to their s2dm terms.
var BuiltinScalars = map[string]string{
	"Int":     ScalarInt,
	"Float":   ScalarFloat,
	"String":  ScalarString,
	"Boolean": ScalarBoolean,
	"ID":      ScalarID,
}

// IsBuiltinScalar reports whether name is a built-in GraphQL scalar.
func IsBuiltinScalar(name string) bool {
	_, ok := BuiltinScalars[name]
	return ok
}
