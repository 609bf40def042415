package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/c360studio/semschema/schema"
)

func parse(t *testing.T, sdl string) *ast.Schema {
	t.Helper()
	s, err := gqlparser.LoadSchema(&ast.Source{Name: "test.graphql", Input: sdl})
	require.Nil(t, err, "schema must parse")
	return s
}

const cabinSDL = `
type Query { cabin: Cabin }

"Interior compartment of the vehicle."
type Cabin {
	kind: CabinKindEnum
	doors: [Door]
}

enum CabinKindEnum {
	SUV
	VAN
}

type Door {
	isOpen: Boolean
	window: Window
}

type Window {
	isTinted: Boolean
}
`

func findDef(t *testing.T, m *schema.Model, name string) *schema.Definition {
	t.Helper()
	for _, d := range m.Definitions {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("definition %s not found", name)
	return nil
}

func TestExtractObjectTypesWithFields(t *testing.T) {
	model := schema.Extract(parse(t, cabinSDL))

	cabin := findDef(t, model, "Cabin")
	assert.Equal(t, schema.KindObject, cabin.Kind)
	assert.Equal(t, "Interior compartment of the vehicle.", cabin.Description)

	require.Len(t, cabin.Fields, 2)
	// Declaration order is preserved.
	assert.Equal(t, "kind", cabin.Fields[0].Name)
	assert.Equal(t, "doors", cabin.Fields[1].Name)
	assert.Equal(t, "[Door]", cabin.Fields[1].Type.String())
}

func TestExtractExcludesRootAndIntrospectionTypes(t *testing.T) {
	model := schema.Extract(parse(t, `
		schema { query: RootQ mutation: RootM }
		type RootQ { cabin: Cabin }
		type RootM { touch: Boolean }
		type Cabin { isLocked: Boolean }
	`))

	names := make([]string, 0, len(model.Definitions))
	for _, d := range model.Definitions {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Cabin"}, names, "root operation and builtin types must be excluded")
}

func TestExtractOnlyRootTypesYieldsEmptyModel(t *testing.T) {
	model := schema.Extract(parse(t, `type Query { ok: Boolean }`))
	assert.True(t, model.Empty())
}

func TestExtractEnumValuesInOrder(t *testing.T) {
	model := schema.Extract(parse(t, cabinSDL))

	enum := findDef(t, model, "CabinKindEnum")
	require.Equal(t, schema.KindEnum, enum.Kind)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "SUV", enum.Values[0].Name)
	assert.Equal(t, "VAN", enum.Values[1].Name)
}

func TestExtractInterfaceAndInput(t *testing.T) {
	model := schema.Extract(parse(t, `
		type Query { x: Node }
		interface Node { id: ID! name: String }
		type User implements Node { id: ID! name: String }
		input CreateUserInput { name: String! email: String }
	`))

	node := findDef(t, model, "Node")
	assert.Equal(t, schema.KindInterface, node.Kind)
	require.Len(t, node.Fields, 2)
	assert.Equal(t, "ID!", node.Fields[0].Type.String())

	input := findDef(t, model, "CreateUserInput")
	assert.Equal(t, schema.KindInputObject, input.Kind)
	require.Len(t, input.Fields, 2)
	assert.Equal(t, "String!", input.Fields[0].Type.String())
}

func TestExtractUnionMembers(t *testing.T) {
	model := schema.Extract(parse(t, `
		type Query { x: SearchResult }
		union SearchResult = User | Post
		type User { id: ID }
		type Post { id: ID }
	`))

	union := findDef(t, model, "SearchResult")
	require.Equal(t, schema.KindUnion, union.Kind)
	assert.ElementsMatch(t, []string{"User", "Post"}, union.Members)
}

func TestExtractCustomScalar(t *testing.T) {
	model := schema.Extract(parse(t, `
		type Query { at: Timestamp }
		scalar Timestamp
	`))

	ts := findDef(t, model, "Timestamp")
	assert.Equal(t, schema.KindScalar, ts.Kind)
	assert.Empty(t, ts.Fields)
}

func TestExtractBuiltinScalarsNotRetained(t *testing.T) {
	model := schema.Extract(parse(t, `type Query { n: Int s: String }`))
	assert.True(t, model.Empty(), "built-in scalars must never become definitions")
}

func TestExtractModelSortedByName(t *testing.T) {
	model := schema.Extract(parse(t, cabinSDL))
	for i := 1; i < len(model.Definitions); i++ {
		assert.Less(t, model.Definitions[i-1].Name, model.Definitions[i].Name)
	}
}
