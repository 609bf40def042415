package graph

import (
	"errors"
	"runtime"
	"strings"
	"sync"

	"github.com/c360studio/semschema/schema"
	"github.com/c360studio/semschema/vocabulary/s2dm"
	"github.com/c360studio/semschema/vocabulary/w3c"
)

// Options is the read-only configuration shared by all emission work.
type Options struct {
	// Namespace is the concept URI namespace, an absolute IRI ending in a
	// separator.
	Namespace string

	// Language is the BCP 47 tag applied to every skos:prefLabel.
	Language string

	// Workers bounds parallel per-definition emission. Zero means one worker
	// per CPU.
	Workers int
}

// fragment is the emission result for a single type definition: its triples
// plus the qualified paths of every concept it declares. Paths feed the
// duplicate check at the merge boundary.
type fragment struct {
	index   int
	paths   []string
	triples []Triple
}

// Materialize produces the complete triple set for a schema model.
//
// Each definition is emitted independently on a bounded worker pool; the
// fragments merge at a single synchronization point where duplicate
// qualified paths surface as DuplicateDefinitionError. Any classification or
// minting error aborts the whole run: no partial set is ever returned.
//
// A field whose output type is an excluded root operation type still gets
// its reference triple; only the excluded type's own concept declaration is
// suppressed (that happens at extraction). Whether such a field is valid at
// all is an upstream validation concern.
func Materialize(model *schema.Model, opts Options) (*Set, error) {
	set := &Set{}
	if model.Empty() {
		return set, nil
	}

	minter := NewIRIMinter(opts.Namespace)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(model.Definitions) {
		workers = len(model.Definitions)
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		fragments = make([]fragment, len(model.Definitions))
		firstErr  error
	)

	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frag, err := emitDefinition(model.Definitions[i], minter, opts.Language)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				frag.index = i
				fragments[i] = frag
				mu.Unlock()
			}
		}()
	}
	for i := range model.Definitions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	// Merge boundary: duplicate-path detection, then the set is sealed.
	declared := make(map[string]bool)
	for _, frag := range fragments {
		for _, p := range frag.paths {
			if declared[p] {
				return nil, &DuplicateDefinitionError{Path: p}
			}
			declared[p] = true
		}
		set.Add(frag.triples...)
	}
	return set, nil
}

// emitDefinition applies the fixed triple pattern for one definition kind.
func emitDefinition(def *schema.Definition, minter *IRIMinter, lang string) (fragment, error) {
	var frag fragment

	typeURI, err := minter.TypeURI(def.Name)
	if err != nil {
		return frag, err
	}
	frag.paths = append(frag.paths, def.Name)

	class, ok := classFor(def.Kind)
	if !ok {
		return frag, nil
	}
	frag.triples = append(frag.triples, conceptHeader(typeURI, def.Name, def.Description, class, lang)...)

	switch def.Kind {
	case schema.KindObject, schema.KindInterface, schema.KindInputObject:
		if err := emitFields(def, typeURI, minter, lang, &frag); err != nil {
			return frag, err
		}

	case schema.KindUnion:
		for _, member := range def.Members {
			memberURI, err := minter.TypeURI(member)
			if err != nil {
				return frag, err
			}
			frag.triples = append(frag.triples, Triple{
				Subject:   typeURI,
				Predicate: s2dm.PropHasUnionMember,
				Object:    IRITerm(memberURI),
			})
		}

	case schema.KindEnum:
		for _, value := range def.Values {
			valueURI, err := minter.EnumValueURI(def.Name, value.Name)
			if err != nil {
				return frag, err
			}
			path := def.Name + pathSeparator + value.Name
			frag.paths = append(frag.paths, path)
			frag.triples = append(frag.triples, Triple{
				Subject:   typeURI,
				Predicate: s2dm.PropHasEnumValue,
				Object:    IRITerm(valueURI),
			})
			frag.triples = append(frag.triples, conceptHeader(valueURI, path, "", s2dm.ClassEnumValue, lang)...)
		}
	}

	return frag, nil
}

// emitFields emits the hasField listing plus one field concept per field.
func emitFields(def *schema.Definition, typeURI string, minter *IRIMinter, lang string, frag *fragment) error {
	for _, field := range def.Fields {
		path := def.Name + pathSeparator + field.Name

		shape, baseType, err := schema.Classify(field.Type)
		if err != nil {
			var shapeErr *schema.UnsupportedShapeError
			if errors.As(err, &shapeErr) {
				shapeErr.Path = path
			}
			return err
		}

		fieldURI, err := minter.FieldURI(def.Name, field.Name)
		if err != nil {
			return err
		}
		outputURI, err := minter.OutputTypeURI(baseType)
		if err != nil {
			return err
		}

		frag.paths = append(frag.paths, path)
		frag.triples = append(frag.triples, Triple{
			Subject:   typeURI,
			Predicate: s2dm.PropHasField,
			Object:    IRITerm(fieldURI),
		})
		frag.triples = append(frag.triples, conceptHeader(fieldURI, path, "", s2dm.ClassField, lang)...)
		frag.triples = append(frag.triples,
			Triple{Subject: fieldURI, Predicate: s2dm.PropHasOutputType, Object: IRITerm(outputURI)},
			Triple{Subject: fieldURI, Predicate: s2dm.PropUsesTypeWrapperPattern, Object: IRITerm(shape.Term())},
		)
	}
	return nil
}

// conceptHeader emits the SKOS skeleton shared by every concept: the
// skos:Concept and kind class assertions, the language-tagged prefLabel,
// and the definition when a non-blank description exists.
func conceptHeader(subject, label, description, class, lang string) []Triple {
	triples := []Triple{
		{Subject: subject, Predicate: w3c.RDFType, Object: IRITerm(w3c.SKOSConcept)},
		{Subject: subject, Predicate: w3c.RDFType, Object: IRITerm(class)},
		{Subject: subject, Predicate: w3c.SKOSPrefLabel, Object: LangLiteralTerm(label, lang)},
	}
	if strings.TrimSpace(description) != "" {
		triples = append(triples, Triple{
			Subject:   subject,
			Predicate: w3c.SKOSDefinition,
			Object:    LiteralTerm(description),
		})
	}
	return triples
}

func classFor(kind schema.Kind) (string, bool) {
	switch kind {
	case schema.KindObject:
		return s2dm.ClassObjectType, true
	case schema.KindInterface:
		return s2dm.ClassInterfaceType, true
	case schema.KindInputObject:
		return s2dm.ClassInputObjectType, true
	case schema.KindUnion:
		return s2dm.ClassUnionType, true
	case schema.KindEnum:
		return s2dm.ClassEnumType, true
	case schema.KindScalar:
		return s2dm.ClassScalarType, true
	}
	return "", false
}
