package graph

import (
	"testing"
)

func TestSetTriplesSorted(t *testing.T) {
	set := &Set{}
	set.Add(
		Triple{Subject: "b", Predicate: "p", Object: IRITerm("o")},
		Triple{Subject: "a", Predicate: "q", Object: IRITerm("o")},
		Triple{Subject: "a", Predicate: "p", Object: LiteralTerm("lit")},
		Triple{Subject: "a", Predicate: "p", Object: IRITerm("o")},
	)

	triples := set.Triples()
	if len(triples) != 4 {
		t.Fatalf("len = %d, want 4", len(triples))
	}
	for i := 1; i < len(triples); i++ {
		if !less(triples[i-1], triples[i]) {
			t.Errorf("triples %d and %d out of order: %v, %v", i-1, i, triples[i-1], triples[i])
		}
	}
	if triples[0].Subject != "a" || triples[3].Subject != "b" {
		t.Errorf("subject ordering wrong: %v", triples)
	}
}

func TestSetTriplesReturnsCopy(t *testing.T) {
	set := &Set{}
	set.Add(Triple{Subject: "a", Predicate: "p", Object: IRITerm("o")})

	first := set.Triples()
	first[0].Subject = "mutated"

	if set.Triples()[0].Subject != "a" {
		t.Error("Triples must return a copy, not the backing slice")
	}
}

func TestSetTriplesOrderedByRenderedSubject(t *testing.T) {
	// "…Cabin" is a prefix of "…Cabin.doors"; the closing '>' of the
	// rendered IRI sorts after '.', so the field subject comes first.
	set := &Set{}
	set.Add(
		Triple{Subject: testNS + "Cabin", Predicate: "p", Object: IRITerm("o")},
		Triple{Subject: testNS + "Cabin.doors", Predicate: "p", Object: IRITerm("o")},
	)

	triples := set.Triples()
	if triples[0].Subject != testNS+"Cabin.doors" {
		t.Errorf("first subject = %s, want %sCabin.doors", triples[0].Subject, testNS)
	}

	subjects := set.Subjects()
	if subjects[0] != testNS+"Cabin.doors" || subjects[1] != testNS+"Cabin" {
		t.Errorf("Subjects = %v, want field subject first", subjects)
	}
}

func TestSetSubjectsDistinctSorted(t *testing.T) {
	set := &Set{}
	set.Add(
		Triple{Subject: "b", Predicate: "p", Object: IRITerm("o")},
		Triple{Subject: "a", Predicate: "p", Object: IRITerm("o")},
		Triple{Subject: "a", Predicate: "q", Object: IRITerm("o")},
	)

	subjects := set.Subjects()
	if len(subjects) != 2 || subjects[0] != "a" || subjects[1] != "b" {
		t.Errorf("Subjects = %v, want [a b]", subjects)
	}
}

func TestObjectKeyOrdersIRIsBeforeEqualLiterals(t *testing.T) {
	// An IRI and a literal with the same value must not collide in the order.
	iri, lit := IRITerm("x"), LiteralTerm("x")
	if objectKey(iri) == objectKey(lit) {
		t.Error("IRI and literal with equal value must have distinct sort keys")
	}
}

func TestSetEmpty(t *testing.T) {
	set := &Set{}
	if !set.Empty() || set.Len() != 0 {
		t.Error("fresh set must be empty")
	}
	set.Add(Triple{Subject: "a", Predicate: "p", Object: IRITerm("o")})
	if set.Empty() || set.Len() != 1 {
		t.Error("set with one triple must not be empty")
	}
}
