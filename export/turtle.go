package export

import (
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/semschema/graph"
	"github.com/c360studio/semschema/vocabulary/s2dm"
	"github.com/c360studio/semschema/vocabulary/w3c"
)

// Prefixes maps prefix names to namespace IRIs for the grouped form.
type Prefixes map[string]string

// DefaultPrefixes returns the standard prefix table plus the user namespace
// under the configured prefix.
func DefaultPrefixes(userPrefix, namespace string) Prefixes {
	return Prefixes{
		"rdf":      w3c.RDFNamespace,
		"skos":     w3c.SKOSNamespace,
		"s2dm":     s2dm.Namespace,
		userPrefix: namespace,
	}
}

// predicateRank fixes the order of predicate groups inside a subject block:
// rdf:type first, then the SKOS header, then the s2dm structural predicates
// in their emission declaration order. Unranked predicates sort last,
// alphabetically.
var predicateRank = map[string]int{
	w3c.RDFType:                     0,
	w3c.SKOSPrefLabel:               1,
	w3c.SKOSDefinition:              2,
	s2dm.PropHasField:               3,
	s2dm.PropHasOutputType:          4,
	s2dm.PropUsesTypeWrapperPattern: 5,
	s2dm.PropHasUnionMember:         6,
	s2dm.PropHasEnumValue:           7,
}

const unrankedPredicate = 8

// Turtle renders the grouped human-readable form: sorted prefix
// declarations, then one block per subject in flat-form subject order.
// Multi-object predicates are comma-separated; every block ends with a
// period.
func Turtle(set *graph.Set, prefixes Prefixes) string {
	var sb strings.Builder

	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString("@prefix ")
		sb.WriteString(name)
		sb.WriteString(": <")
		sb.WriteString(prefixes[name])
		sb.WriteString("> .\n")
	}

	bySubject := make(map[string][]graph.Triple)
	for _, t := range set.Triples() {
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}

	for _, subject := range set.Subjects() {
		sb.WriteString("\n")
		writeSubjectBlock(&sb, subject, bySubject[subject], prefixes)
	}
	return sb.String()
}

// predicateGroup is one predicate with its objects, already ordered.
type predicateGroup struct {
	predicate string
	objects   []graph.Term
}

func writeSubjectBlock(sb *strings.Builder, subject string, triples []graph.Triple, prefixes Prefixes) {
	groups := groupPredicates(triples)

	sb.WriteString(abbreviate(subject, prefixes))
	sb.WriteString("\n")

	for i, g := range groups {
		sb.WriteString("    ")
		if g.predicate == w3c.RDFType {
			sb.WriteString("a")
		} else {
			sb.WriteString(abbreviate(g.predicate, prefixes))
		}
		for j, o := range g.objects {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
			sb.WriteString(renderTurtleObject(o, prefixes))
		}
		if i < len(groups)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// groupPredicates collapses a subject's triples into ordered predicate
// groups. Objects within a group order by their full (unabbreviated)
// rendering, which keeps skos:Concept ahead of the s2dm class in every
// rdf:type group.
func groupPredicates(triples []graph.Triple) []predicateGroup {
	byPredicate := make(map[string][]graph.Term)
	var order []string
	for _, t := range triples {
		if _, ok := byPredicate[t.Predicate]; !ok {
			order = append(order, t.Predicate)
		}
		byPredicate[t.Predicate] = append(byPredicate[t.Predicate], t.Object)
	}

	sort.Slice(order, func(i, j int) bool {
		ri, rj := rankOf(order[i]), rankOf(order[j])
		if ri != rj {
			return ri < rj
		}
		return order[i] < order[j]
	})

	groups := make([]predicateGroup, 0, len(order))
	for _, p := range order {
		objects := byPredicate[p]
		sort.Slice(objects, func(i, j int) bool {
			return renderObject(objects[i]) < renderObject(objects[j])
		})
		groups = append(groups, predicateGroup{predicate: p, objects: objects})
	}
	return groups
}

func rankOf(predicate string) int {
	if r, ok := predicateRank[predicate]; ok {
		return r
	}
	return unrankedPredicate
}

func renderTurtleObject(o graph.Term, prefixes Prefixes) string {
	if o.Literal {
		return renderObject(o)
	}
	return abbreviate(o.Value, prefixes)
}

// safeLocal matches local names that are safe to abbreviate in Turtle.
// Conservative subset of PN_LOCAL: dots may appear mid-name (Cabin.doors)
// but never lead or trail.
var safeLocal = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// abbreviate renders an IRI with its prefix when one matches and the local
// part is Turtle-safe; otherwise the full IRI in angle brackets. Longest
// namespace wins so a user namespace nested under another prefix resolves
// consistently.
func abbreviate(iri string, prefixes Prefixes) string {
	bestName, bestNS := "", ""
	for name, ns := range prefixes {
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		// Longest namespace wins; ties break on prefix name for determinism.
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && name < bestName) {
			bestName, bestNS = name, ns
		}
	}
	if bestNS == "" {
		return "<" + iri + ">"
	}
	local := iri[len(bestNS):]
	if local == "" || !safeLocal.MatchString(local) || strings.HasSuffix(local, ".") {
		return "<" + iri + ">"
	}
	return bestName + ":" + local
}
