package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/c360studio/semschema/graph"
)

// WriteArtifacts writes the two RDF artifacts for a run: sorted N-Triples
// (<base>.nt) and grouped Turtle (<base>.ttl) under dir, creating it if
// needed. Both renderings complete in memory before any file is touched, so
// a serialization failure never leaves a partial artifact behind.
func WriteArtifacts(dir, base string, set *graph.Set, prefixes Prefixes) (ntPath, ttlPath string, err error) {
	nt := SortedNTriples(set)
	ttl := Turtle(set, prefixes)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	ntPath = filepath.Join(dir, base+".nt")
	if err := os.WriteFile(ntPath, []byte(nt), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", ntPath, err)
	}

	ttlPath = filepath.Join(dir, base+".ttl")
	if err := os.WriteFile(ttlPath, []byte(ttl), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", ttlPath, err)
	}

	return ntPath, ttlPath, nil
}
