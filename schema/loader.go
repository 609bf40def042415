package schema

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// sdlGlob matches GraphQL SDL files under a directory.
const sdlGlob = "**/*.{graphql,graphqls}"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// ResolveSources expands a list of schema sources (files, directories, or
// http(s) URLs) into a concrete list of SDL file paths. Directories are
// searched recursively; URLs are downloaded to a temp file. The result is
// sorted and de-duplicated so source order never affects the run.
func ResolveSources(sources []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, src := range sources {
		if IsURL(src) {
			tmp, err := downloadSchema(src)
			if err != nil {
				return nil, err
			}
			add(tmp)
			continue
		}

		info, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("stat schema source %s: %w", src, err)
		}

		if !info.IsDir() {
			add(src)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(src), sdlGlob)
		if err != nil {
			return nil, fmt.Errorf("glob schema files under %s: %w", src, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no .graphql or .graphqls files under %s", src)
		}
		for _, m := range matches {
			add(filepath.Join(src, m))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Load parses the given SDL files as one schema using gqlparser.
func Load(paths []string) (*ast.Schema, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files to load")
	}

	sources := make([]*ast.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", path, err)
		}
		sources = append(sources, &ast.Source{Name: path, Input: string(data)})
	}

	s, gqlErr := gqlparser.LoadSchema(sources...)
	if gqlErr != nil {
		return nil, fmt.Errorf("parse GraphQL schema: %w", gqlErr)
	}
	return s, nil
}

// LoadModel resolves, parses, and extracts in one step.
func LoadModel(sources []string) (*Model, error) {
	paths, err := ResolveSources(sources)
	if err != nil {
		return nil, err
	}
	s, err := Load(paths)
	if err != nil {
		return nil, err
	}
	return Extract(s), nil
}

// IsURL reports whether a schema source is an http(s) URL rather than a
// filesystem path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// downloadSchema fetches a schema from a URL into a temp file and returns
// its path. The temp file lives for the remainder of the run.
func downloadSchema(url string) (string, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("download schema %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download schema %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp("", "semschema-*.graphql")
	if err != nil {
		return "", fmt.Errorf("create temp schema file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp schema file: %w", err)
	}
	return tmp.Name(), nil
}
