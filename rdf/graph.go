package rdf

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	knakk "github.com/knakk/rdf"
	"golang.org/x/sync/errgroup"

	"g2p/api/models/constants"
	graphFileFormat "g2p/api/models/constants/graph-file-format"
	"g2p/api/models/constants/ontology"
	errors "g2p/api/models/errors"
)

/*
	In-memory triple store over a directory of serialized
	RDF graph files. The graph is built once at construction
	and treated as read-only thereafter, so concurrent query
	execution by multiple callers is safe.
*/

type Triple struct {
	Subject   string
	Predicate string
	Object    string
	// IsLiteral reports whether Object was a literal in the source
	IsLiteral bool
}

type Graph struct {
	triples    []Triple
	bySubject  map[string][]int
	namespaces []Namespace
	version    string
}

// NewGraph scans dataDir for .ttl and .xml graph files and parses
// each into the graph. An empty dataDir yields an empty graph the
// caller can pre-seed with AddTriple (used only for isolated testing).
func NewGraph(dataDir string) (*Graph, error) {
	g := &Graph{
		bySubject: map[string][]int{},
	}
	if dataDir == "" {
		return g, nil
	}

	fileNames, err := scanDataFiles(dataDir)
	if err != nil {
		return nil, err
	}

	// parse files concurrently; the graph itself is only
	// touched under the mutex
	var (
		eg  errgroup.Group
		mux sync.Mutex
	)
	for _, fileName := range fileNames {
		fileName := fileName
		eg.Go(func() error {
			triples, namespaces, parseErr := parseDataFile(fileName)
			if parseErr != nil {
				return parseErr
			}

			mux.Lock()
			defer mux.Unlock()
			for _, triple := range triples {
				g.appendTriple(triple)
			}
			for _, namespace := range namespaces {
				g.AddNamespace(namespace.Prefix, namespace.Url)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// extract the published graph's version annotation
	if versions := g.Objects(ontology.CgdTtl, ontology.OwlVersionInfo); len(versions) > 0 {
		g.version = versions[0]
	}

	return g, nil
}

// scanDataFiles collects the recognized graph files under
// dataDir, non-recursively
func scanDataFiles(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, err
	}

	fileNames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch constants.GraphFileFormat(filepath.Ext(entry.Name())) {
		case graphFileFormat.Turtle, graphFileFormat.RdfXml:
			fileNames = append(fileNames, filepath.Join(dataDir, entry.Name()))
		}
	}
	return fileNames, nil
}

func parseDataFile(fileName string) ([]Triple, []Namespace, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	format := knakk.Turtle
	if constants.GraphFileFormat(filepath.Ext(fileName)) == graphFileFormat.RdfXml {
		format = knakk.RDFXML
	}

	var triples []Triple
	dec := knakk.NewTripleDecoder(f, format)
	for {
		triple, decodeErr := dec.Decode()
		if decodeErr == io.EOF {
			break
		}
		if decodeErr != nil {
			return nil, nil, &errors.ParseError{Path: fileName, Err: decodeErr}
		}
		triples = append(triples, Triple{
			Subject:   triple.Subj.String(),
			Predicate: triple.Pred.String(),
			Object:    triple.Obj.String(),
			IsLiteral: triple.Obj.Type() == knakk.TermLiteral,
		})
	}

	// the decoder does not expose the files' prefix declarations,
	// so those are recovered with a second, line-level pass
	namespaces, nsErr := scanNamespaces(fileName)
	if nsErr != nil {
		return nil, nil, &errors.ParseError{Path: fileName, Err: nsErr}
	}

	return triples, namespaces, nil
}

func (g *Graph) appendTriple(triple Triple) {
	g.bySubject[triple.Subject] = append(g.bySubject[triple.Subject], len(g.triples))
	g.triples = append(g.triples, triple)
}

// AddTriple seeds the graph directly, bypassing file parsing.
// Only meaningful before the graph is handed out for querying.
func (g *Graph) AddTriple(subject string, predicate string, object string, isLiteral bool) {
	g.appendTriple(Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		IsLiteral: isLiteral,
	})
}

// Triples returns every triple matching the given pattern;
// an empty string matches any term in that position.
func (g *Graph) Triples(subject string, predicate string, object string) []Triple {
	matched := []Triple{}

	appendMatching := func(triple Triple) {
		if predicate != "" && triple.Predicate != predicate {
			return
		}
		if object != "" && triple.Object != object {
			return
		}
		matched = append(matched, triple)
	}

	if subject != "" {
		for _, i := range g.bySubject[subject] {
			appendMatching(g.triples[i])
		}
		return matched
	}
	for _, triple := range g.triples {
		appendMatching(triple)
	}
	return matched
}

// Objects returns the object of every (subject, predicate, ?) triple
func (g *Graph) Objects(subject string, predicate string) []string {
	var objects []string
	for _, triple := range g.Triples(subject, predicate, "") {
		objects = append(objects, triple.Object)
	}
	return objects
}

// First returns the first object of (subject, predicate, ?), if any
func (g *Graph) First(subject string, predicate string) (string, bool) {
	objects := g.Objects(subject, predicate)
	if len(objects) == 0 {
		return "", false
	}
	return objects[0], true
}

// FirstLiteral returns the first literal object of (subject,
// predicate, ?), if any; entity-valued objects are skipped
func (g *Graph) FirstLiteral(subject string, predicate string) (string, bool) {
	for _, triple := range g.Triples(subject, predicate, "") {
		if triple.IsLiteral {
			return triple.Object, true
		}
	}
	return "", false
}

// Subjects returns every distinct subject of (?, predicate, object)
func (g *Graph) Subjects(predicate string, object string) []string {
	var (
		subjects []string
		seen     = map[string]bool{}
	)
	for _, triple := range g.Triples("", predicate, object) {
		if seen[triple.Subject] {
			continue
		}
		seen[triple.Subject] = true
		subjects = append(subjects, triple.Subject)
	}
	return subjects
}

func (g *Graph) Len() int {
	return len(g.triples)
}

func (g *Graph) Version() string {
	return g.version
}
