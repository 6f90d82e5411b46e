package rdf

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"g2p/api/models/constants"
	graphFileFormat "g2p/api/models/constants/graph-file-format"
	errors "g2p/api/models/errors"
)

/*
	Namespace table derived from the prefix declarations of the
	loaded graph files, used bidirectionally to map a full URI
	to a short "prefix:localId" form and back.
*/

type Namespace struct {
	Prefix string
	Url    string
}

var (
	// `@prefix OBAN: <http://purl.org/oban/> .` / `PREFIX OBAN: <http://purl.org/oban/>`
	turtlePrefixPattern = regexp.MustCompile(`^\s*(?:@prefix|@PREFIX|PREFIX)\s+([A-Za-z][\w.-]*)?:\s*<([^>]+)>`)
	// `xmlns:OBAN="http://purl.org/oban/"`
	xmlPrefixPattern = regexp.MustCompile(`xmlns:([A-Za-z][\w.-]*)="([^"]+)"`)
)

func scanNamespaces(fileName string) ([]Namespace, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		namespaces []Namespace
		pattern    = turtlePrefixPattern
	)
	if constants.GraphFileFormat(filepath.Ext(fileName)) == graphFileFormat.RdfXml {
		pattern = xmlPrefixPattern
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, match := range pattern.FindAllStringSubmatch(scanner.Text(), -1) {
			if len(match) < 3 {
				continue
			}
			namespaces = append(namespaces, Namespace{
				Prefix: match[1],
				Url:    match[2],
			})
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return namespaces, nil
}

// AddNamespace binds a prefix to its URI stem; re-declarations
// of an already bound prefix are ignored
func (g *Graph) AddNamespace(prefix string, url string) {
	for _, namespace := range g.namespaces {
		if namespace.Prefix == prefix {
			return
		}
	}
	g.namespaces = append(g.namespaces, Namespace{Prefix: prefix, Url: url})
}

func (g *Graph) Namespaces() []Namespace {
	return g.namespaces
}

// ExpandTerm resolves an "prefix:localId" ontology term through the
// namespace table.
// Ex. "DrugBank:DB01268" -> "http://www.drugbank.ca/drugs/DB01268"
func (g *Graph) ExpandTerm(term string) (string, error) {
	parts := strings.SplitN(term, ":", 2)
	if len(parts) != 2 {
		return "", errors.NewNotSupportedError("term is not of the form prefix:localId. %s", term)
	}
	for _, namespace := range g.namespaces {
		if namespace.Prefix == parts[0] {
			return namespace.Url + parts[1], nil
		}
	}
	return "", errors.NewNotSupportedError("term has a prefix not found in this instance. %s", term)
}

// PrefixForUrl returns the prefix bound to the given URI stem.
// Ex. "http://www.drugbank.ca/drugs/" -> "DrugBank"
func (g *Graph) PrefixForUrl(url string) (string, error) {
	for _, namespace := range g.namespaces {
		if namespace.Url == url {
			return namespace.Prefix, nil
		}
	}
	return "", errors.NewNotSupportedError("no namespace found for url %s", url)
}

// StemForUri returns the longest namespace stem contained in the
// given URI, or "" when no namespace matches.
// Ex. "http://www.drugbank.ca/drugs/DDD" -> "http://www.drugbank.ca/drugs/"
func (g *Graph) StemForUri(uri string) string {
	stem := ""
	for _, namespace := range g.namespaces {
		if strings.Contains(uri, namespace.Url) && len(namespace.Url) > len(stem) {
			stem = namespace.Url
		}
	}
	return stem
}

// PrefixForUri resolves the namespace prefix of a full URI.
// Ex. "http://www.drugbank.ca/drugs/DB01268" -> "DrugBank"
func (g *Graph) PrefixForUri(uri string) (string, error) {
	stem := g.StemForUri(uri)
	if stem == "" {
		return "", errors.NewNotSupportedError("no namespace found for url %s", uri)
	}
	return g.PrefixForUrl(stem)
}

// IdentifierForUri returns the identifier portion of a full URI,
// or "" when no namespace matches.
// Ex. "http://www.drugbank.ca/drugs/DB01268" -> "DB01268"
func (g *Graph) IdentifierForUri(uri string) string {
	stem := g.StemForUri(uri)
	if stem == "" {
		return ""
	}
	return strings.Replace(uri, stem, "", 1)
}
