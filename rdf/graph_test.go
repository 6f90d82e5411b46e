package rdf

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"g2p/api/models/constants/ontology"
	errors "g2p/api/models/errors"
	"g2p/api/tests/common"
)

func TestLoadGraph(t *testing.T) {
	g, err := NewGraph(common.DataPath())
	assert.NoError(t, err)

	t.Run("should load every triple of the fixture graph", func(t *testing.T) {
		assert.Greater(t, g.Len(), 0)

		associations := g.Subjects(ontology.RdfType, ontology.Association)
		assert.Len(t, associations, 4)
	})

	t.Run("should carry the published graph version", func(t *testing.T) {
		assert.Equal(t, "2026-08-01", g.Version())
	})

	t.Run("should recover the prefix declarations", func(t *testing.T) {
		prefixes := []string{}
		for _, namespace := range g.Namespaces() {
			prefixes = append(prefixes, namespace.Prefix)
		}
		assert.Contains(t, prefixes, "CGD")
		assert.Contains(t, prefixes, "DrugBank")
		assert.Contains(t, prefixes, "OBAN")
	})

	t.Run("should answer triple patterns with wildcards", func(t *testing.T) {
		label, ok := g.First("http://ohsu.edu/cgd/KIT_D816V", ontology.RdfsLabel)
		assert.True(t, ok)
		assert.Equal(t, "KIT D816V missense mutation", label)

		sources := g.Objects("http://ohsu.edu/cgd/assoc3", ontology.DcSource)
		assert.Len(t, sources, 2)

		_, ok = g.First("http://ohsu.edu/cgd/assoc1", "http://example.org/no-such-predicate")
		assert.False(t, ok)
	})
}

func TestFirstLiteral(t *testing.T) {
	g, err := NewGraph("")
	assert.NoError(t, err)

	// an entity-valued rdfs:label must never be taken for a label
	g.AddTriple("http://example.org/s", ontology.RdfsLabel, "http://example.org/not-a-label", false)
	g.AddTriple("http://example.org/s", ontology.RdfsLabel, "a label", true)

	t.Run("should skip entity-valued objects", func(t *testing.T) {
		label, ok := g.FirstLiteral("http://example.org/s", ontology.RdfsLabel)
		assert.True(t, ok)
		assert.Equal(t, "a label", label)
	})

	t.Run("should report absence when only entities are bound", func(t *testing.T) {
		g.AddTriple("http://example.org/t", ontology.RdfsLabel, "http://example.org/other-entity", false)

		_, ok := g.FirstLiteral("http://example.org/t", ontology.RdfsLabel)
		assert.False(t, ok)
	})
}

func TestLoadGraphMalformedFile(t *testing.T) {
	dataDir := t.TempDir()
	malformed := path.Join(dataDir, "malformed.ttl")
	assert.NoError(t, os.WriteFile(malformed, []byte("@prefix broken <<< ."), 0644))

	_, err := NewGraph(dataDir)
	assert.Error(t, err)
	assert.True(t, errors.IsParseError(err))
}

func TestExpandTerm(t *testing.T) {
	g, err := NewGraph(common.DataPath())
	assert.NoError(t, err)

	t.Run("should expand a term through a declared prefix", func(t *testing.T) {
		uri, expandErr := g.ExpandTerm("DrugBank:DB00619")
		assert.NoError(t, expandErr)
		assert.Equal(t, "http://www.drugbank.ca/drugs/DB00619", uri)
	})

	t.Run("should reject a term with an undeclared prefix", func(t *testing.T) {
		_, expandErr := g.ExpandTerm("NOPE:123")
		assert.Error(t, expandErr)
		assert.True(t, errors.IsNotSupported(expandErr))
	})

	t.Run("should reject a term without a prefix", func(t *testing.T) {
		_, expandErr := g.ExpandTerm("DB00619")
		assert.Error(t, expandErr)
		assert.True(t, errors.IsNotSupported(expandErr))
	})
}

func TestNamespaceLookups(t *testing.T) {
	g, err := NewGraph(common.DataPath())
	assert.NoError(t, err)

	t.Run("should resolve a full uri to its prefix", func(t *testing.T) {
		prefix, prefixErr := g.PrefixForUri("http://www.drugbank.ca/drugs/DB00619")
		assert.NoError(t, prefixErr)
		assert.Equal(t, "DrugBank", prefix)
	})

	t.Run("should extract the identifier portion of a full uri", func(t *testing.T) {
		assert.Equal(t, "DB00619", g.IdentifierForUri("http://www.drugbank.ca/drugs/DB00619"))
		assert.Equal(t, "", g.IdentifierForUri("http://example.org/unknown/namespace"))
	})

	t.Run("should fail on a uri outside every namespace", func(t *testing.T) {
		_, prefixErr := g.PrefixForUri("http://example.org/unknown/namespace")
		assert.Error(t, prefixErr)
		assert.True(t, errors.IsNotSupported(prefixErr))
	})
}
