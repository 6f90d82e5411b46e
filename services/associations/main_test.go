package associations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"g2p/api/models/constants/ontology"
	errors "g2p/api/models/errors"
	"g2p/api/models/queries"
	"g2p/api/tests/common"
)

func TestPhenotypeAssociationSet(t *testing.T) {
	cfg := common.InitConfig()

	set, err := NewPhenotypeAssociationSet(cfg, "cgd", "default", common.DataPath())
	assert.NoError(t, err)

	t.Run("should reject a search without any filter", func(t *testing.T) {
		_, searchErr := set.GetAssociations(nil, nil, nil, 0, 0)
		assert.Error(t, searchErr)
		assert.True(t, errors.IsInvalidArgument(searchErr))
	})

	t.Run("should find a single association by feature label", func(t *testing.T) {
		results, searchErr := set.GetAssociations(&queries.FilterCriterion{Description: "KIT"}, nil, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 1)

		association := results[0]
		assert.Equal(t, "http://ohsu.edu/cgd/assoc1", association.Id)
		assert.Equal(t, set.Id, association.PhenotypeAssociationSetId)

		// feature
		assert.Len(t, association.Features, 1)
		assert.Equal(t, "http://ohsu.edu/cgd/KIT_D816V", association.Features[0].Id)
		assert.Equal(t, "KIT D816V missense mutation", association.Features[0].ReferenceName)
		assert.Equal(t, ontology.OBO+"SO_0001059", association.Features[0].FeatureType.Term)
		assert.Equal(t, []string{"KIT D816V missense mutation"}, association.Features[0].Attributes[ontology.RdfsLabel])

		// environment (drug)
		assert.Len(t, association.EnvironmentalContexts, 1)
		assert.Equal(t, "http://www.drugbank.ca/drugs/DB00619", association.EnvironmentalContexts[0].Id)
		assert.Equal(t, "imatinib", association.EnvironmentalContexts[0].Description)
		assert.Equal(t, ontology.IsSubstanceThatTreats, association.EnvironmentalContexts[0].EnvironmentType.Id)

		// phenotype
		assert.Equal(t, "http://ohsu.edu/cgd/GIST_decreased_sensitivity", association.Phenotype.Id)
		assert.Equal(t, "GIST with decreased sensitivity to therapy", association.Phenotype.Description)
		assert.Equal(t, ontology.OBO+"OMIM_606764", association.Phenotype.Type.Term)

		// ontology terms are attributed to the graph's namespace and version
		assert.Equal(t, "CGD", association.Phenotype.Type.SourceName)
		assert.Equal(t, "2026-08-01", association.Phenotype.Type.SourceVersion)
	})

	t.Run("should surface evidence when the has-quality entity is labelled", func(t *testing.T) {
		results, searchErr := set.GetAssociations(&queries.FilterCriterion{Description: "KIT"}, nil, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 1)

		assert.Len(t, results[0].Evidence, 1)
		assert.Equal(t, "decreased_sensitivity", results[0].Evidence[0].Description)
		assert.Equal(t, ontology.OBO+"ECO_0000033", results[0].Evidence[0].EvidenceType.Term)

		assert.Equal(t,
			"Association: genotype:[KIT D816V missense mutation]"+
				" phenotype:[GIST with decreased sensitivity to therapy]"+
				" environment:[imatinib]"+
				" evidence:[decreased_sensitivity]"+
				" publications:[http://www.ncbi.nlm.nih.gov/pubmed/12345678]",
			results[0].Description)
	})

	t.Run("should omit evidence when the has-quality entity has no label", func(t *testing.T) {
		results, searchErr := set.GetAssociations(&queries.FilterCriterion{Description: "BRAF"}, nil, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 1)

		assert.Equal(t, "http://ohsu.edu/cgd/assoc4", results[0].Id)
		assert.Len(t, results[0].Evidence, 0)
	})

	t.Run("should find associations by drug term", func(t *testing.T) {
		environment := &queries.FilterCriterion{
			Terms: []queries.OntologyTermQuery{{Term: "DrugBank:DB00619"}},
		}

		results, searchErr := set.GetAssociations(nil, environment, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 2)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc1", results[0].Id)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc2", results[1].Id)
	})

	t.Run("should find associations by external feature identifier", func(t *testing.T) {
		feature := &queries.FilterCriterion{
			Ids: []queries.ExternalIdentifier{
				{Database: "http://ohsu.edu/cgd/", Identifier: "EGFR_L858R"},
			},
		}

		results, searchErr := set.GetAssociations(feature, nil, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 1)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc3", results[0].Id)
	})

	t.Run("should reject a term with an undeclared prefix", func(t *testing.T) {
		environment := &queries.FilterCriterion{
			Terms: []queries.OntologyTermQuery{{Term: "NOPE:123"}},
		}

		_, searchErr := set.GetAssociations(nil, environment, nil, 0, 0)
		assert.Error(t, searchErr)
		assert.True(t, errors.IsNotSupported(searchErr))
	})

	t.Run("should return an empty list when nothing matches", func(t *testing.T) {
		results, searchErr := set.GetAssociations(&queries.FilterCriterion{Description: "NO_SUCH_GENE"}, nil, nil, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 0)
	})

	t.Run("should expose the graph version on the protocol element", func(t *testing.T) {
		element := set.ToProtocolElement()
		assert.Equal(t, "cgd", element.Name)
		assert.Equal(t, "default", element.DatasetId)
		assert.Equal(t, "2026-08-01", element.Info["version"])
	})
}

func TestPagination(t *testing.T) {
	cfg := common.InitConfig()

	set, err := NewPhenotypeAssociationSet(cfg, "cgd", "default", common.DataPath())
	assert.NoError(t, err)

	// three matches, stably ordered by association uri
	phenotype := &queries.FilterCriterion{Description: "sensitivity"}

	t.Run("pageSize zero returns everything", func(t *testing.T) {
		results, searchErr := set.GetAssociations(nil, nil, phenotype, 0, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 3)
	})

	t.Run("pageSize caps the window", func(t *testing.T) {
		results, searchErr := set.GetAssociations(nil, nil, phenotype, 2, 0)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 2)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc1", results[0].Id)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc2", results[1].Id)
	})

	t.Run("offset skips into the ordering", func(t *testing.T) {
		results, searchErr := set.GetAssociations(nil, nil, phenotype, 2, 2)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 1)
		assert.Equal(t, "http://ohsu.edu/cgd/assoc3", results[0].Id)
	})

	t.Run("offset beyond the result set yields an empty page", func(t *testing.T) {
		results, searchErr := set.GetAssociations(nil, nil, phenotype, 2, 10)
		assert.NoError(t, searchErr)
		assert.Len(t, results, 0)
	})
}

func TestSimulatedPhenotypeAssociationSet(t *testing.T) {
	set := NewSimulatedPhenotypeAssociationSet("sim", "default")

	t.Run("should return one synthetic association for any filter", func(t *testing.T) {
		results, err := set.GetAssociations(&queries.FilterCriterion{Description: "anything"}, nil, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "test", results[0].Id)
		assert.Equal(t, "test", results[0].Phenotype.Type.Id)
	})

	t.Run("should return nothing without a filter", func(t *testing.T) {
		results, err := set.GetAssociations(nil, nil, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, results, 0)
	})
}

func TestAssociationService(t *testing.T) {
	cfg := common.InitConfig()

	service := NewAssociationService(cfg)
	service.AddSet(NewSimulatedPhenotypeAssociationSet("sim-b", "default"))
	service.AddSet(NewSimulatedPhenotypeAssociationSet("sim-a", "default"))

	t.Run("should list registered sets ordered by name", func(t *testing.T) {
		sets := service.ListSets()
		assert.Len(t, sets, 2)
		assert.Equal(t, "sim-a", sets[0].Name)
		assert.Equal(t, "sim-b", sets[1].Name)
	})

	t.Run("should look up a set by id and by name", func(t *testing.T) {
		element := service.ListSets()[0]

		byId, ok := service.GetSet(element.Id)
		assert.True(t, ok)
		assert.Equal(t, element.Id, byId.ToProtocolElement().Id)

		byName, ok := service.GetSetByName("sim-b")
		assert.True(t, ok)
		assert.Equal(t, "sim-b", byName.ToProtocolElement().Name)

		_, ok = service.GetSet("no-such-id")
		assert.False(t, ok)
	})
}
