package associations

import (
	"github.com/google/uuid"

	"g2p/api/models/protocol"
	"g2p/api/models/queries"
)

// SimulatedPhenotypeAssociationSet is a no-op association set used
// for testing surface plumbing without real data : it returns a
// single synthetic association when any filter criterion is present,
// and an empty list otherwise. No graph is consulted.
type SimulatedPhenotypeAssociationSet struct {
	Id        string
	Name      string
	DatasetId string
}

func NewSimulatedPhenotypeAssociationSet(name string, datasetId string) *SimulatedPhenotypeAssociationSet {
	return &SimulatedPhenotypeAssociationSet{
		Id:        uuid.New().String(),
		Name:      name,
		DatasetId: datasetId,
	}
}

func (s *SimulatedPhenotypeAssociationSet) ToProtocolElement() protocol.PhenotypeAssociationSet {
	return protocol.PhenotypeAssociationSet{
		Id:        s.Id,
		Name:      s.Name,
		DatasetId: s.DatasetId,
		Info:      map[string]string{},
	}
}

func (s *SimulatedPhenotypeAssociationSet) GetAssociations(
	feature *queries.FilterCriterion,
	environment *queries.FilterCriterion,
	phenotype *queries.FilterCriterion,
	pageSize int, offset int) ([]protocol.FeaturePhenotypeAssociation, error) {

	if feature == nil && environment == nil && phenotype == nil {
		return []protocol.FeaturePhenotypeAssociation{}, nil
	}

	return []protocol.FeaturePhenotypeAssociation{
		{
			Id:                        "test",
			PhenotypeAssociationSetId: s.Id,
			Features:                  []protocol.Feature{},
			Evidence:                  []protocol.Evidence{},
			EnvironmentalContexts:     []protocol.EnvironmentalContext{},
			Phenotype: protocol.PhenotypeInstance{
				Type: protocol.OntologyTerm{
					Id: "test",
				},
			},
		},
	}, nil
}
