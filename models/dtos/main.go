package dtos

import (
	"g2p/api/models/protocol"
	"g2p/api/models/queries"
)

type AssociationResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// AssociationSearchRequest carries structured criteria for the
// association search; any nil criterion leaves its role open
type AssociationSearchRequest struct {
	PhenotypeAssociationSetId string                   `json:"phenotypeAssociationSetId"`
	Feature                   *queries.FilterCriterion `json:"feature,omitempty"`
	Environment               *queries.FilterCriterion `json:"environment,omitempty"`
	Phenotype                 *queries.FilterCriterion `json:"phenotype,omitempty"`
	PageSize                  int                      `json:"pageSize,omitempty"`
	Offset                    int                      `json:"offset,omitempty"`
}

type AssociationSearchResponse struct {
	AssociationResponse
	Associations []protocol.FeaturePhenotypeAssociation `json:"associations"`
}

type AssociationSetsResponse struct {
	AssociationResponse
	PhenotypeAssociationSets []protocol.PhenotypeAssociationSet `json:"phenotypeAssociationSets"`
}
