package associations

import (
	"fmt"

	"g2p/api/models/constants/ontology"
	"g2p/api/models/protocol"
	graphRepo "g2p/api/repositories/graph"
)

// toProtocolAssociation maps one hydrated association row into its
// protocol shape, resolving ontology namespace prefixes through the
// graph's namespace table.
func (s *PhenotypeAssociationSet) toProtocolAssociation(
	row graphRepo.AssociationRow,
	bags map[string]graphRepo.DetailBag) (protocol.FeaturePhenotypeAssociation, error) {

	var association protocol.FeaturePhenotypeAssociation

	// every ontology term of the record is attributed to the
	// association's own namespace and the graph's version
	sourceName, err := s.Graph.PrefixForUri(row.Association)
	if err != nil {
		return association, err
	}
	term := func(termValue string, id string) protocol.OntologyTerm {
		return protocol.OntologyTerm{
			Id:            id,
			Term:          termValue,
			SourceName:    sourceName,
			SourceVersion: s.Graph.Version(),
		}
	}

	featureBag := bags[row.Feature]
	environmentBag := bags[row.Environment]
	phenotypeBag := bags[row.Phenotype]

	// feature : typed well-known fields plus the raw attribute bag
	featureType, _ := featureBag.First(ontology.RdfType)
	feature := protocol.Feature{
		Id:            featureBag.Id,
		ReferenceName: row.FeatureLabel,
		FeatureType:   term(featureType, featureBag.Id),
		ChildIds:      []string{},
		Attributes:    featureBag.Values,
	}

	// evidence : surfaced only when the phenotype's `has quality`
	// entity carries a label of its own
	evidence := []protocol.Evidence{}
	evidenceUri, hasEvidenceEntity := phenotypeBag.First(ontology.HasQuality)
	if hasEvidenceEntity {
		if label, labelled := s.Graph.FirstLiteral(evidenceUri, ontology.RdfsLabel); labelled {
			evidence = append(evidence, protocol.Evidence{
				EvidenceType: term(row.EvidenceType, phenotypeBag.Id),
				Description:  label,
			})
		}
	}

	// environmental context (drug)
	environmentalContexts := []protocol.EnvironmentalContext{
		{
			Id:          environmentBag.Id,
			Description: row.EnvironmentLabel,
			EnvironmentType: protocol.OntologyTerm{
				Id:            ontology.IsSubstanceThatTreats,
				Term:          environmentBag.Id,
				SourceName:    sourceName,
				SourceVersion: s.Graph.Version(),
			},
		},
	}

	phenotypeType, _ := phenotypeBag.First(ontology.RdfType)
	phenotype := protocol.PhenotypeInstance{
		Id:          phenotypeBag.Id,
		Type:        term(phenotypeType, phenotypeBag.Id),
		Description: row.PhenotypeLabel,
	}

	association = protocol.FeaturePhenotypeAssociation{
		Id:                        row.Association,
		PhenotypeAssociationSetId: s.Id,
		Features:                  []protocol.Feature{feature},
		Evidence:                  evidence,
		EnvironmentalContexts:     environmentalContexts,
		Phenotype:                 phenotype,
		Description: fmt.Sprintf(
			"Association: genotype:[%s] phenotype:[%s] environment:[%s] evidence:[%s] publications:[%s]",
			row.FeatureLabel,
			row.PhenotypeLabel,
			row.EnvironmentLabel,
			s.Graph.IdentifierForUri(evidenceUri),
			row.Sources),
	}

	return association, nil
}
