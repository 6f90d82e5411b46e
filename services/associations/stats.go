package associations

import (
	"g2p/api/models/constants/ontology"
)

// SetStats summarizes one loaded graph for the overview endpoint
type SetStats struct {
	Triples      int    `json:"triples"`
	Namespaces   int    `json:"namespaces"`
	Associations int    `json:"associations"`
	Version      string `json:"version,omitempty"`
}

func (s *PhenotypeAssociationSet) Stats() SetStats {
	return SetStats{
		Triples:      s.Graph.Len(),
		Namespaces:   len(s.Graph.Namespaces()),
		Associations: len(s.Graph.Subjects(ontology.RdfType, ontology.Association)),
		Version:      s.Graph.Version(),
	}
}

func (s *SimulatedPhenotypeAssociationSet) Stats() SetStats {
	return SetStats{}
}
