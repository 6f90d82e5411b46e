package protocol

/*
	In-memory renditions of the GA4GH G2P protocol
	elements. Serialization to and from the wire
	format is handled by the consuming layer.
*/

type OntologyTerm struct {
	Id            string `json:"id"`
	Term          string `json:"term"`
	SourceName    string `json:"sourceName,omitempty"`
	SourceVersion string `json:"sourceVersion,omitempty"`
}

type Feature struct {
	Id            string              `json:"id"`
	Name          string              `json:"name,omitempty"`
	GeneSymbol    string              `json:"geneSymbol,omitempty"`
	ReferenceName string              `json:"referenceName,omitempty"`
	FeatureType   OntologyTerm        `json:"featureType"`
	ChildIds      []string            `json:"childIds"`
	Attributes    map[string][]string `json:"attributes"`
}

type PhenotypeInstance struct {
	Id          string       `json:"id"`
	Type        OntologyTerm `json:"type"`
	Description string       `json:"description,omitempty"`
}

type Evidence struct {
	EvidenceType OntologyTerm `json:"evidenceType"`
	Description  string       `json:"description,omitempty"`
}

type EnvironmentalContext struct {
	Id              string       `json:"id"`
	EnvironmentType OntologyTerm `json:"environmentType"`
	Description     string       `json:"description,omitempty"`
}

type FeaturePhenotypeAssociation struct {
	Id                        string                 `json:"id"`
	PhenotypeAssociationSetId string                 `json:"phenotypeAssociationSetId"`
	Features                  []Feature              `json:"features"`
	Evidence                  []Evidence             `json:"evidence"`
	EnvironmentalContexts     []EnvironmentalContext `json:"environmentalContexts"`
	Phenotype                 PhenotypeInstance      `json:"phenotype"`
	Description               string                 `json:"description,omitempty"`
}

type PhenotypeAssociationSet struct {
	Id        string            `json:"id"`
	Name      string            `json:"name"`
	DatasetId string            `json:"datasetId"`
	Info      map[string]string `json:"info"`
}
