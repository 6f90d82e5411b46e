package ontology

/*
	Well-known namespaces and terms used by the
	Monarch/CGD knowledge graph this service answers
	queries over.

	Useful:
	 ECO_0000033  traceable author statement
	 RO_0002558   has evidence
	 RO_0002200   has phenotype
	 RO_0002606   is substance that treats
	 SO_0001059   sequence_alteration
	 BFO_0000159  has quality
*/

// namespace stems
const (
	OBAN  string = "http://purl.org/oban/"
	OBO   string = "http://purl.obolibrary.org/obo/"
	DC    string = "http://purl.org/dc/elements/1.1/"
	RDFS  string = "http://www.w3.org/2000/01/rdf-schema#"
	RDF   string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	OWL   string = "http://www.w3.org/2002/07/owl#"
	FALDO string = "http://biohackathon.org/resource/faldo#"
)

// annotation keys
const (
	RdfType        string = RDF + "type"
	RdfsLabel      string = RDFS + "label"
	RdfsSubClassOf string = RDFS + "subClassOf"
	DcSource       string = DC + "source"
	OwlVersionInfo string = OWL + "versionInfo"
)

// association shape
const (
	Association           string = OBAN + "association"
	AssociationHasSubject string = OBAN + "association_has_subject"
	AssociationHasObject  string = OBAN + "association_has_object"
	HasEvidence           string = OBO + "RO_0002558"
	HasEnvironment        string = OBO + "RO_has_environment"
	HasQuality            string = OBO + "BFO_0000159"
	IsSubstanceThatTreats string = OBO + "RO_0002606"
)

// the published CGD graph carries its own version
// as an owl:versionInfo annotation on this subject
const CgdTtl string = "http://data.monarchinitiative.org/ttl/cgd.ttl"
