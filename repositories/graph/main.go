package graph

/*
	Query execution against the in-memory triple store,
	playing the role an external search repository would
	normally play: the service layer hands it structured
	queries and receives flat result rows back.
*/

// AssociationRow is one variable-binding row of the main
// association search
type AssociationRow struct {
	Association      string `mapstructure:"association"`
	Feature          string `mapstructure:"feature"`
	FeatureLabel     string `mapstructure:"feature_label"`
	Environment      string `mapstructure:"environment"`
	EnvironmentLabel string `mapstructure:"environment_label"`
	Phenotype        string `mapstructure:"phenotype"`
	PhenotypeLabel   string `mapstructure:"phenotype_label"`
	Sources          string `mapstructure:"sources"`
	EvidenceType     string `mapstructure:"evidence_type"`
}

// DetailBag carries every attribute of one described URI, as a
// normalized predicate -> values map (always a list, even for
// single-valued predicates)
type DetailBag struct {
	Id     string
	Values map[string][]string
}

// First returns the first value of the given predicate, if any
func (b DetailBag) First(predicate string) (string, bool) {
	values := b.Values[predicate]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
