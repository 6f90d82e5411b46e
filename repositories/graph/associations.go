package graph

import (
	"fmt"
	"sort"
	"strings"
	"time"

	. "github.com/ahmetb/go-linq"
	"github.com/mitchellh/mapstructure"

	"g2p/api/models"
	"g2p/api/models/constants/ontology"
	"g2p/api/models/queries"
	"g2p/api/rdf"
)

// SearchAssociations evaluates the association query pattern and
// returns one row per matching association, ordered by association
// URI for deterministic pagination behaviour.
func SearchAssociations(cfg *models.Config, g *rdf.Graph, query *queries.AssociationQuery) ([]AssociationRow, error) {

	if cfg.Debug {
		// view the rendered query
		fmt.Println(query.Render())
	}

	fmt.Printf("Query Start: %s\n", time.Now())

	rows := []AssociationRow{}
	for _, association := range g.Subjects(ontology.RdfType, ontology.Association) {
		bindings, ok := associationBindings(g, association)
		if !ok {
			continue
		}
		if !query.MatchesBindings(bindings) {
			continue
		}

		var row AssociationRow
		if err := mapstructure.Decode(bindings, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Association < rows[j].Association
	})

	fmt.Printf("Query End: %s\n", time.Now())

	return rows, nil
}

// associationBindings gathers the conjunctive pattern's variable
// bindings for one association subject. A false return marks an
// incomplete binding (a required triple is absent from the graph);
// such placeholder rows are silently discarded, not errors.
func associationBindings(g *rdf.Graph, association string) (map[string]string, bool) {
	bindings := map[string]string{
		"association": association,
	}

	required := []struct {
		variable  string
		subject   string
		predicate string
	}{
		{"evidence_type", association, ontology.HasEvidence},
		{"environment", association, ontology.HasEnvironment},
		{"feature", association, ontology.AssociationHasSubject},
		{"phenotype", association, ontology.AssociationHasObject},
	}
	for _, pattern := range required {
		object, ok := g.First(pattern.subject, pattern.predicate)
		if !ok {
			return nil, false
		}
		bindings[pattern.variable] = object
	}

	// labels are part of the conjunctive pattern too; a label
	// binding must be a literal, never an entity reference
	for _, variable := range []string{"feature", "environment", "phenotype"} {
		label, ok := g.FirstLiteral(bindings[variable], ontology.RdfsLabel)
		if !ok {
			return nil, false
		}
		bindings[variable+"_label"] = label
	}

	// optional citation sources, concatenated the way the
	// GROUP_CONCAT projection would emit them
	sources := g.Objects(association, ontology.DcSource)
	sort.Strings(sources)
	bindings["sources"] = strings.Join(sources, "|")

	return bindings, true
}

// DescribeAll hydrates every distinct URI referenced by the given
// rows in one batched pass, returning a detail bag per URI.
func DescribeAll(cfg *models.Config, g *rdf.Graph, rows []AssociationRow) map[string]DetailBag {

	// collect the distinct set of referenced entity URIs
	var uris []string
	From(rows).
		SelectManyT(func(row AssociationRow) Query {
			return From([]string{row.Feature, row.Environment, row.Phenotype})
		}).
		Distinct().
		ToSlice(&uris)

	detailQuery := queries.NewDetailQuery(uris)
	if cfg.Debug {
		fmt.Println(detailQuery.Render())
	}

	bags := map[string]DetailBag{}
	for _, subject := range detailQuery.Subjects {
		bag := DetailBag{
			Id:     subject,
			Values: map[string][]string{},
		}
		for _, triple := range g.Triples(subject, "", "") {
			bag.Values[triple.Predicate] = append(bag.Values[triple.Predicate], triple.Object)
		}
		bags[subject] = bag
	}
	return bags
}
