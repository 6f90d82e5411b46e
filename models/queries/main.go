package queries

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"g2p/api/models/constants"
	filterRole "g2p/api/models/constants/filter-role"
	errors "g2p/api/models/errors"
)

/*
	Structured builder for the association search query.

	Filter criteria are assembled into typed clause objects
	(regex over a role's label, URI-equality OR-group over a
	role's entity) rather than substituted into query text,
	so that clause composition stays testable in isolation
	from query execution. Render() produces the equivalent
	query text deterministically; execution evaluates the
	clauses directly against the graph.
*/

type ExternalIdentifier struct {
	Database   string `json:"database"`
	Identifier string `json:"identifier"`
	Version    string `json:"version,omitempty"`
}

type OntologyTermQuery struct {
	Id   string `json:"id,omitempty"`
	Term string `json:"term,omitempty"`
}

// FilterCriterion narrows one search role (feature, environment
// or phenotype); a nil criterion leaves the role unconstrained.
// Description is a case-sensitive regex over the role's label;
// Ids and Terms each expand into a URI-equality OR-group.
type FilterCriterion struct {
	Description string               `json:"description,omitempty"`
	Ids         []ExternalIdentifier `json:"ids,omitempty"`
	Terms       []OntologyTermQuery  `json:"terms,omitempty"`
}

// NamespaceResolver expands a short "prefix:localId" term into
// its full URI using the loaded graph's namespace table.
type NamespaceResolver interface {
	ExpandTerm(term string) (string, error)
}

type Clause interface {
	Render() string
	Matches(bindings map[string]string) bool
}

// RegexClause : case-sensitive regex filter over a query variable
type RegexClause struct {
	Variable string
	Pattern  string
}

func (c RegexClause) Render() string {
	return fmt.Sprintf("regex(?%s, \"%s\")", c.Variable, c.Pattern)
}

func (c RegexClause) Matches(bindings map[string]string) bool {
	matched, err := regexp.MatchString(c.Pattern, bindings[c.Variable])
	if err != nil {
		// an unparseable pattern matches nothing
		return false
	}
	return matched
}

// EqualityOrClause : exact URI equality over a query variable,
// satisfied by any one of the listed URIs
type EqualityOrClause struct {
	Variable string
	Uris     []string
}

func (c EqualityOrClause) Render() string {
	tests := make([]string, 0, len(c.Uris))
	for _, uri := range c.Uris {
		tests = append(tests, fmt.Sprintf("?%s = <%s> ", c.Variable, uri))
	}
	return fmt.Sprintf("(%s)", strings.Join(tests, "|| "))
}

func (c EqualityOrClause) Matches(bindings map[string]string) bool {
	for _, uri := range c.Uris {
		if bindings[c.Variable] == uri {
			return true
		}
	}
	return false
}

type AssociationQuery struct {
	Feature     *FilterCriterion
	Environment *FilterCriterion
	Phenotype   *FilterCriterion

	// role clauses, combined with logical AND
	Filters []Clause
}

// BuildAssociationQuery produces the main search query. At least one
// of the three filter criteria must be non-absent.
func BuildAssociationQuery(feature *FilterCriterion, environment *FilterCriterion, phenotype *FilterCriterion,
	resolver NamespaceResolver) (*AssociationQuery, error) {

	if feature == nil && environment == nil && phenotype == nil {
		return nil, errors.NewInvalidArgumentError(
			"at least one of [feature, environment, phenotype] must be specified")
	}

	query := &AssociationQuery{
		Feature:     feature,
		Environment: environment,
		Phenotype:   phenotype,
	}

	// fixed role order keeps the rendered query deterministic
	roles := []struct {
		role      constants.FilterRole
		criterion *FilterCriterion
	}{
		{filterRole.Feature, feature},
		{filterRole.Environment, environment},
		{filterRole.Phenotype, phenotype},
	}
	for _, r := range roles {
		clauses, err := criterionClauses(string(r.role), r.criterion, resolver)
		if err != nil {
			return nil, err
		}
		query.Filters = append(query.Filters, clauses...)
	}

	return query, nil
}

func criterionClauses(variable string, criterion *FilterCriterion, resolver NamespaceResolver) ([]Clause, error) {
	if criterion == nil {
		return nil, nil
	}

	var clauses []Clause

	if criterion.Description != "" {
		clauses = append(clauses, RegexClause{
			Variable: variable + "_label",
			Pattern:  criterion.Description,
		})
	}

	// ExternalIdentifiers : database + identifier concatenation
	if len(criterion.Ids) > 0 {
		uris := make([]string, 0, len(criterion.Ids))
		for _, id := range criterion.Ids {
			uris = append(uris, id.Database+id.Identifier)
		}
		clauses = append(clauses, EqualityOrClause{Variable: variable, Uris: uris})
	}

	// OntologyTerms : either an explicit id, or a term string
	// resolved through the graph's namespace table
	if len(criterion.Terms) > 0 {
		uris := make([]string, 0, len(criterion.Terms))
		for _, term := range criterion.Terms {
			if term.Id != "" {
				uris = append(uris, term.Id)
				continue
			}
			expanded, err := resolver.ExpandTerm(term.Term)
			if err != nil {
				return nil, err
			}
			uris = append(uris, expanded)
		}
		clauses = append(clauses, EqualityOrClause{Variable: variable, Uris: uris})
	}

	return clauses, nil
}

// MatchesBindings reports whether a candidate row of variable
// bindings satisfies every filter clause
func (q *AssociationQuery) MatchesBindings(bindings map[string]string) bool {
	for _, clause := range q.Filters {
		if !clause.Matches(bindings) {
			return false
		}
	}
	return true
}

const associationQueryTemplate = `PREFIX OBAN: <http://purl.org/oban/>
PREFIX OBO: <http://purl.obolibrary.org/obo/>
PREFIX dc: <http://purl.org/dc/elements/1.1/>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT
    ?association
    ?environment
    ?environment_label
    ?feature
    ?feature_label
    ?phenotype
    ?phenotype_label
    (GROUP_CONCAT(?source; separator="|") AS ?sources)
    ?evidence_type
WHERE {
    ?association a OBAN:association .
    ?association OBO:RO_0002558 ?evidence_type .
    ?association OBO:RO_has_environment ?environment .
    OPTIONAL { ?association dc:source ?source } .
    ?association OBAN:association_has_subject ?feature .
    ?association OBAN:association_has_object ?phenotype .
    ?environment rdfs:label ?environment_label .
    ?phenotype rdfs:label ?phenotype_label .
    ?feature rdfs:label ?feature_label .
    %s
}
GROUP BY ?association
ORDER BY ?association
`

// Render returns the query text for this search. Identical criteria
// always render byte-identical text.
func (q *AssociationQuery) Render() string {
	filter := ""
	if len(q.Filters) > 0 {
		rendered := make([]string, 0, len(q.Filters))
		for _, clause := range q.Filters {
			rendered = append(rendered, clause.Render())
		}
		filter = fmt.Sprintf("FILTER (%s)", strings.Join(rendered, " && "))
	}
	return fmt.Sprintf(associationQueryTemplate, filter)
}

// DetailQuery hydrates the attributes of every subject URI it
// carries, in one batched pass
type DetailQuery struct {
	Subjects []string
}

// NewDetailQuery dedupes and sorts the referenced URIs so the
// batched describe is deterministic
func NewDetailQuery(uris []string) *DetailQuery {
	seen := map[string]bool{}
	subjects := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		subjects = append(subjects, uri)
	}
	sort.Strings(subjects)
	return &DetailQuery{Subjects: subjects}
}

const detailQueryTemplate = `PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT
    ?subject
    ?predicate
    ?object
WHERE {
    VALUES ?subject { %s }
    ?subject ?predicate ?object .
}
ORDER BY ?subject ?predicate
`

func (q *DetailQuery) Render() string {
	values := make([]string, 0, len(q.Subjects))
	for _, subject := range q.Subjects {
		values = append(values, fmt.Sprintf("<%s>", subject))
	}
	return fmt.Sprintf(detailQueryTemplate, strings.Join(values, " "))
}
