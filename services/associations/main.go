package associations

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"g2p/api/models"
	"g2p/api/models/protocol"
	"g2p/api/models/queries"
	"g2p/api/rdf"
	graphRepo "g2p/api/repositories/graph"
)

type (
	// AssociationSet is the public entry point for one loaded
	// genotype-phenotype knowledge graph
	AssociationSet interface {
		ToProtocolElement() protocol.PhenotypeAssociationSet
		GetAssociations(
			feature *queries.FilterCriterion,
			environment *queries.FilterCriterion,
			phenotype *queries.FilterCriterion,
			pageSize int, offset int) ([]protocol.FeaturePhenotypeAssociation, error)
	}

	AssociationService struct {
		Initialized bool
		Config      *models.Config
		SetsMux     sync.RWMutex
		Sets        map[string]AssociationSet
	}
)

func NewAssociationService(cfg *models.Config) *AssociationService {
	az := &AssociationService{
		Initialized: false,
		Config:      cfg,
		SetsMux:     sync.RWMutex{},
		Sets:        map[string]AssociationSet{},
	}

	return az
}

func (az *AssociationService) AddSet(set AssociationSet) {
	az.SetsMux.Lock()
	defer az.SetsMux.Unlock()
	az.Sets[set.ToProtocolElement().Id] = set
}

func (az *AssociationService) GetSet(id string) (AssociationSet, bool) {
	az.SetsMux.RLock()
	defer az.SetsMux.RUnlock()
	set, ok := az.Sets[id]
	return set, ok
}

func (az *AssociationService) GetSetByName(name string) (AssociationSet, bool) {
	az.SetsMux.RLock()
	defer az.SetsMux.RUnlock()
	for _, set := range az.Sets {
		if set.ToProtocolElement().Name == name {
			return set, true
		}
	}
	return nil, false
}

// ListSets returns the protocol rendition of every registered
// association set, ordered by name
func (az *AssociationService) ListSets() []protocol.PhenotypeAssociationSet {
	az.SetsMux.RLock()
	defer az.SetsMux.RUnlock()

	sets := make([]protocol.PhenotypeAssociationSet, 0, len(az.Sets))
	for _, set := range az.Sets {
		sets = append(sets, set.ToProtocolElement())
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Name < sets[j].Name
	})
	return sets
}

// PhenotypeAssociationSet answers association searches over an rdf
// graph loaded once from a data directory. The cancer genome database
// [Clinical Genomics Knowledge Base]
// (http://nif-crawler.neuinfo.org/monarch/ttl/cgd.ttl),
// published by the Monarch project, was the source of Evidence.
type PhenotypeAssociationSet struct {
	Id        string
	Name      string
	DatasetId string
	Config    *models.Config
	Graph     *rdf.Graph
}

func NewPhenotypeAssociationSet(cfg *models.Config, name string, datasetId string, dataDir string) (*PhenotypeAssociationSet, error) {
	fmt.Printf("[%s] - Loading association set '%s' from %s ..\n", time.Now(), name, dataDir)

	g, err := rdf.NewGraph(dataDir)
	if err != nil {
		return nil, err
	}

	fmt.Printf("[%s] - Association set '%s' loaded : %d triples, %d namespaces\n",
		time.Now(), name, g.Len(), len(g.Namespaces()))

	return &PhenotypeAssociationSet{
		Id:        uuid.New().String(),
		Name:      name,
		DatasetId: datasetId,
		Config:    cfg,
		Graph:     g,
	}, nil
}

func (s *PhenotypeAssociationSet) ToProtocolElement() protocol.PhenotypeAssociationSet {
	info := map[string]string{}
	if s.Graph.Version() != "" {
		info["version"] = s.Graph.Version()
	}
	return protocol.PhenotypeAssociationSet{
		Id:        s.Id,
		Name:      s.Name,
		DatasetId: s.DatasetId,
		Info:      info,
	}
}

// GetAssociations is the main search mechanism. It queries the graph
// for annotations that match the AND of [feature, environment,
// phenotype], hydrates each match and translates it to its protocol
// shape.
func (s *PhenotypeAssociationSet) GetAssociations(
	feature *queries.FilterCriterion,
	environment *queries.FilterCriterion,
	phenotype *queries.FilterCriterion,
	pageSize int, offset int) ([]protocol.FeaturePhenotypeAssociation, error) {

	query, err := queries.BuildAssociationQuery(feature, environment, phenotype, s.Graph)
	if err != nil {
		return nil, err
	}

	rows, err := graphRepo.SearchAssociations(s.Config, s.Graph, query)
	if err != nil {
		return nil, err
	}

	// hydrate the details of every referenced entity in one batch
	bags := graphRepo.DescribeAll(s.Config, s.Graph, rows)

	associations := make([]protocol.FeaturePhenotypeAssociation, 0, len(rows))
	for _, row := range rows {
		association, translateErr := s.toProtocolAssociation(row, bags)
		if translateErr != nil {
			return nil, translateErr
		}
		associations = append(associations, association)
	}

	return pageWindow(associations, pageSize, offset), nil
}

// pageWindow applies the explicit pagination contract : offset into
// the stable association-URI ordering, then an optional pageSize cap
// (pageSize <= 0 means unbounded)
func pageWindow(associations []protocol.FeaturePhenotypeAssociation, pageSize int, offset int) []protocol.FeaturePhenotypeAssociation {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(associations) {
		return []protocol.FeaturePhenotypeAssociation{}
	}

	window := associations[offset:]
	if pageSize > 0 && pageSize < len(window) {
		window = window[:pageSize]
	}
	return window
}
