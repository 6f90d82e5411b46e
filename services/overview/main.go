package overview

import (
	"fmt"
	"sync"
	"time"

	"github.com/Jeffail/gabs"
	"github.com/go-co-op/gocron"

	"g2p/api/models"
	"g2p/api/services/associations"
)

type (
	// OverviewService keeps a periodically refreshed summary of
	// every registered association set, so the overview endpoint
	// never walks the graphs on the request path
	OverviewService struct {
		Initialized  bool
		Config       *models.Config
		Associations *associations.AssociationService

		lastOverview map[string]interface{}
		mux          sync.RWMutex
	}
)

func NewOverviewService(az *associations.AssociationService, cfg *models.Config) *OverviewService {
	oz := &OverviewService{
		Initialized:  false,
		Config:       cfg,
		Associations: az,
	}

	oz.Init()

	return oz
}

func (oz *OverviewService) Init() {
	// initialization if necessary
	if !oz.Initialized {
		refreshMinutes := oz.Config.Api.OverviewRefreshMinutes
		if refreshMinutes <= 0 {
			refreshMinutes = 5
		}

		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(refreshMinutes).Minutes().Do(func() {
				fmt.Printf("[%s] - Running association sets overview refresh..\n", time.Now())
				oz.Refresh()
			})

			s.StartAsync()
		}()

		oz.Initialized = true
	}
}

// Refresh recomputes the overview document and swaps it in
func (oz *OverviewService) Refresh() {
	overviewJson := gabs.New()
	overviewJson.Set(time.Now().Format(time.RFC3339), "lastRefreshed")

	setCount := 0
	for _, setElement := range oz.Associations.ListSets() {
		set, ok := oz.Associations.GetSet(setElement.Id)
		if !ok {
			continue
		}
		setCount++

		// simulated sets report zeroed stats
		var stats associations.SetStats
		switch typedSet := set.(type) {
		case *associations.PhenotypeAssociationSet:
			stats = typedSet.Stats()
		case *associations.SimulatedPhenotypeAssociationSet:
			stats = typedSet.Stats()
		}

		overviewJson.Set(setElement.Id, "associationSets", setElement.Name, "id")
		overviewJson.Set(setElement.DatasetId, "associationSets", setElement.Name, "datasetId")
		overviewJson.Set(stats.Triples, "associationSets", setElement.Name, "triples")
		overviewJson.Set(stats.Namespaces, "associationSets", setElement.Name, "namespaces")
		overviewJson.Set(stats.Associations, "associationSets", setElement.Name, "associations")
		if stats.Version != "" {
			overviewJson.Set(stats.Version, "associationSets", setElement.Name, "version")
		}
	}
	overviewJson.Set(setCount, "setCount")

	oz.mux.Lock()
	oz.lastOverview = overviewJson.Data().(map[string]interface{})
	oz.mux.Unlock()
}

func (oz *OverviewService) GetOverview() map[string]interface{} {
	oz.mux.RLock()
	cached := oz.lastOverview
	oz.mux.RUnlock()

	if cached == nil {
		oz.Refresh()

		oz.mux.RLock()
		cached = oz.lastOverview
		oz.mux.RUnlock()
	}
	return cached
}
