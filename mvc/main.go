package mvc

import (
	"g2p/api/contexts"
	"g2p/api/models"
	"g2p/api/models/queries"
	"g2p/api/services/associations"

	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*models.Config, *associations.AssociationService, int, int) {
	gc := c.(*contexts.G2PContext)
	return gc.Config, gc.AssociationService, gc.PageSize, gc.Offset
}

// RetrieveCriteriaFromQueryString maps the free-text query
// parameters of a GET search onto filter criteria; a missing
// parameter leaves its role unconstrained
func RetrieveCriteriaFromQueryString(c echo.Context) (*queries.FilterCriterion, *queries.FilterCriterion, *queries.FilterCriterion) {
	criterionFor := func(parameter string) *queries.FilterCriterion {
		value := c.QueryParam(parameter)
		if len(value) == 0 {
			return nil
		}
		return &queries.FilterCriterion{Description: value}
	}

	return criterionFor("feature"), criterionFor("environment"), criterionFor("phenotype")
}
