package associations

import (
	"fmt"
	"net/http"
	"time"

	"g2p/api/contexts"
	"g2p/api/models/dtos"
	serverErrors "g2p/api/models/dtos/errors"
	"g2p/api/models/errors"
	"g2p/api/mvc"

	"github.com/labstack/echo"
)

func AssociationSetsGet(c echo.Context) error {
	fmt.Printf("[%s] - AssociationSetsGet hit!\n", time.Now())

	gc := c.(*contexts.G2PContext)

	return c.JSON(http.StatusOK, &dtos.AssociationSetsResponse{
		AssociationResponse: dtos.AssociationResponse{
			Status:  200,
			Message: "Success",
		},
		PhenotypeAssociationSets: gc.AssociationService.ListSets(),
	})
}

func AssociationSetGetById(c echo.Context) error {
	fmt.Printf("[%s] - AssociationSetGetById hit!\n", time.Now())

	gc := c.(*contexts.G2PContext)
	id := c.Param("id")

	set, ok := gc.AssociationService.GetSet(id)
	if !ok {
		return c.JSON(http.StatusNotFound, serverErrors.CreateSimpleNotFound(fmt.Sprintf("no association set with id %s", id)))
	}

	return c.JSON(http.StatusOK, set.ToProtocolElement())
}

func AssociationsSearch(c echo.Context) error {
	fmt.Printf("[%s] - AssociationsSearch hit!\n", time.Now())

	gc := c.(*contexts.G2PContext)

	var request dtos.AssociationSearchRequest
	if err := c.Bind(&request); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, serverErrors.CreateSimpleBadRequest("malformed search request"))
	}

	set, ok := gc.AssociationService.GetSet(request.PhenotypeAssociationSetId)
	if !ok {
		return c.JSON(http.StatusNotFound, serverErrors.CreateSimpleNotFound(fmt.Sprintf("no association set with id %s", request.PhenotypeAssociationSetId)))
	}

	results, err := set.GetAssociations(request.Feature, request.Environment, request.Phenotype, request.PageSize, request.Offset)
	if err != nil {
		return associationErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &dtos.AssociationSearchResponse{
		AssociationResponse: dtos.AssociationResponse{
			Status:  200,
			Message: "Success",
		},
		Associations: results,
	})
}

func AssociationsSearchByQueryString(c echo.Context) error {
	fmt.Printf("[%s] - AssociationsSearchByQueryString hit!\n", time.Now())

	gc := c.(*contexts.G2PContext)
	_, service, pageSize, offset := mvc.RetrieveCommonElements(c)

	setName := c.QueryParam("associationSetName")
	if len(setName) == 0 {
		setName = gc.Config.Api.DefaultSetName
	}

	set, ok := service.GetSetByName(setName)
	if !ok {
		return c.JSON(http.StatusNotFound, serverErrors.CreateSimpleNotFound(fmt.Sprintf("no association set named %s", setName)))
	}

	feature, environment, phenotype := mvc.RetrieveCriteriaFromQueryString(c)

	results, err := set.GetAssociations(feature, environment, phenotype, pageSize, offset)
	if err != nil {
		return associationErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, &dtos.AssociationSearchResponse{
		AssociationResponse: dtos.AssociationResponse{
			Status:  200,
			Message: "Success",
		},
		Associations: results,
	})
}

func associationErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.IsInvalidArgument(err):
		return c.JSON(http.StatusBadRequest, serverErrors.CreateSimpleBadRequest(err.Error()))
	case errors.IsNotSupported(err):
		return c.JSON(http.StatusNotImplemented, serverErrors.CreateSimpleNotImplemented(err.Error()))
	default:
		fmt.Println(err)
		return c.JSON(http.StatusInternalServerError, serverErrors.CreateSimpleInternalServerError("something went wrong.. please try again later!"))
	}
}

func GetAssociationsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetAssociationsOverview hit!\n", time.Now())

	gc := c.(*contexts.G2PContext)

	return c.JSON(http.StatusOK, gc.OverviewService.GetOverview())
}
