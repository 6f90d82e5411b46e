package middleware

import (
	"net/http"

	"g2p/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure at least one of the `feature`, `environment`
or `phenotype` HTTP query parameters was provided
*/
func MandateFilterAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		feature := c.QueryParam("feature")
		environment := c.QueryParam("environment")
		phenotype := c.QueryParam("phenotype")

		if len(feature) == 0 && len(environment) == 0 && len(phenotype) == 0 {
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("at least one of [feature, environment, phenotype] must be specified"))
		}

		return next(c)
	}
}
