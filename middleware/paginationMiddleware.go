package middleware

import (
	"net/http"
	"strconv"

	"g2p/api/contexts"
	"g2p/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to validate the optional `pageSize` and `offset`
HTTP query parameters and forward them down the pipeline
*/
func ValidatePaginationAttributes(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.G2PContext)

		pageSizeQP := c.QueryParam("pageSize")
		if len(pageSizeQP) > 0 {
			pageSize, conversionErr := strconv.Atoi(pageSizeQP)
			if conversionErr != nil || pageSize < 0 {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("please provide a non-negative integer 'pageSize'"))
			}
			gc.PageSize = pageSize
		}

		offsetQP := c.QueryParam("offset")
		if len(offsetQP) > 0 {
			offset, conversionErr := strconv.Atoi(offsetQP)
			if conversionErr != nil || offset < 0 {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("please provide a non-negative integer 'offset'"))
			}
			gc.Offset = offset
		}

		return next(gc)
	}
}
