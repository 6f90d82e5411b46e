package middleware

import (
	"fmt"
	"net/http"

	"g2p/api/models/dtos/errors"
	"g2p/api/utils"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `id` HTTP path parameter was provided
*/
func MandateAssociationSetIdPathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// check for id path parameter
		id := c.Param("id")
		if len(id) == 0 {
			// if no id was provided, or is invalid, return an error
			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("missing association set id"))
		}

		// verify the id is a valid UUID
		// - assume it refers to a known association set if it's a uuid,
		//   further verification is done later
		if !utils.IsValidUUID(id) {
			fmt.Printf("Invalid association set id %s\n", id)

			return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(fmt.Sprintf("invalid association set id %s - please provide a valid uuid", id)))
		}

		return next(c)
	}
}
