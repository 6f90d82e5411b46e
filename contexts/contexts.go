package contexts

import (
	"g2p/api/models"
	"g2p/api/services/associations"
	"g2p/api/services/overview"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the association registry and other variables
	G2PContext struct {
		echo.Context
		Config             *models.Config
		AssociationService *associations.AssociationService
		OverviewService    *overview.OverviewService

		// pagination attributes validated by middleware
		PageSize int
		Offset   int
	}
)
