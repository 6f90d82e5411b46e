package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"g2p/api/contexts"
	gam "g2p/api/middleware"
	"g2p/api/models"
	serviceInfo "g2p/api/models/constants/service-info"
	associationsMvc "g2p/api/mvc/associations"
	serviceInfoMvc "g2p/api/mvc/service-info"
	"g2p/api/services/associations"
	"g2p/api/services/overview"
	"g2p/api/utils"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n\n"+

		"\tData Directory Path : %s \n"+
		"\tRepository Manifest Path : %s \n"+
		"\tRemote Graph Url : %s \n"+
		"\tDefault Association Set : %s \n"+
		"\tOverview Refresh (minutes) : %d \n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.Api.DataPath,
		cfg.Api.RepositoryManifestPath,
		cfg.Api.RemoteGraphUrl,
		cfg.Api.DefaultSetName,
		cfg.Api.OverviewRefreshMinutes,
		cfg.Api.Port)
	// --

	// Fetch a remotely hosted graph before loading, if configured
	if len(cfg.Api.RemoteGraphUrl) > 0 {
		if _, downloadErr := utils.DownloadRemoteGraph(cfg.Api.RemoteGraphUrl, cfg.Api.DataPath); downloadErr != nil {
			fmt.Println(downloadErr)
			os.Exit(2)
		}
	}

	// Instantiate Server
	e := echo.New()

	// Service Singletons
	as := associations.NewAssociationService(&cfg)
	if initErr := as.InitFromManifest(); initErr != nil {
		fmt.Println(initErr)
		os.Exit(2)
	}

	ov := overview.NewOverviewService(as, &cfg)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with "custom G2P" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.G2PContext{
				Context:            c,
				Config:             &cfg,
				AssociationService: as,
				OverviewService:    ov,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Association Sets
	e.GET("/associationsets", associationsMvc.AssociationSetsGet)
	e.GET("/associationsets/:id", associationsMvc.AssociationSetGetById,
		// middleware
		gam.MandateAssociationSetIdPathParam)

	// -- Genotype-Phenotype Associations
	e.POST("/genotypephenotypes/search", associationsMvc.AssociationsSearch)
	e.GET("/genotypephenotypes/search", associationsMvc.AssociationsSearchByQueryString,
		// middleware
		gam.MandateFilterAttribute,
		gam.ValidatePaginationAttributes)

	e.GET("/associations/overview", associationsMvc.GetAssociationsOverview)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
