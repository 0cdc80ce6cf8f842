package main

import (
	"fmt"
	"log"
	"os"

	"github.com/abenezer-t/gridseek-api/api"
	api_i "github.com/abenezer-t/gridseek-api/api/i"
	searchapi "github.com/abenezer-t/gridseek-api/api/searches"
	"github.com/abenezer-t/gridseek-api/config"
	"github.com/abenezer-t/gridseek-api/service"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	sessionManager   *service.SessionManager
	searchController api_i.Controller
	router           *api.Router
	appLogger        *log.Logger
)

func initSessionManager() {
	sessionLogger := log.New(os.Stdout, fmt.Sprintf("%s[SESSION-MANAGER]%s ", config.ColorCyan, config.ColorReset), log.LstdFlags)

	var err error
	sessionManager, err = service.NewSessionManager(sessionLogger)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating session manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initSearchController() {
	var err error
	searchController, err = searchapi.NewSearchController(sessionManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating search controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	appLogger.Printf("%s[INFO]%s search controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{searchController},
	})

	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP]%s ", config.ColorBlue, config.ColorReset), log.LstdFlags)
	config.Load()
	gin.SetMode(config.Envs.GinMode)

	initSessionManager()
	initSearchController()
	initRouter()

	appLogger.Printf("%s[INFO]%s serving on %s:%d", config.LogInfoColor, config.LogColorReset, config.Envs.HostIP, config.Envs.RESTPort)
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s server stopped: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
