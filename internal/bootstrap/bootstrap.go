package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/courseadmin/internal/app/controllers"
	appRepos "github.com/yigit/courseadmin/internal/app/repositories"
	appRoutes "github.com/yigit/courseadmin/internal/app/routes"
	appServices "github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/app/session"
	"github.com/yigit/courseadmin/internal/config"
	appMiddleware "github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/filestorage"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/pkg/notify"
	"github.com/yigit/courseadmin/internal/pkg/websocket"
)

// Core is what both the console server and the admin CLI run on.
type Core struct {
	Config   *config.Config
	Session  *session.Session
	Repos    *appRepos.Repositories
	Services *appServices.Services
	Images   *filestorage.LocalSource
}

// Dependencies holds everything the console server needs
type Dependencies struct {
	*Core
	Hub               *websocket.Hub
	Events            *websocket.Handler
	Controllers       *appControllers.Controllers
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger

	unsubscribe func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))

	lgr := log.Logger
	lgr.Debug().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildCore opens the persisted session and wires the backend client,
// repositories and services. notifier receives every toast.
func BuildCore(cfg *config.Config, notifier notify.Notifier, lgr zerolog.Logger) (*Core, error) {
	sess, err := session.Open(session.NewFileStore(cfg.Session.StorePath), lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	client := appRepos.NewClient(appRepos.ClientConfig{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.BackendTimeout(),
	}, sess, lgr)
	repos := appRepos.NewRepositories(client, cfg.Backend.OnlyVisibleCourses)

	svc := appServices.NewServices(repos, sess, appServices.Settings{
		PageSize:           cfg.Pagination.PageSize,
		EnrollmentPageSize: cfg.Pagination.EnrollmentPageSize,
		Location:           cfg.Location(),
	}, appServices.Deps{Notifier: notifier, Logger: lgr})

	return &Core{
		Config:   cfg,
		Session:  sess,
		Repos:    repos,
		Services: svc,
		Images:   filestorage.NewLocalSource(cfg.Uploads.MaxSize),
	}, nil
}

// BuildDependencies wires the console: toasts and session changes are pushed to
// every connected tab through the event hub.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	hub := websocket.NewHub(lgr)

	core, err := BuildCore(cfg, notify.Fanout{hub, notify.Log{Logger: lgr}}, lgr)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Core:              core,
		Hub:               hub,
		Events:            websocket.NewHandler(hub, cfg.Origins(), lgr),
		Controllers:       appControllers.NewControllers(core.Services, core.Images, cfg.Location()),
		SessionMiddleware: appMiddleware.NewSessionMiddleware(core.Services.Auth, lgr),
		Logger:            lgr,
	}
	deps.unsubscribe = core.Session.Subscribe(func(ev session.Event) {
		hub.Publish(websocket.Message{Type: string(ev.Type), UserID: ev.UserID, At: ev.At})
	})

	return deps, nil
}

// Close detaches the hub from the session.
func (d *Dependencies) Close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.Controllers, deps.Events, deps.SessionMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", appRoutes.HealthCheck)

	return router
}
