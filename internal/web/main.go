// Package web wires the fiber application: public page, admin editor, JSON
// API, static assets and the operational endpoints.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/config"
	loggeradapter "github.com/linkdeck/linkdeck/internal/logger/adapter/fiber"
	"github.com/linkdeck/linkdeck/internal/web/handler"
	"github.com/linkdeck/linkdeck/internal/web/handler/admin/editor"
	analyticsapi "github.com/linkdeck/linkdeck/internal/web/handler/api/analytics"
	"github.com/linkdeck/linkdeck/internal/web/handler/api/reorder"
	"github.com/linkdeck/linkdeck/internal/web/handler/api/save"
	"github.com/linkdeck/linkdeck/internal/web/handler/api/settings"
	uploadapi "github.com/linkdeck/linkdeck/internal/web/handler/api/upload"
	"github.com/linkdeck/linkdeck/internal/web/handler/public"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and backends.
func New(cfg *config.Config, deps *handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil {
		panic("deps cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access log
	app.Use(loggeradapter.New(loggeradapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// http metrics
	prometheus := fiberprometheus.New(cfg.Log.ServiceName)
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	// serve uploaded objects from the local object root
	if deps.Uploads != nil && deps.Uploads.Enabled() {
		app.Static("/uploads", deps.Uploads.Root())
	}

	// admin token middleware
	app.Use(TokenMiddleware(cfg))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)

	// init handlers (they register their own routes)
	for _, h := range []handler.Service{
		&public.Handler,
		&editor.Handler,
		&settings.Handler,
		&save.Handler,
		&reorder.Handler,
		&uploadapi.Handler,
		&analyticsapi.Handler,
	} {
		if err := h.Init(app, cfg, deps); err != nil {
			log.Fatal().Err(err).Msg("handler init failed")
		}
	}

	return service
}

// CheckAlive answers liveness probes. During the shutdown drain it returns
// 503 so the load balancer takes the instance out of rotation.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("draining")
	}

	return c.SendString("ok")
}
