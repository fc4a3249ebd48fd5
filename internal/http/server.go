package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jmehdipour/sms-relay/internal/config"
	"github.com/jmehdipour/sms-relay/internal/http/middleware"
	applog "github.com/jmehdipour/sms-relay/internal/logger"
	"github.com/jmehdipour/sms-relay/internal/metrics"
	"github.com/jmehdipour/sms-relay/internal/service/relay"
	"github.com/jmehdipour/sms-relay/internal/util"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	e   *echo.Echo
	log *zap.Logger
}

func NewServer(cfg config.Config, svc *relay.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = applog.Log
	}

	// echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Binder = jsonBinder{}
	e.Logger.SetLevel(echoLevel(cfg.Log.Level))
	e.Use(
		echoMid.Recover(),
		echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.NewID}),
		middleware.RequestLogger(logger),
	)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// routes
	sms := e.Group(strings.TrimRight(cfg.HTTP.BasePath, "/"))
	sms.POST("/send-sms", sendSMSHandler(svc))
	sms.POST("/webhook", webhookHandler(svc, logger))

	return &Server{e: e, log: logger}
}

// echoLevel maps the config log level onto echo's gommon logger.
func echoLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

// Start blocks serving on addr. It returns nil after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.log.Info("http: listening", zap.String("addr", addr))
	if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.e.ServeHTTP(w, r) }
