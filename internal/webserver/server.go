package webserver

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mengsruy/webstore/internal/app"
)

const (
	appContextKey = "webstore_app"
	dbContextKey  = "webstore_db"
)

//go:embed static
var staticFS embed.FS

var server *WebServer

type WebServer struct {
	root *echo.Echo
	app  app.WebContext
}

// Init builds the package server: session middleware over a cookie store,
// a request-scoped database handle, and the embedded template renderer.
func Init(application app.WebContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = NewTemplateRenderer()
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	cookieStore := sessions.NewCookieStore([]byte(application.Config().Web.Secret))
	e.Use(session.Middleware(cookieStore))
	e.Use(middleware.Recover())

	// Attach the application and a request-scoped DB clone. The handle is
	// bound to the request context so the pool releases it on every exit
	// path, error or not.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, application)
			c.Set(dbContextKey, application.DB().WithContext(c.Request().Context()))
			return next(c)
		}
	})

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)))
			return err
		}
	})

	server = &WebServer{root: e, app: application}
	return server
}

// Instance returns the running web server.
func Instance() *WebServer {
	return server
}

// Root exposes the echo engine (used by tests).
func (s *WebServer) Root() *echo.Echo {
	return s.root
}

func (s *WebServer) Start() error {
	cfg := s.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("webserver listening on %s", addr)
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// GET registers a GET route
func GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET(path, h, m...)
}

// POST registers a POST route
func POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST(path, h, m...)
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(dbContextKey).(*gorm.DB)
}

// GetApp returns the application context attached to the request.
func GetApp(c echo.Context) app.WebContext {
	return c.Get(appContextKey).(app.WebContext)
}
