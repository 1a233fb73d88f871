// Package website serves the OpenSpades site: content pages wrapped in the
// shared page shell, plus the stylesheets and images they reference.
package website

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openspades/website/internal/adapters/env"
	adaptershttp "github.com/openspades/website/internal/adapters/http"
	"github.com/openspades/website/internal/content"
	"github.com/openspades/website/internal/core"
	"github.com/openspades/website/internal/usecase"
)

type PageOptions = core.PageOptions

type FragmentBuilder = core.FragmentBuilder

type PageOption = core.PageOption

var (
	ErrMissingComposition = core.ErrMissingComposition
	ErrRouteNotFound      = errors.New("route not found")
)

type Route struct {
	Pattern string
	Options []PageOption
}

type App struct {
	routes   []core.PageConfig
	service  *usecase.PageService
	publicFS fs.FS
	isDev    bool
	logger   *slog.Logger
}

type Option func(*App)

func WithPublicFS(publicFS fs.FS) Option {
	return func(a *App) {
		a.publicFS = publicFS
	}
}

func WithDev(isDev bool) Option {
	return func(a *App) {
		a.isDev = isDev
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// New registers routes. Dev mode defaults to the OPENSPADES_DEV environment
// variable.
func New(routes []Route, opts ...Option) (*App, error) {
	app := &App{
		service:  usecase.NewPageService(),
		publicFS: PublicFS,
		isDev:    env.DetectMode() == core.ModeDev,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(app)
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if err := core.ValidateRoutePath(route.Pattern); err != nil {
			return nil, fmt.Errorf("invalid route %q: %w", route.Pattern, err)
		}

		config := core.NewPageConfig(route.Pattern, route.Options...)
		if seen[config.Pattern] {
			return nil, fmt.Errorf("duplicate route %q", config.Pattern)
		}
		seen[config.Pattern] = true

		app.routes = append(app.routes, config)
	}

	return app, nil
}

func StaticFragment(markup string) FragmentBuilder {
	return core.StaticFragment(markup)
}

func Page(pattern string, title string, build FragmentBuilder, opts ...PageOption) Route {
	options := append([]PageOption{core.WithTitle(title), core.WithBuilder(build)}, opts...)
	return Route{
		Pattern: pattern,
		Options: options,
	}
}

// DefaultRoutes returns the site's pages, reading their sources from contentFS.
func DefaultRoutes(contentFS fs.FS) ([]Route, error) {
	pages, err := content.Pages(contentFS)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(pages))
	for _, p := range pages {
		routes = append(routes, Page(p.Pattern, p.Title, p.Builder))
	}
	return routes, nil
}

func (a *App) Routes() []core.PageConfig {
	return a.routes
}

// Wrap mounts every page on api and serves public assets in front of it.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("website: nil router passed to Wrap; use app.Handler()")
	}

	a.mount(api)
	return adaptershttp.NewPublicHandler(a.publicFS, api)
}

// Handler serves pages and public assets behind request IDs, request logging
// and panic recovery.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(adaptershttp.PublicMiddleware(a.publicFS))

	a.mount(r)
	return r
}

func (a *App) mount(api router) {
	for _, config := range a.routes {
		api.Handle(config.Pattern, adaptershttp.NewPageHandler(a.service, config, a.isDev, a.logger))
	}
}

// Render writes the composed document for the route registered at path.
func (a *App) Render(ctx context.Context, path string, w io.Writer) error {
	path = core.NormalizePath(path)
	for _, config := range a.routes {
		if config.Pattern != path {
			continue
		}

		return a.service.WritePage(ctx, w, config)
	}
	return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
}

func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		a.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(req.Context()),
		)
	})
}
