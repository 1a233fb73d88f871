package website

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/openspades/website/internal/content"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func newTestApp(t *testing.T, routes []Route) *App {
	t.Helper()
	app, err := New(routes, WithLogger(discardLogger), WithDev(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app
}

func newSiteApp(t *testing.T) *App {
	t.Helper()
	routes, err := DefaultRoutes(content.FS)
	if err != nil {
		t.Fatalf("DefaultRoutes() error = %v", err)
	}
	return newTestApp(t, routes)
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPageCreatesRoute(t *testing.T) {
	route := Page("/about", "About", StaticFragment("<p>Hello</p>"))

	if route.Pattern != "/about" {
		t.Errorf("Expected pattern '/about', got '%s'", route.Pattern)
	}
	if len(route.Options) != 2 {
		t.Errorf("Expected 2 options, got %d", len(route.Options))
	}
}

func TestNewRejectsBadRoutes(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
	}{
		{name: "relative", routes: []Route{Page("about", "About", StaticFragment(""))}},
		{name: "wildcard", routes: []Route{Page("/media/*", "Media", StaticFragment(""))}},
		{name: "duplicate", routes: []Route{
			Page("/about", "About", StaticFragment("")),
			Page("/about/", "About", StaticFragment("")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.routes, WithLogger(discardLogger)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHandlerScenarioA(t *testing.T) {
	app := newTestApp(t, []Route{Page("/about", "About", StaticFragment("<p>Hello</p>"))})

	rec := get(t, app.Handler(), "/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=UTF-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>About - OpenSpades</title>") {
		t.Errorf("missing title:\n%s", body)
	}
	if !strings.Contains(body, "<main><p>Hello</p></main>") {
		t.Errorf("missing fragment:\n%s", body)
	}

	snaps.MatchSnapshot(t, body)
}

func TestHandlerScenarioB(t *testing.T) {
	app := newTestApp(t, []Route{{Pattern: "/broken"}})

	rec := get(t, app.Handler(), "/broken")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != "Body not provided" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerScenarioC(t *testing.T) {
	app := newTestApp(t, []Route{Page("/", "Top", StaticFragment("<script>alert(1)</script>"))})

	rec := get(t, app.Handler(), "/")
	if !strings.Contains(rec.Body.String(), "<main><script>alert(1)</script></main>") {
		t.Errorf("script was altered:\n%s", rec.Body.String())
	}
}

func TestHandlerSitePages(t *testing.T) {
	handler := newSiteApp(t).Handler()

	tests := []struct {
		path      string
		wantTitle string
		wantMain  string
	}{
		{path: "/", wantTitle: "Top - OpenSpades", wantMain: "About OpenSpades"},
		{path: "/about", wantTitle: "About - OpenSpades", wantMain: "The Project"},
		{path: "/download.php", wantTitle: "Download - OpenSpades", wantMain: "Download OpenSpades"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, handler, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			doc, err := goquery.NewDocumentFromReader(rec.Body)
			if err != nil {
				t.Fatal(err)
			}
			if got := doc.Find("title").Text(); got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
			if !strings.Contains(doc.Find("main").Text(), tt.wantMain) {
				t.Errorf("main does not contain %q", tt.wantMain)
			}
			if doc.Find("#global-nav li").Length() != 5 {
				t.Error("navigation missing")
			}
		})
	}
}

func TestHandlerServesPublicAssets(t *testing.T) {
	handler := newSiteApp(t).Handler()

	for _, path := range []string{"/css/base.css", "/css/pages.css"} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: Expected 200, got %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
			t.Errorf("%s: Content-Type = %q", path, ct)
		}
	}

	if rec := get(t, handler, "/media.php"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown page, got %d", rec.Code)
	}
}

func TestHandlerLogsAssetRequests(t *testing.T) {
	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	app, err := New(nil, WithLogger(logger), WithDev(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := get(t, app.Handler(), "/css/base.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	out := logs.String()
	for _, want := range []string{"path=/css/base.css", "status=200", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("request log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "request_id=\"\"") || strings.Contains(out, "request_id= ") {
		t.Errorf("asset request had no request id:\n%s", out)
	}
}

func TestWrapWithServeMux(t *testing.T) {
	app := newTestApp(t, []Route{Page("/", "Top", StaticFragment("<p>top</p>"))})
	handler := app.Wrap(http.NewServeMux())

	if rec := get(t, handler, "/"); rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	// ServeMux treats "/" as a prefix; the page itself must reject other paths.
	if rec := get(t, handler, "/elsewhere"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestRender(t *testing.T) {
	app := newSiteApp(t)

	var sb strings.Builder
	if err := app.Render(context.Background(), "/about/", &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(sb.String(), "<title>About - OpenSpades</title>") {
		t.Errorf("unexpected document:\n%s", sb.String())
	}

	err := app.Render(context.Background(), "/media.php", io.Discard)
	if !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("Render() unknown route error = %v", err)
	}
}

func TestRenderMissingComposition(t *testing.T) {
	app := newTestApp(t, []Route{{Pattern: "/"}})

	var sb strings.Builder
	err := app.Render(context.Background(), "/", &sb)
	if !errors.Is(err, ErrMissingComposition) {
		t.Fatalf("Render() error = %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("partial output written: %q", sb.String())
	}
}
