package http

import (
	"bytes"
	"errors"
	"html"
	"log/slog"
	"net/http"

	"github.com/openspades/website/internal/core"
	"github.com/openspades/website/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	config  core.PageConfig
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(
	service *usecase.PageService,
	config core.PageConfig,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		config:  config,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		Config:      h.config,
		Method:      req.Method,
		RequestPath: req.URL.Path,
	})

	if output.Error != nil {
		h.serveError(w, req, output.Error)
		return
	}

	switch output.Action {
	case core.ActionNotFound:
		http.NotFound(w, req)

	case core.ActionMethodNotAllowed:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

	case core.ActionRender:
		h.serveHTML(w, req, output.HTML)
	}
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, req *http.Request, document string) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(document))
}

func (h *PageHandler) serveError(w http.ResponseWriter, req *http.Request, err error) {
	h.logger.Error("page render failed",
		"path", req.URL.Path,
		"pattern", h.config.Pattern,
		"error", err,
	)

	// A missing composition stops the page entirely: only the diagnostic is sent.
	if errors.Is(err, core.ErrMissingComposition) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(core.MissingCompositionMessage))
		return
	}

	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
