package http

import (
	"io/fs"
	"net/http"

	"github.com/openspades/website/internal/core"
)

// PublicHandler serves files from the public tree and hands every other
// request to next.
type PublicHandler struct {
	publicFS fs.FS
	next     http.Handler
}

func NewPublicHandler(publicFS fs.FS, next http.Handler) http.Handler {
	return &PublicHandler{
		publicFS: publicFS,
		next:     next,
	}
}

// PublicMiddleware mounts a PublicHandler inside a middleware chain.
func PublicMiddleware(publicFS fs.FS) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return NewPublicHandler(publicFS, next)
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.publicFS == nil || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
		h.next.ServeHTTP(w, req)
		return
	}

	path, ok := core.PublicAssetPath(req.URL.Path)
	if !ok || !h.fileExists(path) {
		h.next.ServeHTTP(w, req)
		return
	}

	h.serveFile(w, req, path)
}

func (h *PublicHandler) fileExists(path string) bool {
	info, err := fs.Stat(h.publicFS, path)
	return err == nil && !info.IsDir()
}

func (h *PublicHandler) serveFile(w http.ResponseWriter, req *http.Request, path string) {
	data, err := fs.ReadFile(h.publicFS, path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
