package core

import (
	"fmt"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.ContainsAny(path, "*{}") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// PublicAssetPath maps a request path onto a file below the public root. It
// rejects directory listings and traversal.
func PublicAssetPath(requestPath string) (string, bool) {
	path := strings.TrimPrefix(requestPath, "/")
	if path == "" || strings.HasSuffix(path, "/") || strings.Contains(path, "..") {
		return "", false
	}
	return path, true
}
