package web

import (
	"net/http"

	"content_studio/internal/backend"
)

func errNotFound() error {
	return &backend.APIError{StatusCode: http.StatusNotFound, Detail: "Project not found"}
}
