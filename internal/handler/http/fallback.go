package http

import (
	"fmt"
	"net/http"

	"github.com/IvanovPete/test-backend/internal/utils"
)

// notFound replaces chi's plain-text 404 with the JSON error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, "Not found.", http.StatusNotFound)
}

// methodNotAllowed replaces chi's empty 405 with the JSON error envelope.
// chi has already set the Allow header for the matched route.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, fmt.Sprintf("Method %q not allowed.", r.Method), http.StatusMethodNotAllowed)
}
