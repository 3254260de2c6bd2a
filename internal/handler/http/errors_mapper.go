package http

import (
	"errors"
	"net/http"

	"github.com/octopus-msa/service02/internal/utils"
	"github.com/octopus-msa/service02/models"
)

var errorStatusMap = map[error]int{
	ErrMissingRequestHeader: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes the JSON error body used for every rejected request.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	utils.WriteJSON(w, models.NewErrorResponse(status, message, r.URL.Path), status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "")
}
