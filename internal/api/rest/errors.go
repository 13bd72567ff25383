package rest

import (
	"errors"
	"net/http"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/validate"
)

const msgInternal = "Internal server error"

// respondInternal hides the underlying failure behind a generic 500. The
// real error goes to the request log, never to the client.
func respondInternal(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, msgInternal)
}

// respondValidation maps a validation failure to the 400 envelope carrying
// the first violated constraint, or falls back to 500 for anything else.
func respondValidation(w http.ResponseWriter, err error) {
	var fe *validate.FieldError
	if errors.As(err, &fe) {
		respondError(w, http.StatusBadRequest, fe.Message)
		return
	}
	respondInternal(w)
}
