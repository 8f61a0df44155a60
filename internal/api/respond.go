package api

import (
	"encoding/json"
	"net/http"

	apperrors "condopark/internal/errors"
	"condopark/internal/utils"

	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps err onto its HTTP status. Unexpected errors are logged
// with their full chain and answered with a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := apperrors.FromError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		utils.Logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		}).Error("Request failed")
	}
	respondJSON(w, httpErr.Code, httpErr)
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.ErrBadRequest("Invalid request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.ErrBadRequest("Invalid request body")
	}
	return nil
}
