package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"three-tier-api/internal/config"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

const msgDatabaseFailed = "Database operation failed"

// Options carries the response metadata shared by every handler.
type Options struct {
	// Server is reported in the "server" field of every envelope.
	Server string
	// ExposeErrors includes the underlying error text in error envelopes.
	ExposeErrors bool
}

// NewOptions derives handler options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Server:       cfg.Server.Hostname,
		ExposeErrors: cfg.App.ExposeInternalErrors,
	}
}

// errorResponse builds an error envelope, attaching err's text when allowed.
func (o Options) errorResponse(message string, err error) model.ErrorResponse {
	resp := model.ErrorResponse{
		Status:  model.StatusError,
		Message: message,
		Server:  o.Server,
	}
	if o.ExposeErrors && err != nil {
		resp.Error = errorText(err)
	}
	return resp
}

// errorText returns the driver's own message for database errors.
func errorText(err error) string {
	var dbErr *model.DatabaseError
	if errors.As(err, &dbErr) && dbErr.Err != nil {
		return dbErr.Err.Error()
	}
	return err.Error()
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already out, so the error can only be logged.
		logger.Debug().Err(err).Int("status", status).Msg("failed to write response")
	}
}

// writeServiceError maps a service failure to its envelope: domain errors
// are the client's fault (400), anything else is a database failure (500).
func writeServiceError(w http.ResponseWriter, opts Options, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Warn().Str("code", domainErr.Code).Str("error", domainErr.Message).Msg("invalid request")
		writeJSON(w, logger, http.StatusBadRequest, model.ErrorResponse{
			Status:  model.StatusError,
			Message: domainErr.Message,
			Server:  opts.Server,
		})
		return
	}

	logger.Error().Err(err).Int("status", http.StatusInternalServerError).Msg("database operation failed")
	writeJSON(w, logger, http.StatusInternalServerError, opts.errorResponse(msgDatabaseFailed, err))
}

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}
