package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/precious1994-dev/APP-PORT/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data as the raw response body. Success bodies carry no
// envelope; the record or array is the payload.
func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError writes an error body of the form {"error": string}, with
// optional details. Unexpected errors become a generic 500; the original
// error goes to the log only.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		w.WriteHeader(http.StatusInternalServerError)
		r.writeErrorBody(w, "Internal Server Error", "")
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Err(apiErr.Cause).Int("status", apiErr.StatusCode).Msg(apiErr.Error())
	}

	w.WriteHeader(apiErr.StatusCode)
	r.writeErrorBody(w, apiErr.Error(), apiErr.Details)
}

func (r Responder) writeErrorBody(w http.ResponseWriter, message, details string) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling error response")
		return
	}
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing error response")
	}
}

// wrapDatabaseError wraps a store error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
