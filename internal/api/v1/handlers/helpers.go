package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"ulascansenturk/room-temperature-service/internal/aggregation"
	"ulascansenturk/room-temperature-service/internal/apperrors"
)

const dateLayout = "2006-01-02"

// readingDateLayouts are tried in order when a reading carries a date.
var readingDateLayouts = []string{
	"01-02-2006 15:04:05",
	time.RFC3339,
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		errorCode = "CONFLICT"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
	}

	respondWithErrorCode(w, code, errorCode, message)
}

func respondWithErrorCode(w http.ResponseWriter, code int, errorCode, message string) {
	title := http.StatusText(code)
	if title == "" {
		title = "Internal Server Error"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

// respondWithServiceError maps an error kind from the service layer onto a status code.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrNoData):
		respondWithErrorCode(w, http.StatusNotFound, "NO_DATA", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrConstraint):
		respondWithErrorCode(w, http.StatusConflict, "CONSTRAINT_VIOLATION", err.Error())
	default:
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respondWithError(w, http.StatusInternalServerError, "internal error: "+err.Error())
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// round2 rounds half to even at two decimals.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(2).InexactFloat64()
}

func dailyTemperatures(days []aggregation.DailyAverage) []DailyTemperature {
	out := make([]DailyTemperature, 0, len(days))
	for _, d := range days {
		out = append(out, DailyTemperature{
			Date:    d.Date.Format(dateLayout),
			Average: round2(d.Average),
		})
	}
	return out
}

// parseReadingDate falls back to the current UTC time when raw is empty or unparsable.
func parseReadingDate(raw string, now func() time.Time) (time.Time, bool) {
	if raw != "" {
		for _, layout := range readingDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC(), true
			}
		}
	}

	return now().UTC(), false
}
