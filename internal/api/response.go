package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/middleware"
	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithCode(w, statusCode, "", message)
}

func respondWithCode(w http.ResponseWriter, statusCode int, code, message string) {
	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Code:      code,
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// StatusForKind maps a business error kind to its HTTP status.
func StatusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindEligibility:
		return http.StatusForbidden
	case services.KindWindow:
		return http.StatusConflict
	case services.KindDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithServiceError writes business rejections with their code and
// hides infrastructure failures behind a generic 500.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *services.DomainError
	if errors.As(err, &de) {
		respondWithCode(w, StatusForKind(de.Kind), de.Code, de.Message)
		return
	}

	logging.Error("Request failed",
		"request_id", middleware.GetRequestID(r.Context()),
		"path", r.URL.Path,
		"error", err.Error(),
	)
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON reads the request body into dst. An empty body is accepted when
// allowEmpty is set.
func decodeJSON(r *http.Request, dst interface{}, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return errors.New("request body is required")
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}
