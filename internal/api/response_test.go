package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/models/dtos/responses"
	"football-club/matchday/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: services.ErrMatchNotFound, want: http.StatusNotFound},
		{err: services.ErrNoSeasonForDate, want: http.StatusNotFound},
		{err: services.ErrInvalidDeadlines, want: http.StatusBadRequest},
		{err: services.ErrNotEligible, want: http.StatusForbidden},
		{err: services.ErrVotingNotStarted, want: http.StatusConflict},
		{err: services.ErrPendingNoLongerAllowed, want: http.StatusConflict},
		{err: services.ErrDeliveryFailed, want: http.StatusBadGateway},
		{err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForKind(services.KindOf(tt.err)))
		})
	}
}

func TestRespondWithServiceError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matches/m1/vote", nil)

	rec := httptest.NewRecorder()
	respondWithServiceError(rec, req, services.ErrDeliveryFailed.Wrap(errors.New("token=secret rejected")))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp responses.APIResponse[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(constants.APIStatusError), resp.Status)
	assert.Equal(t, constants.CodeDeliveryFailed, resp.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	rec = httptest.NewRecorder()
	respondWithServiceError(rec, req, errors.New("database is locked"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "locked")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, decodeJSON(req, &dst, false))
	assert.Equal(t, "x", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, decodeJSON(req, &dst, true))
	assert.Error(t, decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &dst, false))
	assert.Error(t, decodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &dst, true))
}
