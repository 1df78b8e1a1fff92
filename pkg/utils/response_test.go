package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]string{"session_id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"session_id":"abc"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		code    int
		body    Response
	}{
		{
			name:    "Plain error",
			respond: func(w http.ResponseWriter) { RespondWithError(w, http.StatusNotFound, "session not found") },
			code:    http.StatusNotFound,
			body:    Response{Error: "session not found"},
		},
		{
			name: "With details",
			respond: func(w http.ResponseWriter) {
				RespondWithDetails(w, http.StatusUnprocessableEntity, "invalid amount", map[string]string{"stake": "dgt"})
			},
			code: http.StatusUnprocessableEntity,
			body: Response{Error: "invalid amount", Details: map[string]string{"stake": "dgt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.respond(w)

			assert.Equal(t, tt.code, w.Code)
			var body Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.body, body)
		})
	}
}
