package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))

	var seen int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AccountID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(jwtService)(next)

	tests := []struct {
		name         string
		target       string
		header       string
		expectedCode int
		expectedID   int64
	}{
		{name: "Bearer header", target: "/", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedID: 42},
		{name: "Query token", target: "/?token=" + valid, expectedCode: http.StatusOK, expectedID: 42},
		{name: "Missing token", target: "/", expectedCode: http.StatusUnauthorized},
		{name: "Malformed header", target: "/?token=" + valid, header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Invalid token", target: "/", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = 0
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedID, seen)
		})
	}
}
