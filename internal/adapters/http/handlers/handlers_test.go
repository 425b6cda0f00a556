package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

func anonymous(t *testing.T, token string) domain.Identity {
	t.Helper()

	id, err := domain.AnonymousIdentity(token)
	require.NoError(t, err)

	return id
}

// withIdentity stands in for the identity middleware.
func withIdentity(identity domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyIdentity, identity)
	}
}

func serve(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}
