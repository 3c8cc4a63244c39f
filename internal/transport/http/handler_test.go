package httptransport

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-gateway/internal/auth"
	"scoring-gateway/internal/method"
	"scoring-gateway/internal/platform/config"
	"scoring-gateway/internal/scoring"
)

func newTestRouter(t *testing.T, store *scoring.MemoryStore, health HealthChecker) http.Handler {
	t.Helper()
	authenticator := auth.New(config.Auth{Salt: "Otus", AdminSalt: "42"})
	dispatcher := method.NewDispatcher(authenticator, store, "admin", slog.New(slog.DiscardHandler), nil)
	return NewRouter(NewHandler(dispatcher, slog.New(slog.DiscardHandler), health))
}

func userToken(account, login string) string {
	sum := sha512.Sum512([]byte(account + login + "Otus"))
	return hex.EncodeToString(sum[:])
}

func post(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/method", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestHandleMethod(t *testing.T) {
	store := scoring.NewMemoryStore()
	store.Seed("i:1", `["books"]`)
	router := newTestRouter(t, store, nil)

	t.Run("malformed JSON is a transport-level 400", func(t *testing.T) {
		w := post(t, router, "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Bad Request", env["error"])
		assert.Equal(t, float64(http.StatusBadRequest), env["code"])
	})

	t.Run("wrong token yields a forbidden envelope", func(t *testing.T) {
		w := post(t, router, `{"login":"h&f","token":"bad","method":"online_score","arguments":{}}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Forbidden", env["error"])
	})

	t.Run("empty arguments fail the pair rule", func(t *testing.T) {
		token := userToken("", "h&f")
		w := post(t, router, `{"login":"h&f","token":"`+token+`","method":"online_score","arguments":{}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("valid score request", func(t *testing.T) {
		token := userToken("horns&hoofs", "h&f")
		w := post(t, router, `{"account":"horns&hoofs","login":"h&f","token":"`+token+`","method":"online_score","arguments":{"phone":"79175002040","email":"a@b.ru"}}`)
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		assert.Equal(t, float64(http.StatusOK), env["code"])
		resp, ok := env["response"].(map[string]any)
		require.True(t, ok)
		score, ok := resp["score"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, 0.0)
	})

	t.Run("numeric phone survives decoding", func(t *testing.T) {
		token := userToken("", "h&f")
		w := post(t, router, `{"login":"h&f","token":"`+token+`","method":"online_score","arguments":{"phone":79175002040,"email":"a@b.ru"}}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("interests request maps ids to lists", func(t *testing.T) {
		token := userToken("", "h&f")
		w := post(t, router, `{"login":"h&f","token":"`+token+`","method":"clients_interests","arguments":{"client_ids":[1,1]}}`)
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		resp, ok := env["response"].(map[string]any)
		require.True(t, ok)
		require.Len(t, resp, 1)
		assert.Equal(t, []any{"books"}, resp["1"])
	})

	t.Run("request id header is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/method", strings.NewReader("{}"))
		req.Header.Set("X-Request-Id", "fixture-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "fixture-id", w.Header().Get("X-Request-Id"))
	})
}

func TestTransportOnlyStatuses(t *testing.T) {
	store := scoring.NewMemoryStore()

	t.Run("unknown route is 404", func(t *testing.T) {
		router := newTestRouter(t, store, nil)
		req := httptest.NewRequest(http.MethodPost, "/unknown", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Not Found", env["error"])
	})

	t.Run("store failure during dispatch is 500", func(t *testing.T) {
		broken := scoring.NewMemoryStore()
		broken.Seed("i:9", "{broken")
		router := newTestRouter(t, broken, nil)

		token := userToken("", "h&f")
		w := post(t, router, `{"login":"h&f","token":"`+token+`","method":"clients_interests","arguments":{"client_ids":[9]}}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Internal Server Error", env["error"])
	})
}

type failingHealth struct{}

func (failingHealth) Health(context.Context) error { return errors.New("down") }

func TestHandleHealth(t *testing.T) {
	store := scoring.NewMemoryStore()

	t.Run("healthy store", func(t *testing.T) {
		router := newTestRouter(t, store, store)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unreachable store", func(t *testing.T) {
		router := newTestRouter(t, store, failingHealth{})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
