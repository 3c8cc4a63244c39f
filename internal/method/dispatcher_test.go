package method

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"scoring-gateway/internal/auth"
	"scoring-gateway/internal/platform/config"
	"scoring-gateway/internal/scoring"
	"scoring-gateway/pkg/requestcontext"
)

const (
	testSalt      = "Otus"
	testAdminSalt = "42"
)

type DispatcherSuite struct {
	suite.Suite
	store      *scoring.MemoryStore
	dispatcher *Dispatcher
	ctx        context.Context
	now        time.Time
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) SetupTest() {
	s.store = scoring.NewMemoryStore()
	s.store.Seed("i:1", `["books","travel"]`)
	s.store.Seed("i:2", `["music","pets"]`)
	s.store.Seed("i:3", `["sport"]`)

	authenticator := auth.New(config.Auth{Salt: testSalt, AdminSalt: testAdminSalt})
	s.dispatcher = NewDispatcher(authenticator, s.store, "admin", slog.New(slog.DiscardHandler), nil)

	s.now = time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func sha512hex(v string) string {
	sum := sha512.Sum512([]byte(v))
	return hex.EncodeToString(sum[:])
}

// withValidToken fills in the token the authenticator expects for the body's
// identity, mirroring how real clients derive their credentials.
func (s *DispatcherSuite) withValidToken(body map[string]any) map[string]any {
	login, _ := body["login"].(string)
	if login == "admin" {
		body["token"] = sha512hex(s.now.Format("2006010215") + testAdminSalt)
		return body
	}
	account, _ := body["account"].(string)
	body["token"] = sha512hex(account + login + testSalt)
	return body
}

func (s *DispatcherSuite) TestEmptyBody() {
	res, err := s.dispatcher.Handle(s.ctx, map[string]any{})
	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
}

func (s *DispatcherSuite) TestBadAuth() {
	cases := []map[string]any{
		{"account": "horns&hoofs", "login": "h&f", "method": "online_score", "token": "", "arguments": map[string]any{}},
		{"account": "horns&hoofs", "login": "h&f", "method": "online_score", "token": "sdd", "arguments": map[string]any{}},
		{"account": "horns&hoofs", "login": "admin", "method": "online_score", "token": "", "arguments": map[string]any{}},
	}
	for _, body := range cases {
		res, err := s.dispatcher.Handle(s.ctx, body)
		s.Require().NoError(err)
		s.Equal(http.StatusForbidden, res.Code, "body %v", body)
		s.Equal("Forbidden", res.Payload)
	}
}

func (s *DispatcherSuite) TestAuthRunsBeforeStructuralValidation() {
	// Malformed (no method) and a wrong token: forbidden wins.
	res, err := s.dispatcher.Handle(s.ctx, map[string]any{
		"login": "h&f", "token": "wrong", "arguments": map[string]any{},
	})
	s.Require().NoError(err)
	s.Equal(http.StatusForbidden, res.Code)
}

func (s *DispatcherSuite) TestIncompleteEnvelope() {
	cases := []map[string]any{
		{"account": "horns&hoofs", "login": "h&f", "method": "online_score"},
		{"account": "horns&hoofs", "login": "h&f", "arguments": map[string]any{}},
		{"account": "horns&hoofs", "method": "online_score", "arguments": map[string]any{}},
	}
	for _, body := range cases {
		res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(body))
		s.Require().NoError(err)
		s.Equal(http.StatusUnprocessableEntity, res.Code, "body %v", body)
		s.NotEmpty(res.Payload)
	}
}

func (s *DispatcherSuite) TestUnknownMethodIsEmptySuccess() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login": "h&f", "method": "delete_everything", "arguments": map[string]any{},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)
	s.Equal(map[string]any{}, res.Payload)
}

func (s *DispatcherSuite) TestScoreInvalidArguments() {
	cases := []map[string]any{
		{"phone": "79175002040"},
		{"phone": "89175002040", "email": "a@b.ru"},
		{"phone": "79175002040", "email": "not-an-email"},
		{"first_name": "Ivan", "gender": json.Number("1")},
		{"gender": json.Number("5"), "birthday": "01.01.1990"},
		{"gender": json.Number("1"), "birthday": "01.01.1890"},
		{},
	}
	for _, args := range cases {
		res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
			"login": "h&f", "method": "online_score", "arguments": args,
		}))
		s.Require().NoError(err)
		s.Equal(http.StatusUnprocessableEntity, res.Code, "arguments %v", args)
	}
}

func (s *DispatcherSuite) TestScoreOK() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"account": "horns&hoofs",
		"login":   "h&f",
		"method":  "online_score",
		"arguments": map[string]any{
			"phone": "79175002040",
			"email": "a@b.ru",
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)

	payload, ok := res.Payload.(map[string]any)
	s.Require().True(ok)
	score, ok := payload["score"].(float64)
	s.Require().True(ok)
	s.GreaterOrEqual(score, 0.0)

	s.Equal([]string{"email", "phone"}, res.Diagnostics.Has)
}

func (s *DispatcherSuite) TestScoreAdminShortCircuit() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "admin",
		"method": "online_score",
		"arguments": map[string]any{
			"phone": "79175002040",
			"email": "a@b.ru",
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)

	payload, ok := res.Payload.(map[string]any)
	s.Require().True(ok)
	s.Equal(adminScore, payload["score"])
}

func (s *DispatcherSuite) TestScoreAdminStillNeedsAPair() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "admin",
		"method": "online_score",
		"arguments": map[string]any{
			"phone": "79175002040",
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, res.Code)
}

func (s *DispatcherSuite) TestScoreNumericPhone() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "h&f",
		"method": "online_score",
		"arguments": map[string]any{
			"phone": json.Number("79175002040"),
			"email": "a@b.ru",
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)
	s.Equal([]string{"email", "phone"}, res.Diagnostics.Has)
}

func (s *DispatcherSuite) TestInterestsOK() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "h&f",
		"method": "clients_interests",
		"arguments": map[string]any{
			"client_ids": []any{json.Number("1"), json.Number("2"), json.Number("1")},
			"date":       "01.09.2026",
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)

	payload, ok := res.Payload.(map[int64][]string)
	s.Require().True(ok)
	s.Len(payload, 2, "duplicates must collapse")
	s.Equal([]string{"books", "travel"}, payload[1])
	s.Equal([]string{"music", "pets"}, payload[2])

	s.Equal(3, res.Diagnostics.NClients, "diagnostics count duplicates")
}

func (s *DispatcherSuite) TestInterestsUnknownClient() {
	res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "h&f",
		"method": "clients_interests",
		"arguments": map[string]any{
			"client_ids": []any{json.Number("99")},
		},
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)

	payload := res.Payload.(map[int64][]string)
	s.Empty(payload[99])
}

func (s *DispatcherSuite) TestInterestsInvalidArguments() {
	cases := []map[string]any{
		{},
		{"client_ids": []any{}},
		{"client_ids": []any{"1", "2"}},
		{"client_ids": json.Number("7")},
		{"client_ids": []any{json.Number("1")}, "date": "2026-09-01"},
	}
	for _, args := range cases {
		res, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
			"login": "h&f", "method": "clients_interests", "arguments": args,
		}))
		s.Require().NoError(err)
		s.Equal(http.StatusUnprocessableEntity, res.Code, "arguments %v", args)
	}
}

func (s *DispatcherSuite) TestInterestsStoreFailure() {
	s.store.Seed("i:7", "{broken")
	_, err := s.dispatcher.Handle(s.ctx, s.withValidToken(map[string]any{
		"login":  "h&f",
		"method": "clients_interests",
		"arguments": map[string]any{
			"client_ids": []any{json.Number("7")},
		},
	}))
	s.Error(err, "internal failures surface to the transport, not as a validation outcome")
}
