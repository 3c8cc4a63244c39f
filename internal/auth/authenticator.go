// Package auth checks the credential digest of an incoming envelope against
// the digest the gateway expects for the claimed identity.
package auth

import (
	"context"
	"crypto/sha512"
	"encoding/hex"

	"scoring-gateway/internal/platform/config"
	"scoring-gateway/internal/request"
	"scoring-gateway/pkg/requestcontext"
)

// Authenticator computes expected SHA-512 digests for the two trust paths.
// Salts are injected at construction; the clock comes from the request
// context so the admin hour bucket follows the request-scoped time.
type Authenticator struct {
	salt      string
	adminSalt string
}

// New constructs an authenticator from config.
func New(cfg config.Auth) *Authenticator {
	return &Authenticator{salt: cfg.Salt, adminSalt: cfg.AdminSalt}
}

// Authenticate reports whether the envelope's token matches the expected
// digest. The admin digest is derived from the current hour, so a token is
// valid for at most one hour bucket; the regular digest is derived from the
// caller's account and login.
func (a *Authenticator) Authenticate(ctx context.Context, env *request.MethodRequest) bool {
	var digest string
	if env.IsAdmin() {
		hour := requestcontext.Now(ctx).Format("2006010215")
		digest = sha512Hex(hour + a.adminSalt)
	} else {
		digest = sha512Hex(env.Account() + env.Login() + a.salt)
	}
	return digest == env.Token()
}

// AdminDigest returns the admin token for the hour bucket of the given
// context. Exposed for provisioning tooling and tests.
func (a *Authenticator) AdminDigest(ctx context.Context) string {
	return sha512Hex(requestcontext.Now(ctx).Format("2006010215") + a.adminSalt)
}

// UserDigest returns the regular-path token for an account/login pair.
// Exposed for provisioning tooling and tests.
func (a *Authenticator) UserDigest(account, login string) string {
	return sha512Hex(account + login + a.salt)
}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
