// Package request declares the three validated schemas: the authenticated
// method envelope common to every call, and the argument schemas of the two
// business methods. A schema is an ordered set of field descriptors;
// populating it assigns every declared field from a raw JSON-decoded map in
// declaration order, validating on each assignment.
package request

import (
	"strings"

	"scoring-gateway/internal/field"
	dErrors "scoring-gateway/pkg/domain-errors"
)

// MethodRequest is the outer authenticated envelope: identity fields, the
// method name and its argument object.
type MethodRequest struct {
	adminLogin string

	account   *field.Field
	login     *field.Field
	token     *field.Field
	arguments *field.Field
	method    *field.Field

	fields  []*field.Field
	missing []string
}

// NewMethodRequest builds an empty envelope. adminLogin is the login that
// selects the admin trust path.
func NewMethodRequest(adminLogin string) *MethodRequest {
	r := &MethodRequest{
		adminLogin: adminLogin,
		account:    field.Char("account", false, true),
		login:      field.Char("login", true, true),
		token:      field.Char("token", true, true),
		arguments:  field.Arguments("arguments", true, true),
		method:     field.Char("method", true, false),
	}
	r.fields = []*field.Field{r.account, r.login, r.token, r.arguments, r.method}
	return r
}

// Populate assigns every declared field from the raw body in declaration
// order. Assignment continues past a failure so the identity fields are
// still available to the authenticator, which runs before structural
// validation; the first failure is returned.
func (r *MethodRequest) Populate(body map[string]any) error {
	var firstErr error
	for _, f := range r.fields {
		v, ok := body[f.Name()]
		if !ok {
			if f.Required() {
				r.missing = append(r.missing, f.Name())
			}
			v = r.defaultFor(f)
		}
		if err := f.Set(v); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Missing returns the names of required fields the caller did not supply, in
// declaration order.
func (r *MethodRequest) Missing() []string {
	return r.missing
}

// TokenSupplied reports whether the caller presented a credential at all,
// well-formed or not. A request without one is structurally incomplete
// rather than forbidden.
func (r *MethodRequest) TokenSupplied() bool {
	for _, name := range r.missing {
		if name == "token" {
			return false
		}
	}
	return true
}

// ValidateRequired enforces that every required envelope field was supplied.
func (r *MethodRequest) ValidateRequired() error {
	if len(r.missing) == 0 {
		return nil
	}
	return dErrors.Newf(dErrors.CodePresenceInvalid,
		"%s: must be supplied", strings.Join(r.missing, ", "))
}

func (r *MethodRequest) defaultFor(f *field.Field) any {
	if f == r.arguments {
		return map[string]any{}
	}
	return nil
}

// Account returns the caller's account, or "" when absent.
func (r *MethodRequest) Account() string { return stringValue(r.account) }

// Login returns the caller's login, or "" when absent.
func (r *MethodRequest) Login() string { return stringValue(r.login) }

// Token returns the supplied credential digest, or "" when absent.
func (r *MethodRequest) Token() string { return stringValue(r.token) }

// Method returns the requested method name.
func (r *MethodRequest) Method() string { return stringValue(r.method) }

// Arguments returns the method argument object, never nil.
func (r *MethodRequest) Arguments() map[string]any {
	if m, ok := r.arguments.Get().(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// IsAdmin reports whether the envelope claims the admin identity.
func (r *MethodRequest) IsAdmin() bool {
	return r.Login() == r.adminLogin
}

func stringValue(f *field.Field) string {
	if s, ok := f.Get().(string); ok {
		return s
	}
	return ""
}
