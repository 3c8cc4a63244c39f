package request

import (
	"time"

	"scoring-gateway/internal/field"
	dErrors "scoring-gateway/pkg/domain-errors"
)

// presencePairs are the field pairs of which at least one must be jointly
// non-empty for a score request to be answerable.
var presencePairs = [][2]string{
	{"phone", "email"},
	{"first_name", "last_name"},
	{"gender", "birthday"},
}

// OnlineScoreRequest is the argument schema of the online_score method. All
// six fields are optional and nullable; the pair rule below decides whether
// enough of them were supplied.
type OnlineScoreRequest struct {
	firstName *field.Field
	lastName  *field.Field
	email     *field.Field
	phone     *field.Field
	birthday  *field.Field
	gender    *field.Field

	fields []*field.Field
}

// NewOnlineScoreRequest builds an empty score schema. now anchors the
// birthday range check so one request observes one clock.
func NewOnlineScoreRequest(now time.Time) *OnlineScoreRequest {
	r := &OnlineScoreRequest{
		firstName: field.Char("first_name", false, true),
		lastName:  field.Char("last_name", false, true),
		email:     field.Email("email", false, true),
		phone:     field.Phone("phone", false, true),
		birthday:  field.Birthday("birthday", false, true, now),
		gender:    field.Gender("gender", false, true),
	}
	r.fields = []*field.Field{r.firstName, r.lastName, r.email, r.phone, r.birthday, r.gender}
	return r
}

// Populate assigns every declared field from the argument map in declaration
// order. Absent fields default to the empty string, so "present" below means
// "assigned a non-empty value".
func (r *OnlineScoreRequest) Populate(args map[string]any) error {
	for _, f := range r.fields {
		v, ok := args[f.Name()]
		if !ok {
			v = ""
		}
		if err := f.Set(v); err != nil {
			return err
		}
	}
	return nil
}

// PresentFields returns the names of the non-empty fields in declaration
// order.
func (r *OnlineScoreRequest) PresentFields() []string {
	var present []string
	for _, f := range r.fields {
		if !f.Empty() {
			present = append(present, f.Name())
		}
	}
	return present
}

// ValidatePairs enforces the cross-field presence rule: at least one
// semantically complete pair must be supplied.
func (r *OnlineScoreRequest) ValidatePairs() error {
	present := make(map[string]bool)
	for _, name := range r.PresentFields() {
		present[name] = true
	}
	for _, pair := range presencePairs {
		if present[pair[0]] && present[pair[1]] {
			return nil
		}
	}
	return dErrors.New(dErrors.CodePresenceInvalid,
		"at least one pair of phone/email, first_name/last_name or gender/birthday is required")
}

// FirstName returns the validated first name, or "".
func (r *OnlineScoreRequest) FirstName() string { return stringValue(r.firstName) }

// LastName returns the validated last name, or "".
func (r *OnlineScoreRequest) LastName() string { return stringValue(r.lastName) }

// Email returns the validated email, or "".
func (r *OnlineScoreRequest) Email() string { return stringValue(r.email) }

// Phone returns the validated phone in string form, or "".
func (r *OnlineScoreRequest) Phone() string {
	if r.phone.Empty() {
		return ""
	}
	s, _ := field.StringForm(r.phone.Get())
	return s
}

// Birthday returns the validated birthday, or the zero time when absent.
func (r *OnlineScoreRequest) Birthday() time.Time {
	s := stringValue(r.birthday)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(field.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Gender returns the validated gender, or nil when absent.
func (r *OnlineScoreRequest) Gender() *int64 {
	if r.gender.Empty() {
		return nil
	}
	n, ok := field.IntForm(r.gender.Get())
	if !ok {
		return nil
	}
	return &n
}
