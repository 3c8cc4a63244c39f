// Package field implements the declarative validation engine the request
// schemas are built from. A field kind is an ordered chain of independent
// check functions; a Field binds one chain to a name and a
// required/nullable policy and validates every assignment before storing it.
//
// Values are raw JSON-decoded data with json.Number preserved, so the checks
// can tell booleans from numbers and integers from integer-valued floats.
package field

import (
	dErrors "scoring-gateway/pkg/domain-errors"
)

// Check validates a single non-empty value. Checks run in chain order and
// the first failure wins.
type Check func(v any) error

// Field wraps one named value with presence policy and a validator chain.
// Validation order is fixed: none/empty against nullable, then each check.
type Field struct {
	name     string
	required bool
	nullable bool
	checks   []Check

	value    any
	assigned bool
}

// New builds a field descriptor. Required is advisory metadata for the
// component populating the schema; the field itself only polices explicitly
// assigned values.
func New(name string, required, nullable bool, checks ...Check) *Field {
	return &Field{name: name, required: required, nullable: nullable, checks: checks}
}

// Name returns the declared field name.
func (f *Field) Name() string { return f.name }

// Required reports whether the caller must supply this field.
func (f *Field) Required() bool { return f.required }

// Set validates v and stores it. On failure the previously stored value is
// untouched; assignment is all-or-nothing.
func (f *Field) Set(v any) error {
	if isEmpty(v) {
		if !f.nullable {
			return dErrors.Newf(dErrors.CodePresenceInvalid, "%s: must not be empty", f.name)
		}
		// Empty and nullable short-circuits the rest of the chain.
		f.value = v
		f.assigned = true
		return nil
	}

	for _, check := range f.checks {
		if err := check(v); err != nil {
			return dErrors.Prefix(err, f.name)
		}
	}

	f.value = v
	f.assigned = true
	return nil
}

// Get returns the last successfully stored value, or nil if never set.
func (f *Field) Get() any {
	return f.value
}

// Assigned reports whether a value has ever been successfully stored.
func (f *Field) Assigned() bool { return f.assigned }

// Empty reports whether the stored value is nil or an empty string.
// A stored zero (gender "unknown") is not empty.
func (f *Field) Empty() bool {
	return isEmpty(f.value)
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
