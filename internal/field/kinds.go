package field

import "time"

// Kind constructors. Each bundles the check chain for one semantic kind of
// value; schemas declare their fields through these.

// Char is a plain string field.
func Char(name string, required, nullable bool) *Field {
	return New(name, required, nullable, IsString())
}

// Arguments is a structured map field (a method's argument object).
func Arguments(name string, required, nullable bool) *Field {
	return New(name, required, nullable, IsMap())
}

// Email is a char field that must also look like an email address.
func Email(name string, required, nullable bool) *Field {
	return New(name, required, nullable, IsString(), EmailFormat())
}

// Phone accepts an integer or string rendering an 11-digit number starting
// with 7.
func Phone(name string, required, nullable bool) *Field {
	return New(name, required, nullable, PhoneFormat())
}

// Date is a DD.MM.YYYY string with no range rule.
func Date(name string, required, nullable bool) *Field {
	return New(name, required, nullable, DateFormat())
}

// Birthday is a date bounded to at most ~70 years before now.
func Birthday(name string, required, nullable bool, now time.Time) *Field {
	return New(name, required, nullable, DateFormat(), MaxAge(now))
}

// Gender is the closed 0/1/2 enumeration.
func Gender(name string, required, nullable bool) *Field {
	return New(name, required, nullable, GenderValue())
}

// ClientIDs is a non-empty array of integers.
func ClientIDs(name string, required, nullable bool) *Field {
	return New(name, required, nullable, IntList())
}
