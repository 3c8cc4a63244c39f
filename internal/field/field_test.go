package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "scoring-gateway/pkg/domain-errors"
)

func TestFieldNullability(t *testing.T) {
	// Every kind accepts nil/"" iff nullable; a real value goes through the
	// chain either way.
	kinds := map[string]func(nullable bool) *Field{
		"char":      func(n bool) *Field { return Char("f", false, n) },
		"email":     func(n bool) *Field { return Email("f", false, n) },
		"phone":     func(n bool) *Field { return Phone("f", false, n) },
		"date":      func(n bool) *Field { return Date("f", false, n) },
		"gender":    func(n bool) *Field { return Gender("f", false, n) },
		"arguments": func(n bool) *Field { return Arguments("f", false, n) },
	}

	for name, build := range kinds {
		t.Run(name, func(t *testing.T) {
			for _, empty := range []any{nil, ""} {
				assert.NoError(t, build(true).Set(empty), "nullable must accept %#v", empty)

				err := build(false).Set(empty)
				require.Error(t, err, "non-nullable must reject %#v", empty)
				assert.Equal(t, dErrors.CodePresenceInvalid, dErrors.CodeOf(err))
			}
		})
	}
}

func TestFieldSetIsAllOrNothing(t *testing.T) {
	f := Char("name", false, true)
	require.NoError(t, f.Set("hugo"))

	err := f.Set(jsonNum("3"))
	require.Error(t, err)
	assert.Equal(t, "hugo", f.Get(), "failed assignment must not disturb the stored value")
}

func TestFieldSetIsIdempotent(t *testing.T) {
	f := Phone("phone", false, true)
	require.NoError(t, f.Set("79175002040"))
	require.NoError(t, f.Set("79175002040"))
	assert.Equal(t, "79175002040", f.Get())
}

func TestFieldEmpty(t *testing.T) {
	f := Gender("gender", false, true)
	require.NoError(t, f.Set(jsonNum("0")))
	assert.False(t, f.Empty(), "a stored zero is not empty")

	g := Char("name", false, true)
	require.NoError(t, g.Set(""))
	assert.True(t, g.Empty())
}
