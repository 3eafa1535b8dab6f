//go:build unit

package discount_test

import (
	"fmt"
	"strings"
	"testing"

	"promo-engine/internal/domain/discount"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		code, err := discount.NewCode("  save10 ")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", code.String())
	})

	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "plain code", input: "SUMMER20", ok: true},
		{name: "underscore and hyphen", input: "BLACK_FRIDAY-24", ok: true},
		{name: "minimum length", input: "ABC", ok: true},
		{name: "maximum length", input: strings.Repeat("A", 50), ok: true},
		{name: "too short", input: "AB", ok: false},
		{name: "too long", input: strings.Repeat("A", 51), ok: false},
		{name: "empty", input: "", ok: false},
		{name: "spaces inside", input: "SAVE 10", ok: false},
		{name: "punctuation", input: "SAVE!10", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := discount.NewCode(tc.input)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, discount.ErrInvalidCode)
			}
		})
	}
}

func TestParseIDSet(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("parses comma-joined ids", func(t *testing.T) {
		set := discount.ParseIDSet(fmt.Sprintf("%s,%s", a, b))
		if diff := cmp.Diff(discount.NewIDSet(a, b), set); diff != "" {
			t.Errorf("IDSet mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("skips malformed entries", func(t *testing.T) {
		set := discount.ParseIDSet(fmt.Sprintf("%s,not-a-uuid, %s ", a, b))
		assert.Len(t, set, 2)
		assert.True(t, set.Contains(a))
		assert.True(t, set.Contains(b))
	})

	t.Run("entirely malformed input yields empty set", func(t *testing.T) {
		set := discount.ParseIDSet("garbage,more garbage")
		assert.True(t, set.IsEmpty())
	})

	t.Run("blank input yields empty set", func(t *testing.T) {
		assert.True(t, discount.ParseIDSet("").IsEmpty())
		assert.True(t, discount.ParseIDSet("   ").IsEmpty())
	})

	t.Run("empty set matches nothing but restricts nothing", func(t *testing.T) {
		var set discount.IDSet
		assert.True(t, set.IsEmpty())
		assert.False(t, set.Contains(a))
		assert.False(t, set.ContainsAny([]uuid.UUID{a, b}))
	})
}
