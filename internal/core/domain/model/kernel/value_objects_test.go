package kernel_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJsonSpec(t *testing.T) {
	t.Run("accepts well formed JSON", func(t *testing.T) {
		spec, err := kernel.NewJsonSpec(`{"color":"red","size":42}`)

		require.NoError(t, err)
		assert.Equal(t, `{"color":"red","size":42}`, spec.String())
		assert.False(t, spec.IsZero())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := kernel.NewJsonSpec("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := kernel.NewJsonSpec(`{"color":`)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects oversized payload", func(t *testing.T) {
		big := `{"v":"` + strings.Repeat("x", 10001) + `"}`

		_, err := kernel.NewJsonSpec(big)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var spec kernel.JsonSpec

		assert.True(t, spec.IsZero())
	})
}

func TestNewCartSnapshot(t *testing.T) {
	t.Run("captures valid snapshot", func(t *testing.T) {
		snapshot, err := kernel.NewCartSnapshot(`{"items":[{"productId":"p1","quantity":3}]}`, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.ItemsCount())
		assert.False(t, snapshot.IsEmpty())
		assert.False(t, snapshot.TakenAt().IsZero())
	})

	t.Run("empty item count is an empty snapshot", func(t *testing.T) {
		snapshot, err := kernel.NewCartSnapshot(`{"items":[]}`, 0)

		require.NoError(t, err)
		assert.True(t, snapshot.IsEmpty())
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := kernel.NewCartSnapshot("", 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := kernel.NewCartSnapshot("{", 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative item count", func(t *testing.T) {
		_, err := kernel.NewCartSnapshot(`{"items":[]}`, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects oversized payload", func(t *testing.T) {
		big := `{"v":"` + strings.Repeat("x", 50001) + `"}`

		_, err := kernel.NewCartSnapshot(big, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("normalizes to lowercase", func(t *testing.T) {
		email, err := kernel.NewEmail("  Buyer@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", email.String())
	})

	t.Run("rejects malformed address", func(t *testing.T) {
		_, err := kernel.NewEmail("not-an-email")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewPhoneNumber(t *testing.T) {
	t.Run("keeps E.164 input", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("+966512345678")

		require.NoError(t, err)
		assert.Equal(t, "+966512345678", phone.String())
	})

	t.Run("normalizes local format to +966", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("0512345678")

		require.NoError(t, err)
		assert.Equal(t, "+966512345678", phone.String())
	})

	t.Run("strips separators before validation", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("+966 51-234-5678")

		require.NoError(t, err)
		assert.Equal(t, "+966512345678", phone.String())
	})

	t.Run("rejects letters", func(t *testing.T) {
		_, err := kernel.NewPhoneNumber("+966abc")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
