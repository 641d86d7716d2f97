package kernel_test

import (
	"testing"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive values", func(t *testing.T) {
		id, err := kernel.NewID(5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), id.Int64())
		assert.Equal(t, "5", id.String())
		assert.False(t, id.IsZero())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, value := range []int64{0, -1, -100} {
			_, err := kernel.NewID(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var id kernel.ID

		assert.True(t, id.IsZero())
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestIDFromString(t *testing.T) {
	testCases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			id, err := kernel.IDFromString(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id.Int64())
		})
	}
}

func TestID_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustNewID(3).IsEqual(kernel.MustNewID(3)))
	assert.False(t, kernel.MustNewID(3).IsEqual(kernel.MustNewID(4)))
}

func TestMustNewID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewID(0) })
}
