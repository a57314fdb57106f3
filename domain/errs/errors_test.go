package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	base := errors.New("connection refused")

	tests := []struct {
		name      string
		err       error
		wantNil   bool
		wantStore bool
	}{
		{"nil stays nil", nil, true, false},
		{"plain error is wrapped", base, false, true},
		{"wrapped store error is kept", fmt.Errorf("ctx: %w", &StoreError{Op: "get", Err: base}), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Store("create", tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.wantStore, IsStoreError(got))
			assert.ErrorIs(t, got, base)
		})
	}
}

func TestStoreErrorMessage(t *testing.T) {
	err := Store("delete", errors.New("timeout"))
	assert.Equal(t, "store delete: timeout", err.Error())
}

func TestSentinelsAreNotStoreErrors(t *testing.T) {
	assert.False(t, IsStoreError(ErrNotFound))
	assert.False(t, IsStoreError(ErrForbidden))
}
