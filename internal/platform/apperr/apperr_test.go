// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imagefix/internal/platform/apperr"
)

/*
TestReadFailure_Unwrap verifies the OS cause stays reachable through the chain.
*/
func TestReadFailure_Unwrap(t *testing.T) {
	err := apperr.ReadFailure("a.tsx", fs.ErrNotExist)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, apperr.CodeReadFailure, err.Code)
	assert.Equal(t, "a.tsx", err.Path)
	assert.Contains(t, err.Error(), "read a.tsx")
}

/*
TestAs_WrappedError checks extraction through fmt.Errorf wrapping.
*/
func TestAs_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("rewrite: %w", apperr.WriteFailure("b.tsx", fs.ErrPermission))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeWriteFailure, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeWriteFailure))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeReadFailure))
}

/*
TestExitCode maps errors to process exit statuses.
*/
func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"read_failure", apperr.ReadFailure("x", fs.ErrNotExist), 1},
		{"config_invalid", apperr.ConfigInvalid("bad"), 1},
		{"plain_error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.ExitCode(tt.err))
		})
	}
}
