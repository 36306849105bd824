// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuidv7_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/imagefix/pkg/uuidv7"
)

/*
TestNew_Version checks the generated value parses as a version 7 UUID.
*/
func TestNew_Version(t *testing.T) {
	id, err := uuid.Parse(uuidv7.New())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, uuidv7.New(), uuidv7.New())
}
