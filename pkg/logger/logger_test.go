//go:build unit

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger()
	require.NoError(t, err)

	assert.NotNil(t, log)
}
