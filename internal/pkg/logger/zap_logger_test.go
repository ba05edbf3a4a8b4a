package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)

	l.Info("BOOKING", "Booking confirmed", map[string]interface{}{"booking_id": "b-1"})
	l.Debug("BOOKING", "debug lines stay off the file", nil)
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(raw)
	assert.Contains(t, content, `"module":"BOOKING"`)
	assert.Contains(t, content, `"message":"Booking confirmed"`)
	assert.Contains(t, content, `"booking_id":"b-1"`)
	assert.NotContains(t, content, "debug lines stay off the file")
}

func TestNopLogger_AcceptsNilDetails(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Error("AUDIT", "append failed", nil)
		l.Warn("AUDIT", "append failed", map[string]interface{}{"error": "boom"})
	})
}
