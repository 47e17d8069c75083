package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecorder(t *testing.T) {
	h := NewLogRecorder()
	log := slog.New(h).With("logger", "test")
	log.Debug("decoded", "rows", 3)
	log.Warn("fallback")

	recs := h.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, slog.LevelDebug, recs[0].Level)
	assert.Equal(t, "decoded", recs[0].Message)
	assert.Equal(t, "test", recs[0].Attrs["logger"])
	assert.Equal(t, int64(3), recs[0].Attrs["rows"])
	assert.Equal(t, 2, h.Len())
}
