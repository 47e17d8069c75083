package crystio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordFile("a", 10, 2*time.Millisecond, nil)
	mc.RecordFile("b", 0, 4*time.Millisecond, errors.New("corrupt"))
	mc.RecordRead(2, 10, 6*time.Millisecond, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.FileCount)
	assert.Equal(t, int64(1), stats.FileErrors)
	assert.Equal(t, int64(10), stats.RowsRead)
	assert.Equal(t, 3*time.Millisecond, stats.FileAvgLatency)
	assert.Equal(t, int64(1), stats.ReadCount)
	assert.Zero(t, stats.ReadErrors)
	assert.Equal(t, 6*time.Millisecond, stats.ReadAvgLatency)

	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}
