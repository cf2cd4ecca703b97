package classification

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleRecords(n int) []model.PackageRecord {
	descs := []string{"A web browser", "IRC chat client", "Video player", "", "Kernel module utility"}
	records := make([]model.PackageRecord, n)
	for i := range records {
		records[i] = model.PackageRecord{
			Name:             fmt.Sprintf("pkg-%03d", i),
			ShortDescription: descs[i%len(descs)],
		}
	}
	return records
}

func TestClassifyBatch_IndependentOfWorkers(t *testing.T) {
	c := newDefault(t, staticOverrides{"pkg-007": model.CategoryBooks, "pkg-011": model.CategoryNews})
	records := sampleRecords(64)

	sequential, err := c.ClassifyBatch(context.Background(), records, 1, nil)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 8, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			var calls atomic.Int64
			parallel, err := c.ClassifyBatch(context.Background(), records, workers, func() { calls.Add(1) })
			require.NoError(t, err)
			assert.Equal(t, sequential, parallel)
			assert.Equal(t, int64(len(records)), calls.Load())
		})
	}

	assert.Equal(t, 2, sequential.OverridesApplied)
	require.Len(t, sequential.Suggestions, len(records))
	for i, s := range sequential.Suggestions {
		assert.Equal(t, records[i].Name, s.PkgName, "input order is preserved")
		assert.True(t, s.Category.IsValid())
	}
}

func TestClassifyBatch_Canceled(t *testing.T) {
	c := newDefault(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ClassifyBatch(ctx, sampleRecords(10), 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyBatch_Empty(t *testing.T) {
	c := newDefault(t, nil)

	result, err := c.ClassifyBatch(context.Background(), nil, 4, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	assert.Zero(t, result.OverridesApplied)
}
