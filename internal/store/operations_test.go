package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosmos/internal/event"
	"kosmos/internal/model"
)

func sampleResult(failed int) model.OperationResult {
	msg := "permission denied"
	ops := []model.FileOperation{
		{SourcePath: "/src/a.jpg", DestinationPath: "/dst/a.jpg", Status: model.OperationSuccess},
	}
	for i := 0; i < failed; i++ {
		ops = append(ops, model.FileOperation{SourcePath: "/src/f.jpg", Status: model.OperationFailed, ErrorMessage: &msg})
	}
	return model.OperationResult{
		Success:         failed == 0,
		Operations:      ops,
		SuccessfulCount: 1,
		FailedCount:     failed,
		DurationMs:      1200,
		Timestamp:       time.Now().UTC(),
	}
}

func TestOperationStore_Results(t *testing.T) {
	s := NewOperationStore(event.NewBus())

	first := sampleResult(0)
	second := sampleResult(2)
	s.AddResult(first)
	s.AddResult(second)

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, second, results[0])
	assert.Equal(t, first, results[1])

	s.Clear()
	assert.Empty(t, s.Results())
}

func TestOperationStore_PartialFailureIsData(t *testing.T) {
	s := NewOperationStore(event.NewBus())

	// A run with failures is stored like any other outcome.
	partial := sampleResult(2)
	s.AddResult(partial)

	results := s.Results()
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, 2, results[0].FailedCount)
	assert.True(t, partial.CountsConsistent())
}

func TestOperationStore_Progress(t *testing.T) {
	s := NewOperationStore(event.NewBus())

	_, ok := s.Progress()
	assert.False(t, ok)

	s.SetProgress(model.OperationProgress{CurrentFile: "/a.jpg", Processed: 1, Total: 4, Percentage: 25})
	s.SetProgress(model.OperationProgress{CurrentFile: "/b.jpg", Processed: 2, Total: 4, Percentage: 50})

	// Last write wins.
	got, ok := s.Progress()
	require.True(t, ok)
	assert.Equal(t, "/b.jpg", got.CurrentFile)
	assert.Equal(t, float64(50), got.Percentage)

	s.Clear()
	_, ok = s.Progress()
	assert.False(t, ok)
}

func TestOperationResult_CountsConsistent(t *testing.T) {
	good := sampleResult(1)
	assert.True(t, good.CountsConsistent())

	bad := good
	bad.SkippedCount = 3
	assert.False(t, bad.CountsConsistent())

	mismatch := good
	mismatch.Success = true // failed_count > 0 contradicts success
	assert.False(t, mismatch.CountsConsistent())
}
