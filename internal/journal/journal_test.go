package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "journal.db")
	j, err := Open(path)
	require.NoError(t, err, "open should create parent directories")
	defer j.Close()

	ctx := context.Background()
	run := &Run{
		Command:    "replace-unit",
		InputPath:  "campaign_1.json",
		OutputPath: "campaign_1.out.json",
		Mapping:    map[int]int{74: 569, 75: 570},
		EffectHits: 12,
		UnitHits:   3,
	}
	require.NoError(t, j.Record(ctx, run))
	assert.NotEmpty(t, run.ID, "record should assign an ID")
	assert.False(t, run.StartedAt.IsZero(), "record should assign a timestamp")

	require.NoError(t, j.Record(ctx, &Run{
		Command:   "replace-tech",
		InputPath: "campaign_2.json",
		Mapping:   map[int]int{904: 1504},
		DryRun:    true,
	}))

	runs, err := j.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "replace-tech", runs[0].Command)
	assert.True(t, runs[0].DryRun)
	assert.Empty(t, runs[0].OutputPath)

	got := runs[1]
	assert.Equal(t, "replace-unit", got.Command)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, map[int]int{74: 569, 75: 570}, got.Mapping)
	assert.Equal(t, 12, got.EffectHits)
	assert.Equal(t, 3, got.UnitHits)
	assert.Equal(t, "campaign_1.out.json", got.OutputPath)
}

func TestListLimit(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(ctx, &Run{
			Command:   "replace-unit",
			InputPath: "s.json",
			Mapping:   map[int]int{1 + i: 100 + i},
		}))
	}

	runs, err := j.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListEmpty(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	runs, err := j.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
