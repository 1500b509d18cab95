// ABOUTME: Tests for the pipeline board model
// ABOUTME: Covers bucket grouping, value sums, and stage moves
package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarvisforJira/TrailTrack/models"
)

func TestBoardBucketsCoverAllStages(t *testing.T) {
	crm := newFakeCRM()
	crm.add("leads", leadRecord("Acme deal", models.StageNew, 100000))
	crm.add("leads", leadRecord("Globex deal", models.StageNew, 250000))
	crm.add("leads", leadRecord("Initech renewal", models.StageClosedWon, 500000))

	board := NewBoard(newTestClient(t, crm))
	require.NoError(t, board.Load(context.Background()))

	buckets := board.Buckets()
	require.Len(t, buckets, 6, "every stage gets a column, empty or not")
	for i, stage := range models.Stages() {
		assert.Equal(t, stage, buckets[i].Stage)
	}

	assert.Len(t, buckets[0].Leads, 2)
	assert.Equal(t, int64(350000), buckets[0].ValueCents)
	assert.Empty(t, buckets[1].Leads)
	assert.Equal(t, int64(500000), buckets[4].ValueCents)
}

func TestBoardBucketSumMatchesTotal(t *testing.T) {
	crm := newFakeCRM()
	crm.add("leads", leadRecord("A", models.StageNew, 100))
	crm.add("leads", leadRecord("B", models.StageProposal, 200))
	crm.add("leads", leadRecord("C", models.StageClosedLost, 300))

	board := NewBoard(newTestClient(t, crm))
	require.NoError(t, board.Load(context.Background()))

	var sum int64
	for _, b := range board.Buckets() {
		sum += b.ValueCents
	}
	assert.Equal(t, board.TotalValueCents(), sum)
}

func TestBoardMoveStage(t *testing.T) {
	crm := newFakeCRM()
	id := crm.add("leads", leadRecord("Acme deal", models.StageProposal, 100000))

	board := NewBoard(newTestClient(t, crm))
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.MoveStage(context.Background(), id, models.StageClosedWon))

	lead, ok := board.Leads().Get(id)
	require.True(t, ok)
	assert.Equal(t, models.StageProposal, lead.Stage, "a move alone leaves the board untouched")

	require.NoError(t, board.Load(context.Background()))
	lead, ok = board.Leads().Get(id)
	require.True(t, ok)
	assert.Equal(t, models.StageClosedWon, lead.Stage)
	assert.Equal(t, models.StatusClosedWon, lead.Status, "status follows the stage after reload")
	assert.Equal(t, int64(100000), lead.ValueCents, "other fields survive a stage-only patch")
}

func TestBoardMoveStageFailureKeepsBoard(t *testing.T) {
	crm := newFakeCRM()
	id := crm.add("leads", leadRecord("Acme deal", models.StageNew, 100000))

	board := NewBoard(newTestClient(t, crm))
	require.NoError(t, board.Load(context.Background()))

	require.Error(t, board.MoveStage(context.Background(), 999, models.StageQualified))

	lead, ok := board.Leads().Get(id)
	require.True(t, ok)
	assert.Equal(t, models.StageNew, lead.Stage)
}
