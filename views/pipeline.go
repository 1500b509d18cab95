// ABOUTME: Kanban pipeline board model over the lead collection
// ABOUTME: Groups leads into the six fixed stage columns and moves leads between them
package views

import (
	"context"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
)

// StageBucket is one board column: its stage name, the leads in it in fetch
// order, and the sum of their values.
type StageBucket struct {
	Stage      string
	Leads      []models.Lead
	ValueCents int64
}

// Board groups the lead collection into the six pipeline stages. It shares
// the lead list view so a stage move is an ordinary lead patch; the caller
// reloads to see it.
type Board struct {
	leads *ListView[models.Lead]
}

// NewBoard creates a board over its own lead list view.
func NewBoard(client *api.Client) *Board {
	return &Board{leads: NewListView(client, Leads())}
}

// Load fetches the lead collection and installs it.
func (b *Board) Load(ctx context.Context) error {
	return b.leads.Load(ctx)
}

// Fetch retrieves the lead collection without touching board state.
func (b *Board) Fetch(ctx context.Context) ([]models.Lead, error) {
	return b.leads.Fetch(ctx)
}

// SetLeads installs a fetched lead collection.
func (b *Board) SetLeads(leads []models.Lead) {
	b.leads.SetItems(leads)
}

// Leads exposes the underlying list view, for lookups and edits.
func (b *Board) Leads() *ListView[models.Lead] {
	return b.leads
}

// Buckets returns one bucket per stage in fixed board order. Every stage is
// present even when empty; leads keep fetch order within a bucket.
func (b *Board) Buckets() []StageBucket {
	byStage := make(map[string]*StageBucket, len(models.Stages()))
	buckets := make([]StageBucket, 0, len(models.Stages()))
	for _, stage := range models.Stages() {
		buckets = append(buckets, StageBucket{Stage: stage})
	}
	for i := range buckets {
		byStage[buckets[i].Stage] = &buckets[i]
	}

	for _, lead := range b.leads.All() {
		bucket, ok := byStage[lead.Stage]
		if !ok {
			continue
		}
		bucket.Leads = append(bucket.Leads, lead)
		bucket.ValueCents += lead.ValueCents
	}
	return buckets
}

// TotalValueCents sums the values of all leads on the board.
func (b *Board) TotalValueCents() int64 {
	var total int64
	for _, lead := range b.leads.All() {
		total += lead.ValueCents
	}
	return total
}

// MoveStage patches only the lead's stage. The server derives the lead's
// status from the new stage; the board shows both after the next Load.
func (b *Board) MoveStage(ctx context.Context, id int, stage string) error {
	return b.leads.Patch(ctx, id, map[string]any{"stage": stage})
}
