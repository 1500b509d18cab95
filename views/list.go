// ABOUTME: Generic list view model shared by all five record types
// ABOUTME: Owns the fetched collection, active predicates, and the derived view
package views

import (
	"context"

	"github.com/JarvisforJira/TrailTrack/api"
)

// Predicate is one filter dimension over a record.
type Predicate[T any] func(T) bool

// Resource describes one server collection: where it lives and what the
// client checks before sending a record.
type Resource[T any] struct {
	// Path is the collection endpoint, e.g. "/leads".
	Path string

	// Singular names one record in messages ("lead").
	Singular string

	// ID extracts the server-assigned identifier.
	ID func(T) int

	// Validate is the client-side required-field check run before a create.
	// The server remains the authority and may still reject.
	Validate func(T) error
}

// ListView fetches a collection, holds it, and derives a filtered view in
// memory. Mutations reload the collection so the view always shows
// server-confirmed state; nothing is patched optimistically.
//
// A ListView is not safe for concurrent use. Event-loop callers fetch on a
// worker goroutine with Fetch (or mutate with Post/Patch/Remove) and install
// results on their own goroutine with SetItems; synchronous callers use Load
// and the reloading helpers.
type ListView[T any] struct {
	client *api.Client
	res    Resource[T]

	items    []T
	preds    []Predicate[T]
	filtered []T
}

// NewListView creates a view model over one resource.
func NewListView[T any](client *api.Client, res Resource[T]) *ListView[T] {
	return &ListView[T]{client: client, res: res}
}

// Fetch retrieves the collection without touching the loaded state.
func (v *ListView[T]) Fetch(ctx context.Context) ([]T, error) {
	return api.List[T](ctx, v.client, v.res.Path)
}

// SetItems installs a fetched collection and recomputes the filtered view.
func (v *ListView[T]) SetItems(items []T) {
	v.items = items
	v.apply()
}

// Load fetches the primary collection and installs it.
func (v *ListView[T]) Load(ctx context.Context) error {
	items, err := v.Fetch(ctx)
	if err != nil {
		return err
	}
	v.SetItems(items)
	return nil
}

// SetFilter replaces the active predicate set and recomputes synchronously.
// Predicates compose with logical AND; no fetch is triggered.
func (v *ListView[T]) SetFilter(preds ...Predicate[T]) {
	v.preds = preds
	v.apply()
}

// ClearFilter drops all predicates.
func (v *ListView[T]) ClearFilter() {
	v.SetFilter()
}

func (v *ListView[T]) apply() {
	if len(v.preds) == 0 {
		v.filtered = v.items
		return
	}
	filtered := make([]T, 0, len(v.items))
outer:
	for _, item := range v.items {
		for _, p := range v.preds {
			if !p(item) {
				continue outer
			}
		}
		filtered = append(filtered, item)
	}
	v.filtered = filtered
}

// Items returns the filtered view, in fetch order.
func (v *ListView[T]) Items() []T {
	return v.filtered
}

// All returns the whole loaded collection, ignoring filters.
func (v *ListView[T]) All() []T {
	return v.items
}

// Get finds a loaded record by id.
func (v *ListView[T]) Get(id int) (T, bool) {
	for _, item := range v.items {
		if v.res.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Post validates the record and creates it without touching the loaded
// collection. On failure nothing changes, so the caller can keep its form
// state and retry.
func (v *ListView[T]) Post(ctx context.Context, record T) error {
	if v.res.Validate != nil {
		if err := v.res.Validate(record); err != nil {
			return err
		}
	}
	_, err := api.Create[T](ctx, v.client, v.res.Path, record)
	return err
}

// Patch updates the given fields on one record without reloading.
func (v *ListView[T]) Patch(ctx context.Context, id int, fields map[string]any) error {
	_, err := api.Update[T](ctx, v.client, v.res.Path, id, fields)
	return err
}

// Remove deletes one record without reloading.
func (v *ListView[T]) Remove(ctx context.Context, id int) error {
	return v.client.Remove(ctx, v.res.Path, id)
}

// Create posts the record and reloads on success, for synchronous callers.
func (v *ListView[T]) Create(ctx context.Context, record T) error {
	if err := v.Post(ctx, record); err != nil {
		return err
	}
	return v.Load(ctx)
}

// Update patches one record and reloads on success, for synchronous callers.
func (v *ListView[T]) Update(ctx context.Context, id int, fields map[string]any) error {
	if err := v.Patch(ctx, id, fields); err != nil {
		return err
	}
	return v.Load(ctx)
}

// Delete removes one record and reloads on success, for synchronous callers.
func (v *ListView[T]) Delete(ctx context.Context, id int) error {
	if err := v.Remove(ctx, id); err != nil {
		return err
	}
	return v.Load(ctx)
}
