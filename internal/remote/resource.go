package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrDuplicate = errors.New("record already exists")
	ErrMissingID = errors.New("record id is required")
)

// Record is a backend entity with an assigned id and an optional natural
// key. An empty natural key disables the duplicate check.
type Record interface {
	RecordID() string
	NaturalKey() string
}

// Payloader is implemented by records whose write body is narrower than the
// record itself. Ids and derived fields stay out of the request.
type Payloader interface {
	Payload() any
}

func payload(rec Record) any {
	if p, ok := rec.(Payloader); ok {
		return p.Payload()
	}
	return rec
}

// Resource proxies CRUD calls for one backend collection and keeps a local
// copy of it. The local copy only changes after a successful call.
// Mutations are serialised so a duplicate check and the write it guards see
// the same collection.
type Resource[T Record] struct {
	client *Client
	path   string
	log    *zap.Logger

	writeMu sync.Mutex

	mu    sync.RWMutex
	items []T
}

func NewResource[T Record](client *Client, path string, log *zap.Logger) *Resource[T] {
	return &Resource[T]{
		client: client,
		path:   path,
		log:    log.With(zap.String("resource", path)),
	}
}

// Items returns a copy of the local collection.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items)
}

func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List fetches the whole collection and replaces the local copy with it.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		r.log.Warn("List failed", zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()

	return slices.Clone(items), nil
}

// Create rejects natural-key duplicates before contacting the backend.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	var zero T
	if r.hasDuplicate(rec, "") {
		return zero, fmt.Errorf("create %s: %w", r.path, ErrDuplicate)
	}

	var created T
	if err := r.client.Do(ctx, http.MethodPost, r.path, payload(rec), &created); err != nil {
		r.log.Warn("Create failed", zap.Error(err))
		return zero, fmt.Errorf("create %s: %w", r.path, err)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.Lock()
	r.items = append(slices.Clone(r.items), created)
	r.mu.Unlock()

	r.log.Info("Record created", zap.String("id", created.RecordID()))
	return created, nil
}

// Update rejects duplicates of any other record before contacting the
// backend.
func (r *Resource[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.RecordID()
	if id == "" {
		return zero, ErrMissingID
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if r.hasDuplicate(rec, id) {
		return zero, fmt.Errorf("update %s/%s: %w", r.path, id, ErrDuplicate)
	}

	var updated T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), payload(rec), &updated); err != nil {
		r.log.Warn("Update failed", zap.String("id", id), zap.Error(err))
		return zero, fmt.Errorf("update %s/%s: %w", r.path, id, err)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.Lock()
	items := slices.Clone(r.items)
	for i, item := range items {
		if item.RecordID() == id {
			items[i] = updated
		}
	}
	r.items = items
	r.mu.Unlock()

	r.log.Info("Record updated", zap.String("id", id))
	return updated, nil
}

// Delete removes the record remotely and then locally. Reference checks are
// the caller's job.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		r.log.Warn("Delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete %s/%s: %w", r.path, id, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.items = slices.DeleteFunc(slices.Clone(r.items), func(item T) bool {
		return item.RecordID() == id
	})
	r.mu.Unlock()

	r.log.Info("Record deleted", zap.String("id", id))
	return nil
}

func (r *Resource[T]) hasDuplicate(rec T, exceptID string) bool {
	key := rec.NaturalKey()
	if key == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if exceptID != "" && item.RecordID() == exceptID {
			continue
		}
		if item.NaturalKey() == key {
			return true
		}
	}
	return false
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
