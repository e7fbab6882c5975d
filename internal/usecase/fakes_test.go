package usecase

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/remote"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errBackendDown = errors.New("backend down")

// memProxy is an in-memory Proxy. Setting err makes every remote call fail.
type memProxy[T remote.Record] struct {
	mu      sync.Mutex
	items   []T
	remote  []T
	err     error
	calls   int
	deleted []string
	assign  func(rec T, id int) T
	nextID  int
}

func (m *memProxy[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

func (m *memProxy[T]) Find(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (m *memProxy[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.items = slices.Clone(m.remote)
	return slices.Clone(m.items), nil
}

func (m *memProxy[T]) Create(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		var zero T
		return zero, m.err
	}
	m.nextID++
	created := m.assign(rec, 100+m.nextID)
	m.remote = append(m.remote, created)
	m.items = append(m.items, created)
	return created, nil
}

func (m *memProxy[T]) Update(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		var zero T
		return zero, m.err
	}
	for i := range m.items {
		if m.items[i].RecordID() == rec.RecordID() {
			m.items[i] = rec
		}
	}
	return rec, nil
}

func (m *memProxy[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	m.items = slices.DeleteFunc(m.items, func(item T) bool { return item.RecordID() == id })
	m.remote = slices.DeleteFunc(m.remote, func(item T) bool { return item.RecordID() == id })
	return nil
}

func (m *memProxy[T]) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newDestinationProxy(items ...entity.Destination) *memProxy[entity.Destination] {
	return &memProxy[entity.Destination]{
		items:  slices.Clone(items),
		remote: slices.Clone(items),
		assign: func(d entity.Destination, id int) entity.Destination {
			d.ID = "d" + strconv.Itoa(id)
			return d
		},
	}
}

func newCategoryProxy(items ...entity.Category) *memProxy[entity.Category] {
	return &memProxy[entity.Category]{
		items:  slices.Clone(items),
		remote: slices.Clone(items),
		assign: func(c entity.Category, id int) entity.Category {
			c.ID = "c" + strconv.Itoa(id)
			return c
		},
	}
}

func newPackageProxy(items ...entity.Package) *memProxy[entity.Package] {
	return &memProxy[entity.Package]{
		remote: slices.Clone(items),
		assign: func(p entity.Package, id int) entity.Package {
			p.ID = id
			return p
		},
	}
}

// memHomepage is an in-memory HomepageStore.
type memHomepage struct {
	mu    sync.Mutex
	doc   entity.Homepage
	err   error
	puts  int
	block chan struct{}
}

func (m *memHomepage) Get(context.Context) (entity.Homepage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return entity.Homepage{}, m.err
	}
	return m.doc.Clone(), nil
}

func (m *memHomepage) Put(_ context.Context, doc entity.Homepage) (entity.Homepage, error) {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.err != nil {
		return entity.Homepage{}, m.err
	}
	m.doc = doc.Clone()
	return doc, nil
}

func seedStore(t *testing.T) *catalog.Store {
	t.Helper()
	seed, err := catalog.NewSeedSource()
	require.NoError(t, err)

	store := catalog.NewStore(nil, nil)
	require.NoError(t, catalog.Load(context.Background(), store, seed, zap.NewNop()))
	return store
}

func ptr[T any](v T) *T { return &v }
