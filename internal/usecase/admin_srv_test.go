package usecase

import (
	"context"
	"testing"

	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDestinationService_ListClassifiesAndCounts(t *testing.T) {
	proxy := newDestinationProxy(
		entity.Destination{ID: "d1", Name: "Goa", Country: "India"},
		entity.Destination{ID: "d2", Name: "Bali", Country: "Indonesia"},
		entity.Destination{ID: "d3", Name: "Lisbon", Country: "Portugal"},
	)
	svc := NewDestinationService(proxy, seedStore(t), "India", zap.NewNop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, entity.DestinationNational, list[0].Scope)
	assert.Equal(t, 1, list[0].PackagesCount)
	assert.Equal(t, entity.DestinationInternational, list[1].Scope)
	assert.Equal(t, 1, list[1].PackagesCount)
	assert.Equal(t, 0, list[2].PackagesCount)
}

func TestDestinationService_DeleteRefusedWhileReferenced(t *testing.T) {
	proxy := newDestinationProxy(entity.Destination{ID: "d1", Name: "Goa", Country: "India"})
	svc := NewDestinationService(proxy, seedStore(t), "India", zap.NewNop())

	err := svc.Delete(context.Background(), "d1")
	require.ErrorIs(t, err, ErrDestinationInUse)
	assert.Equal(t, 0, proxy.callCount())
	assert.Len(t, proxy.Items(), 1)
}

func TestDestinationService_DeleteUnreferenced(t *testing.T) {
	proxy := newDestinationProxy(entity.Destination{ID: "d3", Name: "Lisbon", Country: "Portugal"})
	svc := NewDestinationService(proxy, seedStore(t), "India", zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "d3"))
	assert.Equal(t, []string{"d3"}, proxy.deleted)
	assert.Empty(t, proxy.Items())
}

func TestDestinationService_UnknownIDRefreshesOnceThenFails(t *testing.T) {
	proxy := newDestinationProxy()
	svc := NewDestinationService(proxy, seedStore(t), "India", zap.NewNop())

	_, err := svc.Update(context.Background(), "missing", &request.DestinationRequest{Name: "X", Country: "Y"})
	require.ErrorIs(t, err, ErrDestinationNotFound)
	assert.Equal(t, 1, proxy.callCount())

	proxy.err = errBackendDown
	err = svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, errBackendDown)
}

func TestDestinationService_CreateTrimsInput(t *testing.T) {
	proxy := newDestinationProxy()
	svc := NewDestinationService(proxy, seedStore(t), "India", zap.NewNop())

	created, err := svc.Create(context.Background(), &request.DestinationRequest{Name: "  Kerala ", Country: " India"})
	require.NoError(t, err)
	assert.Equal(t, "Kerala", created.Name)
	assert.Equal(t, "India", created.Country)
	assert.Equal(t, entity.DestinationNational, created.Scope)
	assert.Equal(t, 1, created.PackagesCount)
}

func TestCategoryService_DerivedCountAndDeleteGuard(t *testing.T) {
	store := seedStore(t)
	proxy := newCategoryProxy(
		entity.Category{ID: "c1", Name: "Beach", Color: entity.ColorBlue, Icon: entity.IconSun},
		entity.Category{ID: "c2", Name: "Wellness", Color: entity.ColorGreen, Icon: entity.IconHeart},
	)
	svc := NewCategoryService(proxy, store, zap.NewNop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].PackagesCount)
	assert.Equal(t, 0, list[1].PackagesCount)
	listed := proxy.callCount()

	err = svc.Delete(context.Background(), "c1")
	require.ErrorIs(t, err, ErrCategoryInUse)
	assert.Equal(t, listed, proxy.callCount())

	var remaining []entity.Package
	for _, p := range store.Packages() {
		if p.Category != "Beach" {
			remaining = append(remaining, p)
		}
	}
	store.ReplacePackages(remaining)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
	require.NoError(t, svc.Delete(context.Background(), "c2"))
	assert.Equal(t, []string{"c1", "c2"}, proxy.deleted)
}

func TestCategoryService_CreateAndUpdate(t *testing.T) {
	proxy := newCategoryProxy()
	svc := NewCategoryService(proxy, seedStore(t), zap.NewNop())

	created, err := svc.Create(context.Background(), &request.CategoryRequest{
		Name: " Cultural ", Description: "Heritage", Color: "purple", Icon: "Camera",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cultural", created.Name)
	assert.Equal(t, 2, created.PackagesCount)

	updated, err := svc.Update(context.Background(), created.ID, &request.CategoryRequest{
		Name: "Luxury", Color: "yellow", Icon: "Star",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.PackagesCount)

	proxy.err = errBackendDown
	_, err = svc.Update(context.Background(), created.ID, &request.CategoryRequest{Name: "X", Color: "red", Icon: "Sun"})
	require.ErrorIs(t, err, errBackendDown)
	cached, _ := proxy.Find(created.ID)
	assert.Equal(t, "Luxury", cached.Name)
}

func TestPackageAdminService_PublishesToCatalog(t *testing.T) {
	store := seedStore(t)
	proxy := newPackageProxy(store.Packages()...)
	svc := NewPackageAdminService(proxy, store, zap.NewNop())

	created, err := svc.Create(context.Background(), &request.PackageRequest{
		Title: "Lisbon Weekend", Destination: "Lisbon, Portugal", Duration: "3 Days",
		Price: 999, Category: "Cultural",
	})
	require.NoError(t, err)
	assert.Len(t, store.Packages(), 7)
	got, ok := store.Package(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Lisbon Weekend", got.Title)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	_, ok = store.Package(1)
	assert.False(t, ok)
	assert.Len(t, store.Packages(), 6)
}

func TestPackageAdminService_FailureLeavesCatalog(t *testing.T) {
	store := seedStore(t)
	proxy := newPackageProxy(store.Packages()...)
	svc := NewPackageAdminService(proxy, store, zap.NewNop())

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	proxy.err = errBackendDown
	_, err = svc.Update(context.Background(), "2", &request.PackageRequest{
		Title: "Renamed", Destination: "Interlaken, Switzerland", Duration: "7 Days", Price: 1, Category: "Adventure",
	})
	require.ErrorIs(t, err, errBackendDown)

	pkg, ok := store.Package(2)
	require.True(t, ok)
	assert.Equal(t, "Swiss Alps Adventure", pkg.Title)

	err = svc.Delete(context.Background(), "77")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
