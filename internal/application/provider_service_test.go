package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	"github.com/frontdesk-suite/service-frontdesk/internal/events"
)

type providerFixture struct {
	service   *ProviderService
	repo      *fakeProviderRepo
	publisher *fakePublisher
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()
	repo := newFakeProviderRepo()
	publisher := &fakePublisher{}
	return &providerFixture{
		service:   NewProviderService(repo, publisher, zap.NewNop()),
		repo:      repo,
		publisher: publisher,
	}
}

func TestRegisterProvider_RoundTrip(t *testing.T) {
	f := newProviderFixture(t)

	dto, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:    "City Diagnostic Labs",
		Sector:  "laboratory",
		Phone:   "+1222333444",
		Email:   "labs@example.com",
		Address: "12 Main St",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.True(t, dto.IsActive)
	assert.Equal(t, dto.CreatedAt, dto.UpdatedAt)
	assert.Equal(t, []string{events.ProviderRegistered}, f.publisher.eventTypes())

	got, err := f.service.GetProvider(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "City Diagnostic Labs", got.Name)
	assert.Equal(t, "laboratory", got.Sector)
}

func TestRegisterProvider_EmptyNameFails(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:   "   ",
		Sector: "medical",
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Empty(t, f.publisher.eventTypes())
}

func TestUpdateProvider_PartialMerge(t *testing.T) {
	f := newProviderFixture(t)

	created, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:   "City Clinic",
		Sector: "medical",
		Phone:  "+100",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateProvider(context.Background(), created.ID, UpdateProviderRequest{
		Phone: "+200",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Clinic", updated.Name)
	assert.Equal(t, "medical", updated.Sector)
	assert.Equal(t, "+200", updated.Phone)
}

func TestUpdateProvider_ActivationFlag(t *testing.T) {
	f := newProviderFixture(t)

	created, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:   "City Clinic",
		Sector: "medical",
	})
	require.NoError(t, err)

	off := false
	updated, err := f.service.UpdateProvider(context.Background(), created.ID, UpdateProviderRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	on := true
	updated, err = f.service.UpdateProvider(context.Background(), created.ID, UpdateProviderRequest{IsActive: &on})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestDeactivateProvider_PublishesEvent(t *testing.T) {
	f := newProviderFixture(t)

	created, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:   "City Clinic",
		Sector: "medical",
	})
	require.NoError(t, err)

	dto, err := f.service.DeactivateProvider(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, dto.IsActive)
	assert.Equal(t,
		[]string{events.ProviderRegistered, events.ProviderDeactivated},
		f.publisher.eventTypes())
}

func TestGetProvider_NotFound(t *testing.T) {
	f := newProviderFixture(t)

	_, err := f.service.GetProvider(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListProviders_SectorFilter(t *testing.T) {
	f := newProviderFixture(t)

	for _, sector := range []string{"medical", "medical", "laboratory"} {
		_, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
			Name:   "Provider " + sector,
			Sector: sector,
		})
		require.NoError(t, err)
	}

	result, err := f.service.ListProviders(context.Background(), "medical", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	all, err := f.service.ListProviders(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
}

func TestDeleteProvider(t *testing.T) {
	f := newProviderFixture(t)

	created, err := f.service.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name:   "City Clinic",
		Sector: "medical",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteProvider(context.Background(), created.ID))

	_, err = f.service.GetProvider(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
