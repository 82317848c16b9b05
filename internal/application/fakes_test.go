package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
	bookingDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/booking"
	providerDomain "github.com/frontdesk-suite/service-frontdesk/internal/domain/provider"
	"github.com/frontdesk-suite/service-frontdesk/internal/events"
)

// fakeProviderRepo is an in-memory ProviderRepository for service tests.
type fakeProviderRepo struct {
	mu        sync.Mutex
	providers map[uuid.UUID]*providerDomain.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[uuid.UUID]*providerDomain.Provider)}
}

func (r *fakeProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*providerDomain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, domain.NewNotFoundError("Provider", id.String())
	}
	return p, nil
}

func (r *fakeProviderRepo) List(_ context.Context, sector string, page, limit int) ([]*providerDomain.Provider, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*providerDomain.Provider
	for _, p := range r.providers {
		if sector == "" || p.Sector() == sector {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProviderRepo) Save(_ context.Context, p *providerDomain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ID()] = p
	return nil
}

func (r *fakeProviderRepo) Update(_ context.Context, p *providerDomain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[p.ID()]; !ok {
		return domain.NewNotFoundError("Provider", p.ID().String())
	}
	r.providers[p.ID()] = p
	return nil
}

func (r *fakeProviderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[id]; !ok {
		return domain.NewNotFoundError("Provider", id.String())
	}
	delete(r.providers, id)
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*bookingDomain.Booking
	order    []uuid.UUID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*bookingDomain.Booking)}
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id.String())
	}
	return b, nil
}

func (r *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference() == reference {
			return b, nil
		}
	}
	return nil, domain.NewNotFoundError("Booking", reference)
}

func (r *fakeBookingRepo) List(_ context.Context, filter bookingDomain.Filter, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*bookingDomain.Booking
	for _, id := range r.order {
		b, ok := r.bookings[id]
		if !ok {
			continue
		}
		if filter.ProviderID != nil && b.ProviderID() != *filter.ProviderID {
			continue
		}
		if filter.Status != nil && b.Status() != *filter.Status {
			continue
		}
		if filter.From != nil && b.ScheduledAt().Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.ScheduledAt().After(*filter.To) {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, b := range r.bookings {
		counts[string(b.Status())]++
	}
	return counts, nil
}

func (r *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID()] = b
	r.order = append(r.order, b.ID())
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID()]; !ok {
		return domain.NewNotFoundError("Booking", b.ID().String())
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return domain.NewNotFoundError("Booking", id.String())
	}
	delete(r.bookings, id)
	return nil
}

// fakePublisher records published events.
type fakePublisher struct {
	mu        sync.Mutex
	published []publishedEvent
	failWith  error
}

type publishedEvent struct {
	Topic string
	Key   string
	Event events.CloudEvent
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event events.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.published))
	for i, e := range p.published {
		types[i] = e.Event.Type
	}
	return types
}
