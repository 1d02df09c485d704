package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/haamee/haamee-api/internal/domain"
)

// Store caches the five entity lists for the dashboard. It follows a
// full-reload model: every mutation goes through the API and is followed by
// a Refresh, so the cache never drifts further than one reload.
type Store struct {
	client *Client

	mu            sync.RWMutex
	persons       []domain.Person
	organizations []domain.Organization
	events        []domain.Event
	applications  []domain.Application
	payments      []domain.Payment
}

func NewStore(client *Client) *Store {
	return &Store{
		client: client,
	}
}

// Refresh reloads all five lists in parallel. On any failure the previous
// cache is kept untouched.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		persons       []domain.Person
		organizations []domain.Organization
		events        []domain.Event
		applications  []domain.Application
		payments      []domain.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persons, err = s.client.ListPersons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		organizations, err = s.client.ListOrganizations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.client.ListEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = s.client.ListApplications(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.client.ListPayments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.persons = persons
	s.organizations = organizations
	s.events = events
	s.applications = applications
	s.payments = payments
	s.mu.Unlock()

	return nil
}

func (s *Store) Persons() []domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.persons
}

func (s *Store) Organizations() []domain.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.organizations
}

func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.events
}

func (s *Store) Applications() []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.applications
}

func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.payments
}

// OrganizationName resolves an organization id against the cached list.
// Dangling references resolve to the empty string.
func (s *Store) OrganizationName(id uint) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, org := range s.organizations {
		if org.ID == id {
			return org.Name
		}
	}

	return ""
}

func (s *Store) CreatePerson(ctx context.Context, person domain.Person) error {
	if _, err := s.client.CreatePerson(ctx, person); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) DeletePerson(ctx context.Context, id uint) error {
	if err := s.client.DeletePerson(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) CreateOrganization(ctx context.Context, org domain.Organization) error {
	if _, err := s.client.CreateOrganization(ctx, org); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) DeleteOrganization(ctx context.Context, id uint) error {
	if err := s.client.DeleteOrganization(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) CreateEvent(ctx context.Context, event domain.Event) error {
	if _, err := s.client.CreateEvent(ctx, event); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.client.DeleteEvent(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) CreateApplication(ctx context.Context, application domain.Application) error {
	if _, err := s.client.CreateApplication(ctx, application); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) DeleteApplication(ctx context.Context, id uint) error {
	if err := s.client.DeleteApplication(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) CreatePayment(ctx context.Context, payment domain.Payment) error {
	if _, err := s.client.CreatePayment(ctx, payment); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *Store) DeletePayment(ctx context.Context, id uint) error {
	if err := s.client.DeletePayment(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}
