package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jrautos/go-dealer-backend/internal/domain"
)

// ErrNoImages rejects a listing write whose image set is empty. The check is
// local: no request is issued for such a draft.
var ErrNoImages = errors.New("a listing needs at least one image")

// State is the controller's lifecycle phase.
type State int

const (
	// StateLoading is the initial phase before the session is inspected.
	StateLoading State = iota
	// StateUnauthenticated means no valid session; only Login is useful.
	StateUnauthenticated
	// StateReady means data is loaded and mutations may be issued.
	StateReady
	// StateSubmitting means a mutation is in flight.
	StateSubmitting
)

// String returns the phase name for logs.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ConfirmFunc is consulted before destructive actions. Returning false
// cancels the action without contacting the server.
type ConfirmFunc func(v domain.Vehicle) bool

// Controller holds the admin panel's state: the last completed read of
// vehicles and contacts, and the phase machine
// Loading → Unauthenticated | Ready ⇄ Submitting.
//
// Displayed state is never mutated optimistically: every successful write
// triggers exactly one Refresh, and what the panel shows is always the last
// completed read. Safe for use from one goroutine driving the UI; internal
// state is still locked because Refresh fans out.
type Controller struct {
	client  *Client
	session *Session
	confirm ConfirmFunc

	mu       sync.RWMutex
	state    State
	vehicles []domain.Vehicle
	contacts []domain.ContactMessage
}

// NewController wires a controller to its client, session, and confirmation
// hook. confirm may be nil, which auto-confirms (useful in scripts).
func NewController(client *Client, session *Session, confirm ConfirmFunc) *Controller {
	return &Controller{
		client:  client,
		session: session,
		confirm: confirm,
		state:   StateLoading,
	}
}

// Start inspects the session and either loads data (Ready) or parks in
// Unauthenticated. An expired token discovered during the initial load also
// lands in Unauthenticated.
func (c *Controller) Start(ctx context.Context) error {
	if !c.session.Valid() {
		c.setState(StateUnauthenticated)
		return nil
	}
	if err := c.Refresh(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.session.Clear()
			c.setState(StateUnauthenticated)
			return nil
		}
		return err
	}
	c.setState(StateReady)
	return nil
}

// Login authenticates, loads the initial data, and moves to Ready. A wrong
// password leaves the controller in Unauthenticated with ErrInvalidPassword.
func (c *Controller) Login(ctx context.Context, password string) error {
	if err := c.client.Login(ctx, password); err != nil {
		c.setState(StateUnauthenticated)
		return err
	}
	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.setState(StateReady)
	return nil
}

// Logout discards the token and clears loaded data.
func (c *Controller) Logout() {
	c.session.Clear()
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.vehicles = nil
	c.contacts = nil
	c.mu.Unlock()
}

// Refresh fetches vehicles and contacts concurrently. The two calls fail
// independently: a failed list keeps its previous copy and is logged, so one
// flaky endpoint never blanks the other panel. The combined error is
// non-nil when either call failed.
func (c *Controller) Refresh(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		vehicles    []domain.Vehicle
		contacts    []domain.ContactMessage
		vErr, ctErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vehicles, vErr = c.client.ListVehicles(ctx)
	}()
	go func() {
		defer wg.Done()
		contacts, ctErr = c.client.ListContacts(ctx)
	}()
	wg.Wait()

	c.mu.Lock()
	if vErr == nil {
		c.vehicles = vehicles
	} else {
		log.Error().Err(vErr).Msg("vehicle refresh failed, keeping previous list")
	}
	if ctErr == nil {
		c.contacts = contacts
	} else {
		log.Error().Err(ctErr).Msg("contact refresh failed, keeping previous list")
	}
	c.mu.Unlock()

	return errors.Join(vErr, ctErr)
}

// AddVehicle validates the draft locally and submits it. An empty image set
// is rejected before any network traffic. On success the inventory is
// re-read exactly once.
func (c *Controller) AddVehicle(ctx context.Context, d VehicleDraft) error {
	if len(d.Images) == 0 {
		return ErrNoImages
	}
	return c.submit(ctx, func() error {
		_, err := c.client.CreateVehicle(ctx, d)
		return err
	})
}

// UpdateVehicle replaces a listing with the draft, under the same local
// image-set check and single-refresh rule as AddVehicle.
func (c *Controller) UpdateVehicle(ctx context.Context, id string, d VehicleDraft) error {
	if len(d.Images) == 0 {
		return ErrNoImages
	}
	return c.submit(ctx, func() error {
		_, err := c.client.UpdateVehicle(ctx, id, d)
		return err
	})
}

// ToggleAvailability flips the displayed availability of a listing. The
// request body carries only the negated flag; every other field keeps its
// stored value.
func (c *Controller) ToggleAvailability(ctx context.Context, id string) error {
	v, found := c.vehicleByID(id)
	if !found {
		return ErrNotFound
	}
	return c.submit(ctx, func() error {
		_, err := c.client.SetAvailability(ctx, id, !v.Available)
		return err
	})
}

// DeleteVehicle asks for confirmation and, if granted, removes the listing.
// Declining issues no request and is not an error.
func (c *Controller) DeleteVehicle(ctx context.Context, id string) error {
	v, found := c.vehicleByID(id)
	if !found {
		return ErrNotFound
	}
	if c.confirm != nil && !c.confirm(v) {
		return nil
	}
	return c.submit(ctx, func() error {
		return c.client.DeleteVehicle(ctx, id)
	})
}

// submit runs one mutation under the Submitting phase and refreshes once on
// success. A failed mutation refreshes nothing: the displayed state is still
// the last completed read, which the server also still has.
func (c *Controller) submit(ctx context.Context, op func() error) error {
	c.setState(StateSubmitting)
	defer c.setState(StateReady)

	if err := op(); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Vehicles returns a copy of the last completed inventory read.
func (c *Controller) Vehicles() []domain.Vehicle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// Contacts returns a copy of the last completed inbox read.
func (c *Controller) Contacts() []domain.ContactMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.ContactMessage, len(c.contacts))
	copy(out, c.contacts)
	return out
}

func (c *Controller) vehicleByID(id string) (domain.Vehicle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vehicle{}, false
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
