package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dwikikusuma/shoping-storefront/internal/cart/domain"
)

// Manager keeps one local snapshot of one remote cart. Every write is
// availability check, mutation, then a full re-fetch; nothing is merged
// locally. Concurrent writes are not serialized: each runs its own three
// steps and the last refresh to land is what Snapshot returns.
type Manager struct {
	gateway CartGateway
	store   CartIDStore
	log     *slog.Logger

	mu        sync.RWMutex
	cartID    string
	addErr    error
	updateErr error

	snapshot atomic.Pointer[domain.Cart]
	inFlight atomic.Int32
}

func NewManager(gateway CartGateway, store CartIDStore, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		gateway: gateway,
		store:   store,
		log:     log.With(slog.String("component", "cart")),
	}
}

// Init loads the persisted cart id, creating and persisting a remote cart when
// none exists, then fetches the first snapshot.
func (m *Manager) Init(ctx context.Context) error {
	id, err := m.store.CartID(ctx)
	if err != nil {
		return fmt.Errorf("load cart id: %w", err)
	}

	if id == "" {
		cart, err := m.gateway.CreateCart(ctx)
		if err != nil {
			m.log.Warn("cart create failed", slog.Any("err", err))
			return finalize(err)
		}
		id = cart.ID
		if err := m.store.SetCartID(ctx, id); err != nil {
			return fmt.Errorf("persist cart id: %w", err)
		}
		m.log.Info("cart created", slog.String("cart_id", id))
	}

	m.mu.Lock()
	m.cartID = id
	m.mu.Unlock()

	return finalize(m.refresh(ctx, id))
}

// Refresh re-fetches the snapshot. Without a cart id it does nothing.
func (m *Manager) Refresh(ctx context.Context) error {
	id := m.CartID()
	if id == "" {
		return nil
	}
	return finalize(m.refresh(ctx, id))
}

// AddLine adds quantity of variantID as a new remote line. The remote may
// answer with a second line for a variant already in the cart; that is kept.
func (m *Manager) AddLine(ctx context.Context, variantID string, quantity int) error {
	err := finalize(m.addLine(ctx, variantID, quantity))

	m.mu.Lock()
	m.addErr = err
	m.mu.Unlock()

	return err
}

func (m *Manager) addLine(ctx context.Context, variantID string, quantity int) error {
	cartID := m.CartID()
	if cartID == "" {
		return &NoCartError{}
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	done := m.begin()
	defer done()

	log := m.log.With(
		slog.String("op", "add_line"),
		slog.String("cart_id", cartID),
		slog.String("variant_id", variantID),
		slog.Int("quantity", quantity),
	)

	if err := m.checkStock(ctx, variantID, quantity); err != nil {
		log.Warn("add rejected before mutation", slog.Any("err", err))
		return err
	}

	userErrs, err := m.gateway.AddLines(ctx, cartID, []domain.LineInput{
		{MerchandiseID: variantID, Quantity: quantity},
	})
	return m.afterMutation(ctx, log, cartID, userErrs, err)
}

// UpdateLine sets the quantity of an existing line; zero removes it.
func (m *Manager) UpdateLine(ctx context.Context, lineID, variantID string, quantity int) error {
	err := finalize(m.updateLine(ctx, lineID, variantID, quantity))

	m.mu.Lock()
	m.updateErr = err
	m.mu.Unlock()

	return err
}

func (m *Manager) updateLine(ctx context.Context, lineID, variantID string, quantity int) error {
	cartID := m.CartID()
	if cartID == "" {
		return &NoCartError{}
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	done := m.begin()
	defer done()

	log := m.log.With(
		slog.String("op", "update_line"),
		slog.String("cart_id", cartID),
		slog.String("line_id", lineID),
		slog.String("variant_id", variantID),
		slog.Int("quantity", quantity),
	)

	// Removal is checked too: a line whose variant is no longer for sale
	// cannot be changed, not even to zero.
	if err := m.checkStock(ctx, variantID, quantity); err != nil {
		log.Warn("update rejected before mutation", slog.Any("err", err))
		return err
	}

	userErrs, err := m.gateway.UpdateLines(ctx, cartID, []domain.LineUpdate{
		{LineID: lineID, Quantity: quantity},
	})
	return m.afterMutation(ctx, log, cartID, userErrs, err)
}

func (m *Manager) checkStock(ctx context.Context, variantID string, quantity int) error {
	avail, err := m.gateway.VariantAvailability(ctx, variantID)
	if err != nil {
		return err
	}
	if !avail.Covers(quantity) {
		return &InsufficientStockError{VariantID: variantID, Available: avail.QuantityAvailable}
	}
	return nil
}

// afterMutation always attempts the refresh once a mutation was sent; the
// mutation's own failure wins over a refresh failure.
func (m *Manager) afterMutation(ctx context.Context, log *slog.Logger, cartID string, userErrs []domain.UserError, mutErr error) error {
	refreshErr := m.refresh(ctx, cartID)

	switch {
	case mutErr != nil:
		log.Warn("mutation failed", slog.Any("err", mutErr))
		return mutErr
	case len(userErrs) > 0:
		verr := newRemoteValidationError(userErrs)
		log.Warn("mutation rejected", slog.Any("err", verr))
		return verr
	case refreshErr != nil:
		log.Warn("refresh after mutation failed", slog.Any("err", refreshErr))
		return refreshErr
	}

	log.Debug("mutation applied")
	return nil
}

func (m *Manager) refresh(ctx context.Context, cartID string) error {
	cart, err := m.gateway.GetCart(ctx, cartID)
	if err != nil {
		return err
	}
	m.snapshot.Store(cart)
	return nil
}

func (m *Manager) begin() func() {
	m.inFlight.Add(1)
	return func() { m.inFlight.Add(-1) }
}

// Snapshot returns the last fetched cart. The bool is false before the first
// fetch or when the remote reported no cart. Callers must not mutate Lines.
func (m *Manager) Snapshot() (domain.Cart, bool) {
	c := m.snapshot.Load()
	if c == nil {
		return domain.Cart{}, false
	}
	return *c, true
}

// Busy reports whether any write is in flight. It is manager-wide, not per line.
func (m *Manager) Busy() bool {
	return m.inFlight.Load() > 0
}

func (m *Manager) CartID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cartID
}

// AddError is the outcome of the last AddLine; nil after a success.
func (m *Manager) AddError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.addErr
}

// UpdateError is the outcome of the last UpdateLine, tracked apart from AddError.
func (m *Manager) UpdateError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.updateErr
}

func (m *Manager) ClearAddError() {
	m.mu.Lock()
	m.addErr = nil
	m.mu.Unlock()
}

// Reset forgets the cart: persisted id, local id, snapshot and error slots.
// The next Init creates a new remote cart.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.store.ClearCartID(ctx); err != nil {
		return fmt.Errorf("clear cart id: %w", err)
	}

	m.mu.Lock()
	m.cartID = ""
	m.addErr = nil
	m.updateErr = nil
	m.mu.Unlock()

	m.snapshot.Store(nil)
	return nil
}
