package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/friends-cafe/cafe-api/cart"
	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

// Step is the resumable checkout phase, persisted to the session so a closed
// tab picks up where it left off.
type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoAddress = errors.New("please select a delivery address")
	ErrBadStep   = errors.New("invalid checkout step")
)

// Processor simulates payment handling. It honors ctx so an abandoned
// checkout does not place an order later.
type Processor interface {
	Process(ctx context.Context, method models.PaymentMethod, amount int) error
}

// SimulatedProcessor waits out a fixed delay and always succeeds.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p SimulatedProcessor) Process(ctx context.Context, _ models.PaymentMethod, _ int) error {
	if p.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Flow drives the two-phase checkout for a logged-in user.
type Flow struct {
	store     *storage.Store
	addresses *Addresses
	processor Processor
	now       func() time.Time
}

// NewFlow builds a checkout flow. A nil processor gets the simulated one with
// its usual 2s delay.
func NewFlow(store *storage.Store, processor Processor) *Flow {
	if processor == nil {
		processor = SimulatedProcessor{Delay: 2 * time.Second}
	}
	return &Flow{
		store:     store,
		addresses: NewAddresses(store),
		processor: processor,
		now:       time.Now,
	}
}

// Addresses exposes the address book backing this flow.
func (f *Flow) Addresses() *Addresses {
	return f.addresses
}

// Step returns the persisted checkout phase, defaulting to address selection.
func (f *Flow) Step(user *models.User) Step {
	if prefs, ok := f.store.Preferences(user.Phone); ok {
		if s, ok := prefs.String(models.PrefLastCheckoutStep); ok {
			switch Step(s) {
			case StepAddress, StepPayment:
				return Step(s)
			}
		}
	}
	return StepAddress
}

// SetStep persists the checkout phase.
func (f *Flow) SetStep(user *models.User, step Step) error {
	switch step {
	case StepAddress, StepPayment:
	default:
		return ErrBadStep
	}
	prefs := models.Preferences{models.PrefLastCheckoutStep: string(step)}
	if !f.store.SavePreferences(user.Phone, prefs) {
		return ErrStorage
	}
	return nil
}

// PlaceOrder snapshots the cart into an immutable order, prepends it to the
// user's history, stores the standalone receipt and clears the cart plus the
// checkout step. A storage failure reports the order failed and leaves the
// cart intact.
func (f *Flow) PlaceOrder(ctx context.Context, user *models.User, c *cart.Manager, addressID string, method models.PaymentMethod) (*models.Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	address, ok := f.addresses.Find(user, addressID)
	if !ok {
		return nil, ErrNoAddress
	}

	totals := models.ComputeTotals(items)
	if err := f.processor.Process(ctx, method, totals.FinalTotal); err != nil {
		return nil, err
	}

	order := models.Order{
		OrderID:       models.NewOrderID(f.now()),
		Items:         items,
		Subtotal:      totals.TotalPrice,
		DeliveryFee:   totals.DeliveryFee,
		BoxFees:       totals.BoxFees,
		Total:         totals.FinalTotal,
		PaymentMethod: method,
		Address:       address,
		OrderDate:     f.now(),
	}

	history, _ := f.store.RecentOrders(user.Phone)
	updated := append([]models.Order{order}, history...)
	prefs := models.Preferences{
		models.PrefPreferredPaymentMethod: string(method),
		models.PrefLastCheckoutStep:       nil, // done; drop the resume point
	}
	patch := models.SessionPatch{RecentOrders: &updated, Preferences: prefs}
	if !f.store.Save(user.Phone, patch) {
		return nil, ErrStorage
	}
	if !f.store.KV().Put(storage.KeyLastOrder, order) {
		log.Printf("❌ Failed to write receipt for order %s", order.OrderID)
	}
	c.Clear()

	log.Printf("✅ Order %s placed for %s (₹%d, %s)", order.OrderID, user.ID, order.Total, method)
	return &order, nil
}

// LastOrder returns the standalone receipt snapshot, independent of any
// session.
func (f *Flow) LastOrder() (*models.Order, bool) {
	var order models.Order
	if !f.store.KV().Get(storage.KeyLastOrder, &order) {
		return nil, false
	}
	return &order, true
}
