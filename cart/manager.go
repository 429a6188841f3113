package cart

import (
	"sync"

	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

// Event tells a caller what an AddItem call did, so the API can report
// "added" vs "updated".
type Event int

const (
	None Event = iota
	Added
	Updated
)

// Manager holds the working cart for one identity, either a logged-in user
// or the anonymous guest, and writes the backing slot on every mutation.
type Manager struct {
	mu    sync.Mutex
	store *storage.Store
	user  *models.User
	items []models.CartItem
}

// NewManager starts as the guest identity with the guest cart loaded.
func NewManager(store *storage.Store) *Manager {
	m := &Manager{store: store}
	m.reloadLocked()
	return m
}

// SetUser switches the cart to a new identity. State is fully reset first and
// then reloaded from the matching slot, so a guest cart never bleeds into a
// user session; the one-time signup migration happens in the auth flow, not
// here.
func (m *Manager) SetUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.reloadLocked()
}

// reloadLocked loads items for the current identity: session cart first, then
// the legacy per-user slot (migrated into the session on sight), else empty.
func (m *Manager) reloadLocked() {
	m.items = nil

	if m.user == nil {
		var items []models.CartItem
		if m.store.KV().Get(storage.KeyGuestCart, &items) {
			m.items = items
		}
		return
	}

	if items, ok := m.store.Cart(m.user.Phone); ok && len(items) > 0 {
		m.items = items
		return
	}

	var legacy []models.CartItem
	if m.store.KV().Get(storage.LegacyCartKey(m.user.ID), &legacy) && len(legacy) > 0 {
		m.items = legacy
		m.store.SaveCart(m.user.Phone, legacy)
	}
}

// persistLocked writes the cart to the identity's slot. Logged-in carts also
// mirror to the legacy per-user key for schema compatibility.
func (m *Manager) persistLocked() {
	items := m.items
	if items == nil {
		items = []models.CartItem{}
	}
	if m.user == nil {
		m.store.KV().Put(storage.KeyGuestCart, items)
		return
	}
	m.store.SaveCart(m.user.Phone, items)
	m.store.KV().Put(storage.LegacyCartKey(m.user.ID), items)
}

// AddItem merges by line id: an existing line gains the incoming quantity and
// a new line is appended.
func (m *Manager) AddItem(item models.CartItem) Event {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += item.Quantity
			m.persistLocked()
			return Updated
		}
	}
	m.items = append(m.items, item)
	m.persistLocked()
	return Added
}

// RemoveItem deletes the matching line. Removing an absent id is a silent
// no-op, so calling it twice ends in the same state as once.
func (m *Manager) RemoveItem(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(id)
}

func (m *Manager) removeLocked(id string) bool {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persistLocked()
			return true
		}
	}
	return false
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (m *Manager) SetQuantity(id string, quantity int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		return m.removeLocked(id)
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Quantity = quantity
			m.persistLocked()
			return true
		}
	}
	return false
}

// Clear empties the cart and persists the empty state immediately.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	if m.user == nil {
		m.store.KV().Delete(storage.KeyGuestCart)
		return
	}
	m.store.SaveCart(m.user.Phone, []models.CartItem{})
	m.store.KV().Delete(storage.LegacyCartKey(m.user.ID))
}

// Items returns a copy of the current lines.
func (m *Manager) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// Totals derives the current cart summary.
func (m *Manager) Totals() models.CartTotals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ComputeTotals(m.items)
}
