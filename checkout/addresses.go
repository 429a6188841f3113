package checkout

import (
	"errors"

	"github.com/google/uuid"

	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrStorage         = errors.New("could not save order data")
)

// Addresses manages a user's saved delivery addresses inside the session,
// with a write-through mirror to the legacy per-user slot.
type Addresses struct {
	store *storage.Store
}

func NewAddresses(store *storage.Store) *Addresses {
	return &Addresses{store: store}
}

// List returns the saved addresses. The legacy per-user slot is consulted
// when the session has none and migrated into it on first sight; callers
// never see the dual-read.
func (a *Addresses) List(user *models.User) []models.Address {
	if addrs, ok := a.store.Addresses(user.Phone); ok && len(addrs) > 0 {
		return addrs
	}
	var legacy []models.Address
	if a.store.KV().Get(storage.LegacyAddressKey(user.ID), &legacy) && len(legacy) > 0 {
		a.store.SaveAddresses(user.Phone, legacy)
		return legacy
	}
	return nil
}

// Find returns the address with the given id.
func (a *Addresses) Find(user *models.User, id string) (models.Address, bool) {
	for _, addr := range a.List(user) {
		if addr.ID == id {
			return addr, true
		}
	}
	return models.Address{}, false
}

// Add validates and appends a new address. The user's first address becomes
// the default.
func (a *Addresses) Add(user *models.User, addr models.Address) (models.Address, error) {
	if err := addr.Validate(); err != nil {
		return models.Address{}, err
	}
	addrs := a.List(user)
	addr.ID = uuid.NewString()
	addr.IsDefault = len(addrs) == 0
	addrs = append(addrs, addr)
	if !a.save(user, addrs) {
		return models.Address{}, ErrStorage
	}
	return addr, nil
}

// SetDefault flags one address as default and clears the flag on the rest,
// keeping the at-most-one invariant.
func (a *Addresses) SetDefault(user *models.User, id string) error {
	addrs := a.List(user)
	found := false
	for i := range addrs {
		addrs[i].IsDefault = addrs[i].ID == id
		if addrs[i].IsDefault {
			found = true
		}
	}
	if !found {
		return ErrAddressNotFound
	}
	if !a.save(user, addrs) {
		return ErrStorage
	}
	return nil
}

// Remove drops an address. When the default goes, the first remaining
// address takes over.
func (a *Addresses) Remove(user *models.User, id string) error {
	addrs := a.List(user)
	kept := make([]models.Address, 0, len(addrs))
	removed, wasDefault := false, false
	for _, addr := range addrs {
		if addr.ID == id {
			removed = true
			wasDefault = addr.IsDefault
			continue
		}
		kept = append(kept, addr)
	}
	if !removed {
		return ErrAddressNotFound
	}
	if wasDefault && len(kept) > 0 {
		kept[0].IsDefault = true
	}
	if !a.save(user, kept) {
		return ErrStorage
	}
	return nil
}

func (a *Addresses) save(user *models.User, addrs []models.Address) bool {
	ok := a.store.SaveAddresses(user.Phone, addrs)
	a.store.KV().Put(storage.LegacyAddressKey(user.ID), addrs)
	return ok
}
