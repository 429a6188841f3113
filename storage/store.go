package storage

import (
	"strings"

	"gorm.io/gorm"

	"github.com/friends-cafe/cafe-api/models"
)

// Field names a clearable slot of a session.
type Field string

const (
	FieldCart         Field = "cart"
	FieldAddresses    Field = "addresses"
	FieldRecentOrders Field = "recentOrders"
	FieldPreferences  Field = "preferences"
)

// Store is the phone-keyed session store. Sessions are created lazily on
// first write; reads on an unknown phone report absence, not an empty
// session.
type Store struct {
	kv *KV
}

func NewStore(db *gorm.DB) *Store {
	return &Store{kv: NewKV(db)}
}

// KV exposes the raw record store for the fixed slots (current user, guest
// cart, last order) that live outside any session.
func (s *Store) KV() *KV {
	return s.kv
}

// Get loads a phone's session. ok is false when none exists; lookups never
// create one.
func (s *Store) Get(phone string) (*models.UserSession, bool) {
	var sess models.UserSession
	if !s.kv.Get(SessionKey(phone), &sess) {
		return nil, false
	}
	if sess.Preferences == nil {
		sess.Preferences = models.Preferences{}
	}
	return &sess, true
}

// Exists reports whether Get would return a session for the phone. An
// unreadable record counts as absent, so a later signup can overwrite it.
// Note this is weaker than "registered": a preference write also creates one.
func (s *Store) Exists(phone string) bool {
	_, ok := s.Get(phone)
	return ok
}

// Save merges patch into the session, creating it on first write. Top-level
// fields present in the patch replace the stored value wholesale; preferences
// merge one level deep, and a nil preference value removes its key.
func (s *Store) Save(phone string, patch models.SessionPatch) bool {
	sess, ok := s.Get(phone)
	if !ok {
		sess = models.NewUserSession()
	}
	if patch.Cart != nil {
		sess.Cart = *patch.Cart
	}
	if patch.Addresses != nil {
		sess.Addresses = *patch.Addresses
	}
	if patch.RecentOrders != nil {
		sess.RecentOrders = *patch.RecentOrders
	}
	if patch.Registered != nil {
		sess.Registered = *patch.Registered
	}
	for k, v := range patch.Preferences {
		if v == nil {
			delete(sess.Preferences, k)
			continue
		}
		sess.Preferences[k] = v
	}
	return s.kv.Put(SessionKey(phone), sess)
}

// Clear resets the named fields to their zero values, or deletes the whole
// session when no field is given. Clearing fields of a missing session is a
// no-op, not a create.
func (s *Store) Clear(phone string, fields ...Field) {
	if len(fields) == 0 {
		s.kv.Delete(SessionKey(phone))
		return
	}
	sess, ok := s.Get(phone)
	if !ok {
		return
	}
	for _, f := range fields {
		switch f {
		case FieldCart:
			sess.Cart = []models.CartItem{}
		case FieldAddresses:
			sess.Addresses = []models.Address{}
		case FieldRecentOrders:
			sess.RecentOrders = []models.Order{}
		case FieldPreferences:
			sess.Preferences = models.Preferences{}
		}
	}
	s.kv.Put(SessionKey(phone), sess)
}

// Phones lists every phone number with a stored session. Admin surface only.
func (s *Store) Phones() []string {
	keys := s.kv.Keys(sessionPrefix)
	phones := make([]string, 0, len(keys))
	for _, k := range keys {
		phones = append(phones, strings.TrimPrefix(k, sessionPrefix))
	}
	return phones
}

// Single-field accessors. These are the getItem/saveItem convenience layer;
// each one round-trips through Get/Save so merge semantics stay in one place.

func (s *Store) Cart(phone string) ([]models.CartItem, bool) {
	sess, ok := s.Get(phone)
	if !ok {
		return nil, false
	}
	return sess.Cart, true
}

func (s *Store) SaveCart(phone string, items []models.CartItem) bool {
	if items == nil {
		items = []models.CartItem{}
	}
	return s.Save(phone, models.SessionPatch{Cart: &items})
}

func (s *Store) Addresses(phone string) ([]models.Address, bool) {
	sess, ok := s.Get(phone)
	if !ok {
		return nil, false
	}
	return sess.Addresses, true
}

func (s *Store) SaveAddresses(phone string, addrs []models.Address) bool {
	if addrs == nil {
		addrs = []models.Address{}
	}
	return s.Save(phone, models.SessionPatch{Addresses: &addrs})
}

func (s *Store) RecentOrders(phone string) ([]models.Order, bool) {
	sess, ok := s.Get(phone)
	if !ok {
		return nil, false
	}
	return sess.RecentOrders, true
}

func (s *Store) SaveRecentOrders(phone string, orders []models.Order) bool {
	if orders == nil {
		orders = []models.Order{}
	}
	return s.Save(phone, models.SessionPatch{RecentOrders: &orders})
}

func (s *Store) Preferences(phone string) (models.Preferences, bool) {
	sess, ok := s.Get(phone)
	if !ok {
		return nil, false
	}
	return sess.Preferences, true
}

// SavePreferences merges the given keys into the stored preferences.
func (s *Store) SavePreferences(phone string, prefs models.Preferences) bool {
	return s.Save(phone, models.SessionPatch{Preferences: prefs})
}
