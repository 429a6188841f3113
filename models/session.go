package models

import (
	"errors"
	"time"
)

// Preference keys written by the auth and checkout flows.
const (
	PrefUsername               = "username"
	PrefLastLoginDate          = "lastLoginDate"
	PrefRegisteredDate         = "registeredDate"
	PrefPreferredPaymentMethod = "preferredPaymentMethod"
	PrefLastCheckoutStep       = "lastCheckoutStep"
)

// Preferences is the open settings bag on a session. Values are limited to
// strings, numbers, booleans and timestamps; anything richer belongs in a
// typed session field instead.
type Preferences map[string]any

// Set stores a value after checking its kind. Timestamps are stored as
// RFC3339 strings so they survive the JSON round trip.
func (p Preferences) Set(key string, value any) error {
	switch v := value.(type) {
	case string, bool, int, int64, float64:
		p[key] = v
	case time.Time:
		p[key] = v.Format(time.RFC3339)
	default:
		return errors.New("unsupported preference value type")
	}
	return nil
}

// String returns the preference as a string when present and of that kind.
func (p Preferences) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Time parses a timestamp preference.
func (p Preferences) Time(key string) (time.Time, bool) {
	s, ok := p[key].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UserSession is the phone-keyed bundle persisted under
// friendsCafe_session_<normalizedPhone>. Registered is set only by signup;
// a session lazily created by a preference write is not an account.
type UserSession struct {
	Cart         []CartItem  `json:"cart"`
	Addresses    []Address   `json:"addresses"`
	RecentOrders []Order     `json:"recentOrders"`
	Preferences  Preferences `json:"preferences"`
	Registered   bool        `json:"registered,omitempty"`
}

// NewUserSession returns the zero-value session written on first save.
func NewUserSession() *UserSession {
	return &UserSession{
		Cart:         []CartItem{},
		Addresses:    []Address{},
		RecentOrders: []Order{},
		Preferences:  Preferences{},
	}
}

// SessionPatch is a partial session write. Nil fields are left untouched;
// present fields replace the stored value wholesale, except Preferences which
// merge key by key (a nil value removes its key).
type SessionPatch struct {
	Cart         *[]CartItem
	Addresses    *[]Address
	RecentOrders *[]Order
	Preferences  Preferences
	Registered   *bool
}
