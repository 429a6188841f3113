package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/friends-cafe/cafe-api/models"
	"github.com/friends-cafe/cafe-api/storage"
)

// DemoOTP is the only accepted one-time password. No SMS is ever sent; the
// whole verification flow is simulated.
const DemoOTP = "1234"

var (
	ErrInvalidOTP           = errors.New("invalid OTP")
	ErrNotRegistered        = errors.New("phone number is not registered, please sign up first")
	ErrAlreadyRegistered    = errors.New("phone number is already registered, please login instead")
	ErrInvalidPhone         = errors.New("phone number must have at least 10 digits")
	ErrInvalidUsername      = errors.New("username must not be blank")
	ErrVerificationInFlight = errors.New("verification already in progress, please wait")
	ErrStorage              = errors.New("could not save account data")
)

// Verifier checks an OTP for a phone number. The simulated implementation
// waits out a fixed delay and honors ctx, so an abandoned login does not
// complete behind the caller's back.
type Verifier interface {
	Verify(ctx context.Context, phone, otp string) error
}

// SimulatedVerifier stands in for an SMS gateway.
type SimulatedVerifier struct {
	Delay time.Duration
}

func (v SimulatedVerifier) Verify(ctx context.Context, _, otp string) error {
	if v.Delay > 0 {
		timer := time.NewTimer(v.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if otp != DemoOTP {
		return ErrInvalidOTP
	}
	return nil
}

// UserID derives the stable id for a phone, identical across logins.
func UserID(phone string) string {
	return "user_" + storage.NormalizePhone(phone)
}

// Manager drives the simulated login/signup flow against the session store.
// At most one verification runs at a time; further attempts are rejected
// rather than queued.
type Manager struct {
	store    *storage.Store
	verifier Verifier

	mu       sync.Mutex
	busy     bool
	user     *models.User
	onChange []func(*models.User)
}

// NewManager restores any previously stored user. A nil verifier gets the
// simulated one with its usual 1.5s delay.
func NewManager(store *storage.Store, verifier Verifier) *Manager {
	if verifier == nil {
		verifier = SimulatedVerifier{Delay: 1500 * time.Millisecond}
	}
	m := &Manager{store: store, verifier: verifier}
	m.restore()
	return m
}

// restore brings back the user from the friendsCafeUser slot, discarding it
// when incomplete or when its session has vanished.
func (m *Manager) restore() {
	var user models.User
	if !m.store.KV().Get(storage.KeyUser, &user) {
		return
	}
	if user.ID == "" || user.Phone == "" || !user.IsLoggedIn || !m.store.Exists(user.Phone) {
		m.store.KV().Delete(storage.KeyUser)
		return
	}
	m.user = &user
}

// OnChange registers a callback fired whenever the authenticated user changes
// (login, signup, logout). The cart manager uses this to reload its state.
func (m *Manager) OnChange(fn func(*models.User)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

func (m *Manager) beginVerification() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrVerificationInFlight
	}
	m.busy = true
	return nil
}

func (m *Manager) endVerification() {
	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.user = user
	callbacks := m.onChange
	m.mu.Unlock()

	if user != nil {
		m.store.KV().Put(storage.KeyUser, user)
	} else {
		m.store.KV().Delete(storage.KeyUser)
	}
	for _, fn := range callbacks {
		fn(user)
	}
}

// Login verifies the OTP and hydrates the user from the stored session. Only
// phones that completed signup count as registered; a session created as a
// side effect of some preference write does not.
func (m *Manager) Login(ctx context.Context, phone, otp string) (*models.User, error) {
	if err := m.beginVerification(); err != nil {
		return nil, err
	}
	defer m.endVerification()

	if err := m.verifier.Verify(ctx, phone, otp); err != nil {
		return nil, err
	}

	sess, ok := m.store.Get(phone)
	if !ok || !sess.Registered {
		return nil, ErrNotRegistered
	}

	username := placeholderUsername(phone)
	if name, ok := sess.Preferences.String(models.PrefUsername); ok && name != "" {
		username = name
	}

	user := &models.User{
		ID:         UserID(phone),
		Username:   username,
		Phone:      phone,
		IsLoggedIn: true,
	}

	// The guest cart belongs to nobody once a login happens.
	m.store.KV().Delete(storage.KeyGuestCart)

	prefs := models.Preferences{}
	prefs.Set(models.PrefLastLoginDate, time.Now())
	m.store.SavePreferences(phone, prefs)

	m.setUser(user)
	log.Printf("✅ %s logged in", user.ID)
	return user, nil
}

// Signup validates the input, verifies the OTP and creates the session. A
// cart built while browsing as a guest follows the new account.
func (m *Manager) Signup(ctx context.Context, username, phone, otp string) (*models.User, error) {
	if len(storage.NormalizePhone(phone)) < 10 {
		return nil, ErrInvalidPhone
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if m.store.Exists(phone) {
		return nil, ErrAlreadyRegistered
	}

	if err := m.beginVerification(); err != nil {
		return nil, err
	}
	defer m.endVerification()

	if err := m.verifier.Verify(ctx, phone, otp); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         UserID(phone),
		Username:   username,
		Phone:      phone,
		IsLoggedIn: true,
	}

	prefs := models.Preferences{}
	prefs.Set(models.PrefUsername, username)
	prefs.Set(models.PrefRegisteredDate, time.Now())
	registered := true
	patch := models.SessionPatch{Preferences: prefs, Registered: &registered}

	var guestCart []models.CartItem
	if m.store.KV().Get(storage.KeyGuestCart, &guestCart) && len(guestCart) > 0 {
		patch.Cart = &guestCart
	}

	if !m.store.Save(phone, patch) {
		return nil, ErrStorage
	}
	m.store.KV().Delete(storage.KeyGuestCart)

	m.setUser(user)
	log.Printf("✅ %s signed up as %q", user.ID, username)
	return user, nil
}

// Logout drops the transient user and the cart slots tied to them. The
// phone-keyed session stays so order history survives the next login.
func (m *Manager) Logout() {
	m.mu.Lock()
	user := m.user
	m.mu.Unlock()

	if user != nil {
		m.store.KV().Delete(storage.LegacyCartKey(user.ID))
	}
	m.store.KV().Delete(storage.KeyGuestCart)
	m.setUser(nil)

	if user != nil {
		log.Printf("✅ %s logged out", user.ID)
	}
}

func placeholderUsername(phone string) string {
	p := storage.NormalizePhone(phone)
	if len(p) > 4 {
		p = p[len(p)-4:]
	}
	return "User-" + p
}
