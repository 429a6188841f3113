package storage

import "strings"

// Storage key namespace, preserved byte-for-byte from the exported browser
// data so old records stay readable.
const (
	KeyUser      = "friendsCafeUser"
	KeyGuestCart = "friendsCafe_cart_guest"
	KeyLastOrder = "friendsCafe_lastOrder"

	sessionPrefix = "friendsCafe_session_"
	cartPrefix    = "friendsCafe_cart_"
	addressPrefix = "friendsCafe_addresses_"
)

// NormalizePhone strips whitespace and anything that is not a digit or '+'.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SessionKey returns the storage key for a phone's session.
func SessionKey(phone string) string {
	return sessionPrefix + NormalizePhone(phone)
}

// LegacyCartKey is the per-user cart mirror slot kept for schema
// compatibility. The session store is authoritative.
func LegacyCartKey(userID string) string {
	return cartPrefix + userID
}

// LegacyAddressKey is the per-user address mirror slot.
func LegacyAddressKey(userID string) string {
	return addressPrefix + userID
}
