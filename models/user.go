package models

// User is the transient logged-in identity. It lives in the friendsCafeUser
// slot and in process memory, never inside the phone-keyed session, and is
// destroyed on logout.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Phone      string `json:"phone"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}
