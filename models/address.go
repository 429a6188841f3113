package models

import "errors"

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

// Address is a saved delivery address. At most one per user is the default;
// the write path that sets a default clears the flag everywhere else.
type Address struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	AddressLine1 string      `json:"addressLine1"`
	AddressLine2 string      `json:"addressLine2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Pincode      string      `json:"pincode"`
	Type         AddressType `json:"type"`
	IsDefault    bool        `json:"isDefault"`
}

var (
	ErrIncompleteAddress = errors.New("all address fields except line 2 are required")
	ErrBadAddressType    = errors.New("address type must be home, work or other")
)

// Validate checks the mandatory fields. Line 2 is the only optional one.
func (a Address) Validate() error {
	if a.Name == "" || a.Phone == "" || a.AddressLine1 == "" ||
		a.City == "" || a.State == "" || a.Pincode == "" {
		return ErrIncompleteAddress
	}
	switch a.Type {
	case AddressHome, AddressWork, AddressOther:
		return nil
	default:
		return ErrBadAddressType
	}
}
