package models

import (
	"errors"
	"time"
)

// ContactType classifies how a customer was contacted.
type ContactType string

const (
	ContactTypePhone   ContactType = "phone"
	ContactTypeEmail   ContactType = "email"
	ContactTypeMeeting ContactType = "meeting"
)

var ErrInvalidContactType = errors.New("invalid contact type")

// ParseContactType converts raw input into a ContactType.
func ParseContactType(s string) (ContactType, error) {
	switch ContactType(s) {
	case ContactTypePhone, ContactTypeEmail, ContactTypeMeeting:
		return ContactType(s), nil
	}
	return "", ErrInvalidContactType
}

// Contact is one logged interaction with a customer. CustomerID is kept
// as given; the customer it points at may have been deleted since.
type Contact struct {
	ID          int         `json:"id"`
	CustomerID  int         `json:"customerId"`
	ContactType ContactType `json:"contactType"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"createdAt"`
}
