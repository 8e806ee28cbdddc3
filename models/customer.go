package models

import "errors"

// CustomerStatus is the relationship stage of a customer. Statuses are a
// closed set; raw input is parsed before it reaches a store.
type CustomerStatus string

const (
	CustomerStatusProspect CustomerStatus = "prospect"
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

var ErrInvalidCustomerStatus = errors.New("invalid customer status")

// ParseCustomerStatus converts raw input into a CustomerStatus.
func ParseCustomerStatus(s string) (CustomerStatus, error) {
	switch CustomerStatus(s) {
	case CustomerStatusProspect, CustomerStatusActive, CustomerStatusInactive:
		return CustomerStatus(s), nil
	}
	return "", ErrInvalidCustomerStatus
}

func (s CustomerStatus) Valid() bool {
	_, err := ParseCustomerStatus(string(s))
	return err == nil
}

type Customer struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Company string         `json:"company"`
	Phone   string         `json:"phone"`
	Status  CustomerStatus `json:"status"`
}
