package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("client not found")

// Client is the party renting a vehicle. Client CRUD lives in an external
// subsystem; this core only resolves references and reads the identity
// fields the contract document renders.
type Client struct {
	ID             uuid.UUID
	Name           string
	LastName       string
	Email          string
	Phone          string
	PassportNumber string
	LicenseNumber  string
	Address        string
	CreatedAt      time.Time
}

// FullName is the display name used on rendered documents.
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.Name
	}

	return c.Name + " " + c.LastName
}
