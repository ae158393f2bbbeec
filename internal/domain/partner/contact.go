package partner

import (
	"strings"
	"time"

	"github.com/tokopos/backend/internal/domain/shared"
)

// ContactType distinguishes who we buy from and who we sell to
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeSupplier ContactType = "supplier"
)

// Contact is a customer or supplier on record
type Contact struct {
	shared.BaseEntity
	Name    string      `gorm:"type:varchar(200);not null"`
	Type    ContactType `gorm:"type:varchar(20);not null;index"`
	Phone   string      `gorm:"type:varchar(50)"`
	Email   string      `gorm:"type:varchar(200)"`
	Address string      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a contact of the given type
func NewContact(name string, contactType ContactType) (*Contact, error) {
	if err := validateContactName(name); err != nil {
		return nil, err
	}
	if err := validateContactType(contactType); err != nil {
		return nil, err
	}
	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       contactType,
	}, nil
}

// Update changes the contact's basic information
func (c *Contact) Update(name string) error {
	if err := validateContactName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SetDetails sets phone, email, and address
func (c *Contact) SetDetails(phone, email, address string) error {
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}

// IsSupplier reports whether the contact can appear on purchase orders
func (c *Contact) IsSupplier() bool {
	return c.Type == ContactTypeSupplier
}

// IsCustomer reports whether the contact can appear on invoices
func (c *Contact) IsCustomer() bool {
	return c.Type == ContactTypeCustomer
}

func validateContactName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Contact name cannot exceed 200 characters")
	}
	return nil
}

func validateContactType(t ContactType) error {
	switch t {
	case ContactTypeCustomer, ContactTypeSupplier:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Contact type must be customer or supplier")
	}
}
