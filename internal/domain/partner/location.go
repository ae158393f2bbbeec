package partner

import (
	"time"

	"github.com/tokopos/backend/internal/domain/shared"
)

// Location is a physical store or warehouse that holds stock and rings
// up sales. Deactivated locations are kept for history but excluded
// from new activity.
type Location struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Address  string `gorm:"type:text"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// NewLocation creates an active location
func NewLocation(name, address string) (*Location, error) {
	if err := validateLocationName(name); err != nil {
		return nil, err
	}
	return &Location{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		IsActive:   true,
	}, nil
}

// Update changes the location's basic information
func (l *Location) Update(name, address string) error {
	if err := validateLocationName(name); err != nil {
		return err
	}
	l.Name = name
	l.Address = address
	l.UpdatedAt = time.Now()
	return nil
}

// Activate re-enables the location
func (l *Location) Activate() error {
	if l.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Location is already active")
	}
	l.IsActive = true
	l.UpdatedAt = time.Now()
	return nil
}

// Deactivate disables the location
func (l *Location) Deactivate() error {
	if !l.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Location is already inactive")
	}
	l.IsActive = false
	l.UpdatedAt = time.Now()
	return nil
}

func validateLocationName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Location name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Location name cannot exceed 200 characters")
	}
	return nil
}
