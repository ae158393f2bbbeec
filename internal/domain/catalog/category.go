package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/shared"
)

// Category is a node in the product category tree. ParentID is nil for
// top-level categories.
type Category struct {
	shared.BaseEntity
	Name     string     `gorm:"type:varchar(200);not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category, optionally under a parent
func NewCategory(name string, parentID *uuid.UUID) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		ParentID:   parentID,
	}, nil
}

// Rename changes the category name
func (c *Category) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// MoveTo re-parents the category. The cycle check against the proposed
// parent's ancestor chain happens in the application service because it
// needs repository access; here we only reject the trivial self-parent.
func (c *Category) MoveTo(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return shared.ErrCategoryCycle
	}
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	return nil
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 200 characters")
	}
	return nil
}
