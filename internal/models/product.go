package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a marketable item the user wants promoted. It is the anchor
// record for discovery and comment generation.
type Product struct {
	ID          string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductParams carries the user-supplied fields for a new product.
type CreateProductParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Link        *string `json:"link,omitempty"`
}

// Validate trims and checks the required fields.
func (p *CreateProductParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	if p.Name == "" {
		return NewError(ErrCodeValidation, "product name is required")
	}
	if p.Description == "" {
		return NewError(ErrCodeValidation, "product description is required")
	}
	return nil
}

// UpdateProductParams is a partial update: nil fields are left untouched.
type UpdateProductParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// Validate rejects supplied-but-blank required fields.
func (p *UpdateProductParams) Validate() error {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		if trimmed == "" {
			return NewError(ErrCodeValidation, "product name cannot be blank")
		}
		p.Name = &trimmed
	}
	if p.Description != nil {
		trimmed := strings.TrimSpace(*p.Description)
		if trimmed == "" {
			return NewError(ErrCodeValidation, "product description cannot be blank")
		}
		p.Description = &trimmed
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
