package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table. Opening hours and image
// lists are stored as JSONB through the GORM JSON serializer.
type BusinessModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_businesses_slug,where:deleted_at IS NULL"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`

	Address   string  `gorm:"type:varchar(255);not null"`
	City      string  `gorm:"type:varchar(100);index"`
	State     string  `gorm:"type:varchar(100)"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`

	Phone   string `gorm:"type:varchar(30)"`
	Email   string `gorm:"type:varchar(255)"`
	Website string `gorm:"type:varchar(255)"`

	OpeningHours map[string]DayHoursJSON `gorm:"type:jsonb;serializer:json"`
	Logo         string                  `gorm:"type:varchar(255)"`
	Images       []string                `gorm:"type:jsonb;serializer:json"`

	Status          string `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string `gorm:"type:text"`
	IsVerified      bool   `gorm:"not null;default:false"`
	IsFeatured      bool   `gorm:"not null;default:false"`

	AverageRating float64 `gorm:"not null;default:0"`
	ReviewCount   int64   `gorm:"not null;default:0"`
	ViewCount     int64   `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Reviews  []ReviewModel  `gorm:"foreignKey:BusinessID"`
}

// DayHoursJSON is the JSONB shape of one weekday's opening window.
type DayHoursJSON struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
