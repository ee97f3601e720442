package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRecord is the persisted form of a catalog product row
type ProductRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Position      int       `gorm:"not null;index" json:"position"` // Catalog row order
	Name          string    `gorm:"size:255;not null;index" json:"name"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"` // Stored in the smallest currency unit
	Quantity      int       `gorm:"default:0" json:"quantity"`
	PromotionName *string   `gorm:"size:255" json:"promotion_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product record
func (r *ProductRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductRecord model
func (ProductRecord) TableName() string {
	return "catalog_products"
}

// ToProduct converts the record into a stock row
func (r *ProductRecord) ToProduct() *Product {
	promotion := ""
	if r.PromotionName != nil {
		promotion = *r.PromotionName
	}
	return NewProduct(r.Name, r.UnitPrice, r.Quantity, promotion)
}

// PromotionRecord is the persisted form of a catalog promotion row
type PromotionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	Buy       int       `gorm:"not null" json:"buy"`
	Get       int       `gorm:"not null" json:"get"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new promotion record
func (r *PromotionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PromotionRecord model
func (PromotionRecord) TableName() string {
	return "catalog_promotions"
}

// ToPromotion converts the record into a promotion whose window is anchored in loc
func (r *PromotionRecord) ToPromotion(loc *time.Location) (*Promotion, error) {
	return NewPromotion(
		r.Name,
		r.Buy,
		r.Get,
		r.StartDate.Format(PromotionDateLayout),
		r.EndDate.Format(PromotionDateLayout),
		loc,
	)
}

// NewProductRecord converts a stock row into its persisted form at position
func NewProductRecord(p *Product, position int) ProductRecord {
	r := ProductRecord{
		Position:  position,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  p.Quantity,
	}
	if p.HasPromotion() {
		name := p.PromotionName
		r.PromotionName = &name
	}
	return r
}

// NewPromotionRecord converts a promotion into its persisted form.
// Only the calendar dates are kept; the window is rebuilt on load.
func NewPromotionRecord(p *Promotion) PromotionRecord {
	return PromotionRecord{
		Name:      p.Name,
		Buy:       p.Buy,
		Get:       p.Get,
		StartDate: dateOnly(p.StartAt),
		EndDate:   dateOnly(p.EndAt),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
