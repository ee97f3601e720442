package entity

import (
	"fmt"
	"time"
)

// PromotionDateLayout is the calendar date format used by catalog sources
const PromotionDateLayout = "2006-01-02"

// Promotion represents a "buy B get G free" offer active within a date window
type Promotion struct {
	Name    string    `json:"name"`
	Buy     int       `json:"buy"`
	Get     int       `json:"get"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// NewPromotion builds a promotion from calendar dates.
// The window starts at midnight of start and ends at 23:59:59 of end, both in loc.
func NewPromotion(name string, buy, get int, start, end string, loc *time.Location) (*Promotion, error) {
	if buy < 1 || get < 1 {
		return nil, fmt.Errorf("promotion %q: buy and get must be at least 1, got %d+%d", name, buy, get)
	}
	if loc == nil {
		loc = time.Local
	}

	startDay, err := time.ParseInLocation(PromotionDateLayout, start, loc)
	if err != nil {
		return nil, fmt.Errorf("promotion %q: invalid start date %q: %w", name, start, err)
	}
	endDay, err := time.ParseInLocation(PromotionDateLayout, end, loc)
	if err != nil {
		return nil, fmt.Errorf("promotion %q: invalid end date %q: %w", name, end, err)
	}

	endAt := endDay.AddDate(0, 0, 1).Add(-time.Second)
	if endAt.Before(startDay) {
		return nil, fmt.Errorf("promotion %q: end date %s is before start date %s", name, end, start)
	}

	return &Promotion{
		Name:    name,
		Buy:     buy,
		Get:     get,
		StartAt: startDay,
		EndAt:   endAt,
	}, nil
}

// UnitSize returns the number of items in one completed buy-get unit
func (p *Promotion) UnitSize() int {
	return p.Buy + p.Get
}

// ActiveAt reports whether now falls inside the inclusive promotion window
func (p *Promotion) ActiveAt(now time.Time) bool {
	return !now.Before(p.StartAt) && !now.After(p.EndAt)
}

// Label returns the short "B+G" form of the offer
func (p *Promotion) Label() string {
	return fmt.Sprintf("%d+%d", p.Buy, p.Get)
}
