package domain

import (
	"math"
	"time"
)

// Promotion represents a discounted offer, optionally tied to a service
type Promotion struct {
	ID              string
	Title           string
	Description     string
	ImageURL        *string
	ServiceID       *string
	OriginalPrice   *float64
	DiscountPercent *float64
	DiscountAmount  *float64
	ValidFrom       time.Time
	ValidUntil      time.Time
	IsActive        bool
	CreatedAt       time.Time

	Service *Service
}

// IsCurrent returns true if the promotion is active and now falls within
// its validity window (dates inclusive)
func (p *Promotion) IsCurrent(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := time.Date(p.ValidFrom.Year(), p.ValidFrom.Month(), p.ValidFrom.Day(), 0, 0, 0, 0, now.Location())
	until := time.Date(p.ValidUntil.Year(), p.ValidUntil.Month(), p.ValidUntil.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(from) && !day.After(until)
}

// EffectivePrice returns the price after applying the discount.
// Percent discount wins over a fixed amount; without an original price
// the promotion costs nothing to book (amount is settled in person).
func (p *Promotion) EffectivePrice() float64 {
	if p.OriginalPrice == nil {
		return 0
	}
	price := *p.OriginalPrice
	switch {
	case p.DiscountPercent != nil:
		price = price * (1 - *p.DiscountPercent/100)
	case p.DiscountAmount != nil:
		price = price - *p.DiscountAmount
	}
	// Round to cents
	return math.Round(price*100) / 100
}
