package enum

import "encoding/json"

// FulfillmentPath records which branch of the fulfillment algorithm served a line
type FulfillmentPath int

const (
	// FulfillmentPathGeneral serves the whole line from general stock
	FulfillmentPathGeneral FulfillmentPath = 0
	// FulfillmentPathPromoExhausted serves a line whose full units use up the promotional stock
	FulfillmentPathPromoExhausted FulfillmentPath = 1
	// FulfillmentPathPromoCovered serves a line whose full units all fit in promotional stock
	FulfillmentPathPromoCovered FulfillmentPath = 2
)

func (p FulfillmentPath) String() string {
	names := [...]string{"general", "promo_exhausted", "promo_covered"}
	if int(p) < 0 || int(p) >= len(names) {
		return "general"
	}
	return names[p]
}

func (p FulfillmentPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
