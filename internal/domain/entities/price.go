package entities

import (
	"encoding/json"
	"fmt"
)

// FieldLastUpdatedAt is the JSON key carrying the upstream update time (epoch seconds).
const FieldLastUpdatedAt = "last_updated_at"

// PriceRecord represents the bitcoin price quoted in one or more currencies.
// Its JSON form is flat, e.g. {"usd": 50000, "last_updated_at": 1700000000}.
type PriceRecord struct {
	Prices        map[string]float64
	LastUpdatedAt int64
}

// NewPriceRecord builds a record holding a single currency quote
func NewPriceRecord(currency string, price float64, lastUpdatedAt int64) PriceRecord {
	return PriceRecord{
		Prices:        map[string]float64{currency: price},
		LastUpdatedAt: lastUpdatedAt,
	}
}

// Price returns the quote for currency and whether it was present.
func (p PriceRecord) Price(currency string) (float64, bool) {
	v, ok := p.Prices[currency]
	return v, ok
}

// MarshalJSON flattens the record into the upstream shape.
func (p PriceRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Prices)+1)
	for currency, price := range p.Prices {
		out[currency] = price
	}
	out[FieldLastUpdatedAt] = p.LastUpdatedAt
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat upstream shape. Every key other than
// last_updated_at is treated as a currency quote.
func (p *PriceRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("price record must be a JSON object")
	}

	record := PriceRecord{Prices: make(map[string]float64, len(raw))}
	for key, num := range raw {
		if key == FieldLastUpdatedAt {
			ts, err := num.Float64()
			if err != nil {
				return fmt.Errorf("invalid %s: %w", FieldLastUpdatedAt, err)
			}
			record.LastUpdatedAt = int64(ts)
			continue
		}
		v, err := num.Float64()
		if err != nil {
			return fmt.Errorf("invalid price for %s: %w", key, err)
		}
		record.Prices[key] = v
	}

	*p = record
	return nil
}
