package domain

import "fmt"

// Snapshot is a complete copy of the catalog tables, used for fixtures and seeding.
type Snapshot struct {
	Products    []*Product
	PickupDates []*PickupDate
	Notices     []*Notice
}

// Validate checks every product and rejects duplicate ids.
func (s *Snapshot) Validate() error {
	seen := make(map[int64]struct{}, len(s.Products))
	for _, p := range s.Products {
		if p == nil {
			continue
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("product %d: %w", p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %d is defined twice", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
