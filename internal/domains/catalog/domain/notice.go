package domain

import (
	"cmp"
	"slices"
	"time"
)

// Notice is a site announcement shown above the catalog.
type Notice struct {
	ID          int64
	Title       string
	Body        string
	IsActive    bool
	PublishedAt time.Time
}

// ActiveNotices keeps active notices, newest first.
func ActiveNotices(notices []*Notice) []*Notice {
	active := make([]*Notice, 0, len(notices))
	for _, n := range notices {
		if n != nil && n.IsActive {
			copy := *n
			active = append(active, &copy)
		}
	}
	slices.SortStableFunc(active, func(a, b *Notice) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return active
}
