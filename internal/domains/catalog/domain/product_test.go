package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSortProducts_SortOrderThenID(t *testing.T) {
	products := []*Product{
		{ID: 4, Name: "d"},
		{ID: 3, Name: "c", SortOrder: ptr(2)},
		{ID: 2, Name: "b", SortOrder: ptr(1)},
		{ID: 1, Name: "a", SortOrder: ptr(2)},
		{ID: 0, Name: "z"},
	}
	SortProducts(products)

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{2, 1, 3, 0, 4}, ids)
}

func TestProduct_Labels(t *testing.T) {
	p := &Product{ID: 1, Name: "떡"}
	assert.Equal(t, "-", p.PriceLabel())
	assert.Equal(t, "-", p.StockLabel())
	assert.Equal(t, int64(0), p.AvailableStock())
	assert.True(t, p.Active())

	p.Price = ptr(int64(12000))
	p.Stock = ptr(int64(3))
	p.IsActive = ptr(false)
	assert.Equal(t, "12000", p.PriceLabel())
	assert.Equal(t, "3", p.StockLabel())
	assert.Equal(t, int64(3), p.AvailableStock())
	assert.False(t, p.Active())
}

func TestProduct_NegativeStockIsZero(t *testing.T) {
	p := &Product{ID: 1, Name: "떡", Stock: ptr(int64(-2))}
	assert.Equal(t, int64(0), p.AvailableStock())
}

func TestProduct_CloneIsDeep(t *testing.T) {
	p := &Product{ID: 1, Name: "떡", Stock: ptr(int64(5)), Tags: []string{"new"}}
	clone := p.Clone()
	*clone.Stock = 1
	clone.Tags[0] = "old"
	assert.Equal(t, int64(5), *p.Stock)
	assert.Equal(t, "new", p.Tags[0])
}

func TestSnapshot_ValidateRejectsDuplicates(t *testing.T) {
	s := Snapshot{Products: []*Product{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}}
	require.Error(t, s.Validate())

	s = Snapshot{Products: []*Product{{ID: 1, Name: " "}}}
	require.ErrorIs(t, s.Validate(), ErrEmptyProductName)
}

func TestOpenPickupDates_FiltersAndSorts(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }
	dates := []*PickupDate{
		{ID: 1, Date: day(25), IsOpen: true},
		{ID: 2, Date: day(21), IsOpen: false},
		{ID: 3, Date: day(22), IsOpen: true, Label: "수요일"},
	}
	open := OpenPickupDates(dates)
	require.Len(t, open, 2)
	assert.Equal(t, "2026-10-22", open[0].Key())
	assert.Equal(t, "수요일", open[0].DisplayLabel())
	assert.Equal(t, "2026-10-25", open[1].DisplayLabel())
	assert.True(t, ContainsDate(open, "2026-10-25"))
	assert.False(t, ContainsDate(open, "2026-10-21"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-22T00:00:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-22", d.Format(DateLayout))

	_, err = ParseDate("22/10/2026")
	require.ErrorIs(t, err, ErrInvalidPickupDate)
}

func TestActiveNotices_NewestFirst(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 10, 1, h, 0, 0, 0, time.UTC) }
	notices := []*Notice{
		{ID: 1, Title: "old", IsActive: true, PublishedAt: at(1)},
		{ID: 2, Title: "hidden", IsActive: false, PublishedAt: at(5)},
		{ID: 3, Title: "new", IsActive: true, PublishedAt: at(3)},
	}
	active := ActiveNotices(notices)
	require.Len(t, active, 2)
	assert.Equal(t, "new", active[0].Title)
	assert.Equal(t, "old", active[1].Title)
}
