package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableClient_RequiresURLAndKey(t *testing.T) {
	_, err := NewTableClient("", "key", nil)
	require.Error(t, err)
	_, err = NewTableClient("https://example.supabase.co", " ", nil)
	require.Error(t, err)
}

func TestTableClient_RendersQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		assert.Equal(t, "/rest/v1/pickup_dates", r.URL.Path)
		assert.Equal(t, "id,pickup_date", values.Get("select"))
		assert.Equal(t, "eq.true", values.Get("is_open"))
		assert.Equal(t, "pickup_date.asc,id.desc", values.Get("order"))
		assert.Equal(t, "5", values.Get("limit"))
		assert.Empty(t, values.Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"pickup_date":"2024-05-01","is_open":true}]`))
	}))
	defer server.Close()

	client, err := NewTableClient(server.URL, "k", server.Client())
	require.NoError(t, err)

	rows, err := client.PickupDates(context.Background(), Query{
		Columns: []string{"id", "pickup_date"},
		Filters: []Filter{Eq("is_open", "true")},
		Order:   []Sort{Asc("pickup_date"), Desc("id")},
		Limit:   5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-05-01", rows[0].PickupDate)
}

func TestTableClient_DecodesRowsWithAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		assert.Equal(t, "k", r.Header.Get("apikey"))
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Bread"},{"id":2,"name":"Milk","price":1500}]`))
	}))
	defer server.Close()

	client, err := NewTableClient(server.URL+"/", "k", server.Client())
	require.NoError(t, err)

	rows, err := client.Products(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].Price)
	require.NotNil(t, rows[1].Price)
	assert.EqualValues(t, 1500, *rows[1].Price)
}

func TestTableClient_RejectsUnknownFilter(t *testing.T) {
	client, err := NewTableClient("https://example.supabase.co", "k", nil)
	require.NoError(t, err)

	_, err = client.Notices(context.Background(), Query{Filters: []Filter{Eq("title", "x")}})
	require.ErrorIs(t, err, ErrUnsupportedFilter)
}

func TestTableClient_StructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","message":"relation \"public.notices\" does not exist","hint":null}`))
	}))
	defer server.Close()

	client, err := NewTableClient(server.URL, "k", server.Client())
	require.NoError(t, err)

	_, err = client.Notices(context.Background(), Query{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "42P01", apiErr.Code)
	assert.Equal(t, `relation "public.notices" does not exist`, apiErr.Error())
}

func TestTableClient_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer server.Close()

	client, err := NewTableClient(server.URL, "k", server.Client())
	require.NoError(t, err)

	_, err = client.Products(context.Background(), Query{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Error())
}
