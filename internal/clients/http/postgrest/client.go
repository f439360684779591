// Package postgrest reads the hosted table-query service (a PostgREST endpoint under
// <project>/rest/v1). client.gen.go is generated from api/openapi/postgrest.yaml.
package postgrest

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config oapi-codegen.yaml ../../../../api/openapi/postgrest.yaml

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const restPath = "/rest/v1/"

// ErrUnsupportedFilter is returned for a filter on a column the table does not expose.
var ErrUnsupportedFilter = errors.New("unsupported row filter")

// TableClient wraps the generated client with row-returning helpers.
type TableClient struct {
	api *ClientWithResponses
}

// NewTableClient builds a client for projectURL using the anonymous API key.
func NewTableClient(projectURL, apiKey string, httpClient *http.Client) (*TableClient, error) {
	projectURL = strings.TrimSpace(projectURL)
	apiKey = strings.TrimSpace(apiKey)
	if projectURL == "" || apiKey == "" {
		return nil, errors.New("table-query URL and API key are required")
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	api, err := NewClientWithResponses(
		strings.TrimRight(projectURL, "/")+restPath,
		WithHTTPClient(httpClient),
		WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
			req.Header.Set("apikey", apiKey)
			req.Header.Set("Authorization", "Bearer "+apiKey)
			req.Header.Set("Accept", "application/json")
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("build table-query client: %w", err)
	}
	return &TableClient{api: api}, nil
}

// Filter is a horizontal filter rendered as column=operator.value.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

// Eq filters rows where column equals value.
func Eq(column, value string) Filter {
	return Filter{Column: column, Operator: "eq", Value: value}
}

// Sort orders by a column.
type Sort struct {
	Column     string
	Descending bool
}

func Asc(column string) Sort { return Sort{Column: column} }

func Desc(column string) Sort { return Sort{Column: column, Descending: true} }

// Query describes a select request.
type Query struct {
	Columns []string
	Filters []Filter
	Order   []Sort
	Limit   int
}

func (q Query) selectParam() *Select {
	if len(q.Columns) == 0 {
		return nil
	}
	v := strings.Join(q.Columns, ",")
	return &v
}

func (q Query) orderParam() *Order {
	if len(q.Order) == 0 {
		return nil
	}
	parts := make([]string, 0, len(q.Order))
	for _, o := range q.Order {
		dir := "asc"
		if o.Descending {
			dir = "desc"
		}
		parts = append(parts, o.Column+"."+dir)
	}
	v := strings.Join(parts, ",")
	return &v
}

func (q Query) limitParam() *Limit {
	if q.Limit <= 0 {
		return nil
	}
	v := strconv.Itoa(q.Limit)
	return &v
}

// filters renders the filters keyed by column, rejecting columns outside allowed.
func (q Query) filters(table string, allowed ...string) (map[string]*string, error) {
	out := make(map[string]*string, len(allowed))
	for _, f := range q.Filters {
		known := false
		for _, column := range allowed {
			if column == f.Column {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnsupportedFilter, table, f.Column)
		}
		v := f.Operator + "." + f.Value
		out[f.Column] = &v
	}
	return out, nil
}

// Error is the error body returned by the table-query service. Its message is meant
// to be shown to users unchanged.
type Error struct {
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *Error) Error() string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	return fmt.Sprintf("table query failed with status %d", e.Status)
}

// Products selects rows from the products table.
func (c *TableClient) Products(ctx context.Context, q Query) ([]Products, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	filters, err := q.filters("products", "id", "is_active")
	if err != nil {
		return nil, err
	}
	resp, err := c.api.GetProductsWithResponse(ctx, &GetProductsParams{
		Select:   q.selectParam(),
		Order:    q.orderParam(),
		Limit:    q.limitParam(),
		Id:       filters["id"],
		IsActive: filters["is_active"],
	})
	if err != nil {
		return nil, fmt.Errorf("call table-query service: %w", err)
	}
	return rows("products", resp.StatusCode(), resp.Body, resp.JSON200, resp.JSONDefault)
}

// PickupDates selects rows from the pickup_dates table.
func (c *TableClient) PickupDates(ctx context.Context, q Query) ([]PickupDates, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	filters, err := q.filters("pickup_dates", "id", "is_open")
	if err != nil {
		return nil, err
	}
	resp, err := c.api.GetPickupDatesWithResponse(ctx, &GetPickupDatesParams{
		Select: q.selectParam(),
		Order:  q.orderParam(),
		Limit:  q.limitParam(),
		Id:     filters["id"],
		IsOpen: filters["is_open"],
	})
	if err != nil {
		return nil, fmt.Errorf("call table-query service: %w", err)
	}
	return rows("pickup_dates", resp.StatusCode(), resp.Body, resp.JSON200, resp.JSONDefault)
}

// Notices selects rows from the notices table.
func (c *TableClient) Notices(ctx context.Context, q Query) ([]Notices, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	filters, err := q.filters("notices", "id", "is_active")
	if err != nil {
		return nil, err
	}
	resp, err := c.api.GetNoticesWithResponse(ctx, &GetNoticesParams{
		Select:   q.selectParam(),
		Order:    q.orderParam(),
		Limit:    q.limitParam(),
		Id:       filters["id"],
		IsActive: filters["is_active"],
	})
	if err != nil {
		return nil, fmt.Errorf("call table-query service: %w", err)
	}
	return rows("notices", resp.StatusCode(), resp.Body, resp.JSON200, resp.JSONDefault)
}

func (c *TableClient) ensure() error {
	if c == nil || c.api == nil {
		return errors.New("table-query client not configured")
	}
	return nil
}

func rows[T any](table string, status int, body []byte, ok *[]T, failure *PostgrestError) ([]T, error) {
	switch {
	case status == http.StatusOK && ok != nil:
		return *ok, nil
	case status == http.StatusOK:
		return nil, fmt.Errorf("decode %s rows: response is not JSON", table)
	case status >= http.StatusBadRequest:
		return nil, storeError(status, body, failure)
	default:
		return nil, fmt.Errorf("table-query unexpected status %d for %s", status, table)
	}
}

func storeError(status int, body []byte, failure *PostgrestError) *Error {
	apiErr := &Error{Status: status}
	if failure == nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	apiErr.Code = deref(failure.Code)
	apiErr.Message = deref(failure.Message)
	apiErr.Details = deref(failure.Details)
	apiErr.Hint = deref(failure.Hint)
	return apiErr
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
