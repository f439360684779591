//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "offline-store-api"
	ConsumerName = "storefront-web"

	StateAnonymous       = "no session"
	StateCatalogLoggedIn = "catalog seeded and session pact-session logged in"
)

const (
	// SessionCookie is the cookie the consumer sends in logged-in interactions.
	SessionCookie = "ssanjae_session=" + SessionToken
	SessionToken  = "pact-session"

	ExistingProductID int64 = 1
	MissingProductID  int64 = 404
	OpenPickupDate          = "2024-05-03"
)

// ExampleProductPayload provides stable test data for catalog interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":           ExistingProductID,
		"sortOrder":    1,
		"name":         "인절미",
		"price":        4500,
		"stock":        3,
		"isActive":     true,
		"thumbnailUrl": "https://example.pact/products/injeolmi.png",
		"tags":         []string{"떡"},
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
