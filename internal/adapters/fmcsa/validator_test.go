package fmcsa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestValidator(t *testing.T, baseURL string) *Validator {
	t.Helper()

	v, err := NewValidator("test-key", baseURL, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestValidateAuthorizedCarrier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/qc/services/carriers/123456") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("webKey") != "test-key" {
			t.Errorf("webKey = %q, want test-key", r.URL.Query().Get("webKey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": {
				"carrier": {
					"legalName": "ACME FREIGHT LLC",
					"dbaName": "ACME",
					"dotNumber": 987654,
					"allowedToOperate": "Y",
					"statusCode": "A",
					"safetyRating": "S",
					"phyState": "TX"
				}
			}
		}`))
	}))
	defer srv.Close()

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "123456")

	if !result.IsValid {
		t.Fatalf("IsValid = false, want true (detail: %q)", result.Detail)
	}
	if result.MCNumber != "MC123456" {
		t.Errorf("MCNumber = %q, want MC123456", result.MCNumber)
	}
	if result.LegalName != "ACME FREIGHT LLC" {
		t.Errorf("LegalName = %q, want ACME FREIGHT LLC", result.LegalName)
	}
	if result.DOTNumber != "987654" {
		t.Errorf("DOTNumber = %q, want 987654", result.DOTNumber)
	}
	if result.PhysicalState != "TX" {
		t.Errorf("PhysicalState = %q, want TX", result.PhysicalState)
	}
}

func TestValidateUnauthorizedCarrier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": {"carrier": {"legalName": "GHOST TRUCKING", "allowedToOperate": "N"}}}`))
	}))
	defer srv.Close()

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "123456")

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if result.Detail != "carrier is not authorized to operate" {
		t.Errorf("Detail = %q", result.Detail)
	}
}

func TestValidateCarrierNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "999999")

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if result.Detail != "carrier not found" {
		t.Errorf("Detail = %q, want \"carrier not found\"", result.Detail)
	}
}

func TestValidateRegistryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "123456")

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if result.Detail != "registry error: status 502" {
		t.Errorf("Detail = %q, want \"registry error: status 502\"", result.Detail)
	}
}

func TestValidateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "123456")

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if result.Detail != "registry returned malformed response" {
		t.Errorf("Detail = %q", result.Detail)
	}
}

func TestValidateRegistryTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	v := newTestValidator(t, srv.URL)
	v.session.Timeout = 50 * time.Millisecond

	start := time.Now()
	result := v.Validate(context.Background(), "123456")

	if time.Since(start) > time.Second {
		t.Fatal("validate did not respect the client timeout")
	}
	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if result.Detail != "registry unreachable: request timed out" {
		t.Errorf("Detail = %q", result.Detail)
	}
}

func TestValidateRegistryUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	result := newTestValidator(t, srv.URL).Validate(context.Background(), "123456")

	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if !strings.HasPrefix(result.Detail, "registry unreachable") {
		t.Errorf("Detail = %q, want registry unreachable prefix", result.Detail)
	}
}

func TestNewValidatorRequiresKey(t *testing.T) {
	if _, err := NewValidator("", "", zap.NewNop()); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
