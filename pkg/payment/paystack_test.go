package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studiobook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "info",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestVerify_Success(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":5000,"currency":"NGN"}}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_secret", 5*time.Second, testLogger())

	v, err := client.Verify(context.Background(), "ref-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/transaction/verify/ref-123" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotAuth != "Bearer sk_test_secret" {
		t.Errorf("unexpected Authorization header: %s", gotAuth)
	}
	if v.Status != StatusSuccess || v.Amount != 5000 || v.Currency != "NGN" {
		t.Errorf("unexpected verification: %+v", v)
	}
}

func TestVerify_RejectedReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_secret", 5*time.Second, testLogger())

	v, err := client.Verify(context.Background(), "unknown-ref")
	if err != nil {
		t.Fatalf("a rejected reference is an outcome, not an error: %v", err)
	}
	if v.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, v.Status)
	}
}

func TestVerify_FailedTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"failed","amount":5000,"currency":"NGN"}}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_secret", 5*time.Second, testLogger())

	v, err := client.Verify(context.Background(), "ref-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != "failed" {
		t.Errorf("expected failed status, got %q", v.Status)
	}
}

func TestVerify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_secret", 5*time.Second, testLogger())

	if _, err := client.Verify(context.Background(), "ref-123"); err == nil {
		t.Fatal("expected an error for a 5xx response")
	}
}

func TestVerify_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewPaystackClient(server.URL, "sk_test_secret", time.Second, testLogger())

	if _, err := client.Verify(context.Background(), "ref-123"); err == nil {
		t.Fatal("expected an error when the provider is unreachable")
	}
}

func TestVerify_EscapesReference(t *testing.T) {
	var gotRawPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"data":{"status":"success","amount":1,"currency":"NGN"}}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_secret", 5*time.Second, testLogger())

	if _, err := client.Verify(context.Background(), "ref/../../admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRawPath != "/transaction/verify/ref%2F..%2F..%2Fadmin" {
		t.Errorf("reference was not escaped: %s", gotRawPath)
	}
}
