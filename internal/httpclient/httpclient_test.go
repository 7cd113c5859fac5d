package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestNew_DefaultOptions(t *testing.T) {
	client := New(Options{})

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.Timeout != 0 {
		t.Errorf("expected zero timeout, got %v", client.Timeout)
	}
	if client.Transport != nil {
		t.Error("expected nil transport for default options")
	}
}

func TestNew_WithTimeout(t *testing.T) {
	timeout := 30 * time.Second
	client := New(Options{
		Timeout: timeout,
	})

	if client.Timeout != timeout {
		t.Errorf("expected timeout %v, got %v", timeout, client.Timeout)
	}
}

func TestNew_WithSkipSSLVerify(t *testing.T) {
	client := New(Options{
		SkipSSLVerify: true,
	})

	if client.Transport == nil {
		t.Fatal("expected non-nil transport when SkipSSLVerify is true")
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}

	if transport.TLSClientConfig == nil {
		t.Fatal("expected non-nil TLSClientConfig")
	}

	if !transport.TLSClientConfig.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify to be true")
	}
}

func TestNew_SkipSSLVerifyFalse(t *testing.T) {
	client := New(Options{
		SkipSSLVerify: false,
	})

	// When SkipSSLVerify is false the default transport (nil) is used,
	// which keeps the system's default TLS configuration
	if client.Transport != nil {
		t.Error("expected nil transport when SkipSSLVerify is false")
	}
}
