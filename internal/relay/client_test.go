package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultRelayBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultRelayBind)
	}

	u, err = parseBaseURL("https://relay.example.com:8443/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SubmitAgainstHandler(t *testing.T) {
	mailer := &captureMailer{}
	srv := httptest.NewServer(NewHandler(staticConfig(testMail()), mailer, nil, nil).Routes())
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	res, err := c.Submit(context.Background(), Submission{
		Name:          "Jane",
		Email:         "jane@example.org",
		BusinessEmail: "jane@acme.io",
		Company:       "Acme",
		Message:       "hi",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Success {
		t.Fatalf("Submit result = %#v, want success", res)
	}
	if got := mailer.msgs[0].Subject; got != "[Website] Website contact" {
		t.Fatalf("subject = %q, want default", got)
	}
}

func TestClient_SubmitRejected(t *testing.T) {
	srv := httptest.NewServer(NewHandler(staticConfig(testMail()), &captureMailer{}, nil, nil).Routes())
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	res, err := c.Submit(context.Background(), Submission{Name: "Jane"})
	if err == nil {
		t.Fatal("Submit error = nil, want rejection")
	}
	if res.Error != "Missing required fields" {
		t.Fatalf("res.Error = %q, want Missing required fields", res.Error)
	}
}

func TestClient_FetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("path = %q, want /api/status", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != defaultUserAgent {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`{"sent":3,"rejected":1,"failed":0,"lastError":"x"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	st, err := c.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus: %v", err)
	}
	if st.Sent != 3 || st.Rejected != 1 || st.LastError != "x" {
		t.Fatalf("status = %#v", st)
	}
}

func TestClient_FetchStatusHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	if _, err := c.FetchStatus(context.Background()); err == nil {
		t.Fatal("FetchStatus error = nil, want status error")
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchStatus(context.Background()); err == nil {
		t.Fatal("expected error for nil client")
	}
}
