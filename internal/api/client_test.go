package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("expected /api/login, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body["email"] != "mo@x.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}

		json.NewEncoder(w).Encode(map[string]string{"name": "Mo", "email": "mo@x.com"})
	}))
	defer server.Close()

	client := New(server.URL)
	acct, err := client.Login(context.Background(), "mo@x.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if acct.Name != "Mo" || acct.Email != "mo@x.com" {
		t.Errorf("unexpected account: %+v", acct)
	}
}

func TestClient_Login_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "mo@x.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if svcErr.Message != "Invalid credentials" {
		t.Errorf("expected service message, got %q", svcErr.Message)
	}
	if svcErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", svcErr.StatusCode)
	}
}

func TestClient_Register_DuplicateEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register" {
			t.Errorf("expected /api/register, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Register(context.Background(), "Mo", "mo@x.com", "secret")

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Message != "Email already registered" {
		t.Errorf("unexpected message: %q", svcErr.Message)
	}
}

func TestClient_ForgotPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Password reset. Check your email."})
	}))
	defer server.Close()

	client := New(server.URL)
	notice, err := client.ForgotPassword(context.Background(), "mo@x.com")
	if err != nil {
		t.Fatalf("ForgotPassword failed: %v", err)
	}
	if notice != "Password reset. Check your email." {
		t.Errorf("unexpected notice: %q", notice)
	}
}

func TestClient_History_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "mo@x.com" {
			t.Errorf("expected email in request, got %v", body)
		}

		w.Write([]byte(`[
			{"date":"2024-01-02 14:30","type":"file","score":88,"verdict":"Safe"},
			{"date":"2024-01-01 09:12","type":"url","snippet":"http://evil.example","score":12,"verdict":"High Risk"}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	records, err := client.History(context.Background(), "mo@x.com")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Verdict != "Safe" || records[1].Verdict != "High Risk" {
		t.Errorf("service order not preserved: %+v", records)
	}
	if records[0].Snippet != "" {
		t.Errorf("absent snippet should decode empty, got %q", records[0].Snippet)
	}
	if records[1].Score != 12 {
		t.Errorf("expected score 12, got %d", records[1].Score)
	}
}

func TestClient_Analyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze" {
			t.Errorf("expected /api/analyze, got %s", r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body["type"] != "url" || body["data"] != "http://evil.example" || body["email"] != "mo@x.com" {
			t.Errorf("unexpected payload: %v", body)
		}

		w.Write([]byte(`{
			"verdict":"High Risk","score":42,
			"breakdown":{"language":100,"source":0,"risk":0},
			"flags":[],"source_type":"Insecure (HTTP)",
			"explanation":"This site uses an insecure connection (HTTP). Data is not encrypted."
		}`))
	}))
	defer server.Close()

	client := New(server.URL)
	res, err := client.Analyze(context.Background(), "mo@x.com", "url", "http://evil.example")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.Verdict != "High Risk" || res.Score != 42 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Breakdown.Source != 0 || res.Breakdown.Language != 100 {
		t.Errorf("unexpected breakdown: %+v", res.Breakdown)
	}
	if res.SourceType != "Insecure (HTTP)" {
		t.Errorf("unexpected source type: %q", res.SourceType)
	}
}

func TestClient_Analyze_FlagsDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"verdict":"Suspicious","score":50,
			"breakdown":{"language":100,"source":50,"risk":50},
			"flags":["easy money","urgent"],"source_type":"Unknown",
			"explanation":"Detected 2 high-risk patterns."
		}`))
	}))
	defer server.Close()

	client := New(server.URL)
	res, err := client.Analyze(context.Background(), "mo@x.com", "job", "easy money, urgent start")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(res.Flags) != 2 || res.Flags[0] != "easy money" {
		t.Errorf("unexpected flags: %v", res.Flags)
	}
}

func TestClient_History_TransportError(t *testing.T) {
	client := New("http://127.0.0.1:1") // nothing listens here
	_, err := client.History(context.Background(), "mo@x.com")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		t.Error("transport failures must not masquerade as service errors")
	}
}

func TestClient_ErrorWithoutJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Login(context.Background(), "mo@x.com", "pw")

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", svcErr.StatusCode)
	}
}
