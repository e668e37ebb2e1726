package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var testHashKey = []byte("0123456789abcdef0123456789abcdef")

func TestCookieRoundTrip(t *testing.T) {
	manager := NewCookieManager("qid", testHashKey, nil, false)

	w := httptest.NewRecorder()
	if err := manager.WriteToken(w, "token-abc"); err != nil {
		t.Fatalf("failed to write cookie: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int(Lifetime.Seconds()) {
		t.Errorf("expected max age %d, got %d", int(Lifetime.Seconds()), cookie.MaxAge)
	}
	if cookie.Value == "token-abc" {
		t.Error("cookie value must not be the raw token")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	token, err := manager.ReadToken(req)
	if err != nil {
		t.Fatalf("failed to read cookie: %v", err)
	}
	if token != "token-abc" {
		t.Errorf("expected token-abc, got %s", token)
	}
}

func TestReadTokenRejectsTampering(t *testing.T) {
	manager := NewCookieManager("qid", testHashKey, nil, false)

	w := httptest.NewRecorder()
	if err := manager.WriteToken(w, "token-abc"); err != nil {
		t.Fatalf("failed to write cookie: %v", err)
	}
	cookie := w.Result().Cookies()[0]
	cookie.Value = cookie.Value[:len(cookie.Value)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if _, err := manager.ReadToken(req); err == nil {
		t.Error("expected error for tampered cookie")
	}
}

func TestReadTokenMissingCookie(t *testing.T) {
	manager := NewCookieManager("qid", testHashKey, nil, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := manager.ReadToken(req); err == nil {
		t.Error("expected error when cookie is absent")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	manager := NewCookieManager("qid", testHashKey, nil, false)

	w := httptest.NewRecorder()
	manager.Clear(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative max age, got %d", cookies[0].MaxAge)
	}
}
