package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
)

// CookieManager moves session tokens in and out of a signed cookie. The
// client only ever holds the securecookie-encoded token; the session state
// itself lives in the store.
type CookieManager struct {
	codec  *securecookie.SecureCookie
	name   string
	secure bool
}

// NewCookieManager builds a manager for the named cookie. blockKey may be
// nil, in which case the token is signed but not encrypted.
func NewCookieManager(name string, hashKey, blockKey []byte, secure bool) *CookieManager {
	return &CookieManager{
		codec:  securecookie.New(hashKey, blockKey),
		name:   name,
		secure: secure,
	}
}

// ReadToken decodes the session token from the request cookie. A missing or
// tampered cookie is an error; callers treat that as "no session".
func (m *CookieManager) ReadToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.name)
	if err != nil {
		return "", err
	}

	var token string
	if err := m.codec.Decode(m.name, cookie.Value, &token); err != nil {
		return "", fmt.Errorf("failed to decode session cookie: %w", err)
	}
	return token, nil
}

// WriteToken sets the session cookie on the response.
func (m *CookieManager) WriteToken(w http.ResponseWriter, token string) error {
	encoded, err := m.codec.Encode(m.name, token)
	if err != nil {
		return fmt.Errorf("failed to encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(Lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
	return nil
}

// Clear expires the session cookie.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}
