package session

import "testing"

func TestSessionLoginState(t *testing.T) {
	s := New()

	if _, ok := s.UserID(); ok {
		t.Error("fresh session must not report a user")
	}
	if s.Dirty() {
		t.Error("fresh session must not be dirty")
	}

	s.SetUserID(5)

	id, ok := s.UserID()
	if !ok || id != 5 {
		t.Errorf("expected user id 5, got %d (ok=%v)", id, ok)
	}
	if !s.Dirty() {
		t.Error("session must be dirty after SetUserID")
	}
}

func TestSessionDestroy(t *testing.T) {
	s := Resume("tok", Record{UserID: 5})

	s.Destroy()

	if _, ok := s.UserID(); ok {
		t.Error("destroyed session must not report a user")
	}
	if s.Dirty() {
		t.Error("destroyed session must not be dirty")
	}
	if !s.Destroyed() {
		t.Error("expected Destroyed to report true")
	}
}

func TestAdoptTokenKeepsExistingToken(t *testing.T) {
	s := Resume("existing", Record{})
	s.AdoptToken("new")
	if s.Token() != "existing" {
		t.Errorf("expected existing token to be kept, got %s", s.Token())
	}

	fresh := New()
	fresh.AdoptToken("minted")
	if fresh.Token() != "minted" {
		t.Errorf("expected minted token, got %s", fresh.Token())
	}
}
