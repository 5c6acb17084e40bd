package scope

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New("", time.Hour); !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey, got %v", err)
	}
}

func TestCreateAndVerify(t *testing.T) {
	m, err := New("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.CreateToken(Payload{UserID: "u-1", Email: "a@b.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("expected a three-part token, got %q", token)
	}

	p, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if p.UserID != "u-1" || p.Email != "a@b.com" || !p.IsAdmin {
		t.Errorf("unexpected payload: %+v", p)
	}
	if p.Subject != "u-1" {
		t.Errorf("expected subject u-1, got %q", p.Subject)
	}
}

func TestCreateToken_RequiresUserID(t *testing.T) {
	m, _ := New("secret", time.Hour)
	if _, err := m.CreateToken(Payload{}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Rejections(t *testing.T) {
	m, _ := New("secret", time.Hour)
	token, _ := m.CreateToken(Payload{UserID: "u-1"})

	t.Run("wrong key", func(t *testing.T) {
		other, _ := New("other", time.Hour)
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tampered", func(t *testing.T) {
		if _, err := m.Verify(token + "x"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		impl := m.(*implManager)
		issued := time.Now().Add(-2 * time.Hour)
		impl.now = func() time.Time { return issued }
		old, err := impl.CreateToken(Payload{UserID: "u-1"})
		impl.now = time.Now
		if err != nil {
			t.Fatal(err)
		}
		if _, err := m.Verify(old); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})
}
