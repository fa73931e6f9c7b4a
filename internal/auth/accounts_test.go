package auth_test

import (
	"context"
	"testing"

	"github.com/quizhive/quizhive/internal/apperr"
	"github.com/quizhive/quizhive/internal/auth"
	"github.com/quizhive/quizhive/internal/rbac"
)

func newAccounts() *auth.Accounts {
	// Minimum bcrypt cost keeps the suite fast.
	return auth.NewAccounts(auth.NewInMemoryUserStore(), auth.NewAuthService(testSecret), 4)
}

func TestRegisterValidation(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"missing username", "", "a@b.c", "secret1"},
		{"missing email", "alice", "", "secret1"},
		{"missing password", "alice", "a@b.c", ""},
		{"short password", "alice", "a@b.c", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := a.Register(ctx, tc.username, tc.email, tc.password, "")
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterRoleAssignment(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		requested string
		want      string
	}{
		{"admin", rbac.RoleAdmin},
		{"", rbac.RoleUser},
		{"user", rbac.RoleUser},
		{"Admin", rbac.RoleUser}, // literal match only
		{"superadmin", rbac.RoleUser},
	}
	for _, tc := range cases {
		a := newAccounts()
		user, token, err := a.Register(ctx, "u", "u@example.com", "secret1", tc.requested)
		if err != nil {
			t.Fatalf("Register(%q): %v", tc.requested, err)
		}
		if user.Role != tc.want {
			t.Errorf("requested %q: role = %q, want %q", tc.requested, user.Role, tc.want)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	}
}

func TestRegisterConflict(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	if _, _, err := a.Register(ctx, "alice", "alice@example.com", "secret1", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same email, different username.
	_, _, err := a.Register(ctx, "alice2", "alice@example.com", "secret1", "")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("duplicate email: expected conflict, got %v", err)
	}

	// Same username, different email.
	_, _, err = a.Register(ctx, "alice", "other@example.com", "secret1", "")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("duplicate username: expected conflict, got %v", err)
	}

	// Exact-match only: different casing is a different identity.
	if _, _, err := a.Register(ctx, "Alice", "ALICE@example.com", "secret1", ""); err != nil {
		t.Errorf("different casing should register, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	if _, _, err := a.Register(ctx, "bob", "bob@example.com", "secret1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := a.Login(ctx, "bob@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "bob" || token == "" {
		t.Errorf("user=%+v token=%q", user, token)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	if _, _, err := a.Register(ctx, "bob", "bob@example.com", "secret1", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, errUnknown := a.Login(ctx, "nobody@example.com", "secret1")
	_, _, errWrongPw := a.Login(ctx, "bob@example.com", "wrong-password")

	for _, err := range []error{errUnknown, errWrongPw} {
		if !apperr.IsKind(err, apperr.KindAuth) {
			t.Fatalf("expected auth error, got %v", err)
		}
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("messages differ: %q vs %q", errUnknown.Error(), errWrongPw.Error())
	}
	if errUnknown.Error() != "Invalid credentials" {
		t.Errorf("message = %q, want %q", errUnknown.Error(), "Invalid credentials")
	}
}

func TestCurrentUser(t *testing.T) {
	a := newAccounts()
	ctx := context.Background()

	reg, _, err := a.Register(ctx, "carol", "carol@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := a.CurrentUser(ctx, reg.ID)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user != reg {
		t.Errorf("got %+v, want %+v", user, reg)
	}

	if _, err := a.CurrentUser(ctx, "gone"); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
