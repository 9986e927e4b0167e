package usecase

import (
	"context"
	"errors"
	"testing"

	"voltgate/internal/domain"
)

func TestLoginService_StaffLogin(t *testing.T) {
	sessions := newMemSessions()
	users := &memUsers{users: map[string]domain.User{
		"u1": {ID: "u1", Email: "ops@acme.test", PasswordHash: hashPassword(t, "hunter2")},
	}}
	login := &LoginService{Users: users, Sessions: sessions}

	token, user, err := login.StaffLogin(context.Background(), "ops@acme.test", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.ID != "u1" {
		t.Fatalf("unexpected login result token=%q user=%+v", token, user)
	}

	resolver := &StaffAccess{Users: users, Sessions: sessions}
	ident, err := resolver.Resolve(context.Background(), token)
	if err != nil || ident.UserID != "u1" {
		t.Fatalf("minted token did not resolve: %+v %v", ident, err)
	}
}

func TestLoginService_StaffLoginFailuresAreOneClass(t *testing.T) {
	sessions := newMemSessions()
	users := &memUsers{users: map[string]domain.User{
		"u1": {ID: "u1", Email: "ops@acme.test", PasswordHash: hashPassword(t, "hunter2")},
	}}
	login := &LoginService{Users: users, Sessions: sessions}

	for name, attempt := range map[string][2]string{
		"unknown email":  {"nobody@acme.test", "hunter2"},
		"wrong password": {"ops@acme.test", "wrong"},
	} {
		_, _, err := login.StaffLogin(context.Background(), attempt[0], attempt[1])
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestLoginService_DriverLoginMintsDriverScope(t *testing.T) {
	sessions := newMemSessions()
	endUsers := &memEndUsers{endUsers: map[string]domain.EndUser{
		"e1": {ID: "e1", Email: "driver@example.test", PasswordHash: hashPassword(t, "roadtrip")},
	}}
	login := &LoginService{EndUsers: endUsers, Sessions: sessions}

	token, endUser, err := login.DriverLogin(context.Background(), "driver@example.test", "roadtrip")
	if err != nil || endUser.ID != "e1" {
		t.Fatalf("driver login: %+v %v", endUser, err)
	}

	driverAccess := &DriverAccess{EndUsers: endUsers, Sessions: sessions}
	if _, err := driverAccess.Resolve(context.Background(), token); err != nil {
		t.Fatalf("minted driver token did not resolve: %v", err)
	}

	// The same token must be invisible to the staff scheme.
	staffAccess := &StaffAccess{Users: &memUsers{}, Sessions: sessions}
	if _, err := staffAccess.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("driver token resolved as staff: %v", err)
	}
}
