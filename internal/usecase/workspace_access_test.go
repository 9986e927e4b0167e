package usecase

import (
	"context"
	"errors"
	"testing"

	"voltgate/internal/domain"
)

func acmeFixtures() (*memWorkspaces, *memMemberships) {
	workspaces := &memWorkspaces{bySlug: map[string]domain.Workspace{
		"acme": {ID: "W1", Slug: "acme", Name: "Acme Charging"},
	}}
	memberships := &memMemberships{data: map[string]domain.Membership{
		"u1:W1": {ID: "m1", UserID: "u1", WorkspaceID: "W1", Role: domain.RoleMember},
	}}
	return workspaces, memberships
}

func TestWorkspaceAccess_InsufficientThenPromoted(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}
	ident := domain.StaffIdentity{UserID: "u1"}

	_, err := access.Require(context.Background(), ident, "acme", domain.RoleAdmin)
	denial, ok := domain.IsDenial(err)
	if !ok || denial.Kind != domain.DenialInsufficientPermission {
		t.Fatalf("expected INSUFFICIENT_PERMISSION, got %v", err)
	}

	memberships.data["u1:W1"] = domain.Membership{ID: "m1", UserID: "u1", WorkspaceID: "W1", Role: domain.RoleAdmin}
	grant, err := access.Require(context.Background(), ident, "acme", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("expected grant after promotion, got %v", err)
	}
	if grant.WorkspaceID != "W1" {
		t.Fatalf("expected internal id W1, got %q", grant.WorkspaceID)
	}
	if grant.Principal.Kind != domain.PrincipalWorkspaceMember || grant.Principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal %+v", grant.Principal)
	}
}

func TestWorkspaceAccess_UnknownSlugIsTenantBoundaryDenial(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}

	_, err := access.Require(context.Background(), domain.StaffIdentity{UserID: "u1"}, "ghost", domain.RoleMember)
	denial, ok := domain.IsDenial(err)
	if !ok || denial.Kind != domain.DenialWorkspaceNotFound {
		t.Fatalf("expected WORKSPACE_NOT_FOUND, got %v", err)
	}
	// Externally the kind must not matter: same class as a membership denial.
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("slug miss should be ErrForbidden class, got %v", err)
	}
}

func TestWorkspaceAccess_NonMemberDenied(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}

	_, err := access.Require(context.Background(), domain.StaffIdentity{UserID: "stranger"}, "acme", domain.RoleMember)
	denial, ok := domain.IsDenial(err)
	if !ok || denial.Kind != domain.DenialNotAMember {
		t.Fatalf("expected NOT_A_MEMBER, got %v", err)
	}
}

func TestWorkspaceAccess_SuperAdminBypassesEveryLevel(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}
	ident := domain.StaffIdentity{UserID: "root", SuperAdmin: true}

	for _, required := range []domain.Role{domain.RoleMember, domain.RoleAdmin, domain.RoleOwner} {
		grant, err := access.Require(context.Background(), ident, "acme", required)
		if err != nil {
			t.Fatalf("super admin denied at level %s: %v", required, err)
		}
		if grant.WorkspaceID != "W1" || grant.Principal.Kind != domain.PrincipalSuperAdmin {
			t.Fatalf("unexpected grant %+v", grant)
		}
	}
}

func TestWorkspaceAccess_SuperAdminStillNeedsRealWorkspace(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}

	_, err := access.Require(context.Background(), domain.StaffIdentity{UserID: "root", SuperAdmin: true}, "ghost", domain.RoleMember)
	denial, ok := domain.IsDenial(err)
	if !ok || denial.Kind != domain.DenialWorkspaceNotFound {
		t.Fatalf("expected WORKSPACE_NOT_FOUND for super admin on missing slug, got %v", err)
	}
}

func TestWorkspaceAccess_RevokedMembershipFailsImmediately(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}
	ident := domain.StaffIdentity{UserID: "u1"}

	if _, err := access.Require(context.Background(), ident, "acme", domain.RoleMember); err != nil {
		t.Fatalf("expected grant before revocation, got %v", err)
	}

	// Soft delete: the repository stops returning the row.
	delete(memberships.data, "u1:W1")

	_, err := access.Require(context.Background(), ident, "acme", domain.RoleMember)
	denial, ok := domain.IsDenial(err)
	if !ok || denial.Kind != domain.DenialNotAMember {
		t.Fatalf("expected NOT_A_MEMBER after revocation, got %v", err)
	}
}

func TestWorkspaceAccess_StoreFailureIsNotADenial(t *testing.T) {
	workspaces, memberships := acmeFixtures()
	memberships.fail = true
	access := &WorkspaceAccess{Workspaces: workspaces, Memberships: memberships}

	_, err := access.Require(context.Background(), domain.StaffIdentity{UserID: "u1"}, "acme", domain.RoleMember)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, ok := domain.IsDenial(err); ok {
		t.Fatalf("store failure must not look like a membership denial")
	}
}
