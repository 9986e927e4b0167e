package usecase

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"
)

// WorkspaceAccess enforces the tenant boundary: a staff identity may touch a
// workspace only through a live membership of sufficient role, or as a
// platform super admin.
type WorkspaceAccess struct {
	Workspaces   WorkspaceRepository
	Memberships  MembershipRepository
	StoreTimeout time.Duration
}

// Grant is a successful workspace check. WorkspaceID is the internal tenant
// identifier; callers must scope every subsequent query by it and never by
// the request-supplied slug.
type Grant struct {
	WorkspaceID string
	Principal   domain.Principal
}

// Require resolves an untrusted slug and checks the identity against the
// required permission level. The three denial kinds (workspace missing, not
// a member, insufficient role) differ only in internal diagnostics; they are
// one externally visible class.
func (a *WorkspaceAccess) Require(ctx context.Context, ident domain.StaffIdentity, slug string, required domain.Role) (Grant, error) {
	sctx, cancel := storeCtx(ctx, a.StoreTimeout)
	defer cancel()

	workspace, err := a.Workspaces.GetBySlug(sctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return Grant{}, domain.Denial(domain.DenialWorkspaceNotFound)
	}
	if err != nil {
		return Grant{}, storeUnavailable(err)
	}

	// Platform admins bypass per-tenant role checks.
	if ident.SuperAdmin {
		return Grant{
			WorkspaceID: workspace.ID,
			Principal:   domain.Principal{Kind: domain.PrincipalSuperAdmin, UserID: ident.UserID},
		}, nil
	}

	membership, err := a.Memberships.Get(sctx, ident.UserID, workspace.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return Grant{}, domain.Denial(domain.DenialNotAMember)
	}
	if err != nil {
		return Grant{}, storeUnavailable(err)
	}

	if !membership.Role.HasAccess(required) {
		return Grant{}, domain.Denial(domain.DenialInsufficientPermission)
	}

	return Grant{
		WorkspaceID: workspace.ID,
		Principal: domain.Principal{
			Kind:   domain.PrincipalWorkspaceMember,
			UserID: ident.UserID,
			Role:   membership.Role,
		},
	}, nil
}
