package http

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"voltgate/internal/domain"

	"github.com/gin-gonic/gin"
)

type WorkspaceAdminStore interface {
	List(ctx context.Context) ([]domain.Workspace, error)
	Create(ctx context.Context, workspace domain.Workspace) (*domain.Workspace, error)
}

type MembershipStore interface {
	Revoke(ctx context.Context, userID, workspaceID string) error
}

type ChargerStore interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Charger, error)
	Create(ctx context.Context, charger domain.Charger) (*domain.Charger, error)
	UpdateStatus(ctx context.Context, chargerID string, status domain.ChargerStatus) error
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type staffLoginResponse struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	SuperAdmin bool   `json:"super_admin"`
}

type staffMeResponse struct {
	UserID     string `json:"user_id"`
	SuperAdmin bool   `json:"super_admin"`
}

type driverResponse struct {
	EndUserID string `json:"end_user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

type workspaceResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type createWorkspaceRequest struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type chargerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createChargerRequest struct {
	Name string `json:"name" binding:"required"`
}

type chargerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

func (s *Server) handleStaffLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	if !s.enforceLoginRateLimit(c, "staff") {
		return
	}

	token, user, err := s.loginSvc.StaffLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		s.writeAccessError(c, err)
		return
	}

	s.setSessionCookie(c, staffCookie, token, s.loginSvc.StaffSessionTTL)
	c.JSON(http.StatusOK, staffLoginResponse{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		SuperAdmin: user.SuperAdmin,
	})
}

// Logout clears the cookie before touching the session store, so the client
// loses its token even when revocation fails.
func (s *Server) handleStaffLogout(c *gin.Context) {
	token := staffToken(c)
	s.clearSessionCookie(c, staffCookie)
	if err := s.staffAccess.Logout(c.Request.Context(), token); err != nil {
		s.writeAccessError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStaffMe(c *gin.Context) {
	ident, ok := s.requireStaff(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, staffMeResponse{UserID: ident.UserID, SuperAdmin: ident.SuperAdmin})
}

func (s *Server) handleAdminListWorkspaces(c *gin.Context) {
	if _, ok := s.requireSuperAdmin(c); !ok {
		return
	}
	workspaces, err := s.workspaces.List(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("list workspaces")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	out := make([]workspaceResponse, 0, len(workspaces))
	for _, w := range workspaces {
		out = append(out, toWorkspaceResponse(w))
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": out})
}

func (s *Server) handleAdminCreateWorkspace(c *gin.Context) {
	if _, ok := s.requireSuperAdmin(c); !ok {
		return
	}
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	if !slugPattern.MatchString(req.Slug) {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_SLUG", "slug must be lowercase letters, digits and hyphens")
		return
	}

	workspace, err := s.workspaces.Create(c.Request.Context(), domain.Workspace{
		Slug: req.Slug,
		Name: req.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Includes slugs held by soft-deleted workspaces: retired slugs
			// are never reissued.
			writeErrorCode(c, http.StatusConflict, "SLUG_TAKEN", "slug already in use")
			return
		}
		s.log.WithError(err).Error("create workspace")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.JSON(http.StatusCreated, toWorkspaceResponse(*workspace))
}

func (s *Server) handleListChargers(c *gin.Context) {
	grant, ok := s.requireWorkspace(c, domain.RoleMember)
	if !ok {
		return
	}
	chargers, err := s.chargers.ListByWorkspace(c.Request.Context(), grant.WorkspaceID)
	if err != nil {
		s.log.WithError(err).Error("list chargers")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	out := make([]chargerResponse, 0, len(chargers))
	for _, charger := range chargers {
		out = append(out, toChargerResponse(charger))
	}
	c.JSON(http.StatusOK, gin.H{"chargers": out})
}

func (s *Server) handleCreateCharger(c *gin.Context) {
	grant, ok := s.requireWorkspace(c, domain.RoleAdmin)
	if !ok {
		return
	}
	var req createChargerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}

	charger, err := s.chargers.Create(c.Request.Context(), domain.Charger{
		WorkspaceID: grant.WorkspaceID,
		Name:        req.Name,
	})
	if err != nil {
		s.log.WithError(err).Error("create charger")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.JSON(http.StatusCreated, toChargerResponse(*charger))
}

func (s *Server) handleRemoveMember(c *gin.Context) {
	grant, ok := s.requireWorkspace(c, domain.RoleOwner)
	if !ok {
		return
	}
	err := s.memberships.Revoke(c.Request.Context(), c.Param("user_id"), grant.WorkspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "membership not found")
			return
		}
		s.log.WithError(err).Error("revoke membership")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDriverLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	if !s.enforceLoginRateLimit(c, "driver") {
		return
	}

	token, endUser, err := s.loginSvc.DriverLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		s.writeAccessError(c, err)
		return
	}

	s.setSessionCookie(c, driverCookie, token, s.loginSvc.DriverSessionTTL)
	c.JSON(http.StatusOK, driverResponse{
		EndUserID: endUser.ID,
		Email:     endUser.Email,
		Name:      endUser.Name,
	})
}

func (s *Server) handleDriverLogout(c *gin.Context) {
	token := driverToken(c)
	s.clearSessionCookie(c, driverCookie)
	if err := s.driverAccess.Logout(c.Request.Context(), token); err != nil {
		s.writeAccessError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDriverMe(c *gin.Context) {
	endUser, ok := s.requireDriver(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, driverResponse{
		EndUserID: endUser.ID,
		Email:     endUser.Email,
		Name:      endUser.Name,
	})
}

// handleInternalChargerStatus is the charger-controller callback. It carries
// no user session; the shared-secret check is the only gate.
func (s *Server) handleInternalChargerStatus(c *gin.Context) {
	if !s.requireInternal(c) {
		return
	}
	var req chargerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_JSON", "invalid json")
		return
	}
	status, ok := domain.ParseChargerStatus(req.Status)
	if !ok {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_STATUS", "unknown charger status")
		return
	}

	err := s.chargers.UpdateStatus(c.Request.Context(), c.Param("charger_id"), status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "charger not found")
			return
		}
		s.log.WithError(err).Error("update charger status")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleNoRoute(c *gin.Context) {
	writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func toWorkspaceResponse(w domain.Workspace) workspaceResponse {
	return workspaceResponse{
		ID:        w.ID,
		Slug:      w.Slug,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}

func toChargerResponse(charger domain.Charger) chargerResponse {
	return chargerResponse{
		ID:        charger.ID,
		Name:      charger.Name,
		Status:    string(charger.Status),
		CreatedAt: charger.CreatedAt,
		UpdatedAt: charger.UpdatedAt,
	}
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{
		Code:    code,
		Message: message,
	})
}
