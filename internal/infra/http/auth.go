package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"voltgate/internal/domain"
	"voltgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	staffCookie  = "vg_session"
	driverCookie = "vg_driver_session"
)

// staffToken prefers the session cookie and falls back to a bearer token so
// API clients without a cookie jar can authenticate the same way.
func staffToken(c *gin.Context) string {
	if token, err := c.Cookie(staffCookie); err == nil && token != "" {
		return token
	}
	return extractBearerToken(c.GetHeader("Authorization"))
}

// driverToken is cookie-only. Driver tokens never travel in headers, and a
// staff bearer token presented on a driver route must not be picked up.
func driverToken(c *gin.Context) string {
	token, err := c.Cookie(driverCookie)
	if err != nil {
		return ""
	}
	return token
}

func extractBearerToken(value string) string {
	if value == "" {
		return ""
	}
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (s *Server) requireStaff(c *gin.Context) (domain.StaffIdentity, bool) {
	ident, err := s.staffAccess.Resolve(c.Request.Context(), staffToken(c))
	if err != nil {
		s.writeAccessError(c, err)
		return domain.StaffIdentity{}, false
	}
	return ident, true
}

func (s *Server) requireSuperAdmin(c *gin.Context) (domain.Principal, bool) {
	ident, ok := s.requireStaff(c)
	if !ok {
		return domain.Principal{}, false
	}
	principal, err := s.staffAccess.RequireSuperAdmin(c.Request.Context(), ident)
	if err != nil {
		s.writeAccessError(c, err)
		return domain.Principal{}, false
	}
	return principal, true
}

func (s *Server) requireWorkspace(c *gin.Context, required domain.Role) (usecase.Grant, bool) {
	ident, ok := s.requireStaff(c)
	if !ok {
		return usecase.Grant{}, false
	}
	grant, err := s.workspaceAccess.Require(c.Request.Context(), ident, c.Param("slug"), required)
	if err != nil {
		s.writeAccessError(c, err)
		return usecase.Grant{}, false
	}
	return grant, true
}

func (s *Server) requireDriver(c *gin.Context) (*domain.EndUser, bool) {
	endUser, err := s.driverAccess.Resolve(c.Request.Context(), driverToken(c))
	if err != nil {
		s.writeAccessError(c, err)
		return nil, false
	}
	return endUser, true
}

// requireInternal admits machine callers carrying the shared secret in the
// X-Internal-Service header (or as a bearer token).
func (s *Server) requireInternal(c *gin.Context) bool {
	credential := c.GetHeader("X-Internal-Service")
	if credential == "" {
		credential = extractBearerToken(c.GetHeader("Authorization"))
	}
	if err := s.internalSvc.Verify(credential); err != nil {
		writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid credential")
		return false
	}
	return true
}

// writeAccessError maps verifier errors to responses. Every tenant-boundary
// denial kind produces the same body; the kind appears only in the log line.
func (s *Server) writeAccessError(c *gin.Context, err error) {
	if denial, ok := domain.IsDenial(err); ok {
		if denial.Kind == domain.DenialSuperAdminRequired {
			writeErrorCode(c, http.StatusForbidden, "SUPER_ADMIN_REQUIRED", "super admin required")
			return
		}
		s.log.WithFields(logrus.Fields{
			"denial": denial.Kind,
			"path":   c.FullPath(),
		}).Info("access denied")
		writeErrorCode(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		return
	}
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		writeErrorCode(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	case errors.Is(err, domain.ErrInvalidCredential):
		writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid credential")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeErrorCode(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "temporarily unavailable")
	default:
		s.log.WithError(err).Error("access check failed")
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func (s *Server) setSessionCookie(c *gin.Context, name, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(ttl.Seconds()), "/", "", s.cfg.CookieSecure, true)
}

func (s *Server) clearSessionCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", s.cfg.CookieSecure, true)
}
