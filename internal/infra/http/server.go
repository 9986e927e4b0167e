package http

import (
	"io"
	"net/http"
	"time"

	"voltgate/internal/config"
	"voltgate/internal/domain"
	"voltgate/internal/infra/db"
	"voltgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	cfg   config.Config
	store *db.Store
	r     *gin.Engine
	log   *logrus.Logger

	staffAccess     *usecase.StaffAccess
	workspaceAccess *usecase.WorkspaceAccess
	driverAccess    *usecase.DriverAccess
	loginSvc        *usecase.LoginService
	internalSvc     *usecase.InternalServiceVerifier

	workspaces  WorkspaceAdminStore
	memberships MembershipStore
	chargers    ChargerStore

	rateLimiter     domain.RateLimiter
	loginRateLimit  int
	loginRateWindow time.Duration
}

func NewServer(cfg config.Config, store *db.Store, sessions usecase.SessionStore, limiter domain.RateLimiter, logger *logrus.Logger) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{cfg: cfg, store: store, r: r, log: logger}
	if s.log == nil {
		s.log = logrus.New()
	}
	r.Use(s.requestLogger())
	s.initDeps(sessions)
	s.initRateLimit(limiter)
	s.routes()
	return s
}

type ServerDeps struct {
	StaffAccess     *usecase.StaffAccess
	WorkspaceAccess *usecase.WorkspaceAccess
	DriverAccess    *usecase.DriverAccess
	Login           *usecase.LoginService
	Internal        *usecase.InternalServiceVerifier
	Workspaces      WorkspaceAdminStore
	Memberships     MembershipStore
	Chargers        ChargerStore
	RateLimiter     domain.RateLimiter
	Logger          *logrus.Logger
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		cfg:             cfg,
		r:               r,
		log:             deps.Logger,
		staffAccess:     deps.StaffAccess,
		workspaceAccess: deps.WorkspaceAccess,
		driverAccess:    deps.DriverAccess,
		loginSvc:        deps.Login,
		internalSvc:     deps.Internal,
		workspaces:      deps.Workspaces,
		memberships:     deps.Memberships,
		chargers:        deps.Chargers,
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	if s.internalSvc == nil {
		s.internalSvc = usecase.NewInternalServiceVerifier(cfg.InternalServiceSecret)
	}
	r.Use(s.requestLogger())
	s.initRateLimit(deps.RateLimiter)
	s.routes()
	return s
}

func (s *Server) initDeps(sessions usecase.SessionStore) {
	var (
		userRepo       *db.UserRepository
		workspaceRepo  *db.WorkspaceRepository
		membershipRepo *db.MembershipRepository
		endUserRepo    *db.EndUserRepository
		chargerRepo    *db.ChargerRepository
	)
	if s.store != nil {
		userRepo = db.NewUserRepository(s.store.DB)
		workspaceRepo = db.NewWorkspaceRepository(s.store.DB)
		membershipRepo = db.NewMembershipRepository(s.store.DB)
		endUserRepo = db.NewEndUserRepository(s.store.DB)
		chargerRepo = db.NewChargerRepository(s.store.DB)
	}

	timeout := s.cfg.StoreTimeout()
	s.staffAccess = &usecase.StaffAccess{
		Users:        userRepo,
		Sessions:     sessions,
		StoreTimeout: timeout,
	}
	s.workspaceAccess = &usecase.WorkspaceAccess{
		Workspaces:   workspaceRepo,
		Memberships:  membershipRepo,
		StoreTimeout: timeout,
	}
	s.driverAccess = &usecase.DriverAccess{
		EndUsers:     endUserRepo,
		Sessions:     sessions,
		StoreTimeout: timeout,
	}
	s.loginSvc = &usecase.LoginService{
		Users:            userRepo,
		EndUsers:         endUserRepo,
		Sessions:         sessions,
		StaffSessionTTL:  s.cfg.StaffSessionTTL(),
		DriverSessionTTL: s.cfg.DriverSessionTTL(),
		StoreTimeout:     timeout,
	}
	s.internalSvc = usecase.NewInternalServiceVerifier(s.cfg.InternalServiceSecret)
	s.workspaces = workspaceRepo
	s.memberships = membershipRepo
	s.chargers = chargerRepo
}

// requestLogger records method, route and status. Token values never appear:
// only templated paths and status codes are logged.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

func (s *Server) initRateLimit(limiter domain.RateLimiter) {
	s.rateLimiter = limiter
	s.loginRateLimit = s.cfg.LoginRateLimit
	s.loginRateWindow = s.cfg.LoginRateWindow()
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		dbMode := "no-db"
		if s.store != nil && s.store.DB != nil {
			dbMode = "db"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": dbMode})
	})

	v1 := s.r.Group("/v1")
	{
		v1.POST("/auth/login", s.handleStaffLogin)
		v1.POST("/auth/logout", s.handleStaffLogout)
		v1.GET("/auth/me", s.handleStaffMe)

		v1.GET("/admin/workspaces", s.handleAdminListWorkspaces)
		v1.POST("/admin/workspaces", s.handleAdminCreateWorkspace)

		v1.GET("/workspaces/:slug/chargers", s.handleListChargers)
		v1.POST("/workspaces/:slug/chargers", s.handleCreateCharger)
		v1.DELETE("/workspaces/:slug/members/:user_id", s.handleRemoveMember)

		v1.POST("/driver/login", s.handleDriverLogin)
		v1.POST("/driver/logout", s.handleDriverLogout)
		v1.GET("/driver/me", s.handleDriverMe)

		v1.POST("/internal/chargers/:charger_id/status", s.handleInternalChargerStatus)
	}

	s.r.NoRoute(s.handleNoRoute)
}

func (s *Server) Run() error {
	return s.r.Run(s.cfg.HTTPAddr)
}
