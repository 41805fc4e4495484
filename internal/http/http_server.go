package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeclass-2026.net/internal/config"
	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	auth2 "gitlab.com/codeclass-2026.net/internal/core/services/auth"
	grading2 "gitlab.com/codeclass-2026.net/internal/core/services/grading"
	hint2 "gitlab.com/codeclass-2026.net/internal/core/services/hint"
	room2 "gitlab.com/codeclass-2026.net/internal/core/services/room"
	"gitlab.com/codeclass-2026.net/internal/handlers"
	"gitlab.com/codeclass-2026.net/internal/handlers/auth"
	"gitlab.com/codeclass-2026.net/internal/handlers/grading"
	"gitlab.com/codeclass-2026.net/internal/handlers/hints"
	"gitlab.com/codeclass-2026.net/internal/handlers/rooms"
	"gitlab.com/codeclass-2026.net/internal/ws"
)

type ServiceProvider struct {
	roomService    room2.IRoomService
	gradingService grading2.IGradingService
	hintService    hint2.IHintService
	jwtService     primary.JWTService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService
}

func NewServiceProvider(
	roomService room2.IRoomService,
	gradingService grading2.IGradingService,
	hintService hint2.IHintService,
	jwtService primary.JWTService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		roomService:    roomService,
		gradingService: gradingService,
		hintService:    hintService,
		jwtService:     jwtService,
		ggAuth:         ggAuth,
		localAuth:      localAuth,
	}
}

type Server struct {
	router          *mux.Router
	httpServer      *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	ggAuthConfig    *config.GGAuthConfig
	hub             *ws.Hub
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, ggAuthConfig *config.GGAuthConfig, hub *ws.Hub, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		ggAuthConfig:    ggAuthConfig,
		hub:             hub,
		logger:          logger,
	}
}

// Init builds the route table. Auth, the OAuth callback, health and the
// websocket endpoint are public; everything under /api (except /api/auth)
// requires a bearer token.
func (s *Server) Init() error {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.ResponseWithJson(w, http.StatusOK, map[string]string{"status": "ok", "service": s.ServiceName})
	}).Methods("GET")

	auth.NewHandler(s.ggAuthConfig, s.logger).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})

	r.Handle("/ws", s.hub)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(handlers.NewMiddlewareProvider(s.ServiceProvider.jwtService).JWTMiddleware)
	protected.HandleFunc("/me", func(w http.ResponseWriter, req *http.Request) {
		identity, ok := handlers.IdentityFromContext(req.Context())
		if !ok {
			handlers.ResponseError(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		handlers.ResponseWithJson(w, http.StatusOK, identity)
	}).Methods("GET")
	rooms.NewHandler(s.ServiceProvider.roomService, s.ServiceProvider.hintService, s.logger).RegisterRoutes(protected)
	grading.NewHandler(s.ServiceProvider.gradingService, s.logger).RegisterRoutes(protected)
	hints.NewHandler(s.ServiceProvider.hintService, s.logger).RegisterRoutes(protected)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.httpServer = srv

	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("Shutdown error", "error", err)
		}
	}
}
