package daemon

import (
	"context"
	"fmt"
	"net"
	"os"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/api"
	"github.com/matheus3301/baatchit/internal/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Services groups the RPC implementations served by the daemon.
type Services struct {
	fx.In

	App           *api.AppService
	Theme         *api.ThemeService
	Chat          *api.ChatService
	Posts         *api.PostsService
	Settings      *api.SettingsService
	Profile       *api.ProfileService
	Notifications *api.NotificationService
}

// Server manages the gRPC server lifecycle for a session daemon.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	socketPath string
	logger     *zap.Logger
}

// NewServer creates a gRPC server bound to the session's Unix domain socket.
func NewServer(p Params, logger *zap.Logger, svc Services) (*Server, error) {
	socketPath := p.SocketPath
	if socketPath == "" {
		socketPath = session.SocketPath(p.SessionName)
	}

	// Clean stale socket if it exists.
	if _, err := os.Stat(socketPath); err == nil {
		_ = os.Remove(socketPath)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}

	if err := os.Chmod(socketPath, 0600); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	srv := grpc.NewServer()
	baatchitv1.RegisterAppServiceServer(srv, svc.App)
	baatchitv1.RegisterThemeServiceServer(srv, svc.Theme)
	baatchitv1.RegisterChatServiceServer(srv, svc.Chat)
	baatchitv1.RegisterPostsServiceServer(srv, svc.Posts)
	baatchitv1.RegisterSettingsServiceServer(srv, svc.Settings)
	baatchitv1.RegisterProfileServiceServer(srv, svc.Profile)
	baatchitv1.RegisterNotificationServiceServer(srv, svc.Notifications)

	return &Server{
		grpcServer: srv,
		listener:   listener,
		socketPath: socketPath,
		logger:     logger,
	}, nil
}

// SocketPath returns the socket the server listens on.
func (s *Server) SocketPath() string { return s.socketPath }

// Start begins serving gRPC requests. Blocks until stopped.
func (s *Server) Start() error {
	s.logger.Info("gRPC server starting", zap.String("socket", s.socketPath))
	return s.grpcServer.Serve(s.listener)
}

// Stop performs a graceful shutdown and removes the socket file. Open event
// streams end when their clients see the server go away.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("gRPC server stopping")
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpcServer.Stop()
	}
	_ = os.Remove(s.socketPath)
}
