package client

import (
	"context"
	"fmt"
	"time"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client bundles the daemon's typed service clients over one connection.
type Client struct {
	conn          *grpc.ClientConn
	App           baatchitv1.AppServiceClient
	Theme         baatchitv1.ThemeServiceClient
	Chat          baatchitv1.ChatServiceClient
	Posts         baatchitv1.PostsServiceClient
	Settings      baatchitv1.SettingsServiceClient
	Profile       baatchitv1.ProfileServiceClient
	Notifications baatchitv1.NotificationServiceClient
}

// Dial connects to a daemon socket without blocking; the first call waits
// for the connection.
func Dial(socketPath string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return conn, nil
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := Dial(socketPath)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:          conn,
		App:           baatchitv1.NewAppServiceClient(conn),
		Theme:         baatchitv1.NewThemeServiceClient(conn),
		Chat:          baatchitv1.NewChatServiceClient(conn),
		Posts:         baatchitv1.NewPostsServiceClient(conn),
		Settings:      baatchitv1.NewSettingsServiceClient(conn),
		Profile:       baatchitv1.NewProfileServiceClient(conn),
		Notifications: baatchitv1.NewNotificationServiceClient(conn),
	}, nil
}

// Ping asks the daemon for its status, waiting at most timeout.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) (*baatchitv1.GetStatusResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.App.GetStatus(ctx, &baatchitv1.GetStatusRequest{}, grpc.WaitForReady(true))
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
