package daemon

import (
	"context"

	"github.com/matheus3301/baatchit/internal/api"
	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/config"
	"github.com/matheus3301/baatchit/internal/kv"
	"github.com/matheus3301/baatchit/internal/lock"
	"github.com/matheus3301/baatchit/internal/logging"
	"github.com/matheus3301/baatchit/internal/notify"
	"github.com/matheus3301/baatchit/internal/posts"
	"github.com/matheus3301/baatchit/internal/profile"
	"github.com/matheus3301/baatchit/internal/session"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/status"
	"github.com/matheus3301/baatchit/internal/store"
	intsync "github.com/matheus3301/baatchit/internal/sync"
	"github.com/matheus3301/baatchit/internal/theme"
	"github.com/matheus3301/baatchit/internal/transcript"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string         // optional override for testing; empty = use default
	Config      *config.Config // optional; nil = load from ~/.baatchit/config.toml
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideKV,
			provideWriter,
			provideTheme,
			provideChatList,
			provideSettings,
			provideProfile,
			provideNotifier,
			provideSimulator,
			provideFeed,
			provideSyncEngine,
			provideReconciler,
			provideAppService,
			api.NewThemeService,
			api.NewChatService,
			api.NewPostsService,
			api.NewSettingsService,
			api.NewProfileService,
			api.NewNotificationService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	if p.Config != nil {
		return p.Config, nil
	}
	return config.LoadOrDefault(session.ConfigPath())
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, cfg.Log.Level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

// provideStore depends on the lock so the database is only opened by the
// process that owns the session.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := session.DBPath(p.SessionName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	schema := db.Schema()
	logger.Info("store initialized",
		zap.String("path", dbPath),
		zap.Uint("schema_version", schema.Version),
		zap.Bool("migrated", schema.Applied))
	return db, nil
}

func provideKV(db *store.DB, logger *zap.Logger) *kv.Store {
	return kv.New(db, logger.Named("kv"))
}

func provideWriter(s *kv.Store, b *bus.Bus, logger *zap.Logger) *kv.Writer {
	return kv.NewWriter(s, b, logger.Named("kv"))
}

func provideTheme(w *kv.Writer, b *bus.Bus, logger *zap.Logger) *theme.Store {
	return theme.New(w, b, logger.Named("theme"))
}

func provideChatList(w *kv.Writer, b *bus.Bus, logger *zap.Logger) *chat.List {
	return chat.NewList(w, b, logger.Named("chat"))
}

func provideSettings(w *kv.Writer, b *bus.Bus, logger *zap.Logger) *settings.Store {
	return settings.New(w, b, logger.Named("settings"))
}

func provideProfile(b *bus.Bus, logger *zap.Logger) *profile.Store {
	return profile.New(b, logger.Named("profile"))
}

func provideNotifier(cfg *config.Config, b *bus.Bus, logger *zap.Logger) *notify.Dispatcher {
	return notify.New(cfg.Notifications.Enabled, b, logger.Named("notify"))
}

func provideSimulator(cfg *config.Config, n *notify.Dispatcher, b *bus.Bus, logger *zap.Logger) *transcript.Simulator {
	sim := cfg.Simulation
	return transcript.NewSimulator(transcript.Delays{
		SentAfter:      sim.SentAfter.Duration,
		DeliveredAfter: sim.DeliveredAfter.Duration,
		ReplyAfter:     sim.ReplyAfter.Duration,
		TypingLead:     sim.TypingLead.Duration,
	}, n, b, logger.Named("transcript"))
}

func provideFeed(cfg *config.Config, b *bus.Bus, logger *zap.Logger) (*posts.Feed, error) {
	client, err := posts.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Duration, logger.Named("posts"))
	if err != nil {
		return nil, err
	}
	return posts.NewFeed(client, b, logger.Named("posts")), nil
}

func provideSyncEngine(chats *chat.List, m *status.Machine, n *notify.Dispatcher, b *bus.Bus, logger *zap.Logger) *intsync.Engine {
	return intsync.NewEngine(chats, m, n, b, logger.Named("sync"))
}

func provideReconciler(s *kv.Store, t *theme.Store, c *chat.List, st *settings.Store, logger *zap.Logger) *intsync.Reconciler {
	return intsync.NewReconciler(s, t, c, st, logger.Named("restore"))
}

func provideAppService(p Params, m *status.Machine, t *theme.Store, c *chat.List, n *notify.Dispatcher, b *bus.Bus, logger *zap.Logger) *api.AppService {
	return api.NewAppService(p.SessionName, m, t, c, n, b, logger.Named("api"))
}

type lifecycleDeps struct {
	fx.In

	Server     *Server
	Lock       *lock.Lock
	DB         *store.DB
	Writer     *kv.Writer
	Engine     *intsync.Engine
	Reconciler *intsync.Reconciler
	Simulator  *transcript.Simulator
	Notifier   *notify.Dispatcher
	Machine    *status.Machine
	Logger     *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleDeps) {
	logger := d.Logger
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Writer.Start(context.Background())
			d.Engine.Start(context.Background())

			if err := d.Machine.Transition(status.Restoring); err != nil {
				return err
			}
			d.Reconciler.Restore(ctx)

			d.Notifier.SetupChannels()
			d.Notifier.RequestPermission()

			if err := d.Machine.Transition(status.Ready); err != nil {
				return err
			}

			go func() {
				if err := d.Server.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, step := range shutdownSteps(d) {
				if err := step.fn(ctx); err != nil {
					logger.Warn("shutdown step failed", zap.String("step", step.name), zap.Error(err))
				}
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}

type shutdownStep struct {
	name string
	fn   func(context.Context) error
}

// shutdownSteps lists teardown in order. The server goes first so no RPC
// can reach a component that has already stopped.
func shutdownSteps(d lifecycleDeps) []shutdownStep {
	return []shutdownStep{
		{"server", func(ctx context.Context) error { d.Server.Stop(ctx); return nil }},
		{"simulator", func(context.Context) error { d.Simulator.Stop(); return nil }},
		{"notifier", func(context.Context) error { d.Notifier.Stop(); return nil }},
		{"sync", func(context.Context) error { d.Engine.Stop(); return nil }},
		{"writer", func(context.Context) error { d.Writer.Stop(); return nil }},
		{"store", func(context.Context) error { return d.DB.Close() }},
		{"lock", func(context.Context) error { return d.Lock.Release() }},
	}
}
