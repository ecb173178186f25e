package sync

import (
	"context"

	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/kv"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/theme"
	"go.uber.org/zap"
)

// Reconciler restores persisted state into the in-memory containers at
// startup.
type Reconciler struct {
	kv       *kv.Store
	theme    *theme.Store
	chats    *chat.List
	settings *settings.Store
	logger   *zap.Logger
}

// NewReconciler creates a new reconciler.
func NewReconciler(s *kv.Store, t *theme.Store, c *chat.List, st *settings.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{kv: s, theme: t, chats: c, settings: st, logger: logger}
}

// Restore loads the theme, favorites and settings. Unreadable values fall
// back to defaults; absent favorites keep the seed set.
func (r *Reconciler) Restore(ctx context.Context) {
	r.theme.LoadOnStartup(ctx, r.kv)

	if ids, ok := r.kv.Favorites(ctx); ok {
		r.chats.LoadFavorites(ids)
	}

	st := r.settings.Load(ctx, r.kv)
	r.logger.Info("state restored",
		zap.String("theme", string(r.theme.Current().Mode)),
		zap.Strings("favorites", r.chats.Favorites()),
		zap.String("font_size", string(st.FontSize)),
	)
}
