package api

import (
	"context"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/theme"
)

// ThemeService exposes the theme store.
type ThemeService struct {
	baatchitv1.UnimplementedThemeServiceServer

	store *theme.Store
}

func NewThemeService(s *theme.Store) *ThemeService {
	return &ThemeService{store: s}
}

func (s *ThemeService) GetTheme(context.Context, *baatchitv1.GetThemeRequest) (*baatchitv1.ThemeState, error) {
	return themeToProto(s.store.Current()), nil
}

func (s *ThemeService) ToggleTheme(context.Context, *baatchitv1.ToggleThemeRequest) (*baatchitv1.ThemeState, error) {
	return themeToProto(s.store.Toggle()), nil
}

func (s *ThemeService) SetTheme(_ context.Context, req *baatchitv1.SetThemeRequest) (*baatchitv1.ThemeState, error) {
	st, err := s.store.Set(theme.Mode(req.GetMode()))
	if err != nil {
		return nil, toStatus(err)
	}
	return themeToProto(st), nil
}
