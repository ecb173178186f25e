package api

import (
	"context"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/settings"
)

type SettingsService struct {
	baatchitv1.UnimplementedSettingsServiceServer

	store *settings.Store
}

func NewSettingsService(s *settings.Store) *SettingsService {
	return &SettingsService{store: s}
}

func (s *SettingsService) GetSettings(context.Context, *baatchitv1.GetSettingsRequest) (*baatchitv1.Settings, error) {
	return settingsToProto(s.store.Current()), nil
}

func (s *SettingsService) UpdateSettings(_ context.Context, req *baatchitv1.UpdateSettingsRequest) (*baatchitv1.Settings, error) {
	st, err := s.store.Update(patchFromProto(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return settingsToProto(st), nil
}

func (s *SettingsService) ResetSettings(context.Context, *baatchitv1.ResetSettingsRequest) (*baatchitv1.Settings, error) {
	return settingsToProto(s.store.Reset()), nil
}
