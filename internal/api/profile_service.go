package api

import (
	"context"
	"errors"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/profile"
)

type ProfileService struct {
	baatchitv1.UnimplementedProfileServiceServer

	store *profile.Store
}

func NewProfileService(s *profile.Store) *ProfileService {
	return &ProfileService{store: s}
}

func (s *ProfileService) GetProfile(context.Context, *baatchitv1.GetProfileRequest) (*baatchitv1.Profile, error) {
	return profileToProto(s.store.Get()), nil
}

// UpdateProfile reports validation failures in the response rather than as
// an RPC error so clients can show them next to each field.
func (s *ProfileService) UpdateProfile(_ context.Context, req *baatchitv1.UpdateProfileRequest) (*baatchitv1.UpdateProfileResponse, error) {
	p, err := s.store.Update(profileFromProto(req.GetProfile()))
	resp := &baatchitv1.UpdateProfileResponse{Profile: profileToProto(p)}
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.FieldErrors = verr.Fields
	case err != nil:
		return nil, toStatus(err)
	}
	return resp, nil
}
