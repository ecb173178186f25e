package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// fieldErrors reports a rejected profile update.
type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "profile rejected: " + strings.Join(parts, "; ")
}

// parseAssignments splits k=v arguments. Keys are lower-cased.
func parseAssignments(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one key=value")
	}
	out := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", a)
		}
		out[strings.ToLower(k)] = v
	}
	return out, nil
}

func settingsPatch(args []string) (*baatchitv1.UpdateSettingsRequest, error) {
	kv, err := parseAssignments(args)
	if err != nil {
		return nil, err
	}
	patch := &baatchitv1.UpdateSettingsRequest{}
	for k, v := range kv {
		switch k {
		case "notifications", "notificationsenabled":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			patch.NotificationsEnabled = wrapperspb.Bool(b)
		case "sound", "soundenabled":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			patch.SoundEnabled = wrapperspb.Bool(b)
		case "language":
			patch.Language = wrapperspb.String(v)
		case "font", "fontsize":
			patch.FontSize = wrapperspb.String(v)
		case "background", "chatbackgroundcolor":
			patch.ChatBackgroundColor = wrapperspb.String(v)
		default:
			return nil, fmt.Errorf("unknown setting %q", k)
		}
	}
	return patch, nil
}

// applyProfile returns a copy of base with the k=v assignments applied.
func applyProfile(base *baatchitv1.Profile, args []string) (*baatchitv1.Profile, error) {
	kv, err := parseAssignments(args)
	if err != nil {
		return nil, err
	}
	p := proto.Clone(base).(*baatchitv1.Profile)
	for k, v := range kv {
		switch k {
		case "name":
			p.Name = v
		case "email":
			p.Email = v
		case "phone":
			p.Phone = v
		case "status":
			p.Status = v
		case "bio":
			p.Bio = v
		default:
			return nil, fmt.Errorf("unknown profile field %q", k)
		}
	}
	return p, nil
}
