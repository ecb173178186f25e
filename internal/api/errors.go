package api

import (
	"errors"

	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/settings"
	"github.com/matheus3301/baatchit/internal/theme"
	"github.com/matheus3301/baatchit/internal/transcript"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	code := codes.Internal
	switch {
	case errors.Is(err, chat.ErrChatNotFound), errors.Is(err, chat.ErrMessageNotFound):
		code = codes.NotFound
	case errors.Is(err, transcript.ErrEmptyMessage),
		errors.Is(err, theme.ErrInvalidMode),
		errors.Is(err, settings.ErrInvalidFontSize):
		code = codes.InvalidArgument
	case errors.Is(err, transcript.ErrNotOpen):
		code = codes.FailedPrecondition
	}
	return grpcstatus.Error(code, err.Error())
}
