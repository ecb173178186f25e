package api

import (
	"context"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/chat"
	"github.com/matheus3301/baatchit/internal/transcript"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ChatService serves the chat list and the simulated transcripts.
type ChatService struct {
	baatchitv1.UnimplementedChatServiceServer

	chats  *chat.List
	sim    *transcript.Simulator
	logger *zap.Logger
}

// NewChatService creates a new chat service.
func NewChatService(c *chat.List, sim *transcript.Simulator, logger *zap.Logger) *ChatService {
	return &ChatService{chats: c, sim: sim, logger: logger}
}

func (s *ChatService) ListChats(_ context.Context, req *baatchitv1.ListChatsRequest) (*baatchitv1.ListChatsResponse, error) {
	resp := &baatchitv1.ListChatsResponse{Favorites: s.chats.Favorites()}
	for _, c := range s.chats.Chats() {
		if req.GetFavoritesOnly() && !c.IsFavorite {
			continue
		}
		resp.Chats = append(resp.Chats, chatToProto(c))
	}
	return resp, nil
}

func (s *ChatService) ToggleFavorite(_ context.Context, req *baatchitv1.ToggleFavoriteRequest) (*baatchitv1.ToggleFavoriteResponse, error) {
	fav, err := s.chats.ToggleFavorite(req.GetChatId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &baatchitv1.ToggleFavoriteResponse{
		ChatId:     req.GetChatId(),
		IsFavorite: fav,
		Favorites:  s.chats.Favorites(),
	}, nil
}

// OpenChat makes the chat active, mounts its transcript in the foreground
// and clears its unread count. Unknown chats are inserted when a name is given.
func (s *ChatService) OpenChat(_ context.Context, req *baatchitv1.OpenChatRequest) (*baatchitv1.Transcript, error) {
	if req.GetChatId() == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "chat id is required")
	}
	summary, ok := s.chats.Get(req.GetChatId())
	if !ok {
		if req.GetName() == "" {
			return nil, toStatus(chat.ErrChatNotFound)
		}
		summary = chat.Summary{ID: req.GetChatId(), Name: req.GetName(), Avatar: req.GetAvatar(), Timestamp: "now"}
	}
	summary = s.chats.SetActiveChat(summary)
	if err := s.chats.MarkAsRead(summary.ID); err != nil {
		return nil, toStatus(err)
	}

	view := s.sim.Open(summary)
	s.logger.Debug("chat opened", zap.String("chat", summary.ID), zap.Int("messages", len(view.Messages)))
	return transcriptToProto(view), nil
}

func (s *ChatService) FocusChat(_ context.Context, req *baatchitv1.FocusChatRequest) (*baatchitv1.FocusChatResponse, error) {
	if err := s.sim.Focus(req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	if err := s.chats.MarkAsRead(req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	return &baatchitv1.FocusChatResponse{}, nil
}

func (s *ChatService) BlurChat(_ context.Context, req *baatchitv1.BlurChatRequest) (*baatchitv1.BlurChatResponse, error) {
	if err := s.sim.Blur(req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	return &baatchitv1.BlurChatResponse{}, nil
}

func (s *ChatService) CloseChat(_ context.Context, req *baatchitv1.CloseChatRequest) (*baatchitv1.CloseChatResponse, error) {
	if err := s.sim.Close(req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	if active, ok := s.chats.Active(); ok && active.ID == req.GetChatId() {
		s.chats.ClearActive()
	}
	return &baatchitv1.CloseChatResponse{}, nil
}

func (s *ChatService) SendText(_ context.Context, req *baatchitv1.SendTextRequest) (*baatchitv1.SendTextResponse, error) {
	msg, err := s.sim.Send(req.GetChatId(), req.GetText())
	if err != nil {
		return nil, toStatus(err)
	}
	return &baatchitv1.SendTextResponse{Message: messageToProto(msg)}, nil
}

func (s *ChatService) GetTranscript(_ context.Context, req *baatchitv1.GetTranscriptRequest) (*baatchitv1.Transcript, error) {
	view, ok := s.sim.View(req.GetChatId())
	if !ok {
		return nil, toStatus(transcript.ErrNotOpen)
	}
	return transcriptToProto(view), nil
}

func (s *ChatService) MarkAsRead(_ context.Context, req *baatchitv1.MarkAsReadRequest) (*baatchitv1.Chat, error) {
	if err := s.chats.MarkAsRead(req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	c, _ := s.chats.Get(req.GetChatId())
	return chatToProto(c), nil
}
