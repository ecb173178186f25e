package api

import (
	"context"
	"strings"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/notify"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

type NotificationService struct {
	baatchitv1.UnimplementedNotificationServiceServer

	dispatcher *notify.Dispatcher
}

func NewNotificationService(d *notify.Dispatcher) *NotificationService {
	return &NotificationService{dispatcher: d}
}

func (s *NotificationService) ListNotifications(context.Context, *baatchitv1.ListNotificationsRequest) (*baatchitv1.ListNotificationsResponse, error) {
	resp := &baatchitv1.ListNotificationsResponse{
		HasPermission: s.dispatcher.HasPermission(),
		Badge:         int32(s.dispatcher.Badge()),
	}
	for _, n := range s.dispatcher.History() {
		resp.Notifications = append(resp.Notifications, notificationToProto(n))
	}
	for _, p := range s.dispatcher.Pending() {
		resp.Scheduled = append(resp.Scheduled, scheduledToProto(p))
	}
	for _, c := range s.dispatcher.Channels() {
		resp.Channels = append(resp.Channels, &baatchitv1.NotificationChannel{Id: c.ID, Name: c.Name, Vibration: c.Vibration})
	}
	return resp, nil
}

func (s *NotificationService) GetBadge(context.Context, *baatchitv1.GetBadgeRequest) (*baatchitv1.Badge, error) {
	return &baatchitv1.Badge{Count: int32(s.dispatcher.Badge())}, nil
}

func (s *NotificationService) SetBadge(_ context.Context, req *baatchitv1.SetBadgeRequest) (*baatchitv1.Badge, error) {
	return &baatchitv1.Badge{Count: int32(s.dispatcher.SetBadge(int(req.GetCount())))}, nil
}

func (s *NotificationService) ShowNotification(_ context.Context, req *baatchitv1.ShowNotificationRequest) (*baatchitv1.ShowNotificationResponse, error) {
	if strings.TrimSpace(req.GetTitle()) == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "title is required")
	}
	n, shown := s.dispatcher.Show(req.GetTitle(), req.GetBody(), req.GetData(), req.GetImageUrl())
	return &baatchitv1.ShowNotificationResponse{Shown: shown, Notification: notificationToProto(n)}, nil
}

func (s *NotificationService) ScheduleNotification(_ context.Context, req *baatchitv1.ScheduleNotificationRequest) (*baatchitv1.ScheduledNotification, error) {
	if strings.TrimSpace(req.GetTitle()) == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "title is required")
	}
	if req.GetAt() == nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "trigger time is required")
	}
	if err := req.GetAt().CheckValid(); err != nil {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "trigger time: %v", err)
	}
	return scheduledToProto(s.dispatcher.Schedule(req.GetTitle(), req.GetBody(), req.GetAt().AsTime(), req.GetData())), nil
}

func (s *NotificationService) CancelAllNotifications(context.Context, *baatchitv1.CancelAllNotificationsRequest) (*baatchitv1.CancelAllNotificationsResponse, error) {
	s.dispatcher.CancelAll()
	return &baatchitv1.CancelAllNotificationsResponse{}, nil
}
