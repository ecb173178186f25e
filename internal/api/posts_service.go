package api

import (
	"context"

	baatchitv1 "github.com/matheus3301/baatchit/gen/baatchit/v1"
	"github.com/matheus3301/baatchit/internal/posts"
)

// PostsService serves the cached posts feed. It never fails; a broken
// remote shows up as Source "fallback".
type PostsService struct {
	baatchitv1.UnimplementedPostsServiceServer

	feed *posts.Feed
}

func NewPostsService(f *posts.Feed) *PostsService {
	return &PostsService{feed: f}
}

func (s *PostsService) ListPosts(ctx context.Context, req *baatchitv1.ListPostsRequest) (*baatchitv1.ListPostsResponse, error) {
	res := s.feed.Get(ctx, req.GetRefresh())
	out := &baatchitv1.ListPostsResponse{
		Posts:  make([]*baatchitv1.Post, 0, len(res.Posts)),
		Source: string(res.Source),
	}
	for _, p := range res.Posts {
		out.Posts = append(out.Posts, postToProto(p))
	}
	return out, nil
}
