package service

import (
	"context"
	"fmt"
	"strings"

	"vicinity/internal/models"
	"vicinity/internal/repository"
)

// PostService provides post, like and comment business logic. All reads go
// through the visibility rules; the caller identifies the viewer explicitly.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	graphRepo   repository.GraphRepository
	visibility  *Visibility
}

// CreatePostInput carries the fields of a new post. Image and Video hold
// already-stored media paths; at most one is expected to be set.
type CreatePostInput struct {
	UserID  uint
	Content string
	Image   string
	Video   string
	GroupID *uint
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	graphRepo repository.GraphRepository,
	visibility *Visibility,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		graphRepo:   graphRepo,
		visibility:  visibility,
	}
}

// CreatePost creates a personal or group post. Posting into a group requires
// current membership.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" && in.Image == "" && in.Video == "" {
		return nil, models.NewValidationError("Post must have content or media")
	}

	if in.GroupID != nil {
		member, err := s.graphRepo.IsMember(ctx, in.UserID, *in.GroupID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, models.NewForbiddenError(
				"You must be a member of this group to post in it",
				fmt.Sprintf("/groups/%d", *in.GroupID),
			)
		}
	}

	post := &models.Post{
		Content: content,
		Image:   in.Image,
		Video:   in.Video,
		UserID:  in.UserID,
		GroupID: in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns the post if the viewer may see it.
func (s *PostService) GetPost(ctx context.Context, viewerID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}
	if err := s.visibility.AuthorizePost(ctx, viewerID, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ProfilePosts returns ownerID's personal posts. A viewer outside the follow
// gate gets an empty timeline, not an error; only direct post links are
// refused explicitly.
func (s *PostService) ProfilePosts(ctx context.Context, viewerID, ownerID uint, limit, offset int) ([]*models.Post, error) {
	ok, err := s.visibility.CanViewProfilePosts(ctx, viewerID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*models.Post{}, nil
	}
	return s.postRepo.PersonalByUser(ctx, ownerID, limit, offset, viewerID)
}

// GroupPosts returns the group's posts if the viewer is a member.
func (s *PostService) GroupPosts(ctx context.Context, viewerID, groupID uint, limit, offset int) ([]*models.Post, error) {
	ok, err := s.visibility.CanViewGroupPosts(ctx, viewerID, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewForbiddenError(
			"You must be a member of this group to view its posts",
			fmt.Sprintf("/groups/%d", groupID),
		)
	}
	return s.postRepo.ByGroup(ctx, groupID, limit, offset, viewerID)
}

// LikePost records the user's like and returns the resulting like count.
// Liking an already-liked post changes nothing.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.GetPost(ctx, userID, postID); err != nil {
		return 0, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.LikeCount(ctx, postID)
}

// UnlikePost removes the user's like and returns the resulting like count.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.GetPost(ctx, userID, postID); err != nil {
		return 0, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.postRepo.LikeCount(ctx, postID)
}

// AddComment attaches a comment to a post the user may see.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}

	if _, err := s.GetPost(ctx, userID, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments, oldest first, if the viewer may
// see the post.
func (s *PostService) ListComments(ctx context.Context, viewerID, postID uint) ([]*models.Comment, error) {
	if _, err := s.GetPost(ctx, viewerID, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
