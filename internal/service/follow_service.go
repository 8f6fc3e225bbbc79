package service

import (
	"context"
	"fmt"

	"vicinity/internal/models"
	"vicinity/internal/repository"
)

// FollowService provides follow-request and follow-edge business logic.
// Every follow goes through a request: the edge is only created when the
// requested user accepts.
type FollowService struct {
	graphRepo repository.GraphRepository
	userRepo  repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(graphRepo repository.GraphRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		graphRepo: graphRepo,
		userRepo:  userRepo,
	}
}

// SendRequest records a pending follow request from userID to targetUserID.
func (s *FollowService) SendRequest(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewForbiddenError("Cannot follow yourself",
			fmt.Sprintf("/users/%d", userID))
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	following, err := s.graphRepo.IsFollowing(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if following {
		return models.NewValidationError("You are already following this user")
	}

	pending, err := s.graphRepo.HasPendingRequest(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if pending {
		return models.NewValidationError("Follow request already sent")
	}

	return s.graphRepo.CreateRequest(ctx, userID, targetUserID)
}

// AcceptRequest accepts the pending request from requesterID, creating the
// requester→acceptor follow edge.
func (s *FollowService) AcceptRequest(ctx context.Context, userID, requesterID uint) error {
	return s.graphRepo.AcceptRequest(ctx, userID, requesterID)
}

// DeclineRequest discards the pending request from requesterID without
// creating an edge.
func (s *FollowService) DeclineRequest(ctx context.Context, userID, requesterID uint) error {
	return s.graphRepo.DeclineRequest(ctx, userID, requesterID)
}

// Unfollow removes the userID→targetUserID follow edge. Removing an absent
// edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewForbiddenError("Cannot unfollow yourself",
			fmt.Sprintf("/users/%d", userID))
	}
	return s.graphRepo.Unfollow(ctx, userID, targetUserID)
}

// IsFollowing reports whether userID follows targetUserID.
func (s *FollowService) IsFollowing(ctx context.Context, userID, targetUserID uint) (bool, error) {
	return s.graphRepo.IsFollowing(ctx, userID, targetUserID)
}

// ReceivedRequests returns the pending requests addressed to the user.
func (s *FollowService) ReceivedRequests(ctx context.Context, userID uint) ([]models.FollowRequest, error) {
	return s.graphRepo.ReceivedRequests(ctx, userID)
}

// SentRequests returns the pending requests the user has sent.
func (s *FollowService) SentRequests(ctx context.Context, userID uint) ([]models.FollowRequest, error) {
	return s.graphRepo.SentRequests(ctx, userID)
}

// Followers returns the users following userID.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.graphRepo.Followers(ctx, userID)
}

// Following returns the users userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.graphRepo.Following(ctx, userID)
}
