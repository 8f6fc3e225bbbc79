package repository

import (
	"context"
	"errors"

	"vicinity/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GraphRepository defines persistence operations on the social graph: follow
// edges, pending follow requests and group memberships. Pair uniqueness is
// enforced by unique indexes, so concurrent check-then-act sequences cannot
// create duplicate edges.
type GraphRepository interface {
	// Follow creates the follower→followed edge. Idempotent: creating an
	// existing edge is a no-op. Callers gate this behind the request flow;
	// only AcceptRequest and seed tooling invoke it directly.
	Follow(ctx context.Context, followerID, followedID uint) error
	Unfollow(ctx context.Context, followerID, followedID uint) error
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	Followers(ctx context.Context, userID uint) ([]models.User, error)
	Following(ctx context.Context, userID uint) ([]models.User, error)

	CreateRequest(ctx context.Context, requesterID, requestedID uint) error
	HasPendingRequest(ctx context.Context, requesterID, requestedID uint) (bool, error)
	ReceivedRequests(ctx context.Context, requestedID uint) ([]models.FollowRequest, error)
	SentRequests(ctx context.Context, requesterID uint) ([]models.FollowRequest, error)
	// AcceptRequest atomically removes the requester→acceptor request and
	// creates the requester→acceptor follow edge.
	AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error
	DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error

	JoinGroup(ctx context.Context, userID, groupID uint) error
	LeaveGroup(ctx context.Context, userID, groupID uint) error
	IsMember(ctx context.Context, userID, groupID uint) (bool, error)
	Members(ctx context.Context, groupID uint) ([]models.User, error)
}

type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository returns a new GraphRepository implementation.
func NewGraphRepository(db *gorm.DB) GraphRepository {
	return &graphRepository{db: db}
}

func (r *graphRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	edge := models.FollowEdge{FollowerID: followerID, FollowedID: followedID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
	if err != nil && !isUniqueConstraintError(err) {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.FollowEdge{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowEdge{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *graphRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follow_edges fe ON users.id = fe.follower_id").
		Where("fe.followed_id = ?", userID).
		Order("fe.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *graphRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follow_edges fe ON users.id = fe.followed_id").
		Where("fe.follower_id = ?", userID).
		Order("fe.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *graphRepository) CreateRequest(ctx context.Context, requesterID, requestedID uint) error {
	req := models.FollowRequest{RequesterID: requesterID, RequestedID: requestedID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&req).Error
	if err != nil && !isUniqueConstraintError(err) {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) HasPendingRequest(ctx context.Context, requesterID, requestedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowRequest{}).
		Where("requester_id = ? AND requested_id = ?", requesterID, requestedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *graphRepository) ReceivedRequests(ctx context.Context, requestedID uint) ([]models.FollowRequest, error) {
	var requests []models.FollowRequest
	if err := r.db.WithContext(ctx).
		Where("requested_id = ?", requestedID).
		Preload("Requester").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *graphRepository) SentRequests(ctx context.Context, requesterID uint) ([]models.FollowRequest, error) {
	var requests []models.FollowRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Preload("Requested").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *graphRepository) AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("requester_id = ? AND requested_id = ?", requesterID, acceptorID).
			Delete(&models.FollowRequest{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		edge := models.FollowEdge{FollowerID: requesterID, FollowedID: acceptorID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Follow request", requesterID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error {
	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND requested_id = ?", requesterID, acceptorID).
		Delete(&models.FollowRequest{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Follow request", requesterID)
	}
	return nil
}

func (r *graphRepository) JoinGroup(ctx context.Context, userID, groupID uint) error {
	membership := models.GroupMembership{GroupID: groupID, UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership).Error
	if err != nil && !isUniqueConstraintError(err) {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	if err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMembership{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.GroupMembership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *graphRepository) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN group_memberships gm ON users.id = gm.user_id").
		Where("gm.group_id = ?", groupID).
		Order("gm.created_at").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
