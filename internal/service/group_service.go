package service

import (
	"context"
	"strings"

	"vicinity/internal/models"
	"vicinity/internal/repository"
)

// GroupService provides group and membership business logic.
type GroupService struct {
	groupRepo repository.GroupRepository
	graphRepo repository.GraphRepository
}

// CreateGroupInput carries the fields of a group creation.
type CreateGroupInput struct {
	CreatorID   uint
	Name        string
	Description string
}

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, graphRepo repository.GraphRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		graphRepo: graphRepo,
	}
}

// CreateGroup creates a group with the caller enrolled as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Group name is required")
	}
	const maxNameLen = 100
	if len(name) > maxNameLen {
		return nil, models.NewValidationError("Group name too long (max 100 characters)")
	}

	// Friendly pre-check; the unique index on name remains the backstop for
	// concurrent creations.
	if existing, err := s.groupRepo.GetByName(ctx, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("A group with this name already exists")
	}

	group := &models.Group{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatorID:   in.CreatorID,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroup returns the group with the given ID.
func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// Join enrolls the user in the group. Joining a group the user already
// belongs to is a no-op.
func (s *GroupService) Join(ctx context.Context, userID, groupID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.graphRepo.JoinGroup(ctx, userID, groupID)
}

// Leave removes the user from the group. The creator may leave like anyone
// else and rejoin later.
func (s *GroupService) Leave(ctx context.Context, userID, groupID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.graphRepo.LeaveGroup(ctx, userID, groupID)
}

// IsMember reports whether the user currently belongs to the group.
func (s *GroupService) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	return s.graphRepo.IsMember(ctx, userID, groupID)
}

// Members returns the group's members in join order.
func (s *GroupService) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.graphRepo.Members(ctx, groupID)
}

// SearchGroups returns groups whose name contains the query.
func (s *GroupService) SearchGroups(ctx context.Context, query string, limit, offset int) ([]models.Group, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Group{}, nil
	}
	return s.groupRepo.Search(ctx, query, limit, offset)
}

// GroupsForUser returns the groups the user belongs to.
func (s *GroupService) GroupsForUser(ctx context.Context, userID uint) ([]models.Group, error) {
	return s.groupRepo.ListForUser(ctx, userID)
}
