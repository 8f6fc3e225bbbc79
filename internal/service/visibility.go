package service

import (
	"context"
	"fmt"

	"vicinity/internal/models"
	"vicinity/internal/repository"
)

// Visibility answers "may this viewer see this content" questions. Every
// decision takes the viewer explicitly so the rules stay testable outside a
// request context.
//
// Profile posts are visible to the owner and to accepted followers. Group
// posts are visible to current group members only; the author loses access
// when they leave the group.
type Visibility struct {
	graphRepo repository.GraphRepository
}

// NewVisibility returns a new Visibility.
func NewVisibility(graphRepo repository.GraphRepository) *Visibility {
	return &Visibility{graphRepo: graphRepo}
}

// CanViewProfilePosts reports whether viewerID may see ownerID's personal
// posts.
func (v *Visibility) CanViewProfilePosts(ctx context.Context, viewerID, ownerID uint) (bool, error) {
	if viewerID == ownerID {
		return true, nil
	}
	return v.graphRepo.IsFollowing(ctx, viewerID, ownerID)
}

// CanViewGroupPosts reports whether viewerID may see posts in groupID.
func (v *Visibility) CanViewGroupPosts(ctx context.Context, viewerID, groupID uint) (bool, error) {
	return v.graphRepo.IsMember(ctx, viewerID, groupID)
}

// AuthorizePost returns nil when viewerID may see the post, or a forbidden
// error carrying the view the client should fall back to.
func (v *Visibility) AuthorizePost(ctx context.Context, viewerID uint, post *models.Post) error {
	if post.GroupID != nil {
		ok, err := v.CanViewGroupPosts(ctx, viewerID, *post.GroupID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewForbiddenError(
				"You must be a member of this group to view its posts",
				fmt.Sprintf("/groups/%d", *post.GroupID),
			)
		}
		return nil
	}

	ok, err := v.CanViewProfilePosts(ctx, viewerID, post.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewForbiddenError(
			"You must follow this user to view their posts",
			fmt.Sprintf("/users/%d", post.UserID),
		)
	}
	return nil
}
