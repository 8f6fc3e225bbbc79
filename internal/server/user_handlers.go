package server

import (
	"vicinity/internal/media"
	"vicinity/internal/models"
	"vicinity/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	profilePicWidth  = 320
	profilePicHeight = 180
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me. Accepts multipart form data with
// an optional bio field and an optional profile_pic image, which is
// normalized to a 16:9 thumbnail.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	picPath, err := s.saveImageUpload(c, "profile_pic", "profile_pics",
		profilePicWidth, profilePicHeight, media.Aspect16x9)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	in := service.UpdateProfileInput{
		UserID:     userID,
		Bio:        c.FormValue("bio"),
		ProfilePic: picPath,
	}
	// An explicitly-submitted empty bio clears it.
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		if vals, ok := form.Value["bio"]; ok && len(vals) > 0 && vals[0] == "" {
			in.ClearBio = true
		}
	}

	user, err := s.userService.UpdateProfile(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?q=...
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	users, err := s.userService.SearchUsers(c.Context(), c.Query("q"), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id. The profile card is visible to
// any authenticated user; posts stay behind the follow gate.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewerID := currentUserID(c)
	following, err := s.followService.IsFollowing(c.Context(), viewerID, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"is_following": following,
		"is_self":      viewerID == id,
	})
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.ProfilePosts(c.Context(), currentUserID(c), id, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.followService.Followers(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"followers": users})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.followService.Following(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"following": users})
}
