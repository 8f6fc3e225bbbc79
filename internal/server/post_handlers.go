package server

import (
	"strconv"

	"vicinity/internal/media"
	"vicinity/internal/models"
	"vicinity/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	postImageWidth  = 800
	postImageHeight = 450
)

// CreatePost handles POST /api/posts. Accepts multipart form data with a
// content field, an optional group_id, an optional image (normalized to
// 16:9) and an optional video (stored as-is).
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var groupID *uint
	if raw := c.FormValue("group_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid group ID"))
		}
		gid := uint(id)
		groupID = &gid
	}

	imagePath, err := s.saveImageUpload(c, "image", "posts",
		postImageWidth, postImageHeight, media.Aspect16x9)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	videoPath, err := s.saveUpload(c, "video", "posts")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  userID,
		Content: c.FormValue("content"),
		Image:   imagePath,
		Video:   videoPath,
		GroupID: groupID,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(post)
}

// LikePost handles POST /api/posts/:id/like and returns the new like count.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.postService.LikePost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"likes": likes})
}

// UnlikePost handles DELETE /api/posts/:id/like and returns the new like count.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.postService.UnlikePost(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"likes": likes})
}
