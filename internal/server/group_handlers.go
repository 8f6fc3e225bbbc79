package server

import (
	"vicinity/internal/models"
	"vicinity/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGroup handles POST /api/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(c.Context(), service.CreateGroupInput{
		CreatorID:   currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// SearchGroups handles GET /api/groups/search?q=...
func (s *Server) SearchGroups(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	groups, err := s.groupService.SearchGroups(c.Context(), c.Query("q"), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetMyGroups handles GET /api/groups/me
func (s *Server) GetMyGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.GroupsForUser(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroup handles GET /api/groups/:id. The group card is visible to any
// authenticated user; posts stay behind the membership gate.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupService.GetGroup(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	member, err := s.groupService.IsMember(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"group":     group,
		"is_member": member,
	})
}

// GetGroupPosts handles GET /api/groups/:id/posts
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.GroupPosts(c.Context(), currentUserID(c), id, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetGroupMembers handles GET /api/groups/:id/members
func (s *Server) GetGroupMembers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	members, err := s.groupService.Members(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"members": members})
}

// JoinGroup handles POST /api/groups/:id/join
func (s *Server) JoinGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.Join(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Joined group"})
}

// LeaveGroup handles POST /api/groups/:id/leave
func (s *Server) LeaveGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.Leave(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Left group"})
}
