package server

import (
	"vicinity/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFollowRequest handles POST /api/follows/requests/:userId
func (s *Server) SendFollowRequest(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.SendRequest(c.Context(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Follow request sent",
	})
}

// GetReceivedRequests handles GET /api/follows/requests
func (s *Server) GetReceivedRequests(c *fiber.Ctx) error {
	requests, err := s.followService.ReceivedRequests(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// GetSentRequests handles GET /api/follows/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	requests, err := s.followService.SentRequests(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// AcceptFollowRequest handles POST /api/follows/requests/:userId/accept.
// The :userId names the requester whose pending request is accepted.
func (s *Server) AcceptFollowRequest(c *fiber.Ctx) error {
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.AcceptRequest(c.Context(), currentUserID(c), requesterID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Follow request accepted"})
}

// DeclineFollowRequest handles POST /api/follows/requests/:userId/decline
func (s *Server) DeclineFollowRequest(c *fiber.Ctx) error {
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.DeclineRequest(c.Context(), currentUserID(c), requesterID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Follow request declined"})
}

// Unfollow handles DELETE /api/follows/:userId
func (s *Server) Unfollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
