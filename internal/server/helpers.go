package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vicinity/internal/media"
	"vicinity/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// saveUpload stores the multipart file from the given form field under
// subdir of the configured upload directory. The filename is sanitized and
// prefixed with a random token to avoid collisions. Returns the stored path
// relative to the process working directory, or "" when the field is absent.
//
// A disallowed extension is an explicit validation error, never a silent
// drop.
func (s *Server) saveUpload(c *fiber.Ctx, field, subdir string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// No file uploaded for this field.
		return "", nil
	}

	if fileHeader.Size > int64(s.config.MaxUploadMB)*1024*1024 {
		return "", models.NewValidationError(
			fmt.Sprintf("File too large (max %d MB)", s.config.MaxUploadMB))
	}

	if !media.AllowedFile(fileHeader.Filename) {
		return "", models.NewValidationError("File type not allowed")
	}

	name := media.SanitizeFilename(fileHeader.Filename)
	if name == "" {
		return "", models.NewValidationError("Invalid file name")
	}
	name = uuid.New().String()[:8] + "_" + name

	dir := filepath.Join(s.config.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	path := filepath.Join(dir, name)
	if err := c.SaveFile(fileHeader, path); err != nil {
		return "", models.NewInternalError(err)
	}
	return path, nil
}

// saveImageUpload stores and then normalizes an image upload to the given
// dimensions. Video extensions are stored without normalization.
func (s *Server) saveImageUpload(c *fiber.Ctx, field, subdir string, width, height int, aspect media.AspectRatio) (string, error) {
	path, err := s.saveUpload(c, field, subdir)
	if err != nil || path == "" {
		return path, err
	}

	if media.IsImageExtension(path) {
		if err := media.ResizeAndCrop(path, width, height, aspect); err != nil {
			// Remove the unusable file; the post/profile must not reference it.
			_ = os.Remove(path)
			if errors.Is(err, media.ErrUnreadableImage) {
				return "", models.NewValidationError("Uploaded image could not be read")
			}
			return "", models.NewInternalError(err)
		}
	}
	return path, nil
}
