package handlers

import (
	"context"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/middleware"
	"blogapi/internal/session"
)

// ImageUploader forwards image bytes to the external media host.
type ImageUploader interface {
	UploadArticleImage(ctx context.Context, image io.Reader) (*uploader.UploadResult, error)
}

// UploadHandler handles HTTP requests for image uploads.
type UploadHandler struct {
	uploader ImageUploader
	sessions *session.Manager
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(up ImageUploader, sessions *session.Manager) *UploadHandler {
	return &UploadHandler{
		uploader: up,
		sessions: sessions,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload-image", middleware.LoginRequired(h.sessions), h.HandleUploadImage)
}

// HandleUploadImage forwards the uploaded image to the media host and
// returns the host's result payload verbatim.
func (h *UploadHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No image provided",
		})
	}
	if fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No selected file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read image",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	result, err := h.uploader.UploadArticleImage(c.Context(), file)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Image upload failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(result)
}
