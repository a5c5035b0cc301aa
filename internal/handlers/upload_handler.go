package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/api/internal/models"
	"resumatch/api/internal/repositories"
	"resumatch/api/internal/services"
)

type UploadHandler struct {
	docRepo     repositories.DocumentRepository
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	extractor services.ExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:     docRepo,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload accepts one multipart document (field "document"), extracts
// its text and stores it in the session for later scoring. Extraction never
// fails outright: unparsable structured formats degrade to a lossy decode.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded. Send a .pdf, .docx or .txt file as 'document'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	text, format := h.extractor.Extract(data, file.Filename)

	doc := &models.Document{
		ID:               uuid.New(),
		OriginalFileName: file.Filename,
		Format:           format,
		Text:             text,
		CreatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(doc); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to store document: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           doc.ID.String(),
		OriginalName: doc.OriginalFileName,
		Format:       string(doc.Format),
		TextLength:   len(doc.Text),
	})
}
