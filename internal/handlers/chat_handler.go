package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"aryavats2/interview-coach/internal/models"
	"aryavats2/interview-coach/internal/repositories"
	"aryavats2/interview-coach/internal/services"
)

type ChatHandler struct {
	chatRepo    repositories.ChatRepository
	sessionRepo repositories.SessionRepository
	extractor   services.TextExtractor
	completion  services.CompletionClient
	prompts     *services.PromptBuilder
	maxFileSize int64
}

func NewChatHandler(
	chatRepo repositories.ChatRepository,
	sessionRepo repositories.SessionRepository,
	extractor services.TextExtractor,
	completion services.CompletionClient,
	maxFileSize int64,
) *ChatHandler {
	return &ChatHandler{
		chatRepo:    chatRepo,
		sessionRepo: sessionRepo,
		extractor:   extractor,
		completion:  completion,
		prompts:     services.NewPromptBuilder(),
		maxFileSize: maxFileSize,
	}
}

// HandleUploadPDF handles POST /upload_pdf. The extracted text becomes the
// chat context of the caller's session.
func (h *ChatHandler) HandleUploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if file.Filename == "" || !services.IsPDF(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type",
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
			"error": fmt.Sprintf("Error processing PDF: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error processing PDF: %v", err),
		})
	}

	text := h.extractor.ExtractText(data, file.Filename)
	if text == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing PDF: no readable content",
		})
	}

	if err := h.sessionRepo.SaveDocument(c.UserContext(), sessionID(c), text); err != nil {
		log.Error().Err(err).Msg("❌ Failed to store session document")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing PDF: failed to store document",
		})
	}

	return c.JSON(models.PDFUploadResponse{
		Message:      "PDF uploaded successfully",
		UploadedText: text,
	})
}

// HandleChat handles POST /chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a message",
		})
	}

	documentText, err := h.sessionRepo.DocumentText(c.UserContext(), sessionID(c))
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to load session document")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat context",
		})
	}

	completion, err := h.completion.Complete(c.UserContext(), h.prompts.BuildChatPrompt(documentText, message))
	if err != nil {
		return completionFailed(c, err)
	}

	turn := &models.ChatTurn{
		UserMessage: message,
		BotReply:    completion.Text,
	}
	if err := h.chatRepo.Create(c.UserContext(), turn); err != nil {
		log.Error().Err(err).Msg("❌ Failed to store chat turn")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save chat history",
		})
	}

	return c.JSON(models.ChatResponse{Reply: turn.BotReply})
}

// HandleHistory handles GET /history
func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	turns, err := h.chatRepo.ListRecent(c.UserContext(), 0)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to load chat history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	history := make([]models.HistoryEntry, 0, len(turns))
	for _, turn := range turns {
		history = append(history, models.HistoryEntry{
			User: turn.UserMessage,
			Bot:  turn.BotReply,
		})
	}

	return c.JSON(models.HistoryResponse{History: history})
}
