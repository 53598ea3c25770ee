package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"aryavats2/interview-coach/internal/models"
	"aryavats2/interview-coach/internal/repositories"
	"aryavats2/interview-coach/internal/services"
)

type InterviewHandler struct {
	interviewRepo  repositories.InterviewRepository
	storageService services.StorageService
	extractor      services.TextExtractor
	completion     services.CompletionClient
	prompts        *services.PromptBuilder
	maxFileSize    int64
}

func NewInterviewHandler(
	interviewRepo repositories.InterviewRepository,
	storageService services.StorageService,
	extractor services.TextExtractor,
	completion services.CompletionClient,
	maxFileSize int64,
) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo:  interviewRepo,
		storageService: storageService,
		extractor:      extractor,
		completion:     completion,
		prompts:        services.NewPromptBuilder(),
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResume handles POST /upload_resume
func (h *InterviewHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if file.Filename == "" || !services.IsSupportedDocument(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid file type (%s)", services.AllowedTypes()),
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		log.Error().Err(err).Str("file", file.Filename).Msg("❌ Failed to save resume")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to save file: %v", err),
		})
	}

	resumeText := h.extractor.ExtractFile(filePath)
	if resumeText == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to extract text from resume",
		})
	}

	log.Debug().Str("file", filename).Int("chars", len(resumeText)).Msg("📄 Resume text extracted")

	return c.JSON(models.ResumeUploadResponse{ResumeText: resumeText})
}

// HandleAsk handles POST /ask
func (h *InterviewHandler) HandleAsk(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume text provided",
		})
	}

	completion, err := h.completion.Complete(c.UserContext(), h.prompts.BuildQuestionPrompt(req.ResumeText))
	if err != nil {
		return completionFailed(c, err)
	}

	return c.JSON(models.AskResponse{Question: completion.Text})
}

// HandleEvaluate handles POST /evaluate
func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Response) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	completion, err := h.completion.Complete(c.UserContext(), h.prompts.BuildEvaluationPrompt(req.Question, req.Response))
	if err != nil {
		return completionFailed(c, err)
	}

	record := &models.InterviewRecord{
		Question:     req.Question,
		UserResponse: req.Response,
		Rating:       models.RatingAIRated,
		Feedback:     completion.Text,
	}
	if err := h.interviewRepo.Create(c.UserContext(), record); err != nil {
		log.Error().Err(err).Msg("❌ Failed to store interview record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save evaluation",
		})
	}

	return c.JSON(models.EvaluateResponse{
		Rating:   record.Rating,
		Feedback: record.Feedback,
	})
}

// HandleHistory handles GET /interview/history
func (h *InterviewHandler) HandleHistory(c *fiber.Ctx) error {
	records, err := h.interviewRepo.ListRecent(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to load interview history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load interview history",
		})
	}

	if records == nil {
		records = []models.InterviewRecord{}
	}

	return c.JSON(models.InterviewHistoryResponse{History: records})
}
