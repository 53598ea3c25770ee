package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"aryavats2/interview-coach/internal/web"
)

type AppOptions struct {
	BodyLimit  int
	LogRequest bool
}

// NewApp wires middleware and routes onto a new Fiber app.
func NewApp(opts AppOptions, interview *InterviewHandler, chat *ChatHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer & Interview Coach",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	if opts.LogRequest {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, " + SessionHeader,
		ExposeHeaders: SessionHeader,
	}))
	app.Use(SessionMiddleware())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Interview coach
	app.Get("/", RenderPage(web.IndexPage))
	app.Post("/upload_resume", interview.HandleUploadResume)
	app.Post("/ask", interview.HandleAsk)
	app.Post("/evaluate", interview.HandleEvaluate)
	app.Get("/interview/history", interview.HandleHistory)

	// Chat
	app.Post("/upload_pdf", chat.HandleUploadPDF)
	app.Get("/super_gpt_chat", RenderPage(web.ChatPage))
	app.Get("/chat", RenderPage(web.ChatPage))
	app.Post("/chat", chat.HandleChat)
	app.Get("/history", chat.HandleHistory)

	return app
}
