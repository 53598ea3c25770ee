package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aryavats2/interview-coach/internal/web"
)

// RenderPage serves one of the embedded HTML pages.
func RenderPage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := web.Page(name)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "page not found")
		}
		c.Type("html", "utf-8")
		return c.Send(page)
	}
}
