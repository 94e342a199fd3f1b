package http

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"resume-pdf/internal/usecase"
)

// Generator runs the resume pipeline for one name.
type Generator interface {
	Generate(ctx context.Context, name string) (*usecase.Result, error)
}

type Handler struct {
	gen         Generator
	defaultName string
	logger      *log.Logger
}

func NewHandler(g Generator, defaultName string, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{gen: g, defaultName: defaultName, logger: logger.WithPrefix("http")}
}

// NewApp builds the fiber app with request IDs, panic recovery and the
// handler's routes.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestid.New())
	app.Use(recover.New())
	h.Register(app)
	return app
}

func (h *Handler) Register(r fiber.Router) {
	r.Get("/", h.Index)
	r.Get("/generate", h.Generate)
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Resume Generator</title></head>
<body>
<h3>Resume Generator</h3>
<p>Open <a href="/generate">/generate</a> to download the PDF.</p>
</body>
</html>
`

func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexPage)
}

// Generate streams the PDF for ?name=, or for the configured resume when no
// name is given.
func (h *Handler) Generate(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		name = h.defaultName
	}
	reqID, _ := c.Locals("requestid").(string)

	res, err := h.gen.Generate(c.UserContext(), name)
	if err != nil {
		h.logger.Error("generate failed", "request_id", reqID, "name", name, "err", err)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating PDF: " + err.Error())
	}

	h.logger.Info("served pdf", "request_id", reqID, "name", name, "bytes", len(res.PDF), "cache_hit", res.Job.CacheHit)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, FileName(name)))
	return c.Status(fiber.StatusOK).Send(res.PDF)
}

// FileName turns a resume name into a download name: "José Doe" becomes
// "jose-doe-resume.pdf". Only ASCII letters and digits survive.
func FileName(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, name); err == nil {
		name = folded
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "resume.pdf"
	}
	return slug + "-resume.pdf"
}
