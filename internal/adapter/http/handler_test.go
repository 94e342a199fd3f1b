package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resume-pdf/internal/domain"
	"resume-pdf/internal/usecase"
)

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, name string) (*usecase.Result, error) {
	args := m.Called(ctx, name)
	res, _ := args.Get(0).(*usecase.Result)
	return res, args.Error(1)
}

func newTestApp(g Generator) *fiber.App {
	return NewApp(NewHandler(g, "Alex Morgan", log.New(&bytes.Buffer{})))
}

func TestIndex(t *testing.T) {
	app := newTestApp(&mockGenerator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `href="/generate"`)
}

func TestGenerateServesPDF(t *testing.T) {
	g := &mockGenerator{}
	pdf := []byte("%PDF-1.4 fake")
	g.On("Generate", mock.Anything, "Jane Doe").
		Return(&usecase.Result{PDF: pdf, Job: domain.NewRenderJob("Jane Doe", "modern", "A4")}, nil).Once()

	resp, err := newTestApp(g).Test(httptest.NewRequest("GET", "/generate?name=Jane%20Doe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="jane-doe-resume.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, pdf, body)
	g.AssertExpectations(t)
}

func TestGenerateUsesDefaultName(t *testing.T) {
	g := &mockGenerator{}
	g.On("Generate", mock.Anything, "Alex Morgan").
		Return(&usecase.Result{PDF: []byte("%PDF"), Job: domain.NewRenderJob("Alex Morgan", "", "")}, nil).Once()

	resp, err := newTestApp(g).Test(httptest.NewRequest("GET", "/generate", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	g.AssertExpectations(t)
}

func TestGenerateError(t *testing.T) {
	g := &mockGenerator{}
	g.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))

	resp, err := newTestApp(g).Test(httptest.NewRequest("GET", "/generate", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Error generating PDF: chrome crashed", string(body))
}

func TestGeneratePanicRecovered(t *testing.T) {
	g := &mockGenerator{}
	g.On("Generate", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") })

	resp, err := newTestApp(g).Test(httptest.NewRequest("GET", "/generate", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":          "jane-doe-resume.pdf",
		"  Alex  Morgan ":   "alex-morgan-resume.pdf",
		`evil"; name=x.exe`: "evil-name-x-exe-resume.pdf",
		"José Ñúñez":        "jose-nunez-resume.pdf",
		"":                  "resume.pdf",
		"---":               "resume.pdf",
		"李雷":                "resume.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), "FileName(%q)", in)
	}
}
