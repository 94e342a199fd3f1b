package infrastructure

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the bytes do not start with a PDF header.
var ErrNotPDF = errors.New("not a pdf document")

// PDFInfo summarises a printed document.
type PDFInfo struct {
	Pages int
}

// InspectPDF checks the %PDF signature and parses the document structure to
// count pages. The parser panics on some malformed input; that is reported
// as an error.
func InspectPDF(data []byte) (info PDFInfo, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return PDFInfo{}, ErrNotPDF
	}
	defer func() {
		if r := recover(); r != nil {
			info, err = PDFInfo{}, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return PDFInfo{}, fmt.Errorf("parse pdf: %w", err)
	}
	pages := reader.NumPage()
	if pages < 1 {
		return PDFInfo{}, fmt.Errorf("parse pdf: no pages")
	}
	return PDFInfo{Pages: pages}, nil
}

// ExtractText returns the plain text of every page.
func ExtractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("extract pdf text: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
