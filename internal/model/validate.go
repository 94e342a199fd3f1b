package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema string

// ErrInvalidDocument reports a resume document rejected by the schema.
var ErrInvalidDocument = errors.New("invalid resume document")

var schemaLoader = gojsonschema.NewStringLoader(resumeSchema)

// Validate checks a raw JSON resume document against the embedded schema.
// It is used by seeding tooling before a document is written to the store;
// rendering never depends on it.
func Validate(data []byte) error {
	return validate(gojsonschema.NewBytesLoader(data))
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
