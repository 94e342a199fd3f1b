package infrastructure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPageSize is returned for paper names other than A4, Letter and Legal.
var ErrUnknownPageSize = errors.New("unknown page size")

type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// DefaultMarginMM is applied to every side when no margin is configured.
const DefaultMarginMM = 12.0

const mmPerInch = 25.4

// paper dimensions in inches, portrait
var paperInches = map[PageSize][2]float64{
	PageA4:     {8.27, 11.69},
	PageLetter: {8.5, 11},
	PageLegal:  {8.5, 14},
}

// PageOptions describes the printed page. MarginMM applies to all four sides.
type PageOptions struct {
	Size     PageSize
	MarginMM float64
}

// DefaultPageOptions is A4 with 12mm margins.
func DefaultPageOptions() PageOptions {
	return PageOptions{Size: PageA4, MarginMM: DefaultMarginMM}
}

// ParsePageSize matches paper names case-insensitively. Empty means A4.
func ParsePageSize(s string) (PageSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PageA4, nil
	}
	for size := range paperInches {
		if strings.EqualFold(string(size), s) {
			return size, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPageSize, s)
}

// PaperInches returns the paper width and height in inches.
func (o PageOptions) PaperInches() (width, height float64, err error) {
	size := o.Size
	if size == "" {
		size = PageA4
	}
	dims, ok := paperInches[size]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPageSize, o.Size)
	}
	return dims[0], dims[1], nil
}

// MarginInches converts the margin to inches. Negative margins count as zero.
func (o PageOptions) MarginInches() float64 {
	if o.MarginMM <= 0 {
		return 0
	}
	return o.MarginMM / mmPerInch
}

// String renders the options as a stable key, e.g. "A4/12mm".
func (o PageOptions) String() string {
	return fmt.Sprintf("%s/%gmm", o.Size, o.MarginMM)
}
