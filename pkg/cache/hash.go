package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PDFKey derives the cache key for a document printed with the given page
// options. Both parts are length-prefixed so that no two inputs collide by
// concatenation.
func PDFKey(html, pageOptions string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%s|%d:%s", len(html), html, len(pageOptions), pageOptions)
	return "pdf:" + hex.EncodeToString(h.Sum(nil))
}
