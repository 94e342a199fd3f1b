// Package document turns a resume record into a self-contained, print-ready
// HTML document.
//
// All text taken from a record reaches the output through Escape, either
// directly or through one of the list and section renderers. The page
// template itself only ever sees pre-escaped fragments.
package document

import (
	"fmt"
	"reflect"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " with their entities in a single pass, so an
// entity produced for one character is never escaped again.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes the textual form of v. nil, including a typed nil
// pointer, map or slice, becomes the empty string.
func EscapeValue(v any) string {
	if isNil(v) {
		return ""
	}
	switch t := v.(type) {
	case string:
		return Escape(t)
	case fmt.Stringer:
		return Escape(t.String())
	}
	return Escape(fmt.Sprint(v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
