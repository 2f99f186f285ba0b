// Package output provides output formatting for seekctl.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// bannerWidth is the width of the section banner around responses.
const bannerWidth = 60

// Printer renders API responses and section banners to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Response prints a titled banner followed by the data as indented JSON.
func (p *Printer) Response(title string, data any) error {
	p.Banner(title)
	return p.JSON(data)
}

// Banner prints the banner that frames a response title:
//
//	============================================================
//	  Title
//	============================================================
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(p.w, "\n%s\n", rule)
	fmt.Fprintf(p.w, "  %s\n", title)
	fmt.Fprintln(p.w, rule)
}

// JSON prints data as two-space indented JSON. HTML escaping is disabled so
// non-ASCII answers render as typed.
func (p *Printer) JSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}
