// Package output provides output formatting for seekctl.
package output

import (
	"fmt"
	"io"
	"strings"
)

// barWidth is the character width of the bar itself.
const barWidth = 40

// ProgressBar renders download progress on one terminal line. The
// screenshot command feeds it from the client's progress callback, which
// runs on the goroutine doing the download.
type ProgressBar struct {
	w     io.Writer
	title string
}

// NewProgressBar creates a progress bar that writes to w.
func NewProgressBar(w io.Writer, title string) *ProgressBar {
	return &ProgressBar{w: w, title: title}
}

// Update redraws the bar for read bytes out of total. A total of zero or
// below means the size is unknown and only the byte count is shown.
func (p *ProgressBar) Update(read, total int64) {
	if total <= 0 {
		fmt.Fprintf(p.w, "\r%s %s", p.title, formatBytes(read))
		return
	}

	percent := float64(read) / float64(total)
	if percent > 1 {
		percent = 1
	}

	filled := int(float64(barWidth) * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Fprintf(p.w, "\r%s [%s] %3.0f%% (%s/%s)",
		p.title, bar, percent*100, formatBytes(read), formatBytes(total))
}

// formatBytes formats a byte count for humans.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
