package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar_Update(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Downloading")

	bar.Update(512, 1024)

	output := buf.String()
	if !strings.Contains(output, "Downloading") {
		t.Error("output should contain the title")
	}
	if !strings.Contains(output, "50%") {
		t.Error("output should contain the percentage")
	}
	if !strings.Contains(output, "512 B/1.0 KB") {
		t.Error("output should contain the byte counts")
	}
}

func TestProgressBar_UpdateClamps(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Downloading")

	// Servers may send more bytes than the advertised Content-Length.
	bar.Update(2048, 1024)

	if !strings.Contains(buf.String(), "100%") {
		t.Error("overshoot should clamp at 100%")
	}
}

func TestProgressBar_UnknownTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Downloading")

	bar.Update(2048, -1)

	output := buf.String()
	if strings.Contains(output, "%") {
		t.Error("unknown total should not render a percentage")
	}
	if !strings.Contains(output, "2.0 KB") {
		t.Error("output should contain the byte count")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
