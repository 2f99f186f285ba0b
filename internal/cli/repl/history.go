package repl

import (
	"os"
	"path/filepath"
	"strings"
)

// historyLimit caps how many commands are kept, in memory and on disk.
const historyLimit = 1000

// History keeps the commands entered in the shell, oldest first.
type History struct {
	entries []string
	limit   int
	path    string
}

// NewHistory returns a History backed by ~/.seekctl/history.
func NewHistory() *History {
	home, _ := os.UserHomeDir()
	return NewHistoryAt(filepath.Join(home, ".seekctl", "history"))
}

// NewHistoryAt returns a History backed by the given file.
func NewHistoryAt(path string) *History {
	return &History{limit: historyLimit, path: path}
}

// Add records a command. Repeating the previous command adds nothing.
func (h *History) Add(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Get returns the command index steps back, 0 being the most recent.
// Out-of-range indexes return the empty string.
func (h *History) Get(index int) string {
	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

// Load reads the history file. A missing file is not an error.
func (h *History) Load() error {
	data, err := os.ReadFile(h.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return nil
}

// Save writes the history file, creating its directory when needed.
// Nothing is written while the history is empty.
func (h *History) Save() error {
	if len(h.entries) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(h.path, []byte(strings.Join(h.entries, "\n")+"\n"), 0o600)
}
