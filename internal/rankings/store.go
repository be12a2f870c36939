// Package rankings loads the advanced ranking table backing the percentile bars.
package rankings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
)

// Store looks up a ranking row by exact player name.
type Store interface {
	Lookup(name string) (*players.Ranking, bool)
}

// Table is an in-memory ranking table keyed by player name.
type Table struct {
	byName map[string]players.Ranking
}

// NewTable indexes rows by name. A later duplicate replaces an earlier one.
func NewTable(rows []players.Ranking) *Table {
	t := &Table{byName: make(map[string]players.Ranking, len(rows))}
	for _, r := range rows {
		t.byName[r.Player] = r
	}
	return t
}

// Lookup returns a copy of the row whose Player equals name exactly.
func (t *Table) Lookup(name string) (*players.Ranking, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	r, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return &r, true
}

// Len reports the number of indexed rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

// Load reads a JSON array of ranking rows from path.
func Load(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("rankings path required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []players.Ranking
	if err := json.NewDecoder(f).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rankings %s: %w", path, err)
	}
	return NewTable(rows), nil
}

// LoadOrEmpty loads path and falls back to an empty table on any error, so a
// missing ranking file renders "no data" bars instead of failing startup.
func LoadOrEmpty(path string, logger *slog.Logger) *Table {
	t, err := Load(path)
	if err != nil {
		logging.Warn(logger, "rankings unavailable, percentile bars disabled",
			logging.FieldPath, path,
			logging.FieldError, err,
		)
		return NewTable(nil)
	}
	logging.Info(logger, "rankings loaded",
		logging.FieldPath, path,
		logging.FieldCount, t.Len(),
	)
	return t
}
