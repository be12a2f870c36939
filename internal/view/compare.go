package view

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
)

// Side selects one half of the compare view.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// CompareState is the two-card comparison.
type CompareState struct {
	Left  Profile `json:"left"`
	Right Profile `json:"right"`
}

type slot struct {
	guard Guard
	mu    sync.Mutex
	state Profile
}

// Compare holds two independently guarded player slots.
type Compare struct {
	source  Source
	deriver Deriver
	metrics *metrics.Recorder
	logger  *slog.Logger

	left  slot
	right slot
}

// NewCompare constructs an empty compare view.
func NewCompare(source Source, deriver Deriver, rec *metrics.Recorder, logger *slog.Logger) *Compare {
	return &Compare{source: source, deriver: deriver, metrics: rec, logger: logger}
}

// Load fills both slots. A blank id defaults to the roster's first (left) or
// second (right) player. Both sides are fetched concurrently and Load returns
// once both have resolved.
func (c *Compare) Load(ctx context.Context, leftID, rightID string) CompareState {
	if leftID == "" || rightID == "" {
		roster := c.source.Roster(ctx, listing.Query{})
		if leftID == "" && len(roster) > 0 {
			leftID = roster[0].ID
		}
		if rightID == "" && len(roster) > 1 {
			rightID = roster[1].ID
		}
	}

	var g errgroup.Group
	if leftID != "" {
		g.Go(func() error {
			c.Select(ctx, Left, leftID)
			return nil
		})
	}
	if rightID != "" {
		g.Go(func() error {
			c.Select(ctx, Right, rightID)
			return nil
		})
	}
	_ = g.Wait()
	return c.State()
}

// Select loads id into side. A late result for a side that was reselected is dropped.
func (c *Compare) Select(ctx context.Context, side Side, id string) Profile {
	s := c.slot(side)
	ticket := s.guard.Begin(id)

	detail, ok := c.source.Player(ctx, id)
	next := c.deriver.profile(id, detail, ok)

	applied := s.guard.Apply(ticket, func() {
		s.mu.Lock()
		s.state = next
		s.mu.Unlock()
	})
	if !applied {
		c.metrics.RecordStaleDiscard("compare_" + string(side))
		logging.Debug(logging.FromContext(ctx, c.logger), "discarded stale compare response",
			slog.String("side", string(side)),
			slog.String(logging.FieldPlayerID, id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// State returns both slots as currently applied.
func (c *Compare) State() CompareState {
	c.left.mu.Lock()
	left := c.left.state
	c.left.mu.Unlock()
	c.right.mu.Lock()
	right := c.right.state
	c.right.mu.Unlock()
	return CompareState{Left: left, Right: right}
}

func (c *Compare) slot(side Side) *slot {
	if side == Right {
		return &c.right
	}
	return &c.left
}
