package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("statsapi", 10*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("statsapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("statsapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("statsapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("statsapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("statsapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("statsapi", 5*time.Second)
	rec.RecordRateLimit("statsapi", 0)

	if got := rec.RateLimitHits("statsapi"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("statsapi"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksDegradedAndStale(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDegraded("roster")
	rec.RecordDegraded("roster")
	rec.RecordStaleDiscard("dashboard")

	if got := rec.Degraded("roster"); got != 2 {
		t.Fatalf("expected 2 degraded roster results, got %d", got)
	}
	if got := rec.Degraded("player"); got != 0 {
		t.Fatalf("expected no degraded player results, got %d", got)
	}
	if got := rec.StaleDiscards("dashboard"); got != 1 {
		t.Fatalf("expected 1 stale discard, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamAttempt("statsapi", time.Millisecond, nil)
	rec.RecordRateLimit("statsapi", time.Second)
	rec.RecordDegraded("roster")
	rec.RecordStaleDiscard("dashboard")
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if rec.UpstreamCalls("statsapi") != 0 || rec.Degraded("roster") != 0 || rec.StaleDiscards("dashboard") != 0 {
		t.Fatal("expected nil recorder to report zeros")
	}
}
