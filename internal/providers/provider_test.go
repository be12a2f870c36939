package providers

import (
	"github.com/preston-bernstein/isoanalytics/internal/teststubs"
)

var _ StatsProvider = (*teststubs.StubProvider)(nil)
