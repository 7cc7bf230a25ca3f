package cmd

import (
	"context"
	"time"

	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/paths"
	"github.com/zjrosen/folio/internal/tracing"
)

// traceFlushTimeout bounds how long exit waits for buffered spans.
const traceFlushTimeout = 5 * time.Second

// traceConfig maps the trace section onto the provider config. force comes
// from --trace and turns tracing on regardless of trace.enabled.
func traceConfig(c config.TraceConfig, force bool) tracing.Config {
	tc := tracing.DefaultConfig()
	tc.Enabled = c.Enabled || force
	if c.Exporter != "" {
		tc.Exporter = c.Exporter
	}
	tc.FilePath = paths.TraceFile()
	if c.FilePath != "" {
		tc.FilePath = paths.Expand(c.FilePath)
	}
	if c.OTLPEndpoint != "" {
		tc.OTLPEndpoint = c.OTLPEndpoint
	}
	if c.SampleRate > 0 {
		tc.SampleRate = c.SampleRate
	}
	return tc
}

func shutdownTracing(p *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), traceFlushTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatApp, "flushing traces", err)
	}
}
