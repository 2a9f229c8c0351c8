package llm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// LoggingProvider writes a one-line summary of every request to the
// debug sink. Enabled by KOPYA_LLM_DEBUG=1; otherwise a no-op.
type LoggingProvider struct {
	inner Provider
	sink  io.Writer
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider) Provider {
	if os.Getenv("KOPYA_LLM_DEBUG") == "" {
		return p
	}
	return &LoggingProvider{inner: p, sink: os.Stderr}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		fmt.Fprintf(l.sink, "llm: purpose=%s model=%s latency=%s error=%v\n",
			purpose, l.inner.ModelID(), latency, err)
		return nil, err
	}

	line := fmt.Sprintf("llm: purpose=%s model=%s latency=%s tokens=%d/%d",
		purpose, resp.Model, latency, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	if c := LookupCost(resp.Model); c != nil {
		line += fmt.Sprintf(" cost=$%.6f", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	fmt.Fprintln(l.sink, line)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
