// Package netprobe implements the network isolation check.
package netprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Prober implements ports.Prober using plain HTTP HEAD requests.
type Prober struct {
	client *http.Client
	logger ports.Logger
}

// NewProber creates a new Prober.
func NewProber(logger ports.Logger) *Prober {
	return &Prober{
		client: &http.Client{
			// A redirect already proves reachability; never follow it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

// Probe contacts every target concurrently with the given per-attempt
// timeout. Timeouts, refused connections and DNS resolution failures are all
// recorded as unreachable; the check needs to know whether the network is
// absent, not why.
func (p *Prober) Probe(ctx context.Context, targets []string, timeout time.Duration) (domain.ProbeResult, error) {
	if len(targets) == 0 {
		return domain.ProbeResult{}, domain.ErrNoProbeTargets
	}
	if timeout <= 0 {
		timeout = domain.DefaultProbeTimeout
	}

	probes := make([]domain.TargetProbe, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, target := range targets {
		g.Go(func() error {
			probe, err := p.probeOne(gctx, target, timeout)
			if err != nil {
				return err
			}
			probes[i] = probe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ProbeResult{}, err
	}

	for _, probe := range probes {
		if probe.Reachable {
			p.logger.Info(fmt.Sprintf("probe %s: reachable (%s)", probe.Target, probe.Detail))
		} else {
			p.logger.Info(fmt.Sprintf("probe %s: unreachable (%s)", probe.Target, probe.Detail))
		}
	}

	return domain.ProbeResult{Probes: probes}, nil
}

func (p *Prober) probeOne(ctx context.Context, target string, timeout time.Duration) (domain.TargetProbe, error) {
	// Scheme-less targets probe over plain HTTP, the way curl treats them.
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}

	if _, err := url.ParseRequestURI(target); err != nil {
		return domain.TargetProbe{}, zerr.With(zerr.Wrap(err, "invalid probe target"), "target", target)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, target, nil)
	if err != nil {
		return domain.TargetProbe{}, zerr.With(zerr.Wrap(err, "invalid probe target"), "target", target)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return domain.TargetProbe{
			Target:  target,
			Elapsed: elapsed,
			Detail:  unreachableDetail(err),
		}, nil
	}
	// The body is never read; any response at all is the finding.
	_ = resp.Body.Close()

	return domain.TargetProbe{
		Target:    target,
		Reachable: true,
		Elapsed:   elapsed,
		Detail:    "HTTP " + resp.Status,
	}, nil
}

func unreachableDetail(err error) string {
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &dnsErr):
		return "dns: " + dnsErr.Err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
