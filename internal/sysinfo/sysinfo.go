// Package sysinfo samples process memory and host load for diagnostics.
package sysinfo

import (
	"context"
	"os"
	"runtime"

	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// LoadUnavailable is reported in place of the load average when the host
// cannot provide one.
const LoadUnavailable = "N/A"

// Sampler takes resource snapshots of the current process.
type Sampler struct {
	pid    int32
	logger zerolog.Logger
}

// NewSampler creates a sampler for the running process.
func NewSampler(logger zerolog.Logger) *Sampler {
	return &Sampler{
		pid:    int32(os.Getpid()),
		logger: logger.With().Str("component", "sysinfo").Logger(),
	}
}

// Sample returns the resident set size, the memory obtained from the OS by
// the Go runtime, and the 1/5/15 minute load average. Failures degrade the
// affected field instead of failing the snapshot.
func (s *Sampler) Sample(ctx context.Context) model.ResourceInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	info := model.ResourceInfo{
		MemoryUsage: mem.HeapAlloc,
		MemoryPeak:  mem.Sys,
		LoadAverage: s.loadAverage(ctx),
	}

	if rss, err := s.residentSetSize(ctx); err == nil {
		info.MemoryUsage = rss
	} else {
		s.logger.Debug().Err(err).Msg("resident set size unavailable, using heap size")
	}

	return info
}

func (s *Sampler) residentSetSize(ctx context.Context) (uint64, error) {
	proc, err := process.NewProcessWithContext(ctx, s.pid)
	if err != nil {
		return 0, err
	}

	stat, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return stat.RSS, nil
}

func (s *Sampler) loadAverage(ctx context.Context) interface{} {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("load average unavailable")
		return LoadUnavailable
	}
	return []float64{avg.Load1, avg.Load5, avg.Load15}
}
