package server

import (
	"log/slog"
	"sync/atomic"
)

// Stats 进程内请求计数，由 cron 定时输出
type Stats struct {
	Processed atomic.Int64
	Failed    atomic.Int64
	Rejected  atomic.Int64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) Report() {
	slog.Info("request stats",
		"processed", s.Processed.Load(),
		"failed", s.Failed.Load(),
		"rejected", s.Rejected.Load())
}
