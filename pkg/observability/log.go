package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by logging at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// Register installs h for all event categories.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnParseStart(_ context.Context, format string) {
	h.Logger.Debug("parse start", "format", format)
}

func (h *LogHooks) OnParseComplete(_ context.Context, format string, nodeCount int, d time.Duration, err error) {
	h.Logger.Debug("parse complete", "format", format, "nodes", nodeCount, "took", d, "err", err)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, engine string, nodeCount int) {
	h.Logger.Debug("layout start", "engine", engine, "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, engine string, d time.Duration, err error) {
	h.Logger.Debug("layout complete", "engine", engine, "took", d, "err", err)
}

func (h *LogHooks) OnRenderStart(_ context.Context, algorithm string) {
	h.Logger.Debug("render start", "algorithm", algorithm)
}

func (h *LogHooks) OnPage(_ context.Context, index int, annotation string) {
	h.Logger.Debug("page", "index", index, "annotation", annotation)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, algorithm string, pages int, d time.Duration, err error) {
	h.Logger.Debug("render complete", "algorithm", algorithm, "pages", pages, "took", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
