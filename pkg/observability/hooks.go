// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about export runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, runID, nodeCount, edgeCount)
//	// ... write sinks ...
//	observability.Export().OnExportComplete(ctx, runID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from the export pipeline.
type ExportHooks interface {
	// OnExportStart fires before the build. The counts are node and edge
	// occurrences in the input document, duplicates included.
	OnExportStart(ctx context.Context, runID string, nodeCount, edgeCount int)

	// OnExportComplete fires after every OnExportStart, when all sinks have
	// been written or the build or a sink failed.
	OnExportComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// OnSinkWrite records one written output.
	OnSinkWrite(ctx context.Context, format string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string, int, int)                {}
func (NoopExportHooks) OnExportComplete(context.Context, string, time.Duration, error) {}
func (NoopExportHooks) OnSinkWrite(context.Context, string, int)                       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks ExportHooks = NoopExportHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks.
// This should be called once at application startup before any export runs.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
}
