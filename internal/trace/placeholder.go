package trace

import (
	"github.com/perfwatch/quicktrace/internal/analytics"
	"github.com/perfwatch/quicktrace/internal/store"
)

// Persisted flag key; "1" means the placeholder stays hidden.
const missingServiceKey = "quick-trace:missing-service-dismissed"

const dismissedValue = "1"

// MissingServiceFlag gates the "missing downstream service"
// placeholder. Dismissal is one-way and survives restarts through the
// injected store.
type MissingServiceFlag struct {
	store  store.Store
	sink   analytics.Sink
	hidden bool
}

func NewMissingServiceFlag(st store.Store, sink analytics.Sink) *MissingServiceFlag {
	if sink == nil {
		sink = analytics.Nop()
	}
	hidden := false
	if st != nil {
		if v, ok := st.Get(missingServiceKey); ok {
			hidden = v == dismissedValue
		}
	}
	return &MissingServiceFlag{store: st, sink: sink, hidden: hidden}
}

// Visible reports whether the placeholder may be shown.
func (f *MissingServiceFlag) Visible() bool {
	return !f.hidden
}

// Dismiss hides the placeholder permanently for this store scope.
// There is no reverse transition.
func (f *MissingServiceFlag) Dismiss() {
	if f.hidden {
		return
	}
	f.hidden = true
	if f.store != nil {
		// A failed write only means the placeholder reappears next
		// run; not worth surfacing.
		_ = f.store.Set(missingServiceKey, dismissedValue)
	}
	f.sink.Track("quick_trace.missing_service.dismissed", map[string]interface{}{
		"source": "quick-trace",
	})
}
