package trace

import (
	"fmt"

	"github.com/perfwatch/quicktrace/internal/core/model"
)

// TargetResolver turns events and error records into navigable
// destinations. The aggregator treats it as opaque; tests substitute
// a stub.
type TargetResolver interface {
	ErrorTarget(rec model.ErrorRecord) Target
	TransactionTarget(ev model.Event) Target
	TraceTarget(traceID string) Target
}

// PathResolver builds organization-scoped UI paths, mirroring the
// monitoring backend's URL scheme.
type PathResolver struct {
	Org string
}

func (r PathResolver) ErrorTarget(rec model.ErrorRecord) Target {
	return Target{Path: fmt.Sprintf("/organizations/%s/issues/%s/events/%s/", r.Org, rec.IssueID, rec.EventID)}
}

func (r PathResolver) TransactionTarget(ev model.Event) Target {
	return Target{Path: fmt.Sprintf("/organizations/%s/performance/%s:%s/", r.Org, ev.ProjectSlug, ev.EventID)}
}

func (r PathResolver) TraceTarget(traceID string) Target {
	return Target{Path: fmt.Sprintf("/organizations/%s/performance/trace/%s/", r.Org, traceID)}
}
