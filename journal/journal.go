// Package journal persists valuation runs and their bucketed node
// sensitivities so risk numbers can be compared across market snapshots and
// regression-checked between the analytic and finite-difference engines.
package journal

import (
	"time"

	"github.com/rustyeddy/rates/sensitivity"
)

// RunRecord is one valuation/sensitivity run.
type RunRecord struct {
	RunID         string
	Time          time.Time
	ValuationDate time.Time
	Trade         string
	Currency      string
	PresentValue  float64
	Method        string // "analytic" or "finite-difference"
}

// NodeSensitivityRecord is one node of one curve's bucketed sensitivity for
// a run.
type NodeSensitivityRecord struct {
	RunID     string
	CurveName string
	Currency  string
	NodeIndex int
	Value     float64
}

// Journal stores runs and their sensitivities.
type Journal interface {
	RecordRun(RunRecord) error
	RecordSensitivities(runID string, cps sensitivity.CurveParameters) error
	Close() error
}

// flatten turns node-level sensitivities into one record per node.
func flatten(runID string, cps sensitivity.CurveParameters) []NodeSensitivityRecord {
	var out []NodeSensitivityRecord
	for _, e := range cps.Entries() {
		for i, v := range e.Values {
			out = append(out, NodeSensitivityRecord{
				RunID:     runID,
				CurveName: e.Metadata.Name,
				Currency:  string(e.Currency),
				NodeIndex: i,
				Value:     v,
			})
		}
	}
	return out
}
