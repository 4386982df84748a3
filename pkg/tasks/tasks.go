// Package tasks defines the messages carried on the Kafka task topic.
package tasks

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPermanent marks a task failure that retrying cannot fix, such as a
// payload that does not decode or validate.
var ErrPermanent = errors.New("permanent task failure")

// Task types.
const (
	TypeDocumentIndex = "document.index"
	TypeKPIIngest     = "kpi.ingest"
)

// KPI kinds accepted by a kpi.ingest task.
const (
	KPIManufacturingMetrics = "manufacturing-metrics"
	KPISupplyChain          = "supply-chain-kpis"
	KPIZeroTrust            = "zero-trust-kpis"
)

// Task is the envelope written to the task topic. Exactly one payload field is set, matching Type.
type Task struct {
	Type          string             `json:"type"`
	DocumentIndex *DocumentIndexTask `json:"document_index,omitempty"`
	KPI           *KPIIngestTask     `json:"kpi,omitempty"`
}

// DocumentIndexTask asks the pipeline to extract and index a document attachment.
type DocumentIndexTask struct {
	DocumentID uint   `json:"document_id"`
	Brand      string `json:"brand"`
	ObjectKey  string `json:"object_key"`
	FileName   string `json:"file_name"`
}

// KPIIngestTask carries a metrics snapshot computed by an upstream system.
type KPIIngestTask struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Key identifies the task for retry bookkeeping.
func (t Task) Key() string {
	switch {
	case t.DocumentIndex != nil:
		return t.Type + ":" + t.DocumentIndex.ObjectKey
	case t.KPI != nil:
		return fmt.Sprintf("%s:%s:%x", t.Type, t.KPI.Kind, md5.Sum(t.KPI.Payload))
	default:
		return t.Type
	}
}
