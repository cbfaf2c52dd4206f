package models

import "time"

// DistributionLog is one persisted history row per publish operation.
// Outcomes are stored as a JSON document alongside the derived counts.
type DistributionLog struct {
	ID          string             `db:"id" json:"id"`
	ItemKind    ItemKind           `db:"item_kind" json:"item_kind"`
	ItemTitle   string             `db:"item_title" json:"item_title"`
	Status      DistributionStatus `db:"status" json:"status"`
	Succeeded   int                `db:"succeeded" json:"succeeded"`
	Failed      int                `db:"failed" json:"failed"`
	TargetCount int                `db:"target_count" json:"target_count"`
	OutcomesRaw []byte             `db:"outcomes" json:"-"`
	CreatedBy   string             `db:"created_by" json:"created_by"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`

	Outcomes []DistributionOutcome `db:"-" json:"outcomes,omitempty"`
}

// DistributionLogFilter narrows history listings.
type DistributionLogFilter struct {
	Status    DistributionStatus
	ItemKind  ItemKind
	CreatedBy string
	Page      int
	PageSize  int
}
