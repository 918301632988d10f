package models

import "time"

// ReportStatus is the workflow state of a help-desk report.
type ReportStatus string

const (
	StatusPending    ReportStatus = "pending"
	StatusInProgress ReportStatus = "in-progress"
	StatusCompleted  ReportStatus = "completed"
	StatusRejected   ReportStatus = "rejected"
)

// ReportStatuses lists every status in display order.
var ReportStatuses = []ReportStatus{StatusPending, StatusInProgress, StatusCompleted, StatusRejected}

func (s ReportStatus) Valid() bool {
	for _, v := range ReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Report is a help-desk ticket. CreatedBy and AssignedTo hold user ids that
// may dangle once the user is deleted.
type Report struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedBy   string       `json:"created_by"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"`
}

// NewReport is the caller-supplied part of a report. Status is ignored on
// creation; every new report starts as pending.
type NewReport struct {
	Title       string
	Description string
	CreatedBy   string
	AssignedTo  string
	Status      ReportStatus
}

// ReportPatch carries a partial update. An empty AssignedTo clears the assignment.
type ReportPatch struct {
	Title       *string
	Description *string
	Status      *ReportStatus
	AssignedTo  *string
}

func (p ReportPatch) Apply(r *Report) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.AssignedTo != nil {
		r.AssignedTo = *p.AssignedTo
	}
}
