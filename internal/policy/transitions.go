package policy

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

// ReportTransitions lists the statuses reachable from each status. The
// workflow is deliberately permissive: completed and rejected are not
// terminal and any status may move to any other.
var ReportTransitions = map[models.ReportStatus][]models.ReportStatus{
	models.StatusPending:    models.ReportStatuses,
	models.StatusInProgress: models.ReportStatuses,
	models.StatusCompleted:  models.ReportStatuses,
	models.StatusRejected:   models.ReportStatuses,
}

// CanTransition reports whether a report may move from one status to another.
func CanTransition(from, to models.ReportStatus) bool {
	for _, s := range ReportTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
