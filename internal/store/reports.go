package store

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/policy"
)

// AddReport stores a new report in front of the others. The id and creation
// time are assigned here and the status is always pending, whatever the
// caller passed. An info notification naming the report is emitted.
func (s *Store) AddReport(in models.NewReport) models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r := models.Report{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      models.StatusPending,
		CreatedBy:   in.CreatedBy,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
	}
	s.state.AllReports = append([]models.Report{r}, s.state.AllReports...)
	s.addNotificationLocked(models.Notification{
		Message:   fmt.Sprintf("New report \"%s\" has been created.", r.Title),
		Type:      models.NotificationInfo,
		CreatedAt: now,
	})
	s.persistLocked()
	return r
}

// UpdateReport merges patch into the report and stamps UpdatedAt. Every
// applied update emits one info notification carrying the resulting status,
// changed or not. It returns false, changing nothing, when the id is unknown
// or the status move is not allowed.
func (s *Store) UpdateReport(id string, patch models.ReportPatch) (models.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reportIndexLocked(id)
	if i < 0 {
		return models.Report{}, false
	}
	r := s.state.AllReports[i]
	if patch.Status != nil && !policy.CanTransition(r.Status, *patch.Status) {
		return models.Report{}, false
	}

	now := s.now()
	patch.Apply(&r)
	r.UpdatedAt = &now
	s.state.AllReports[i] = r

	s.addNotificationLocked(models.Notification{
		Message:   fmt.Sprintf("Report \"%s\" updated to status: %s.", r.Title, r.Status),
		Type:      models.NotificationInfo,
		CreatedAt: now,
	})
	s.persistLocked()
	return r, true
}

func (s *Store) GetReportByID(id string) (models.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.reportIndexLocked(id); i >= 0 {
		return s.state.AllReports[i], true
	}
	return models.Report{}, false
}

// GetAllReports returns every report. All roles see all reports.
func (s *Store) GetAllReports() []models.Report {
	return s.Reports(nil)
}

// Reports returns the reports matching filter, newest first.
func (s *Store) Reports(filter func(models.Report) bool) []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reportsLocked(filter)
}

func (s *Store) reportsLocked(filter func(models.Report) bool) []models.Report {
	out := make([]models.Report, 0, len(s.state.AllReports))
	for _, r := range s.state.AllReports {
		if filter == nil || filter(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) ReportsByStatus(status models.ReportStatus) []models.Report {
	return s.Reports(func(r models.Report) bool { return r.Status == status })
}

func (s *Store) ReportsByCreator(userID string) []models.Report {
	return s.Reports(func(r models.Report) bool { return r.CreatedBy == userID })
}

func (s *Store) reportIndexLocked(id string) int {
	for i, r := range s.state.AllReports {
		if r.ID == id {
			return i
		}
	}
	return -1
}
