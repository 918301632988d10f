package store

import (
	"math"
	"sort"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/policy"
)

const recentPendingLimit = 5

// DashboardStats summarises reports for a dashboard page.
type DashboardStats struct {
	TotalReports   int                         `json:"total_reports"`
	ByStatus       map[models.ReportStatus]int `json:"by_status"`
	CompletionRate int                         `json:"completion_rate"`
	TotalUsers     int                         `json:"total_users,omitempty"`
	RecentPending  []models.Report             `json:"recent_pending"`
}

// Dashboard computes the stats shown to a user with the given role. Staff
// only count the reports they created; masters also get the directory size
// and admins the number of staff they manage.
func (s *Store) Dashboard(role models.Role, userID string) DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []models.Report
	if role == models.RoleStaff {
		reports = s.reportsLocked(func(r models.Report) bool { return r.CreatedBy == userID })
	} else {
		reports = s.reportsLocked(nil)
	}

	stats := DashboardStats{
		TotalReports:  len(reports),
		ByStatus:      make(map[models.ReportStatus]int, len(models.ReportStatuses)),
		RecentPending: []models.Report{},
	}
	for _, st := range models.ReportStatuses {
		stats.ByStatus[st] = 0
	}
	for _, r := range reports {
		stats.ByStatus[r.Status]++
		if r.Status == models.StatusPending {
			stats.RecentPending = append(stats.RecentPending, r)
		}
	}
	if stats.TotalReports > 0 {
		rate := float64(stats.ByStatus[models.StatusCompleted]) / float64(stats.TotalReports) * 100
		stats.CompletionRate = int(math.Round(rate))
	}

	sort.SliceStable(stats.RecentPending, func(i, j int) bool {
		return stats.RecentPending[i].CreatedAt.After(stats.RecentPending[j].CreatedAt)
	})
	if len(stats.RecentPending) > recentPendingLimit {
		stats.RecentPending = stats.RecentPending[:recentPendingLimit]
	}

	switch role {
	case models.RoleMaster:
		stats.TotalUsers = len(s.state.AllUsers)
	case models.RoleAdmin:
		stats.TotalUsers = len(s.usersLocked(func(u models.User) bool {
			return policy.CanViewUser(role, u.Role)
		}))
	}
	return stats
}
