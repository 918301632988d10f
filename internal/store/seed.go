package store

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
)

// SeedUsers returns the three demo accounts, one per role.
func SeedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Admin User", Email: "admin@helpdesk.com", Role: models.RoleAdmin, Avatar: "/admin-avatar.png"},
		{ID: "2", Name: "Staff User", Email: "staff@helpdesk.com", Role: models.RoleStaff, Avatar: "/diverse-staff-avatars.png"},
		{ID: "3", Name: "Master Admin", Email: "master@helpdesk.com", Role: models.RoleMaster, Avatar: "/master-avatar.png"},
	}
}

// SeedReports returns the demo reports, newest first.
func SeedReports() []models.Report {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []models.Report{
		{ID: "1", Title: "Server Down Issue", Description: "Main server is not responding",
			Status: models.StatusPending, CreatedBy: "2", CreatedAt: at("2024-01-15T10:00:00Z")},
		{ID: "2", Title: "Email Configuration", Description: "Setup new email accounts for team",
			Status: models.StatusInProgress, CreatedBy: "2", AssignedTo: "1", CreatedAt: at("2024-01-14T14:30:00Z")},
		{ID: "3", Title: "Database Backup", Description: "Weekly database backup completed",
			Status: models.StatusCompleted, CreatedBy: "2", AssignedTo: "1", CreatedAt: at("2024-01-13T09:15:00Z")},
		{ID: "4", Title: "Network Maintenance", Description: "Scheduled network maintenance",
			Status: models.StatusCompleted, CreatedBy: "2", CreatedAt: at("2024-01-12T16:45:00Z")},
		{ID: "5", Title: "Software Update", Description: "Update all workstation software",
			Status: models.StatusInProgress, CreatedBy: "2", CreatedAt: at("2024-01-11T11:20:00Z")},
	}
}

func seedState() State {
	return State{
		Notifications: []models.Notification{},
		AllUsers:      SeedUsers(),
		AllReports:    SeedReports(),
		ChatMessages:  []models.ChatMessage{},
	}
}
