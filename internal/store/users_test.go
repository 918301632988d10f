package store

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
)

func roles(users []models.User) map[models.Role]int {
	out := make(map[models.Role]int)
	for _, u := range users {
		out[u.Role]++
	}
	return out
}

func TestGetAllUsersVisibility(t *testing.T) {
	s := newTestStore(t)
	s.AddUser(models.User{Name: "Second Staff", Email: "s2@helpdesk.com", Role: models.RoleStaff})
	s.AddUser(models.User{Name: "Second Master", Email: "m2@helpdesk.com", Role: models.RoleMaster})

	if got := s.GetAllUsers(); len(got) != 0 {
		t.Errorf("no session must see nobody, got %d", len(got))
	}

	login(t, s, "admin@helpdesk.com")
	got := roles(s.GetAllUsers())
	if got[models.RoleStaff] != 2 || got[models.RoleAdmin] != 0 || got[models.RoleMaster] != 0 {
		t.Errorf("admin must see only staff, got %v", got)
	}

	login(t, s, "master@helpdesk.com")
	got = roles(s.GetAllUsers())
	if got[models.RoleMaster] != 0 || got[models.RoleStaff] != 2 || got[models.RoleAdmin] != 1 {
		t.Errorf("master must see everyone but masters, got %v", got)
	}

	login(t, s, "staff@helpdesk.com")
	if got := s.GetAllUsers(); len(got) != 0 {
		t.Errorf("staff must see nobody, got %d", len(got))
	}
}

func TestAddUserAssignsFreshID(t *testing.T) {
	s := newTestStore(t)
	a := s.AddUser(models.User{ID: "1", Name: "Dup", Email: "admin@helpdesk.com", Role: models.RoleStaff})
	b := s.AddUser(models.User{Name: "Other", Email: "admin@helpdesk.com", Role: models.RoleStaff})

	if a.ID == "1" || a.ID == b.ID {
		t.Errorf("expected fresh unique ids, got %q and %q", a.ID, b.ID)
	}
	if n := len(s.Users(nil)); n != 5 {
		t.Errorf("duplicate emails are allowed, expected 5 users, got %d", n)
	}
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	name := "Renamed"
	u, ok := s.UpdateUser("2", models.UserPatch{Name: &name})
	if !ok {
		t.Fatal("expected update to apply")
	}
	if u.Name != "Renamed" || u.Email != "staff@helpdesk.com" {
		t.Errorf("expected merge of name only, got %+v", u)
	}

	before := s.Snapshot()
	if _, ok := s.UpdateUser("nonexistent", models.UserPatch{Name: &name}); ok {
		t.Error("unknown id must be a no-op")
	}
	after := s.Snapshot()
	if len(after.AllUsers) != len(before.AllUsers) || after.AllUsers[1] != before.AllUsers[1] {
		t.Error("directory changed on no-op update")
	}
}

func TestDeleteUserDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	if s.DeleteUser("nonexistent") {
		t.Error("unknown id must be a no-op")
	}
	mid := s.Snapshot()
	if len(mid.AllUsers) != len(before.AllUsers) || len(mid.AllReports) != len(before.AllReports) ||
		len(mid.Notifications) != len(before.Notifications) || len(mid.ChatMessages) != len(before.ChatMessages) {
		t.Fatal("collections changed on no-op delete")
	}

	if !s.DeleteUser("2") {
		t.Fatal("expected delete to apply")
	}
	if _, ok := s.FindUser("2"); ok {
		t.Error("user still present")
	}
	if got := len(s.ReportsByCreator("2")); got != 5 {
		t.Errorf("reports must keep dangling creator ids, got %d", got)
	}
	if name := s.UserName("2"); name != "User not found" {
		t.Errorf("expected fallback name, got %q", name)
	}
}

func TestUserName(t *testing.T) {
	s := newTestStore(t)
	if got := s.UserName(""); got != "Unassigned" {
		t.Errorf("got %q", got)
	}
	if got := s.UserName("1"); got != "Admin User" {
		t.Errorf("got %q", got)
	}
}

func TestAssignableUsers(t *testing.T) {
	s := newTestStore(t)
	got := roles(s.AssignableUsers())
	if got[models.RoleStaff] != 1 || got[models.RoleAdmin] != 1 || got[models.RoleMaster] != 0 {
		t.Errorf("expected staff and admin only, got %v", got)
	}
}

func TestUpdateProfileKeepsDirectoryInSync(t *testing.T) {
	s := newTestStore(t)
	name := "Nobody"
	if _, ok := s.UpdateProfile(models.UserPatch{Name: &name}); ok {
		t.Fatal("profile update without a session must be a no-op")
	}

	login(t, s, "staff@helpdesk.com")
	addr := "Jl. Merdeka 1"
	u, ok := s.UpdateProfile(models.UserPatch{Address: &addr})
	if !ok || u.Address != addr {
		t.Fatalf("expected profile update, got %+v ok=%v", u, ok)
	}
	dir, _ := s.FindUser("2")
	if dir.Address != addr {
		t.Errorf("directory entry diverged from session: %+v", dir)
	}

	s.Logout()
	login(t, s, "staff@helpdesk.com")
	cur, _ := s.CurrentUser()
	if cur.Address != addr {
		t.Errorf("profile edit lost on re-login: %+v", cur)
	}
}
