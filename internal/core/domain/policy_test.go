package domain

import "testing"

func admin() *User { return &User{ID: "a1", Role: RoleAdmin} }
func user(id string) *User {
	return &User{ID: id, Role: RoleUser}
}

func TestCanListUsers(t *testing.T) {
	if !CanListUsers(admin()) {
		t.Error("admin must list users")
	}
	if CanListUsers(user("u1")) {
		t.Error("regular user must not list users")
	}
}

func TestCanViewUser(t *testing.T) {
	if !CanViewUser(admin(), "u9") {
		t.Error("admin must view any user")
	}
	if !CanViewUser(user("u1"), "u1") {
		t.Error("user must view self")
	}
	if CanViewUser(user("u1"), "u2") {
		t.Error("user must not view others")
	}
}

func TestCanModifyUser(t *testing.T) {
	if !CanModifyUser(admin(), "u9") {
		t.Error("admin must modify any user")
	}
	if !CanModifyUser(user("u1"), "u1") {
		t.Error("user must modify self")
	}
	if CanModifyUser(user("u1"), "u2") {
		t.Error("user must not modify others")
	}
}

func TestCanAssignRole(t *testing.T) {
	if !CanAssignRole(admin()) {
		t.Error("admin must assign roles")
	}
	if CanAssignRole(user("u1")) {
		t.Error("regular user must not assign roles")
	}
}

func TestCanViewAndDeleteTask(t *testing.T) {
	if !CanViewTask(admin(), "u9") || !CanDeleteTask(admin(), "u9") {
		t.Error("admin must view and delete any task")
	}
	if !CanViewTask(user("u1"), "u1") || !CanDeleteTask(user("u1"), "u1") {
		t.Error("owner must view and delete own task")
	}
	if CanViewTask(user("u1"), "u2") || CanDeleteTask(user("u1"), "u2") {
		t.Error("non-owner must not view or delete")
	}
}

func TestCanUpdateTask(t *testing.T) {
	if !CanUpdateTask(admin(), "u1", "u2") {
		t.Error("admin may update and reassign any task")
	}
	if !CanUpdateTask(user("u1"), "u1", "u1") {
		t.Error("owner keeping ownership must update")
	}
	// Both conditions are required for non-admins: owning now is not
	// enough if the request hands the task to someone else, and naming
	// yourself as new owner is not enough if you do not own it yet.
	if CanUpdateTask(user("u1"), "u1", "u2") {
		t.Error("owner must not give the task away")
	}
	if CanUpdateTask(user("u1"), "u2", "u1") {
		t.Error("non-owner must not take a task")
	}
	if CanUpdateTask(user("u1"), "u2", "u2") {
		t.Error("non-owner must not touch a foreign task")
	}
}
