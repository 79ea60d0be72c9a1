package domain

// Access policy. Every rule the API enforces lives here as a pure predicate
// over (caller, target), so the services stay free of role arithmetic and the
// rules can be tested without HTTP or a store.
//
// Role mismatches are surfaced as ErrForbidden by the callers, which the API
// layer renders as 401 with type=authorization.

// CanListUsers reports whether caller may enumerate all accounts.
func CanListUsers(caller *User) bool {
	return caller.IsAdmin()
}

// CanViewUser reports whether caller may read the account targetID.
func CanViewUser(caller *User, targetID string) bool {
	return caller.IsAdmin() || caller.ID == targetID
}

// CanModifyUser reports whether caller may update or delete the account
// targetID. Same rule as viewing: admin or self.
func CanModifyUser(caller *User, targetID string) bool {
	return caller.IsAdmin() || caller.ID == targetID
}

// CanAssignRole reports whether caller may set a role other than usuário.
func CanAssignRole(caller *User) bool {
	return caller.IsAdmin()
}

// CanViewTask reports whether caller may read a task owned by ownerID.
func CanViewTask(caller *User, ownerID string) bool {
	return caller.IsAdmin() || caller.ID == ownerID
}

// CanDeleteTask reports whether caller may delete a task owned by ownerID.
func CanDeleteTask(caller *User, ownerID string) bool {
	return caller.IsAdmin() || caller.ID == ownerID
}

// CanUpdateTask reports whether caller may rewrite a task currently owned by
// ownerID, handing it to newOwnerID. Non-admins must own the task now and
// keep owning it afterwards; only admins reassign.
func CanUpdateTask(caller *User, ownerID, newOwnerID string) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.ID == ownerID && caller.ID == newOwnerID
}
