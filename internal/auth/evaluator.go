// Package auth holds the principal type, token handling, and the
// authorization evaluator: pure decision functions over a principal and
// the target resource's ownership facts. The evaluator performs no I/O;
// callers load the facts first, so a missing resource fails as NotFound
// before any rule runs, never as a denial.
package auth

// TodoFacts are the ownership/collaboration facts of a single todo.
type TodoFacts struct {
	OwnerID         int64
	CollaboratorIDs []int64
}

// IsOwner reports whether the principal owns the todo.
func (f TodoFacts) IsOwner(p Principal) bool {
	return p.ID == f.OwnerID
}

// IsCollaborator reports whether the principal is in the collaborator set.
func (f TodoFacts) IsCollaborator(p Principal) bool {
	for _, id := range f.CollaboratorIDs {
		if id == p.ID {
			return true
		}
	}
	return false
}

// CanReadTodo allows admins, the owner, and collaborators.
func CanReadTodo(p Principal, f TodoFacts) bool {
	return p.IsAdmin() || f.IsOwner(p) || f.IsCollaborator(p)
}

// CanModifyTodo allows admins and the owner. Covers todo update/delete
// and task create/delete under the todo; collaborators get read only.
func CanModifyTodo(p Principal, f TodoFacts) bool {
	return p.IsAdmin() || f.IsOwner(p)
}

// CanManageCollaborators allows admins and the owner to add or remove
// collaborators.
func CanManageCollaborators(p Principal, f TodoFacts) bool {
	return p.IsAdmin() || f.IsOwner(p)
}

// CanAccessUser allows admins and the user itself (read/update/delete
// and listing the user's own todos).
func CanAccessUser(p Principal, targetUserID int64) bool {
	return p.IsAdmin() || p.ID == targetUserID
}
