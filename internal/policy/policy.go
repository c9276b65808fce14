// Package policy decides operation admission from the caller's identity,
// role set and the target resource's ownership. It is a pure decision
// function with no transport or storage dependencies.
package policy

import "github.com/google/uuid"

type Operation string

const (
	OpProjectRead      Operation = "project.read"
	OpProjectCreate    Operation = "project.create"
	OpProjectUpdate    Operation = "project.update"
	OpProjectDelete    Operation = "project.delete"
	OpAttachmentUpload Operation = "attachment.upload"
	OpMilestoneRead    Operation = "milestone.read"
	OpMilestoneCreate  Operation = "milestone.create"
	OpMilestoneUpdate  Operation = "milestone.update"
	OpMilestoneApprove Operation = "milestone.approve"
	OpMilestoneDelete  Operation = "milestone.delete"
	OpUserManage       Operation = "user.manage"
)

// Caller describes the authenticated principal requesting an operation.
// A zero Caller (Authenticated=false) is an anonymous request.
type Caller struct {
	ID            uuid.UUID
	Roles         []string
	Authenticated bool
}

// Decision is the evaluator's verdict. Unauthenticated distinguishes a
// missing/invalid credential (401) from an insufficient one (403).
type Decision struct {
	Allowed         bool
	Unauthenticated bool
	Reason          string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

const (
	roleAdmin          = "Admin"
	roleProjectManager = "ProjectManager"
)

// Evaluate maps (caller, operation, resource owner) to an allow/deny
// decision. ownerID is only consulted for ownership-gated operations and
// may be uuid.Nil otherwise.
func Evaluate(caller Caller, op Operation, ownerID uuid.UUID) Decision {
	if !caller.Authenticated {
		return Decision{Unauthenticated: true, Reason: "authentication required"}
	}

	switch op {
	case OpProjectRead, OpProjectCreate, OpAttachmentUpload,
		OpMilestoneRead, OpMilestoneCreate, OpMilestoneUpdate:
		// Any authenticated caller.
		return allow()

	case OpProjectUpdate:
		if caller.ID == ownerID || hasRole(caller, roleAdmin) {
			return allow()
		}
		return deny("only the project owner or an Admin may update a project")

	case OpProjectDelete, OpMilestoneApprove, OpMilestoneDelete:
		// Ownership is not sufficient for these operations.
		if hasRole(caller, roleProjectManager) || hasRole(caller, roleAdmin) {
			return allow()
		}
		return deny("ProjectManager or Admin role required")

	case OpUserManage:
		if hasRole(caller, roleAdmin) {
			return allow()
		}
		return deny("Admin role required")
	}

	return deny("unknown operation")
}

func hasRole(caller Caller, role string) bool {
	for _, r := range caller.Roles {
		if r == role {
			return true
		}
	}
	return false
}
