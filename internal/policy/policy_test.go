package policy

import (
	"testing"

	"github.com/google/uuid"
)

func authCaller(id uuid.UUID, roles ...string) Caller {
	return Caller{ID: id, Roles: roles, Authenticated: true}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		OpProjectRead, OpProjectCreate, OpProjectUpdate, OpProjectDelete,
		OpAttachmentUpload, OpMilestoneRead, OpMilestoneCreate,
		OpMilestoneUpdate, OpMilestoneApprove, OpMilestoneDelete, OpUserManage,
	}
	for _, op := range ops {
		d := Evaluate(Caller{}, op, uuid.Nil)
		if d.Allowed {
			t.Fatalf("anonymous caller allowed for %s", op)
		}
		if !d.Unauthenticated {
			t.Fatalf("anonymous caller should be unauthenticated for %s, got forbidden", op)
		}
	}
}

func TestEvaluate_AnyAuthenticated(t *testing.T) {
	t.Parallel()

	caller := authCaller(uuid.New(), "User")
	for _, op := range []Operation{
		OpProjectRead, OpProjectCreate, OpAttachmentUpload,
		OpMilestoneRead, OpMilestoneCreate, OpMilestoneUpdate,
	} {
		if d := Evaluate(caller, op, uuid.New()); !d.Allowed {
			t.Fatalf("authenticated caller denied for %s: %s", op, d.Reason)
		}
	}
}

func TestEvaluate_ProjectUpdate_OwnerOrAdmin(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	other := uuid.New()

	if d := Evaluate(authCaller(owner, "User"), OpProjectUpdate, owner); !d.Allowed {
		t.Fatalf("owner denied project update: %s", d.Reason)
	}
	if d := Evaluate(authCaller(other, "Admin"), OpProjectUpdate, owner); !d.Allowed {
		t.Fatalf("admin denied project update: %s", d.Reason)
	}

	d := Evaluate(authCaller(other, "User"), OpProjectUpdate, owner)
	if d.Allowed {
		t.Fatal("non-owner non-admin allowed to update project")
	}
	if d.Unauthenticated {
		t.Fatal("denied update should be forbidden, not unauthenticated")
	}
}

func TestEvaluate_ManagerGatedOps_OwnershipNotSufficient(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	for _, op := range []Operation{OpProjectDelete, OpMilestoneApprove, OpMilestoneDelete} {
		// Owning the resource does not grant these operations.
		if d := Evaluate(authCaller(owner, "User"), op, owner); d.Allowed {
			t.Fatalf("plain owner allowed for %s", op)
		}
		// A non-owner ProjectManager succeeds.
		if d := Evaluate(authCaller(uuid.New(), "ProjectManager"), op, owner); !d.Allowed {
			t.Fatalf("ProjectManager denied for %s: %s", op, d.Reason)
		}
		if d := Evaluate(authCaller(uuid.New(), "Admin"), op, owner); !d.Allowed {
			t.Fatalf("Admin denied for %s: %s", op, d.Reason)
		}
	}
}

func TestEvaluate_UserManage_AdminOnly(t *testing.T) {
	t.Parallel()

	if d := Evaluate(authCaller(uuid.New(), "Admin"), OpUserManage, uuid.Nil); !d.Allowed {
		t.Fatalf("Admin denied user management: %s", d.Reason)
	}
	if d := Evaluate(authCaller(uuid.New(), "ProjectManager"), OpUserManage, uuid.Nil); d.Allowed {
		t.Fatal("ProjectManager allowed user management")
	}
	if d := Evaluate(authCaller(uuid.New(), "User"), OpUserManage, uuid.Nil); d.Allowed {
		t.Fatal("User allowed user management")
	}
}

func TestEvaluate_MultipleRoles(t *testing.T) {
	t.Parallel()

	caller := authCaller(uuid.New(), "User", "ProjectManager")
	if d := Evaluate(caller, OpMilestoneApprove, uuid.Nil); !d.Allowed {
		t.Fatalf("caller with ProjectManager in role set denied approve: %s", d.Reason)
	}
}
