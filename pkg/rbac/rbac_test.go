package rbac

import (
	"errors"
	"testing"
)

func TestAdminPermissions(t *testing.T) {
	for _, p := range []string{PermissionReadClient, PermissionUpdateMilestone, PermissionCreateClient, PermissionDeleteClient} {
		if !HasPermission(RoleAdmin, p) {
			t.Fatalf("admin should hold %s", p)
		}
	}
}

func TestTaskOwnerPermissions(t *testing.T) {
	if !HasPermission(RoleTaskOwner, PermissionReadClient) {
		t.Fatal("task_owner should read clients")
	}
	if !HasPermission(RoleTaskOwner, PermissionUpdateMilestone) {
		t.Fatal("task_owner should update milestones")
	}
	if HasPermission(RoleTaskOwner, PermissionCreateClient) {
		t.Fatal("task_owner must not create clients")
	}
	if HasPermission(RoleTaskOwner, PermissionDeleteClient) {
		t.Fatal("task_owner must not delete clients")
	}
}

func TestUnknownRole(t *testing.T) {
	if HasPermission("viewer", PermissionReadClient) {
		t.Fatal("unknown role must hold no permissions")
	}
}

func TestCheckPermission(t *testing.T) {
	if err := CheckPermission(RoleAdmin, PermissionDeleteClient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := CheckPermission(RoleTaskOwner, PermissionDeleteClient)
	var denied *PermissionDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected PermissionDeniedError, got %v", err)
	}
	if denied.Role != RoleTaskOwner || denied.Permission != PermissionDeleteClient {
		t.Fatalf("unexpected error detail: %+v", denied)
	}
}
