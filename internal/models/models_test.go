package models

import "testing"

func TestIsCommitStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "success", status: CommitStatusSuccess, want: true},
		{name: "failed", status: CommitStatusFailed, want: true},
		{name: "pending", status: CommitStatusPending, want: true},
		{name: "empty", status: "", want: false},
		{name: "pipeline only", status: PipelineStatusRunning, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCommitStatus(tc.status); got != tc.want {
				t.Fatalf("IsCommitStatus(%q) = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestIsPipelineStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "running", status: PipelineStatusRunning, want: true},
		{name: "success", status: PipelineStatusSuccess, want: true},
		{name: "failed", status: PipelineStatusFailed, want: true},
		{name: "canceled", status: PipelineStatusCanceled, want: true},
		{name: "british spelling", status: "cancelled", want: false},
		{name: "commit only", status: CommitStatusPending, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPipelineStatus(tc.status); got != tc.want {
				t.Fatalf("IsPipelineStatus(%q) = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestIsIntegrationStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "active", status: IntegrationStatusActive, want: true},
		{name: "inactive", status: IntegrationStatusInactive, want: true},
		{name: "error", status: IntegrationStatusError, want: true},
		{name: "empty", status: "", want: false},
		{name: "other", status: "paused", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsIntegrationStatus(tc.status); got != tc.want {
				t.Fatalf("IsIntegrationStatus(%q) = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestIsRoleAndEnvironment(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleDeveloper, RoleManager, RoleGuest} {
		if !IsRole(role) {
			t.Fatalf("IsRole(%q) = false, want true", role)
		}
	}
	if IsRole("owner") {
		t.Fatal(`IsRole("owner") = true, want false`)
	}
	for _, env := range []string{EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction} {
		if !IsEnvironment(env) {
			t.Fatalf("IsEnvironment(%q) = false, want true", env)
		}
	}
	if IsEnvironment("qa") {
		t.Fatal(`IsEnvironment("qa") = true, want false`)
	}
}

func TestIsMemberAndWorkflowStatus(t *testing.T) {
	if !IsMemberStatus(MemberStatusAway) {
		t.Fatal("IsMemberStatus(away) = false, want true")
	}
	if IsMemberStatus(WorkflowStatusWarning) {
		t.Fatal("IsMemberStatus(warning) = true, want false")
	}
	if !IsWorkflowStatus(WorkflowStatusWarning) {
		t.Fatal("IsWorkflowStatus(warning) = false, want true")
	}
	if IsWorkflowStatus(MemberStatusAway) {
		t.Fatal("IsWorkflowStatus(away) = true, want false")
	}
}
