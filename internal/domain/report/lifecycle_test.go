package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softventure/timesheet-backend-go/internal/domain/employee"
)

var (
	owner      = Actor{EmployeeID: 1, Role: employee.RoleEmployee}
	otherOwner = Actor{EmployeeID: 2, Role: employee.RoleEmployee}
	manager    = Actor{EmployeeID: 10, Role: employee.RoleManager}
	accounting = Actor{EmployeeID: 20, Role: employee.RoleAccounting}
)

func draftReport(status Status) MonthlyReport {
	rep := NewDraft(1, 2026, 8)
	rep.Status = status
	return rep
}

func TestAttemptTransition_Submit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusDraft, StatusRemanded} {
		got, err := AttemptTransition(draftReport(from), TransitionSubmit, owner, now, "")
		require.NoError(t, err, "submit from %s", from)
		assert.Equal(t, StatusSubmitted, got.Status)
		require.NotNil(t, got.SubmittedDate)
		assert.Equal(t, now, *got.SubmittedDate)
	}
}

func TestAttemptTransition_SubmitByNonOwner(t *testing.T) {
	t.Parallel()

	rep := draftReport(StatusDraft)
	got, err := AttemptTransition(rep, TransitionSubmit, otherOwner, time.Now(), "")
	assert.ErrorIs(t, err, ErrNotReportOwner)
	assert.Equal(t, rep, got, "rejection must leave the report untouched")
}

func TestAttemptTransition_Withdraw(t *testing.T) {
	t.Parallel()

	now := time.Now()
	rep := draftReport(StatusSubmitted)
	rep.SubmittedDate = &now

	got, err := AttemptTransition(rep, TransitionWithdraw, owner, now, "")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, got.Status)
	assert.Nil(t, got.SubmittedDate)
}

func TestAttemptTransition_Approve(t *testing.T) {
	t.Parallel()

	now := time.Now()

	got, err := AttemptTransition(draftReport(StatusSubmitted), TransitionApprove, manager, now, "")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	require.NotNil(t, got.ManagerApprovalDate)

	// Only a submitted report can be approved.
	for _, from := range []Status{StatusDraft, StatusRemanded, StatusApproved, StatusFinalized} {
		_, err := AttemptTransition(draftReport(from), TransitionApprove, manager, now, "")
		assert.ErrorIs(t, err, ErrInvalidTransition, "approve from %s", from)
	}

	// An employee cannot approve, even their own report.
	_, err = AttemptTransition(draftReport(StatusSubmitted), TransitionApprove, owner, now, "")
	assert.ErrorIs(t, err, ErrActorRoleDenied)
}

func TestAttemptTransition_Remand(t *testing.T) {
	t.Parallel()

	got, err := AttemptTransition(draftReport(StatusSubmitted), TransitionRemand, manager, time.Now(), "missing break times")
	require.NoError(t, err)
	assert.Equal(t, StatusRemanded, got.Status)
	require.NotNil(t, got.RemandReason)
	assert.Equal(t, "missing break times", *got.RemandReason)
}

func TestAttemptTransition_RemandedBehavesLikeDraft(t *testing.T) {
	t.Parallel()

	reason := "fix day 12"
	rep := draftReport(StatusRemanded)
	rep.RemandReason = &reason

	got, err := AttemptTransition(rep, TransitionSubmit, owner, time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, got.Status)
	require.NotNil(t, got.RemandReason, "reason is retained for audit")
}

func TestAttemptTransition_Unapprove(t *testing.T) {
	t.Parallel()

	now := time.Now()
	rep := draftReport(StatusApproved)
	rep.ManagerApprovalDate = &now

	got, err := AttemptTransition(rep, TransitionUnapprove, manager, now, "")
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, got.Status)
	assert.Nil(t, got.ManagerApprovalDate)
}

func TestAttemptTransition_Finalize(t *testing.T) {
	t.Parallel()

	now := time.Now()

	got, err := AttemptTransition(draftReport(StatusApproved), TransitionFinalize, accounting, now, "")
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, got.Status)
	require.NotNil(t, got.AccountingApprovalDate)
	require.NotNil(t, got.ApprovalDate, "legacy field mirrors the accounting date")

	// Finalize cannot skip the approval step.
	_, err = AttemptTransition(draftReport(StatusSubmitted), TransitionFinalize, accounting, now, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// A manager cannot finalize.
	_, err = AttemptTransition(draftReport(StatusApproved), TransitionFinalize, manager, now, "")
	assert.ErrorIs(t, err, ErrActorRoleDenied)
}

func TestAttemptTransition_Definalize(t *testing.T) {
	t.Parallel()

	now := time.Now()
	rep := draftReport(StatusFinalized)
	rep.AccountingApprovalDate = &now
	rep.ApprovalDate = &now

	got, err := AttemptTransition(rep, TransitionDefinalize, accounting, now, "")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Nil(t, got.AccountingApprovalDate)
	assert.Nil(t, got.ApprovalDate)
}

func TestAttemptTransition_Unknown(t *testing.T) {
	t.Parallel()

	_, err := AttemptTransition(draftReport(StatusDraft), Transition("promote"), owner, time.Now(), "")
	assert.ErrorIs(t, err, ErrUnknownTransition)
}

func TestMayEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  Status
		isOwner bool
		want    bool
	}{
		{StatusDraft, true, true},
		{StatusRemanded, true, true},
		{StatusDraft, false, false},
		{StatusRemanded, false, false},
		{StatusSubmitted, true, false},
		{StatusApproved, true, false},
		{StatusFinalized, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MayEdit(tt.status, tt.isOwner), "status=%s owner=%v", tt.status, tt.isOwner)
	}
}
