package report

import (
	"time"

	"github.com/softventure/timesheet-backend-go/internal/domain/employee"
)

// Transition names a requested move between workflow states.
type Transition string

const (
	TransitionSubmit     Transition = "submit"     // draft/remanded -> submitted (owner)
	TransitionWithdraw   Transition = "withdraw"   // submitted -> draft (owner)
	TransitionApprove    Transition = "approve"    // submitted -> approved (manager)
	TransitionRemand     Transition = "remand"     // submitted -> remanded (manager)
	TransitionUnapprove  Transition = "unapprove"  // approved -> submitted (manager)
	TransitionFinalize   Transition = "finalize"   // approved -> finalized (accounting)
	TransitionDefinalize Transition = "definalize" // finalized -> approved (accounting)
)

// Actor identifies who requests a transition or edit.
type Actor struct {
	EmployeeID int64
	Role       employee.Role
}

// MayEdit reports whether the month's day records and special notes may be
// mutated right now. Only the owning employee may edit, and only while the
// report is a draft or remanded.
func MayEdit(status Status, actorIsOwner bool) bool {
	return actorIsOwner && (status == StatusDraft || status == StatusRemanded)
}

// AttemptTransition applies tr to a copy of rep and returns the updated copy.
// It is a pure decision function: the caller persists the result against the
// status it read, rejecting if the stored status moved in the meantime.
// Rejections leave the report untouched and distinguish a wrong actor
// (ErrNotReportOwner, ErrActorRoleDenied) from a wrong status
// (ErrInvalidTransition). Permission is checked first so an unauthorized
// caller learns nothing about the report's state.
func AttemptTransition(rep MonthlyReport, tr Transition, actor Actor, now time.Time, remandReason string) (MonthlyReport, error) {
	switch tr {
	case TransitionSubmit:
		if actor.EmployeeID != rep.EmployeeID {
			return rep, ErrNotReportOwner
		}
		if rep.Status != StatusDraft && rep.Status != StatusRemanded {
			return rep, ErrInvalidTransition
		}
		// The remand reason stays on the row for audit; a fresh submission
		// simply stops displaying it.
		rep.Status = StatusSubmitted
		rep.SubmittedDate = &now

	case TransitionWithdraw:
		if actor.EmployeeID != rep.EmployeeID {
			return rep, ErrNotReportOwner
		}
		if rep.Status != StatusSubmitted {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusDraft
		rep.SubmittedDate = nil

	case TransitionApprove:
		if actor.Role != employee.RoleManager {
			return rep, ErrActorRoleDenied
		}
		if rep.Status != StatusSubmitted {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusApproved
		rep.ManagerApprovalDate = &now

	case TransitionRemand:
		if actor.Role != employee.RoleManager {
			return rep, ErrActorRoleDenied
		}
		if rep.Status != StatusSubmitted {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusRemanded
		rep.RemandReason = &remandReason

	case TransitionUnapprove:
		if actor.Role != employee.RoleManager {
			return rep, ErrActorRoleDenied
		}
		if rep.Status != StatusApproved {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusSubmitted
		rep.ManagerApprovalDate = nil

	case TransitionFinalize:
		if actor.Role != employee.RoleAccounting {
			return rep, ErrActorRoleDenied
		}
		if rep.Status != StatusApproved {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusFinalized
		rep.AccountingApprovalDate = &now
		rep.ApprovalDate = &now

	case TransitionDefinalize:
		if actor.Role != employee.RoleAccounting {
			return rep, ErrActorRoleDenied
		}
		if rep.Status != StatusFinalized {
			return rep, ErrInvalidTransition
		}
		rep.Status = StatusApproved
		rep.AccountingApprovalDate = nil
		rep.ApprovalDate = nil

	default:
		return rep, ErrUnknownTransition
	}

	return rep, nil
}
