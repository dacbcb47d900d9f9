package report

import "errors"

var (
	ErrReportNotFound = errors.New("monthly report not found")

	// Lifecycle rejections. Status and actor mismatches are distinct so the
	// caller can tell which precondition failed.
	ErrInvalidTransition = errors.New("transition not allowed from current report status")
	ErrActorRoleDenied   = errors.New("actor role may not perform this transition")
	ErrNotReportOwner    = errors.New("only the report's own employee may perform this action")
	ErrUnknownTransition = errors.New("unknown transition")

	// ErrStatusConflict means the stored status changed between read and
	// write; the caller must re-read and retry.
	ErrStatusConflict = errors.New("report status changed concurrently")

	// ErrReportLocked rejects edits to day records or notes outside the
	// draft and remanded states.
	ErrReportLocked = errors.New("report is not editable in its current status")
)
