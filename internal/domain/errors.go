/**
 * @description
 * Sentinel errors shared across the service. Every refusal leaves state
 * unchanged; callers inspect these with errors.Is to distinguish a
 * validation no-op from a missing target or a blocked submission.
 */
package domain

import "errors"

var (
	// ErrValidation marks a declined operation: a required field was
	// missing or outside its allowed domain. Nothing was changed and no
	// audit entry was recorded.
	ErrValidation = errors.New("missing or invalid required field")

	// ErrAccountNotFound marks an operation referencing an unknown account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBeneficiaryNotFound marks an edit or delete referencing an unknown
	// beneficiary on an existing account.
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")

	// ErrNotEligible marks a submission attempt while the account's
	// allocation does not satisfy the submission rules.
	ErrNotEligible = errors.New("account is not eligible for submission")

	// ErrNoUnsavedChanges marks a submission attempt on a clean account.
	ErrNoUnsavedChanges = errors.New("account has no unsaved changes")

	// ErrNoPendingSubmission marks a confirm or cancel without a prior
	// submission in progress.
	ErrNoPendingSubmission = errors.New("no submission pending confirmation")

	// ErrInstitutionOffline marks a push or sync against an institution
	// without API connectivity.
	ErrInstitutionOffline = errors.New("institution is not connected")
)
