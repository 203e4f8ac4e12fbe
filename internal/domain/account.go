/**
 * @description
 * This file defines the core domain model for a financial Account within the
 * designation service. An account owns an ordered collection of beneficiaries
 * and carries the dirty flag driving the submission workflow.
 *
 * @notes
 * - Beneficiary order is insertion order and is preserved by every mutation.
 * - `HasUnsavedChanges` becomes true on any beneficiary mutation and false
 *   only when a submission completes successfully.
 */
package domain

import "time"

// AccountType identifies the kind of financial account.
type AccountType string

const (
	AccountTraditionalIRA AccountType = "Traditional IRA"
	AccountRothIRA        AccountType = "Roth IRA"
	AccountSEPIRA         AccountType = "SEP IRA"
	AccountSIMPLEIRA      AccountType = "SIMPLE IRA"
	AccountBrokerage      AccountType = "Brokerage Account"
	AccountChecking       AccountType = "Checking Account"
	AccountSavings        AccountType = "Savings Account"
	AccountTOD            AccountType = "TOD Account"
)

// AccountTypes lists every supported account kind.
var AccountTypes = []AccountType{
	AccountTraditionalIRA,
	AccountRothIRA,
	AccountSEPIRA,
	AccountSIMPLEIRA,
	AccountBrokerage,
	AccountChecking,
	AccountSavings,
	AccountTOD,
}

// Valid reports whether the account type is one of the supported kinds.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account represents a financial account and its designated beneficiaries.
type Account struct {
	ID                string        `json:"id"`
	AccountNumber     string        `json:"account_number"`
	Type              AccountType   `json:"account_type"`
	Institution       string        `json:"institution"`
	Balance           float64       `json:"balance"`
	Beneficiaries     []Beneficiary `json:"beneficiaries"`
	LastUpdated       time.Time     `json:"last_updated"`
	LastSubmitted     *time.Time    `json:"last_submitted,omitempty"`
	HasUnsavedChanges bool          `json:"has_unsaved_changes"`
}

// Clone returns a deep copy of the account. Callers receive clones from the
// ledger so that mutating a snapshot can never corrupt stored state.
func (a *Account) Clone() *Account {
	c := *a
	c.Beneficiaries = make([]Beneficiary, len(a.Beneficiaries))
	copy(c.Beneficiaries, a.Beneficiaries)
	if a.LastSubmitted != nil {
		t := *a.LastSubmitted
		c.LastSubmitted = &t
	}
	return &c
}
