/**
 * @description
 * This file defines the AuditEntry domain model and its action/status
 * enumerations. Every mutating operation and every institution interaction
 * produces exactly one entry; entries are immutable once recorded.
 */
package domain

import "time"

// AuditAction identifies the kind of event an audit entry records.
type AuditAction string

const (
	ActionAddAccount        AuditAction = "ADD_ACCOUNT"
	ActionAddBeneficiary    AuditAction = "ADD_BENEFICIARY"
	ActionUpdateBeneficiary AuditAction = "UPDATE_BENEFICIARY"
	ActionDeleteBeneficiary AuditAction = "DELETE_BENEFICIARY"
	ActionSubmitChanges     AuditAction = "SUBMIT_CHANGES"
	ActionSyncAccount       AuditAction = "SYNC_ACCOUNT"
	ActionPushUpdate        AuditAction = "PUSH_UPDATE"
	ActionGeneratePDF       AuditAction = "GENERATE_PDF"
)

// AuditStatus is the outcome recorded on an audit entry.
type AuditStatus string

const (
	StatusSuccess AuditStatus = "SUCCESS"
	StatusPending AuditStatus = "PENDING"
	StatusFailure AuditStatus = "FAILURE"
)

// Simulated institution response codes attached to audit entries.
const (
	ResponsePendingSync     = "PENDING_SYNC"
	ResponseNotSubmitted    = "NOT_SUBMITTED"
	ResponseChangesAccepted = "CHANGES_ACCEPTED"
	ResponseAckReceived     = "ACK_RECEIVED"
	ResponseDataSynced      = "DATA_SYNCED"
	ResponseDocumentReady   = "DOCUMENT_READY"
)

// AuditEntry is one immutable record in the append-only audit trail.
// AccountID references the affected account without owning it.
type AuditEntry struct {
	ID                  string      `json:"id"`
	Timestamp           time.Time   `json:"timestamp"`
	Action              AuditAction `json:"action"`
	AccountID           string      `json:"account_id"`
	Details             string      `json:"details"`
	Status              AuditStatus `json:"status"`
	InstitutionResponse string      `json:"institution_response"`
}
