/**
 * @description
 * This file contains the core business logic of the designation service,
 * implemented as a `DesignationService`. It owns the session state the
 * dashboard operates on: the account ledger, the audit trail, the injected
 * institution directory and the per-account submission workflow. Every
 * mutation is validated here, applied through the ledger, and captured as
 * exactly one audit entry.
 *
 * @notes
 * - Refused operations (validation failures, missing targets, blocked
 *   submissions) change nothing and record nothing; the sentinel errors in
 *   the domain package tell the caller why nothing happened.
 * - The service notifies an EventSink after each recorded audit entry so the
 *   presentation layer can subscribe instead of being entangled with state.
 */
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trustmark/designation-service/internal/allocation"
	"github.com/trustmark/designation-service/internal/domain"
	"github.com/trustmark/designation-service/internal/store"
)

// InstitutionClient is the contract for the (simulated) institution API
// connector.
type InstitutionClient interface {
	SubmitDesignations(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error)
	PushUpdate(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error)
	SyncAccount(ctx context.Context, inst domain.Institution, account *domain.Account) (string, error)
}

// FormRenderer produces the beneficiary designation form document.
type FormRenderer interface {
	Render(account *domain.Account, inst domain.Institution) ([]byte, error)
}

// EventSink receives every audit entry as it is recorded. Implementations
// must not block.
type EventSink interface {
	AuditRecorded(entry domain.AuditEntry)
}

// NopSink discards audit events.
type NopSink struct{}

// AuditRecorded implements EventSink.
func (NopSink) AuditRecorded(domain.AuditEntry) {}

// DesignationService provides the operations for managing accounts,
// beneficiary designations, the audit trail and the submission workflow.
type DesignationService struct {
	ledger       store.Ledger
	audit        store.AuditTrail
	directory    *store.Directory
	institutions InstitutionClient
	renderer     FormRenderer
	sink         EventSink
	logger       *slog.Logger

	mu      sync.Mutex
	pending map[string]struct{} // account ids with a submission awaiting confirmation
}

// NewDesignationService creates a new instance of DesignationService.
func NewDesignationService(
	ledger store.Ledger,
	audit store.AuditTrail,
	directory *store.Directory,
	institutions InstitutionClient,
	renderer FormRenderer,
	sink EventSink,
	logger *slog.Logger,
) *DesignationService {
	if sink == nil {
		sink = NopSink{}
	}
	return &DesignationService{
		ledger:       ledger,
		audit:        audit,
		directory:    directory,
		institutions: institutions,
		renderer:     renderer,
		sink:         sink,
		logger:       logger,
		pending:      make(map[string]struct{}),
	}
}

// AddAccountInput defines the required input for registering an account.
// Balance arrives as the raw form value; unparseable or negative values
// default to zero.
type AddAccountInput struct {
	AccountNumber string
	Type          domain.AccountType
	Institution   string
	Balance       string
}

// AddAccount registers a new account with an empty beneficiary collection.
func (s *DesignationService) AddAccount(ctx context.Context, input AddAccountInput) (*domain.Account, error) {
	if input.AccountNumber == "" {
		return nil, fmt.Errorf("account number: %w", domain.ErrValidation)
	}
	if input.Type == "" || !input.Type.Valid() {
		return nil, fmt.Errorf("account type: %w", domain.ErrValidation)
	}
	if input.Institution == "" {
		return nil, fmt.Errorf("institution: %w", domain.ErrValidation)
	}

	balance, err := strconv.ParseFloat(input.Balance, 64)
	if err != nil || balance < 0 {
		balance = 0
	}

	account := &domain.Account{
		ID:            uuid.NewString(),
		AccountNumber: input.AccountNumber,
		Type:          input.Type,
		Institution:   input.Institution,
		Balance:       balance,
		Beneficiaries: []domain.Beneficiary{},
		LastUpdated:   time.Now(),
	}
	if err := s.ledger.InsertAccount(ctx, account); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionAddAccount, account.ID,
		fmt.Sprintf("Added new %s account %s", account.Type, account.AccountNumber),
		domain.StatusSuccess, domain.ResponsePendingSync)
	return account, nil
}

// BeneficiaryInput defines the mutable fields for adding or editing a
// beneficiary. Percentage is a pointer so an absent value is distinguishable
// from zero.
type BeneficiaryInput struct {
	Name         string
	Relationship domain.Relationship
	Percentage   *float64
	IsPrimary    bool
}

func (input BeneficiaryInput) validate() (domain.Percent, error) {
	if input.Name == "" {
		return 0, fmt.Errorf("name: %w", domain.ErrValidation)
	}
	if input.Relationship == "" || !input.Relationship.Valid() {
		return 0, fmt.Errorf("relationship: %w", domain.ErrValidation)
	}
	if input.Percentage == nil {
		return 0, fmt.Errorf("percentage: %w", domain.ErrValidation)
	}
	pct := domain.PercentFromFloat(*input.Percentage)
	if !pct.Valid() {
		return 0, fmt.Errorf("percentage: %w", domain.ErrValidation)
	}
	return pct, nil
}

// AddBeneficiary appends a new beneficiary to the account, assigning a fresh
// id and a synthetic masked SSN, and marks the account as having unsaved
// changes.
func (s *DesignationService) AddBeneficiary(ctx context.Context, accountID string, input BeneficiaryInput) (*domain.Account, error) {
	pct, err := input.validate()
	if err != nil {
		return nil, err
	}

	b := domain.Beneficiary{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Relationship: input.Relationship,
		Percentage:   pct,
		SSN:          domain.NewMaskedSSN(),
		IsPrimary:    input.IsPrimary,
	}
	account, err := s.ledger.AppendBeneficiary(ctx, accountID, b)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionAddBeneficiary, accountID,
		fmt.Sprintf("Added new beneficiary: %s (%s)", b.Name, b.Percentage),
		domain.StatusPending, domain.ResponseNotSubmitted)
	return account, nil
}

// EditBeneficiary replaces the mutable fields of an existing beneficiary.
// Its position in the collection, its id and its SSN are unchanged.
func (s *DesignationService) EditBeneficiary(ctx context.Context, accountID, beneficiaryID string, input BeneficiaryInput) (*domain.Account, error) {
	pct, err := input.validate()
	if err != nil {
		return nil, err
	}

	b := domain.Beneficiary{
		ID:           beneficiaryID,
		Name:         input.Name,
		Relationship: input.Relationship,
		Percentage:   pct,
		IsPrimary:    input.IsPrimary,
	}
	account, err := s.ledger.ReplaceBeneficiary(ctx, accountID, b)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionUpdateBeneficiary, accountID,
		fmt.Sprintf("Updated beneficiary: %s (%s)", b.Name, b.Percentage),
		domain.StatusPending, domain.ResponseNotSubmitted)
	return account, nil
}

// DeleteBeneficiary removes a beneficiary from the account. Referencing an
// unknown beneficiary is an explicit no-op returning ErrBeneficiaryNotFound;
// no other account is touched.
func (s *DesignationService) DeleteBeneficiary(ctx context.Context, accountID, beneficiaryID string) (*domain.Account, error) {
	removed, account, err := s.ledger.RemoveBeneficiary(ctx, accountID, beneficiaryID)
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActionDeleteBeneficiary, accountID,
		fmt.Sprintf("Removed beneficiary: %s", removed.Name),
		domain.StatusPending, domain.ResponseNotSubmitted)
	return account, nil
}

// ListAccounts returns every account in insertion order.
func (s *DesignationService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.ledger.ListAccounts(ctx)
}

// GetAccount returns a single account by id.
func (s *DesignationService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.ledger.GetAccount(ctx, accountID)
}

// AuditLog returns the audit trail, most recent entry first.
func (s *DesignationService) AuditLog(ctx context.Context) []domain.AuditEntry {
	return s.audit.Entries(ctx)
}

// Institutions returns the injected institution directory.
func (s *DesignationService) Institutions() []domain.Institution {
	return s.directory.All()
}

// Institution resolves one directory entry, falling back to a disconnected
// placeholder for unknown ids.
func (s *DesignationService) Institution(institutionID string) domain.Institution {
	return s.directory.Lookup(institutionID)
}

// AllocationSummary reports the per-group totals and submission eligibility
// the presentation layer gates on.
type AllocationSummary struct {
	PrimaryTotal        domain.Percent `json:"primary_total"`
	ContingentTotal     domain.Percent `json:"contingent_total"`
	Total               domain.Percent `json:"total"`
	CanSubmit           bool           `json:"can_submit"`
	HasUnsavedChanges   bool           `json:"has_unsaved_changes"`
	PendingConfirmation bool           `json:"pending_confirmation"`
}

// Allocation computes the allocation summary for one account.
func (s *DesignationService) Allocation(ctx context.Context, accountID string) (*AllocationSummary, error) {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &AllocationSummary{
		PrimaryTotal:        allocation.PrimaryTotal(account.Beneficiaries),
		ContingentTotal:     allocation.ContingentTotal(account.Beneficiaries),
		Total:               allocation.Total(account.Beneficiaries),
		CanSubmit:           allocation.CanSubmit(account),
		HasUnsavedChanges:   account.HasUnsavedChanges,
		PendingConfirmation: s.PendingConfirmation(accountID),
	}, nil
}

// record appends one audit entry, notifies the event sink and logs it.
func (s *DesignationService) record(ctx context.Context, action domain.AuditAction, accountID, details string, status domain.AuditStatus, response string) {
	entry := s.audit.Record(ctx, action, accountID, details, status, response)
	s.sink.AuditRecorded(entry)
	s.logger.Info("audit entry recorded",
		"action", entry.Action, "account_id", entry.AccountID, "status", entry.Status)
}
