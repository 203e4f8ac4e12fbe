/**
 * @description
 * This file defines the HTTP handlers for the designation service's API
 * endpoints. Handlers are responsible for parsing requests, calling the
 * appropriate service method, and writing the response; all business rules
 * live in the service layer.
 *
 * @dependencies
 * - Standard Go libraries for HTTP, JSON, etc.
 * - Chi router for URL parameter handling.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trustmark/designation-service/internal/app"
	"github.com/trustmark/designation-service/internal/domain"
)

// AccountHandler holds the dependencies for account-related handlers.
type AccountHandler struct {
	service *app.DesignationService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *app.DesignationService) *AccountHandler {
	return &AccountHandler{service: service}
}

// AddAccountRequest defines the expected JSON body for registering an account.
type AddAccountRequest struct {
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	Institution   string `json:"institution"`
	Balance       string `json:"balance"`
}

// AddAccount handles the registration of a new account.
func (h *AccountHandler) AddAccount(w http.ResponseWriter, r *http.Request) {
	var req AddAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.AddAccount(r.Context(), app.AddAccountInput{
		AccountNumber: req.AccountNumber,
		Type:          domain.AccountType(req.AccountType),
		Institution:   req.Institution,
		Balance:       req.Balance,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// ListAccounts handles listing every account.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// GetAccount handles fetching a single account.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// GetAllocation handles fetching an account's allocation summary.
func (h *AccountHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Allocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// PushUpdate handles pushing designations to a connected institution.
func (h *AccountHandler) PushUpdate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.PushUpdate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// SyncAccount handles refreshing an account from its institution.
func (h *AccountHandler) SyncAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SyncAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// DesignationForm handles generating the beneficiary designation form PDF.
func (h *AccountHandler) DesignationForm(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GeneratePDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="designation-form.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// BeneficiaryHandler holds the dependencies for beneficiary-related handlers.
type BeneficiaryHandler struct {
	service *app.DesignationService
}

// NewBeneficiaryHandler creates a new BeneficiaryHandler.
func NewBeneficiaryHandler(service *app.DesignationService) *BeneficiaryHandler {
	return &BeneficiaryHandler{service: service}
}

// BeneficiaryRequest defines the expected JSON body for adding or editing a
// beneficiary. Percentage is a pointer so a missing field is distinguishable
// from an explicit zero.
type BeneficiaryRequest struct {
	Name         string   `json:"name"`
	Relationship string   `json:"relationship"`
	Percentage   *float64 `json:"percentage"`
	IsPrimary    bool     `json:"is_primary"`
}

func (req BeneficiaryRequest) input() app.BeneficiaryInput {
	return app.BeneficiaryInput{
		Name:         req.Name,
		Relationship: domain.Relationship(req.Relationship),
		Percentage:   req.Percentage,
		IsPrimary:    req.IsPrimary,
	}
}

// AddBeneficiary handles adding a beneficiary to an account.
func (h *BeneficiaryHandler) AddBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req BeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.AddBeneficiary(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

// EditBeneficiary handles replacing a beneficiary's mutable fields.
func (h *BeneficiaryHandler) EditBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req BeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.EditBeneficiary(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "beneficiaryID"), req.input())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// DeleteBeneficiary handles removing a beneficiary from an account.
func (h *BeneficiaryHandler) DeleteBeneficiary(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.DeleteBeneficiary(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "beneficiaryID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// SubmissionHandler holds the dependencies for submission workflow handlers.
type SubmissionHandler struct {
	service *app.DesignationService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(service *app.DesignationService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Begin handles starting a submission for a dirty, eligible account.
func (h *SubmissionHandler) Begin(w http.ResponseWriter, r *http.Request) {
	if err := h.service.BeginSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Confirm handles completing a pending submission.
func (h *SubmissionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.ConfirmSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Cancel handles abandoning a pending submission.
func (h *SubmissionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AuditHandler holds the dependencies for audit log handlers.
type AuditHandler struct {
	service *app.DesignationService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(service *app.DesignationService) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListEntries handles reading the audit trail, most recent entry first.
func (h *AuditHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.AuditLog(r.Context()))
}

// InstitutionHandler holds the dependencies for directory handlers.
type InstitutionHandler struct {
	service *app.DesignationService
}

// NewInstitutionHandler creates a new InstitutionHandler.
func NewInstitutionHandler(service *app.DesignationService) *InstitutionHandler {
	return &InstitutionHandler{service: service}
}

// ListInstitutions handles reading the institution directory.
func (h *InstitutionHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Institutions())
}

// GetInstitution handles resolving one institution, with the disconnected
// fallback for unknown ids.
func (h *InstitutionHandler) GetInstitution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Institution(chi.URLParam(r, "id")))
}

// writeJSON is a helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"Failed to encode response"}`, http.StatusInternalServerError)
	}
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrBeneficiaryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrNoUnsavedChanges),
		errors.Is(err, domain.ErrNoPendingSubmission),
		errors.Is(err, domain.ErrInstitutionOffline):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
