package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trustmark/designation-service/internal/app"
	"github.com/trustmark/designation-service/internal/domain"
	"github.com/trustmark/designation-service/internal/pdfform"
	"github.com/trustmark/designation-service/internal/store"
	"github.com/trustmark/designation-service/pkg/institution"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.DesignationService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	directory := store.NewDirectory([]domain.Institution{
		{ID: "fidelity", Name: "Fidelity Investments", Connected: true, APIVersion: "v2.1"},
		{ID: "vanguard", Name: "Vanguard", Connected: false},
	})
	feed := NewAuditFeed(logger)
	service := app.NewDesignationService(
		store.NewMemoryLedger(),
		store.NewMemoryAuditTrail(),
		directory,
		institution.NewClient(logger),
		pdfform.NewRenderer(),
		feed,
		logger,
	)
	server := httptest.NewServer(NewRouter(service, feed))
	t.Cleanup(server.Close)
	t.Cleanup(func() { feed.Close() })
	return server, service
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAddAccountEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/accounts",
		`{"account_number":"IRA-001234","account_type":"Traditional IRA","institution":"fidelity","balance":"125000"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var account domain.Account
	decode(t, resp, &account)
	if account.ID == "" || account.Balance != 125000 {
		t.Errorf("account = %+v", account)
	}
}

func TestAddAccountEndpointValidation(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/accounts", `{"account_type":"Traditional IRA","institution":"fidelity"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBeneficiaryEndpoints(t *testing.T) {
	server, service := newTestServer(t)
	account, err := service.AddAccount(context.Background(), app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "fidelity",
	})
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}

	resp := postJSON(t, server.URL+"/api/accounts/"+account.ID+"/beneficiaries",
		`{"name":"Sarah Johnson","relationship":"Spouse","percentage":100,"is_primary":true}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add beneficiary status = %d, want 201", resp.StatusCode)
	}
	var updated domain.Account
	decode(t, resp, &updated)
	if len(updated.Beneficiaries) != 1 || !updated.HasUnsavedChanges {
		t.Errorf("updated account = %+v", updated)
	}

	// Missing percentage must be a 400, not a zero share.
	resp = postJSON(t, server.URL+"/api/accounts/"+account.ID+"/beneficiaries",
		`{"name":"Michael Johnson","relationship":"Child","is_primary":true}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing percentage status = %d, want 400", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete,
		server.URL+"/api/accounts/"+account.ID+"/beneficiaries/"+updated.Beneficiaries[0].ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d, want 200", delResp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete,
		server.URL+"/api/accounts/"+account.ID+"/beneficiaries/missing", nil)
	delResp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", delResp.StatusCode)
	}
}

func TestSubmissionEndpoints(t *testing.T) {
	server, service := newTestServer(t)
	ctx := context.Background()
	account, _ := service.AddAccount(ctx, app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "fidelity",
	})
	pct := 100.0
	service.AddBeneficiary(ctx, account.ID, app.BeneficiaryInput{
		Name: "Sarah Johnson", Relationship: domain.RelationshipSpouse, Percentage: &pct, IsPrimary: true,
	})

	resp := postJSON(t, server.URL+"/api/accounts/"+account.ID+"/submission", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("begin status = %d, want 202", resp.StatusCode)
	}

	resp = postJSON(t, server.URL+"/api/accounts/"+account.ID+"/submission/confirm", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm status = %d, want 200", resp.StatusCode)
	}
	var submitted domain.Account
	decode(t, resp, &submitted)
	if submitted.HasUnsavedChanges || submitted.LastSubmitted == nil {
		t.Errorf("submitted account = %+v", submitted)
	}

	// A second confirm has nothing pending.
	resp = postJSON(t, server.URL+"/api/accounts/"+account.ID+"/submission/confirm", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("repeat confirm status = %d, want 409", resp.StatusCode)
	}
}

func TestAllocationEndpoint(t *testing.T) {
	server, service := newTestServer(t)
	ctx := context.Background()
	account, _ := service.AddAccount(ctx, app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "fidelity",
	})
	pct := 50.0
	service.AddBeneficiary(ctx, account.ID, app.BeneficiaryInput{
		Name: "A", Relationship: domain.RelationshipSpouse, Percentage: &pct, IsPrimary: true,
	})

	resp, err := http.Get(server.URL + "/api/accounts/" + account.ID + "/allocation")
	if err != nil {
		t.Fatalf("GET allocation: %v", err)
	}
	var summary app.AllocationSummary
	decode(t, resp, &summary)
	if summary.PrimaryTotal != domain.PercentFromFloat(50) || summary.CanSubmit {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAuditLogEndpoint(t *testing.T) {
	server, service := newTestServer(t)
	ctx := context.Background()
	account, _ := service.AddAccount(ctx, app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "fidelity",
	})
	pct := 100.0
	service.AddBeneficiary(ctx, account.ID, app.BeneficiaryInput{
		Name: "A", Relationship: domain.RelationshipSpouse, Percentage: &pct, IsPrimary: true,
	})

	resp, err := http.Get(server.URL + "/api/audit-log")
	if err != nil {
		t.Fatalf("GET audit log: %v", err)
	}
	var entries []domain.AuditEntry
	decode(t, resp, &entries)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Action != domain.ActionAddBeneficiary || entries[1].Action != domain.ActionAddAccount {
		t.Errorf("order wrong: %s then %s", entries[0].Action, entries[1].Action)
	}
}

func TestInstitutionEndpoints(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/institutions")
	if err != nil {
		t.Fatalf("GET institutions: %v", err)
	}
	var institutions []domain.Institution
	decode(t, resp, &institutions)
	if len(institutions) != 2 {
		t.Errorf("institutions = %d, want 2", len(institutions))
	}

	resp, err = http.Get(server.URL + "/api/institutions/unknown-bank")
	if err != nil {
		t.Fatalf("GET institution: %v", err)
	}
	var inst domain.Institution
	decode(t, resp, &inst)
	if inst.Name != "unknown-bank" || inst.Connected {
		t.Errorf("fallback = %+v", inst)
	}
}

func TestAccountSummariesEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/account-summaries")
	if err != nil {
		t.Fatalf("GET summaries: %v", err)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %s", ct)
	}
	var summaries []accountSummary
	decode(t, resp, &summaries)
	if len(summaries) != 3 || summaries[0].Name != "Fidelity Rollover IRA" {
		t.Errorf("summaries = %+v", summaries)
	}
}

func TestDesignationFormEndpoint(t *testing.T) {
	server, service := newTestServer(t)
	account, _ := service.AddAccount(context.Background(), app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "vanguard",
	})

	resp, err := http.Get(server.URL + "/api/accounts/" + account.ID + "/designation-form.pdf")
	if err != nil {
		t.Fatalf("GET form: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %s, want application/pdf", ct)
	}
	doc, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Error("response is not a PDF document")
	}
}

func TestPushEndpointOfflineInstitution(t *testing.T) {
	server, service := newTestServer(t)
	account, _ := service.AddAccount(context.Background(), app.AddAccountInput{
		AccountNumber: "IRA-1", Type: domain.AccountTraditionalIRA, Institution: "vanguard",
	})

	resp := postJSON(t, server.URL+"/api/accounts/"+account.ID+"/push", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}
