package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/trustmark/designation-service/internal/domain"
)

func testAccount(id string) *domain.Account {
	return &domain.Account{
		ID:            id,
		AccountNumber: "IRA-" + id,
		Type:          domain.AccountTraditionalIRA,
		Institution:   "fidelity",
		Balance:       1000,
		Beneficiaries: []domain.Beneficiary{},
	}
}

func testBeneficiary(id string, pct float64) domain.Beneficiary {
	return domain.Beneficiary{
		ID:           id,
		Name:         "Beneficiary " + id,
		Relationship: domain.RelationshipSpouse,
		Percentage:   domain.PercentFromFloat(pct),
		SSN:          "***-**-1234",
		IsPrimary:    true,
	}
}

func TestLedgerSnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	if err := ledger.InsertAccount(ctx, testAccount("a1")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 100)); err != nil {
		t.Fatalf("append: %v", err)
	}

	snap, err := ledger.GetAccount(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	snap.Beneficiaries[0].Name = "mutated"
	snap.HasUnsavedChanges = false

	fresh, err := ledger.GetAccount(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Beneficiaries[0].Name == "mutated" {
		t.Error("mutating a snapshot leaked into stored state")
	}
	if !fresh.HasUnsavedChanges {
		t.Error("dirty flag lost through snapshot mutation")
	}
}

func TestAppendBeneficiaryMarksDirtyAndStampsTime(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	if err := ledger.InsertAccount(ctx, testAccount("a1")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	before, _ := ledger.GetAccount(ctx, "a1")
	account, err := ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 50))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !account.HasUnsavedChanges {
		t.Error("append did not mark account dirty")
	}
	if !account.LastUpdated.After(before.LastUpdated) && !account.LastUpdated.Equal(before.LastUpdated) {
		t.Error("LastUpdated not stamped")
	}
	if len(account.Beneficiaries) != 1 {
		t.Fatalf("beneficiary count = %d, want 1", len(account.Beneficiaries))
	}
}

func TestReplaceBeneficiaryPreservesPositionIDAndSSN(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	if err := ledger.InsertAccount(ctx, testAccount("a1")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 60))
	ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b2", 40))

	account, err := ledger.ReplaceBeneficiary(ctx, "a1", domain.Beneficiary{
		ID:           "b1",
		Name:         "Renamed",
		Relationship: domain.RelationshipChild,
		Percentage:   domain.PercentFromFloat(90),
		IsPrimary:    false,
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := account.Beneficiaries[0]
	if got.ID != "b1" {
		t.Errorf("edited beneficiary moved: first slot holds %s", got.ID)
	}
	if got.SSN != "***-**-1234" {
		t.Errorf("SSN changed on edit: %s", got.SSN)
	}
	if got.Name != "Renamed" || got.Relationship != domain.RelationshipChild || got.IsPrimary {
		t.Errorf("mutable fields not replaced: %+v", got)
	}
	if got.Percentage != domain.PercentFromFloat(90) {
		t.Errorf("percentage = %s, want 90%%", got.Percentage)
	}
}

func TestReplaceBeneficiaryUnknownID(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.InsertAccount(ctx, testAccount("a1"))

	_, err := ledger.ReplaceBeneficiary(ctx, "a1", testBeneficiary("missing", 10))
	if !errors.Is(err, domain.ErrBeneficiaryNotFound) {
		t.Errorf("err = %v, want ErrBeneficiaryNotFound", err)
	}
}

func TestRemoveBeneficiary(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.InsertAccount(ctx, testAccount("a1"))
	ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 60))
	ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b2", 40))

	removed, account, err := ledger.RemoveBeneficiary(ctx, "a1", "b1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.ID != "b1" {
		t.Errorf("removed %s, want b1", removed.ID)
	}
	if len(account.Beneficiaries) != 1 || account.Beneficiaries[0].ID != "b2" {
		t.Errorf("remaining collection wrong: %+v", account.Beneficiaries)
	}
}

func TestRemoveBeneficiaryUnknownIDLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.InsertAccount(ctx, testAccount("a1"))
	account, _ := ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 100))
	beforeUpdated := account.LastUpdated

	_, _, err := ledger.RemoveBeneficiary(ctx, "a1", "missing")
	if !errors.Is(err, domain.ErrBeneficiaryNotFound) {
		t.Fatalf("err = %v, want ErrBeneficiaryNotFound", err)
	}

	after, _ := ledger.GetAccount(ctx, "a1")
	if len(after.Beneficiaries) != 1 {
		t.Errorf("beneficiary collection changed by failed delete")
	}
	if !after.LastUpdated.Equal(beforeUpdated) {
		t.Errorf("LastUpdated changed by failed delete")
	}
}

func TestMarkSubmittedClearsDirtyFlag(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	ledger.InsertAccount(ctx, testAccount("a1"))
	ledger.AppendBeneficiary(ctx, "a1", testBeneficiary("b1", 100))

	now := time.Now()
	account, err := ledger.MarkSubmitted(ctx, "a1", now)
	if err != nil {
		t.Fatalf("mark submitted: %v", err)
	}
	if account.HasUnsavedChanges {
		t.Error("dirty flag not cleared")
	}
	if account.LastSubmitted == nil || !account.LastSubmitted.Equal(now) {
		t.Errorf("LastSubmitted = %v, want %v", account.LastSubmitted, now)
	}
}

func TestUnknownAccount(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	if _, err := ledger.GetAccount(ctx, "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("GetAccount err = %v, want ErrAccountNotFound", err)
	}
	if _, err := ledger.AppendBeneficiary(ctx, "missing", testBeneficiary("b1", 10)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("AppendBeneficiary err = %v, want ErrAccountNotFound", err)
	}
}

func TestListAccountsPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()
	for _, id := range []string{"a1", "a2", "a3"} {
		ledger.InsertAccount(ctx, testAccount(id))
	}

	accounts, err := ledger.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("len = %d, want 3", len(accounts))
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if accounts[i].ID != want {
			t.Errorf("accounts[%d] = %s, want %s", i, accounts[i].ID, want)
		}
	}
}
