package wallet

import (
	"testing"
	"time"

	"tukangku-backend/internal/models"
)

func TestNormalApproveLeavesNothingToReconcile(t *testing.T) {
	svc := newTestService(t)

	req, err := svc.SubmitDeposit(70, 100000, "https://cdn.example.com/tx.jpg", "REF")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, _, err := svc.ApproveDeposit(req.ID, 1, 0, ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	unsettled, err := svc.UnsettledApprovals()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(unsettled) != 0 {
		t.Fatalf("approve in one tx should never leave unsettled rows, got %d", len(unsettled))
	}
}

func TestRepairUnsettledCompletesMissingCredit(t *testing.T) {
	svc := newTestService(t)
	const workerID = 71

	// Bikin anomali secara paksa: request APPROVED tanpa transaksi ledger.
	// Di production ini cuma bisa kejadian lewat edit manual di DB.
	reviewer := uint64(1)
	now := time.Now()
	broken := models.DepositRequest{
		RequestNo:       "DEP-manual-edit",
		UserID:          workerID,
		RequestedAmount: 250000,
		ActualAmount:    250000,
		ProofURL:        "https://cdn.example.com/tx.jpg",
		BankRef:         "REF",
		Status:          models.DepositApproved,
		ReviewedBy:      &reviewer,
		ReviewedAt:      &now,
	}
	if err := svc.DB.Create(&broken).Error; err != nil {
		t.Fatalf("create broken request: %v", err)
	}

	unsettled, err := svc.UnsettledApprovals()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(unsettled) != 1 {
		t.Fatalf("want 1 unsettled approval, got %d", len(unsettled))
	}

	repaired, err := svc.RepairUnsettled()
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if repaired != 1 {
		t.Fatalf("want 1 repaired, got %d", repaired)
	}

	account := mustGetAccount(t, svc, workerID)
	if account.Balance != 250000 {
		t.Fatalf("missing credit not completed: balance %d", account.Balance)
	}
	if n := countTransactions(t, svc, broken.ID); n != 1 {
		t.Fatalf("want exactly 1 credit, got %d", n)
	}

	// Sweep kedua tidak boleh nge-kredit lagi
	repaired, err = svc.RepairUnsettled()
	if err != nil {
		t.Fatalf("second repair: %v", err)
	}
	if repaired != 0 {
		t.Fatalf("second sweep repaired %d, double credit!", repaired)
	}
	account = mustGetAccount(t, svc, workerID)
	if account.Balance != 250000 {
		t.Fatalf("balance changed on second sweep: %d", account.Balance)
	}
}
