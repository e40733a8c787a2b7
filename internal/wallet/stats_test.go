package wallet

import (
	"testing"

	"tukangku-backend/internal/models"
)

// Rangkaian lengkap: topup di-approve, klaim lain ditolak, fee kepotong,
// lalu cek angka dashboard-nya.
func TestWalletStatsAfterFullFlow(t *testing.T) {
	svc := newTestService(t) // fee 10%
	const w1 = 100
	const w2 = 101

	// W1 klaim 500rb, admin approve 480rb
	r1, err := svc.SubmitDeposit(w1, 500000, "https://cdn.example.com/tx1.jpg", "TX1")
	if err != nil {
		t.Fatalf("submit r1: %v", err)
	}
	if _, _, err := svc.ApproveDeposit(r1.ID, 1, 480000, "bank fee diff"); err != nil {
		t.Fatalf("approve r1: %v", err)
	}

	// W2 klaim 100rb, ditolak — tidak boleh ngefek ke angka manapun
	r2, err := svc.SubmitDeposit(w2, 100000, "https://cdn.example.com/tx2.jpg", "TX2")
	if err != nil {
		t.Fatalf("submit r2: %v", err)
	}
	if _, err := svc.RejectDeposit(r2.ID, 1, "no matching bank transfer"); err != nil {
		t.Fatalf("reject r2: %v", err)
	}

	// Job W1 selesai: fee 10% dari 100rb = 10rb
	if _, err := svc.ApplyJobFee(w1, 100000); err != nil {
		t.Fatalf("apply fee: %v", err)
	}

	stats, err := svc.GetWalletStats()
	if err != nil {
		t.Fatalf("wallet stats: %v", err)
	}

	if stats.TotalBalance != 470000 {
		t.Fatalf("total balance: want 470000, got %d", stats.TotalBalance)
	}
	if stats.TotalDeposited != 480000 {
		t.Fatalf("total deposited: want 480000, got %d", stats.TotalDeposited)
	}
	if stats.TotalDeducted != 10000 {
		t.Fatalf("total deducted: want 10000, got %d", stats.TotalDeducted)
	}
	if stats.WalletCount != 1 {
		// W2 ditolak, wallet-nya tidak pernah dibuat
		t.Fatalf("wallet count: want 1, got %d", stats.WalletCount)
	}
	if stats.NegativeWalletCount != 0 {
		t.Fatalf("negative wallet count: want 0, got %d", stats.NegativeWalletCount)
	}
}

func TestTransactionStatsGroupsByType(t *testing.T) {
	svc := newTestService(t)

	seed := []struct {
		trxType string
		amount  int64
	}{
		{models.TrxDeposit, 100000},
		{models.TrxDeposit, 50000},
		{models.TrxDeduction, 7000},
		{models.TrxRefund, 2000},
	}
	for _, s := range seed {
		if _, err := svc.ApplyTransaction(200, s.trxType, s.amount, nil, ""); err != nil {
			t.Fatalf("apply %s: %v", s.trxType, err)
		}
	}

	stats, err := svc.GetTransactionStats()
	if err != nil {
		t.Fatalf("transaction stats: %v", err)
	}

	want := map[string]TransactionTypeStat{
		models.TrxDeposit:   {Type: models.TrxDeposit, Count: 2, TotalAmount: 150000},
		models.TrxDeduction: {Type: models.TrxDeduction, Count: 1, TotalAmount: 7000},
		models.TrxRefund:    {Type: models.TrxRefund, Count: 1, TotalAmount: 2000},
	}
	if len(stats) != len(want) {
		t.Fatalf("want %d groups, got %d", len(want), len(stats))
	}
	for _, got := range stats {
		w, ok := want[got.Type]
		if !ok {
			t.Fatalf("unexpected group %q", got.Type)
		}
		if got.Count != w.Count || got.TotalAmount != w.TotalAmount {
			t.Fatalf("group %s: want %+v, got %+v", got.Type, w, got)
		}
	}
}
