package wallet

import (
	"testing"

	"tukangku-backend/internal/models"
)

// Skenario: fee 10%, job 100rb -> potongan pas 10rb
func TestApplyJobFeeDeductsConfiguredPercentage(t *testing.T) {
	svc := newTestService(t) // seed: 10%
	const workerID = 21

	// Kasih saldo dulu biar kelihatan turunnya
	if _, err := svc.ApplyTransaction(workerID, models.TrxDeposit, 480000, nil, "modal"); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	trx, err := svc.ApplyJobFee(workerID, 100000)
	if err != nil {
		t.Fatalf("apply fee: %v", err)
	}
	if trx.Type != models.TrxDeduction || trx.Amount != 10000 {
		t.Fatalf("want DEDUCTION 10000, got %s %d", trx.Type, trx.Amount)
	}

	account := mustGetAccount(t, svc, workerID)
	if account.Balance != 470000 {
		t.Fatalf("want balance 470000, got %d", account.Balance)
	}
}

func TestApplyJobFeeRoundsHalfUp(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		pct     float64
		gross   int64
		wantFee int64
	}{
		{"exact", 10, 100000, 10000},
		{"half rounds up", 5, 250, 13},            // 12.5 -> 13
		{"below half rounds down", 7, 12345, 864}, // 864.15 -> 864
		{"fractional percentage", 2.5, 333, 8},    // 8.325 -> 8
	}

	userID := uint64(30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID++
			if _, err := svc.UpdateFeeConfig(models.UpdateFeeConfigInput{FeePercentage: &tt.pct}, 1); err != nil {
				t.Fatalf("set percentage: %v", err)
			}

			trx, err := svc.ApplyJobFee(userID, tt.gross)
			if err != nil {
				t.Fatalf("apply fee: %v", err)
			}
			if trx.Amount != tt.wantFee {
				t.Fatalf("pct %v of %d: want fee %d, got %d", tt.pct, tt.gross, tt.wantFee, trx.Amount)
			}
		})
	}
}

func TestApplyJobFeeZeroPercentageWritesNothing(t *testing.T) {
	svc := newTestService(t)

	zero := 0.0
	if _, err := svc.UpdateFeeConfig(models.UpdateFeeConfigInput{FeePercentage: &zero}, 1); err != nil {
		t.Fatalf("set percentage: %v", err)
	}

	trx, err := svc.ApplyJobFee(40, 100000)
	if err != nil {
		t.Fatalf("apply fee: %v", err)
	}
	if trx != nil {
		t.Fatalf("want no transaction at 0%%, got %+v", trx)
	}

	var n int64
	svc.DB.Model(&models.WalletTransaction{}).Count(&n)
	if n != 0 {
		t.Fatalf("0%% fee still wrote %d ledger rows", n)
	}
}

// Potongan fee boleh bikin saldo minus, dan minusnya harus kelaporan
func TestApplyJobFeeMayGoNegative(t *testing.T) {
	svc := newTestService(t)
	const workerID = 50

	trx, err := svc.ApplyJobFee(workerID, 200000) // 10% = 20rb, saldo awal 0
	if err != nil {
		t.Fatalf("apply fee: %v", err)
	}
	if trx.BalanceAfter != -20000 {
		t.Fatalf("want balance_after -20000, got %d", trx.BalanceAfter)
	}

	account := mustGetAccount(t, svc, workerID)
	if account.Balance != -20000 {
		t.Fatalf("want balance -20000 (not clamped), got %d", account.Balance)
	}

	stats, err := svc.GetWalletStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.NegativeWalletCount != 1 {
		t.Fatalf("negative wallet not counted: %+v", stats)
	}
}

func TestRefundCreditsWallet(t *testing.T) {
	svc := newTestService(t)
	const workerID = 60

	trx, err := svc.Refund(workerID, 25000, "koreksi potongan dobel")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if trx.Type != models.TrxRefund || trx.Amount != 25000 {
		t.Fatalf("unexpected refund row: %+v", trx)
	}

	account := mustGetAccount(t, svc, workerID)
	if account.Balance != 25000 || account.TotalRefunded != 25000 {
		t.Fatalf("refund not applied: %+v", account)
	}
}
