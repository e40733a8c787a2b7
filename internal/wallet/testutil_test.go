package wallet

import (
	"fmt"
	"strings"
	"testing"

	"tukangku-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService bikin service di atas sqlite in-memory.
// Nama DB unik per test biar tidak saling nyampur.
func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.DepositRequest{},
		&models.PlatformFeeConfig{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	// Seed fee config seperti di production boot
	seed := models.PlatformFeeConfig{
		FeePercentage: 10,
		MinTopup:      50000,
		MaxTopup:      10000000,
		BankName:      "BCA",
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed fee config: %v", err)
	}

	return NewService(db)
}

// sumSignedTransactions menghitung saldo versi "jumlahkan semua jurnal".
// Dipakai buat ngecek invariant rekonsiliasi.
func sumSignedTransactions(t *testing.T, svc *Service, userID uint64) int64 {
	t.Helper()

	trxs, err := svc.ListTransactions(userID, nil)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}

	var sum int64
	for _, trx := range trxs {
		switch trx.Type {
		case models.TrxDeposit, models.TrxRefund:
			sum += trx.Amount
		case models.TrxDeduction:
			sum -= trx.Amount
		default:
			t.Fatalf("unexpected transaction type %q", trx.Type)
		}
	}
	return sum
}

func mustGetAccount(t *testing.T, svc *Service, userID uint64) *models.Wallet {
	t.Helper()
	account, err := svc.GetAccount(userID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	return account
}

func countTransactions(t *testing.T, svc *Service, requestID uint64) int64 {
	t.Helper()
	var n int64
	err := svc.DB.Model(&models.WalletTransaction{}).
		Where("deposit_request_id = ?", requestID).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}
