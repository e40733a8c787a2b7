package wallet

import (
	"errors"
	"fmt"
	"time"

	"tukangku-backend/internal/models"

	"gorm.io/gorm"
)

// ApplyTransaction mencatat satu transaksi ledger + update saldo wallet
// dalam SATU transaksi database. Tidak ada kondisi setengah jadi:
// kalau gagal, dua-duanya batal.
func (s *Service) ApplyTransaction(userID uint64, trxType string, amount int64, depositRequestID *uint64, note string) (*models.WalletTransaction, error) {
	var trx *models.WalletTransaction
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = s.applyTransactionTx(tx, userID, trxType, amount, depositRequestID, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// applyTransactionTx adalah satu-satunya jalur mutasi saldo.
// Harus dipanggil di dalam transaksi gorm yang sudah berjalan.
func (s *Service) applyTransactionTx(tx *gorm.DB, userID uint64, trxType string, amount int64, depositRequestID *uint64, note string) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive, got %d", amount)
	}

	// Wallet dibuat lazy pas transaksi pertama mitra
	var wallet models.Wallet
	if err := tx.Where(models.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error; err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}

	// Delta saldo ditentukan dari tipe transaksi.
	// Update pakai ekspresi SQL (balance = balance + ?) biar atomic:
	// dua transaksi barengan di wallet yang sama tidak saling nimpa.
	var delta int64
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	switch trxType {
	case models.TrxDeposit:
		delta = amount
		updates["total_deposited"] = gorm.Expr("total_deposited + ?", amount)
	case models.TrxRefund:
		delta = amount
		updates["total_refunded"] = gorm.Expr("total_refunded + ?", amount)
	case models.TrxDeduction:
		delta = -amount
		updates["total_deducted"] = gorm.Expr("total_deducted + ?", amount)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", trxType)
	}
	updates["balance"] = gorm.Expr("balance + ?", delta)

	if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update wallet balance: %w", err)
	}

	// Baca ulang saldo DI DALAM transaksi yang sama.
	// Row lock dari UPDATE di atas masih kita pegang, jadi angka ini
	// pasti saldo persis sesudah transaksi ini.
	var after models.Wallet
	if err := tx.First(&after, wallet.ID).Error; err != nil {
		return nil, fmt.Errorf("reload wallet: %w", err)
	}

	trx := models.WalletTransaction{
		WalletID:         wallet.ID,
		UserID:           userID,
		Type:             trxType,
		Amount:           amount,
		DepositRequestID: depositRequestID,
		BalanceAfter:     after.Balance,
		Note:             note,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return nil, fmt.Errorf("insert ledger row: %w", err)
	}

	return &trx, nil
}

// GetAccount mengambil wallet mitra. Kalau belum pernah transaksi,
// return wallet kosong (saldo 0) TANPA insert apa-apa. Baca tidak pernah gagal
// cuma gara-gara mitranya baru.
func (s *Service) GetAccount(userID uint64) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.Where("user_id = ?", userID).First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Wallet{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	return &wallet, nil
}

// ListTransactions riwayat transaksi satu mitra, urut dari yang paling lama.
// since opsional: nil = semua.
func (s *Service) ListTransactions(userID uint64, since *time.Time) ([]models.WalletTransaction, error) {
	var trxs []models.WalletTransaction
	q := s.DB.Where("user_id = ?", userID).Order("created_at asc, id asc")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if err := q.Find(&trxs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return trxs, nil
}
