package wallet

import (
	"fmt"

	"tukangku-backend/internal/models"
)

// WalletStats ringkasan untuk dashboard finance.
// Ini snapshot sesaat, bukan angka yang dikunci terhadap transaksi
// yang lagi jalan — buat dashboard sudah lebih dari cukup.
type WalletStats struct {
	TotalBalance        int64 `json:"total_balance"`
	TotalDeposited      int64 `json:"total_deposited"`
	TotalDeducted       int64 `json:"total_deducted"`
	WalletCount         int64 `json:"wallet_count"`
	NegativeWalletCount int64 `json:"negative_wallet_count"`
}

func (s *Service) GetWalletStats() (*WalletStats, error) {
	var stats WalletStats

	// Pakai COALESCE biar kalau tabel kosong hasilnya 0, bukan NULL
	err := s.DB.Model(&models.Wallet{}).
		Select("COALESCE(SUM(balance), 0) as total_balance, " +
			"COALESCE(SUM(total_deposited), 0) as total_deposited, " +
			"COALESCE(SUM(total_deducted), 0) as total_deducted, " +
			"COUNT(*) as wallet_count").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate wallets: %w", err)
	}

	// Saldo minus itu valid (mitra nunggak fee), dashboard perlu tau jumlahnya
	err = s.DB.Model(&models.Wallet{}).
		Where("balance < 0").
		Count(&stats.NegativeWalletCount).Error
	if err != nil {
		return nil, fmt.Errorf("count negative wallets: %w", err)
	}

	return &stats, nil
}

// TransactionTypeStat rekap jumlah & total nominal per tipe transaksi
type TransactionTypeStat struct {
	Type        string `json:"type"`
	Count       int64  `json:"count"`
	TotalAmount int64  `json:"total_amount"`
}

func (s *Service) GetTransactionStats() ([]TransactionTypeStat, error) {
	var stats []TransactionTypeStat
	err := s.DB.Model(&models.WalletTransaction{}).
		Select("type, COUNT(*) as count, COALESCE(SUM(amount), 0) as total_amount").
		Group("type").
		Order("type asc").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate transactions: %w", err)
	}
	return stats, nil
}
