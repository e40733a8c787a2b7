package models

import "time"

// PlatformFeeConfig menyimpan setting fee & batas topup.
// Tabel ini append-only: tiap update admin bikin baris versi baru,
// baris lama tidak diubah biar jejak audit tetap ada.
// Versi aktif = baris dengan ID paling besar.
type PlatformFeeConfig struct {
	ID            uint64  `gorm:"primaryKey" json:"id"`
	FeePercentage float64 `gorm:"not null" json:"fee_percentage"` // 0 - 100
	MinTopup      int64   `gorm:"not null" json:"min_topup"`
	MaxTopup      int64   `gorm:"not null" json:"max_topup"`

	// Rekening penampung platform, ditampilkan di halaman topup bareng QR
	BankName          string `gorm:"size:100" json:"bank_name"`
	BankAccountNumber string `gorm:"size:50" json:"bank_account_number"`
	BankAccountName   string `gorm:"size:100" json:"bank_account_name"`

	UpdatedBy *uint64   `json:"updated_by,omitempty"` // admin yang bikin versi ini, nil untuk seed awal
	CreatedAt time.Time `json:"created_at"`
}

// Input admin saat update konfigurasi fee.
// Field pointer: nil = pakai nilai dari versi sebelumnya.
type UpdateFeeConfigInput struct {
	FeePercentage     *float64 `json:"fee_percentage" binding:"omitempty,gte=0,lte=100"`
	MinTopup          *int64   `json:"min_topup" binding:"omitempty,gt=0"`
	MaxTopup          *int64   `json:"max_topup" binding:"omitempty,gt=0"`
	BankName          *string  `json:"bank_name"`
	BankAccountNumber *string  `json:"bank_account_number"`
	BankAccountName   *string  `json:"bank_account_name"`
}
