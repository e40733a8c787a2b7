package models

import "time"

// Tipe transaksi ledger. Tanda (+/-) ditentukan dari tipe, kolom Amount selalu positif.
const (
	TrxDeposit   = "DEPOSIT"   // topup manual yang sudah di-approve admin
	TrxDeduction = "DEDUCTION" // potongan fee platform dari job selesai
	TrxRefund    = "REFUND"    // pengembalian dana ke mitra
)

// Wallet menyimpan saldo mitra dalam satuan rupiah (int64, bukan float!).
// Saldo BOLEH minus: potongan fee tetap jalan walau saldo tidak cukup.
// Invariant: Balance = TotalDeposited + TotalRefunded - TotalDeducted
type Wallet struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance        int64     `gorm:"default:0" json:"balance"`
	TotalDeposited int64     `gorm:"default:0" json:"total_deposited"`
	TotalDeducted  int64     `gorm:"default:0" json:"total_deducted"`
	TotalRefunded  int64     `gorm:"default:0" json:"total_refunded"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relasi ke History Transaksi
	Transactions []WalletTransaction `gorm:"foreignKey:WalletID" json:"transactions,omitempty"`
}

// WalletTransaction adalah jurnal keuangan. Append-only: sekali dibuat
// tidak pernah di-update atau dihapus, ini bukti audit.
type WalletTransaction struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	WalletID uint64 `gorm:"index;not null" json:"wallet_id"`
	UserID   uint64 `gorm:"index;not null" json:"user_id"`
	Type     string `gorm:"size:20;not null" json:"type"` // DEPOSIT, DEDUCTION, REFUND
	Amount   int64  `gorm:"not null" json:"amount"`       // selalu positif
	// Unique index di sini = jaring pengaman di level DB:
	// satu deposit request mustahil dikredit dua kali.
	DepositRequestID *uint64   `gorm:"uniqueIndex" json:"deposit_request_id,omitempty"`
	BalanceAfter     int64     `json:"balance_after"` // snapshot saldo sesudah transaksi, buat audit
	Note             string    `gorm:"size:255" json:"note"`
	CreatedAt        time.Time `json:"created_at"`
}
