package models

import "time"

// Status deposit request. Sekali keluar dari PENDING tidak bisa balik lagi.
const (
	DepositPending  = "PENDING"
	DepositApproved = "APPROVED"
	DepositRejected = "REJECTED"
)

// DepositRequest adalah klaim topup manual dari mitra:
// "saya sudah transfer segini ke rekening platform, ini buktinya".
// Admin finance yang memutuskan approve/reject setelah cek mutasi bank.
type DepositRequest struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	RequestNo       string `gorm:"uniqueIndex;size:50" json:"request_no"`
	UserID          uint64 `gorm:"index;not null" json:"user_id"`
	RequestedAmount int64  `gorm:"not null" json:"requested_amount"`
	// ActualAmount baru terisi saat approve. Bisa beda dari RequestedAmount,
	// misal kepotong biaya transfer antar bank.
	ActualAmount int64      `json:"actual_amount"`
	ProofURL     string     `gorm:"size:255;not null" json:"proof_url"` // bukti transfer, diupload ke storage terpisah
	BankRef      string     `gorm:"size:100;not null" json:"bank_ref"`  // nomor referensi dari bank, bukan buatan kita
	Status       string     `gorm:"size:20;index;default:PENDING" json:"status"`
	AdminNotes   string     `gorm:"type:text" json:"admin_notes"` // wajib diisi kalau reject
	ReviewedBy   *uint64    `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Input mitra saat submit klaim topup
type SubmitDepositInput struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	ProofURL string `json:"proof_url" binding:"required,url"`
	BankRef  string `json:"bank_ref" binding:"required"`
}

// Input admin saat review klaim
type ReviewDepositInput struct {
	Action       string `json:"action" binding:"required,oneof=approve reject"`
	ActualAmount int64  `json:"actual_amount"` // opsional, default = requested_amount
	Notes        string `json:"notes"`         // wajib kalau reject
}
