// Package wallet adalah mesin dompet mitra: ledger saldo, antrian klaim
// topup manual, workflow approval admin, potongan fee platform, dan statistik.
//
// Semua mutasi saldo lewat satu pintu (applyTransaction) supaya invariant
// "saldo = jumlah semua transaksi" tidak pernah bohong.
package wallet

import "gorm.io/gorm"

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}
