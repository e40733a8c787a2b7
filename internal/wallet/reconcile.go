package wallet

import (
	"fmt"
	"log"
	"time"

	"tukangku-backend/internal/models"
)

// Sweep rekonsiliasi.
//
// Approve jalan dalam satu transaksi DB, jadi harusnya tidak pernah ada
// request APPROVED tanpa transaksi ledger pasangannya. Tapi "harusnya" bukan
// jaminan: ada migrasi manual, ada orang iseng edit tabel lewat konsol.
// Sweep ini nyari anomali itu dan melengkapi kredit yang hilang.
//
// Re-apply dobel tidak mungkin: unique index di
// wallet_transactions.deposit_request_id nolak kredit kedua.

// UnsettledApprovals mencari request APPROVED yang belum punya
// transaksi ledger dengan deposit_request_id yang cocok.
func (s *Service) UnsettledApprovals() ([]models.DepositRequest, error) {
	var reqs []models.DepositRequest
	err := s.DB.
		Where("status = ?", models.DepositApproved).
		Where("NOT EXISTS (SELECT 1 FROM wallet_transactions wt WHERE wt.deposit_request_id = deposit_requests.id)").
		Order("reviewed_at asc").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("scan unsettled approvals: %w", err)
	}
	return reqs, nil
}

// RepairUnsettled melengkapi kredit yang hilang. Return jumlah yang dibenerin.
func (s *Service) RepairUnsettled() (int, error) {
	reqs, err := s.UnsettledApprovals()
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, req := range reqs {
		reqID := req.ID
		log.Printf("⚠️  reconcile: request %s approved tapi belum dikredit, melengkapi...", req.RequestNo)
		_, err := s.ApplyTransaction(req.UserID, models.TrxDeposit, req.ActualAmount,
			&reqID, "Reconcile topup "+req.RequestNo)
		if err != nil {
			// Jangan setop satu batch gara-gara satu request.
			// Kalau errornya duplicate key berarti keburu dikredit proses lain — aman.
			log.Printf("❌ reconcile: gagal melengkapi request %s: %v", req.RequestNo, err)
			continue
		}
		repaired++
	}
	return repaired, nil
}

// StartReconcileJob menjalankan sweep di background tiap interval.
// Dipanggil sekali dari main.
func (s *Service) StartReconcileJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			<-ticker.C
			n, err := s.RepairUnsettled()
			if err != nil {
				log.Printf("❌ reconcile sweep error: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("✅ reconcile sweep: %d deposit dibenerin", n)
			}
		}
	}()
}
