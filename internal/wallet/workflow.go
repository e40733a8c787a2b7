package wallet

import (
	"fmt"

	"tukangku-backend/internal/models"

	"gorm.io/gorm"
)

// ApproveDeposit menyetujui klaim topup dan mengkredit wallet mitra.
//
// Transisi status + penulisan ledger jalan dalam SATU transaksi database.
// Jadi tidak ada jendela "request approved tapi saldo belum nambah":
// kalau kredit gagal, statusnya ikut di-rollback ke PENDING.
//
// actualAmount boleh 0 = pakai requested_amount. Bisa diisi beda kalau
// uang yang masuk rekening tidak persis sama (misal kepotong biaya transfer).
func (s *Service) ApproveDeposit(requestID, reviewerID uint64, actualAmount int64, notes string) (*models.DepositRequest, *models.Wallet, error) {
	var req *models.DepositRequest
	var trxWallet *models.Wallet

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Ambil requested_amount dulu buat default actualAmount.
		// Conditional update di transitionDeposit yang jadi wasit kalau rebutan.
		if actualAmount == 0 {
			var existing models.DepositRequest
			if err := tx.First(&existing, requestID).Error; err != nil {
				return err
			}
			actualAmount = existing.RequestedAmount
		}

		var err error
		req, err = s.transitionDeposit(tx, requestID, models.DepositApproved, reviewerID, notes, actualAmount)
		if err != nil {
			return err
		}

		reqID := req.ID
		trx, err := s.applyTransactionTx(tx, req.UserID, models.TrxDeposit, actualAmount,
			&reqID, "Topup manual "+req.RequestNo)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		trxWallet = &models.Wallet{}
		return tx.First(trxWallet, trx.WalletID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return req, trxWallet, nil
}

// RejectDeposit menolak klaim topup. Catatan admin WAJIB (mitra berhak tau
// kenapa ditolak). Tidak pernah menyentuh ledger: saldo tidak berubah sama sekali.
func (s *Service) RejectDeposit(requestID, reviewerID uint64, notes string) (*models.DepositRequest, error) {
	var req *models.DepositRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		req, err = s.transitionDeposit(tx, requestID, models.DepositRejected, reviewerID, notes, 0)
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}
