package wallet

import (
	"errors"
	"fmt"
	"time"

	"tukangku-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitDeposit membuat klaim topup baru dengan status PENDING.
// Nominal divalidasi terhadap batas min/max di konfigurasi fee yang aktif.
func (s *Service) SubmitDeposit(userID uint64, amount int64, proofURL, bankRef string) (*models.DepositRequest, error) {
	cfg, err := s.CurrentFeeConfig()
	if err != nil {
		return nil, err
	}
	if amount < cfg.MinTopup || amount > cfg.MaxTopup {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrAmountOutOfRange, amount, cfg.MinTopup, cfg.MaxTopup)
	}

	req := models.DepositRequest{
		RequestNo:       "DEP-" + uuid.NewString(),
		UserID:          userID,
		RequestedAmount: amount,
		ProofURL:        proofURL,
		BankRef:         bankRef,
		Status:          models.DepositPending,
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, fmt.Errorf("insert deposit request: %w", err)
	}
	return &req, nil
}

// ListPendingDeposits antrian review admin, urut dari yang paling lama masuk
func (s *Service) ListPendingDeposits() ([]models.DepositRequest, error) {
	var reqs []models.DepositRequest
	err := s.DB.Where("status = ?", models.DepositPending).
		Order("created_at asc, id asc").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("list pending deposits: %w", err)
	}
	return reqs, nil
}

// GetDepositRequest mengambil satu klaim by ID
func (s *Service) GetDepositRequest(requestID uint64) (*models.DepositRequest, error) {
	var req models.DepositRequest
	if err := s.DB.First(&req, requestID).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// transitionDeposit adalah SATU-SATUNYA jalur perubahan status klaim.
// Transisi yang sah cuma PENDING -> APPROVED atau PENDING -> REJECTED.
//
// Kuncinya di conditional update: WHERE id = ? AND status = 'PENDING'.
// Dua admin yang nge-klik barengan tidak mungkin dua-duanya sukses,
// yang kalah dapat ErrAlreadyProcessed. Ini pertahanan utama anti double-credit.
func (s *Service) transitionDeposit(tx *gorm.DB, requestID uint64, target string, reviewerID uint64, notes string, actualAmount int64) (*models.DepositRequest, error) {
	switch target {
	case models.DepositRejected:
		if notes == "" {
			return nil, ErrNotesRequired
		}
	case models.DepositApproved:
		if actualAmount <= 0 {
			return nil, ErrInvalidActualAmount
		}
	default:
		return nil, fmt.Errorf("invalid target status %q", target)
	}

	now := time.Now()
	res := tx.Model(&models.DepositRequest{}).
		Where("id = ? AND status = ?", requestID, models.DepositPending).
		Updates(map[string]interface{}{
			"status":        target,
			"actual_amount": actualAmount, // 0 untuk reject
			"admin_notes":   notes,
			"reviewed_by":   reviewerID,
			"reviewed_at":   now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("transition deposit request: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Gagal update: requestnya tidak ada, atau sudah keburu diproses.
		// Cek dulu biar errornya jelas.
		var existing models.DepositRequest
		if err := tx.First(&existing, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, gorm.ErrRecordNotFound
			}
			return nil, fmt.Errorf("recheck deposit request: %w", err)
		}
		return nil, fmt.Errorf("%w: current status %s", ErrAlreadyProcessed, existing.Status)
	}

	var req models.DepositRequest
	if err := tx.First(&req, requestID).Error; err != nil {
		return nil, fmt.Errorf("reload deposit request: %w", err)
	}
	return &req, nil
}
