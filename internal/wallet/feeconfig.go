package wallet

import (
	"fmt"

	"tukangku-backend/internal/models"
)

// CurrentFeeConfig mengambil versi konfigurasi yang aktif (ID paling besar).
// Tabelnya di-seed saat boot, jadi record not found di sini berarti
// deploy-nya yang bermasalah.
func (s *Service) CurrentFeeConfig() (*models.PlatformFeeConfig, error) {
	var cfg models.PlatformFeeConfig
	if err := s.DB.Order("id desc").First(&cfg).Error; err != nil {
		return nil, fmt.Errorf("load fee config: %w", err)
	}
	return &cfg, nil
}

// UpdateFeeConfig membuat VERSI BARU konfigurasi. Field yang nil di input
// dibawa dari versi sebelumnya. Versi lama tidak diubah sama sekali,
// tetap ada buat audit "dulu fee-nya berapa".
func (s *Service) UpdateFeeConfig(input models.UpdateFeeConfigInput, adminID uint64) (*models.PlatformFeeConfig, error) {
	current, err := s.CurrentFeeConfig()
	if err != nil {
		return nil, err
	}

	next := models.PlatformFeeConfig{
		FeePercentage:     current.FeePercentage,
		MinTopup:          current.MinTopup,
		MaxTopup:          current.MaxTopup,
		BankName:          current.BankName,
		BankAccountNumber: current.BankAccountNumber,
		BankAccountName:   current.BankAccountName,
		UpdatedBy:         &adminID,
	}

	if input.FeePercentage != nil {
		next.FeePercentage = *input.FeePercentage
	}
	if input.MinTopup != nil {
		next.MinTopup = *input.MinTopup
	}
	if input.MaxTopup != nil {
		next.MaxTopup = *input.MaxTopup
	}
	if input.BankName != nil {
		next.BankName = *input.BankName
	}
	if input.BankAccountNumber != nil {
		next.BankAccountNumber = *input.BankAccountNumber
	}
	if input.BankAccountName != nil {
		next.BankAccountName = *input.BankAccountName
	}

	if next.MinTopup > next.MaxTopup {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrAmountOutOfRange, next.MinTopup, next.MaxTopup)
	}

	if err := s.DB.Create(&next).Error; err != nil {
		return nil, fmt.Errorf("insert fee config version: %w", err)
	}
	return &next, nil
}
