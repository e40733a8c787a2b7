package wallet

import (
	"fmt"

	"tukangku-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ApplyJobFee memotong fee platform dari penghasilan kotor satu job selesai.
// fee = round(gross * persen / 100), pembulatan half-up ke rupiah.
//
// Persen fee dibaca dari konfigurasi aktif SAAT dipanggil. Kalau admin ganti
// persen pas ada job in-flight, job itu tetap pakai persen lama — tidak apa-apa,
// fee tidak berlaku surut.
//
// Saldo BOLEH jadi minus di sini. Mitra yang jarang topup tetap kena potongan,
// minusnya nagih sendiri pas dia topup lagi.
func (s *Service) ApplyJobFee(userID uint64, grossEarning int64) (*models.WalletTransaction, error) {
	if grossEarning <= 0 {
		return nil, fmt.Errorf("gross earning must be positive, got %d", grossEarning)
	}

	cfg, err := s.CurrentFeeConfig()
	if err != nil {
		return nil, err
	}

	// Hitung pakai decimal biar tidak kena jebakan floating point.
	// Round(0) = half away from zero, untuk nominal positif sama dengan half-up.
	fee := decimal.NewFromInt(grossEarning).
		Mul(decimal.NewFromFloat(cfg.FeePercentage)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	if fee == 0 {
		// Persen 0 atau job terlalu kecil: tidak ada yang perlu dicatat
		return nil, nil
	}

	note := fmt.Sprintf("Fee platform %.4g%% dari job Rp%d", cfg.FeePercentage, grossEarning)
	return s.ApplyTransaction(userID, models.TrxDeduction, fee, nil, note)
}

// Refund mengembalikan dana ke wallet mitra (misal koreksi potongan yang salah)
func (s *Service) Refund(userID uint64, amount int64, reason string) (*models.WalletTransaction, error) {
	return s.ApplyTransaction(userID, models.TrxRefund, amount, nil, reason)
}
