package wallet

import (
	"errors"
	"testing"

	"tukangku-backend/internal/models"
)

func TestUpdateFeeConfigCreatesNewVersion(t *testing.T) {
	svc := newTestService(t)

	before, err := svc.CurrentFeeConfig()
	if err != nil {
		t.Fatalf("current: %v", err)
	}

	pct := 12.5
	bank := "Mandiri"
	updated, err := svc.UpdateFeeConfig(models.UpdateFeeConfigInput{
		FeePercentage: &pct,
		BankName:      &bank,
	}, 1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID <= before.ID {
		t.Fatalf("want new version id > %d, got %d", before.ID, updated.ID)
	}
	if updated.FeePercentage != 12.5 || updated.BankName != "Mandiri" {
		t.Fatalf("changed fields not applied: %+v", updated)
	}
	// Field yang tidak diisi dibawa dari versi lama
	if updated.MinTopup != before.MinTopup || updated.MaxTopup != before.MaxTopup {
		t.Fatalf("unset fields not carried forward: %+v", updated)
	}

	// Versi lama harus masih utuh di tabel (audit)
	var old models.PlatformFeeConfig
	if err := svc.DB.First(&old, before.ID).Error; err != nil {
		t.Fatalf("old version gone: %v", err)
	}
	if old.FeePercentage != before.FeePercentage {
		t.Fatalf("old version mutated: %+v", old)
	}

	// Dan CurrentFeeConfig sekarang balikin versi baru
	current, err := svc.CurrentFeeConfig()
	if err != nil {
		t.Fatalf("current after update: %v", err)
	}
	if current.ID != updated.ID {
		t.Fatalf("current config is version %d, want %d", current.ID, updated.ID)
	}
}

func TestUpdateFeeConfigRejectsInvertedBounds(t *testing.T) {
	svc := newTestService(t)

	min := int64(5000000)
	max := int64(100000)
	_, err := svc.UpdateFeeConfig(models.UpdateFeeConfigInput{MinTopup: &min, MaxTopup: &max}, 1)
	if !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("want ErrAmountOutOfRange, got %v", err)
	}

	// Versi rusak tidak boleh kesimpan
	var n int64
	svc.DB.Model(&models.PlatformFeeConfig{}).Count(&n)
	if n != 1 {
		t.Fatalf("want only seed version, got %d rows", n)
	}
}

func TestSubmitDepositUsesLatestBounds(t *testing.T) {
	svc := newTestService(t)

	// Naikin batas minimum, klaim di bawah batas baru harus ditolak
	min := int64(200000)
	if _, err := svc.UpdateFeeConfig(models.UpdateFeeConfigInput{MinTopup: &min}, 1); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := svc.SubmitDeposit(80, 100000, "https://cdn.example.com/tx.jpg", "REF"); !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("want ErrAmountOutOfRange under new bounds, got %v", err)
	}
	if _, err := svc.SubmitDeposit(80, 200000, "https://cdn.example.com/tx.jpg", "REF"); err != nil {
		t.Fatalf("valid submit under new bounds failed: %v", err)
	}
}
