package handlers

import (
	"errors"
	"net/http"
	"time"

	"tukangku-backend/internal/config"
	"tukangku-backend/internal/models"
	"tukangku-backend/internal/wallet"
	"tukangku-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetMyWallet menampilkan saldo saat ini mitra yang login
func GetMyWallet(c *gin.Context) {
	userID, _ := c.Get("userID")

	svc := wallet.NewService(config.DB)
	account, err := svc.GetAccount(userID.(uint64))
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil dompet", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Dompet Saya", account)
}

// GetMyTransactions riwayat transaksi dompet, urut dari yang paling lama.
// Query opsional ?since=2026-08-01T00:00:00Z
func GetMyTransactions(c *gin.Context) {
	userID, _ := c.Get("userID")

	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, "Format since salah, pakai RFC3339", nil)
			return
		}
		since = &t
	}

	svc := wallet.NewService(config.DB)
	trxs, err := svc.ListTransactions(userID.(uint64), since)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil riwayat", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Riwayat Transaksi", trxs)
}

// GetTopupInfo menampilkan rekening tujuan transfer + batas topup.
// Frontend render QR-nya dari nomor rekening ini.
func GetTopupInfo(c *gin.Context) {
	svc := wallet.NewService(config.DB)
	cfg, err := svc.CurrentFeeConfig()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil info topup", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Info Topup", gin.H{
		"min_topup":           cfg.MinTopup,
		"max_topup":           cfg.MaxTopup,
		"bank_name":           cfg.BankName,
		"bank_account_number": cfg.BankAccountNumber,
		"bank_account_name":   cfg.BankAccountName,
	})
}

// SubmitDeposit mitra klaim "saya sudah transfer", lampirkan bukti.
// Masuk antrian PENDING, nunggu dicek admin finance.
func SubmitDeposit(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input models.SubmitDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", err.Error())
		return
	}

	svc := wallet.NewService(config.DB)
	req, err := svc.SubmitDeposit(userID.(uint64), input.Amount, input.ProofURL, input.BankRef)
	if err != nil {
		if errors.Is(err, wallet.ErrAmountOutOfRange) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Nominal topup di luar batas minimal/maksimal", err.Error())
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan klaim topup", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Klaim topup diterima. Tunggu verifikasi Admin ya.", req)
}

// GetMyDeposits riwayat klaim topup mitra (biar keliatan mana yang masih pending)
func GetMyDeposits(c *gin.Context) {
	userID, _ := c.Get("userID")

	var reqs []models.DepositRequest
	config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&reqs)

	utils.APIResponse(c, http.StatusOK, true, "Riwayat Topup Saya", reqs)
}
