package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"tukangku-backend/internal/config"
	"tukangku-backend/internal/models"
	"tukangku-backend/internal/wallet"
	"tukangku-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// === FITUR FINANCE ===

// GetPendingDeposits antrian klaim topup yang perlu dicek, paling lama duluan
func GetPendingDeposits(c *gin.Context) {
	svc := wallet.NewService(config.DB)
	reqs, err := svc.ListPendingDeposits()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil antrian", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar Topup Pending", reqs)
}

// ReviewDeposit approve/reject klaim topup.
// Approve = saldo mitra langsung nambah (satu transaksi DB, tidak bisa setengah).
// Reject = wajib kasih alasan, saldo tidak disentuh.
func ReviewDeposit(c *gin.Context) {
	reviewerID, _ := c.Get("userID")
	requestID := utils.StringToUint64(c.Param("id"))

	var input models.ReviewDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", err.Error())
		return
	}

	svc := wallet.NewService(config.DB)

	var err error
	if input.Action == "approve" {
		var req *models.DepositRequest
		var account *models.Wallet
		req, account, err = svc.ApproveDeposit(requestID, reviewerID.(uint64), input.ActualAmount, input.Notes)
		if err == nil {
			notifyDepositResult(req)
			utils.APIResponse(c, http.StatusOK, true, "Topup Disetujui", gin.H{
				"request": req,
				"account": account,
			})
			return
		}
	} else {
		var req *models.DepositRequest
		req, err = svc.RejectDeposit(requestID, reviewerID.(uint64), input.Notes)
		if err == nil {
			notifyDepositResult(req)
			utils.APIResponse(c, http.StatusOK, true, "Topup Ditolak", req)
			return
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.APIResponse(c, http.StatusNotFound, false, "Klaim topup tidak ditemukan", nil)
	case errors.Is(err, wallet.ErrAlreadyProcessed):
		// Sudah keburu diproses admin lain. Tidak ada yang dobel, tenang.
		utils.APIResponse(c, http.StatusConflict, false, "Klaim sudah diproses sebelumnya", err.Error())
	case errors.Is(err, wallet.ErrNotesRequired):
		utils.APIResponse(c, http.StatusBadRequest, false, "Alasan penolakan wajib diisi", nil)
	case errors.Is(err, wallet.ErrInvalidActualAmount):
		utils.APIResponse(c, http.StatusBadRequest, false, "Nominal aktual harus lebih dari 0", nil)
	default:
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses review", nil)
	}
}

// notifyDepositResult push FCM ke mitra soal hasil review.
// Gagal kirim notif tidak mempengaruhi transaksi (fire and forget).
func notifyDepositResult(req *models.DepositRequest) {
	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil || user.FCMToken == "" {
		return
	}

	if req.Status == models.DepositApproved {
		go utils.SendNotification(
			user.FCMToken,
			"Topup Berhasil! 💰",
			fmt.Sprintf("Saldo kamu bertambah Rp%d. Selamat bekerja!", req.ActualAmount),
			map[string]string{"request_no": req.RequestNo, "type": "deposit_approved"},
		)
	} else {
		go utils.SendNotification(
			user.FCMToken,
			"Topup Ditolak ❌",
			"Klaim topup kamu ditolak. Catatan admin: "+req.AdminNotes,
			map[string]string{"request_no": req.RequestNo, "type": "deposit_rejected"},
		)
	}
}

// IssueRefund mengembalikan dana ke dompet mitra (koreksi manual finance)
func IssueRefund(c *gin.Context) {
	var input struct {
		UserID uint64 `json:"user_id" binding:"required"`
		Amount int64  `json:"amount" binding:"required,gt=0"`
		Reason string `json:"reason" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", err.Error())
		return
	}

	svc := wallet.NewService(config.DB)
	trx, err := svc.Refund(input.UserID, input.Amount, input.Reason)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses refund", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Refund Berhasil", trx)
}

// GetWalletStats ringkasan dompet untuk dashboard finance
func GetWalletStats(c *gin.Context) {
	svc := wallet.NewService(config.DB)

	walletStats, err := svc.GetWalletStats()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menghitung statistik", nil)
		return
	}

	trxStats, err := svc.GetTransactionStats()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menghitung statistik", nil)
		return
	}

	var pendingDeposits int64
	config.DB.Model(&models.DepositRequest{}).
		Where("status = ?", models.DepositPending).
		Count(&pendingDeposits)

	utils.APIResponse(c, http.StatusOK, true, "Data Dashboard Finance", gin.H{
		"wallets":          walletStats,
		"transactions":     trxStats,
		"pending_deposits": pendingDeposits,
	})
}

// === FITUR ADMIN ===

// GetFeeConfig melihat konfigurasi fee yang aktif
func GetFeeConfig(c *gin.Context) {
	svc := wallet.NewService(config.DB)
	cfg, err := svc.CurrentFeeConfig()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil konfigurasi", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Konfigurasi Fee Aktif", cfg)
}

// UpdateFeeConfig bikin versi baru konfigurasi fee.
// Versi lama tidak dihapus, tetap ada buat audit.
func UpdateFeeConfig(c *gin.Context) {
	adminID, _ := c.Get("userID")

	var input models.UpdateFeeConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", err.Error())
		return
	}

	svc := wallet.NewService(config.DB)
	cfg, err := svc.UpdateFeeConfig(input, adminID.(uint64))
	if err != nil {
		if errors.Is(err, wallet.ErrAmountOutOfRange) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Batas topup tidak masuk akal (min > max)", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan konfigurasi", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Konfigurasi Fee Diupdate", cfg)
}

// UpdateServicePrice mengubah harga layanan di katalog
func UpdateServicePrice(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Price int64 `json:"price" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", nil)
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Layanan tidak ditemukan", nil)
		return
	}

	service.Price = input.Price
	config.DB.Save(&service)

	utils.APIResponse(c, http.StatusOK, true, "Harga Layanan Diupdate", service)
}
