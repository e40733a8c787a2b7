package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"tukangku-backend/internal/config"
	"tukangku-backend/internal/models"
	"tukangku-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Struct sederhana untuk menangkap body notifikasi Midtrans
// Midtrans mengirim JSON banyak field, tapi kita cuma butuh ini
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
}

func HandleMidtransNotification(c *gin.Context) {
	var notification MidtransNotification

	// 1. Decode JSON dari Midtrans
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	// 2. Tentukan Status Order Internal berdasarkan Status Midtrans
	var orderStatus string

	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "challenge" {
			orderStatus = "PENDING_PAYMENT" // Masih diverifikasi bank
		} else if notification.FraudStatus == "accept" {
			orderStatus = "PAID" // Sukses CC
		}
	case "settlement":
		orderStatus = "PAID" // Sukses Transfer Bank/Gopay
	case "deny", "cancel", "expire":
		orderStatus = "CANCELLED" // Gagal
	case "pending":
		orderStatus = "PENDING_PAYMENT"
	default:
		orderStatus = "PENDING_PAYMENT"
	}

	log.Printf("[Webhook] Midtrans notification - OrderID: %s, TransactionStatus: %s, MappedStatus: %s",
		notification.OrderID, notification.TransactionStatus, orderStatus)

	// 3. Cari order berdasarkan Order No (Midtrans kirim INV-xxxx)
	var order models.Order
	if err := config.DB.Where("order_no = ?", notification.OrderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Webhook] Order not found: %s", notification.OrderID)
			utils.APIResponse(c, http.StatusNotFound, false, "Order Not Found", nil)
			return
		}
		log.Printf("[Webhook] DB error fetching order: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Database error", err.Error())
		return
	}

	// 4. Jika status berubah, update ke database
	if order.Status != orderStatus {
		order.Status = orderStatus
		if err := config.DB.Save(&order).Error; err != nil {
			log.Printf("[Webhook] DB error updating order: %v", err)
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update order", err.Error())
			return
		}
	}

	// 5. Kirim notifikasi sesuai hasil pembayaran
	if orderStatus == "PAID" {
		// A. Notifikasi ke Customer (Payment Success)
		var customer models.User
		if err := config.DB.First(&customer, order.CustomerID).Error; err == nil && customer.FCMToken != "" {
			go utils.SendNotification(
				customer.FCMToken,
				"Pembayaran Berhasil! ✅",
				"Terima kasih! Pembayaran Anda telah diterima. Kami sedang mencarikan Mitra untuk Anda.",
				map[string]string{"order_id": fmt.Sprintf("%d", order.ID), "type": "payment_success"},
			)
		}

		// B. Broadcast ke mitra aktif yang punya token biar cepat keambil
		var partners []models.User
		config.DB.Where("role_id = ? AND is_verified = ? AND fcm_token <> ''", 3, true).Find(&partners)

		for _, p := range partners {
			go utils.SendNotification( // Pakai goroutine biar gak blocking
				p.FCMToken,
				"Lowongan Job Baru! 📢",
				"Ada order baru di area sekitar Anda. Cek sekarang sebelum diambil orang lain!",
				map[string]string{"order_id": fmt.Sprintf("%d", order.ID), "type": "new_order_open"},
			)
		}
	} else if orderStatus == "CANCELLED" {
		var customer models.User
		if err := config.DB.First(&customer, order.CustomerID).Error; err == nil && customer.FCMToken != "" {
			go utils.SendNotification(
				customer.FCMToken,
				"Pembayaran Gagal/Expired ❌",
				"Maaf, pesanan Anda dibatalkan karena pembayaran gagal atau waktu habis.",
				map[string]string{"order_id": fmt.Sprintf("%d", order.ID), "type": "order_cancelled"},
			)
		}
	}

	// 6. Response OK ke Midtrans (Wajib biar Midtrans tau kita udah terima)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
