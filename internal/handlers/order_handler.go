package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"tukangku-backend/internal/config"
	"tukangku-backend/internal/models"
	"tukangku-backend/internal/wallet"
	"tukangku-backend/pkg/utils"

	"github.com/gin-gonic/gin"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// GetServices katalog layanan, bisa diakses publik biar orang liat harga dulu
func GetServices(c *gin.Context) {
	var services []models.Service
	config.DB.Where("is_active = ?", true).Find(&services)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Layanan", services)
}

// CreateOrder membuat pesanan baru + minta Snap token ke Midtrans
func CreateOrder(c *gin.Context) {
	customerID, _ := c.Get("userID")

	// Kita perlu data user lengkap (Nama & Email) untuk dikirim ke Midtrans
	var customer models.User
	config.DB.First(&customer, customerID)

	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input Order Salah", err.Error())
		return
	}

	// 1. Cek Layanan & Ambil Harga
	var service models.Service
	if err := config.DB.First(&service, input.ServiceID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Layanan tidak ditemukan", nil)
		return
	}

	orderNo := fmt.Sprintf("INV-%d", time.Now().Unix()) // Format: INV-17682391

	// 2. Simpan Order ke DB (Status PENDING_PAYMENT)
	order := models.Order{
		OrderNo:     orderNo,
		CustomerID:  customerID.(uint64),
		ServiceID:   input.ServiceID,
		TotalAmount: service.Price,
		Status:      "PENDING_PAYMENT",
		Address:     input.Address,
		ScheduleAt:  input.ScheduleAt,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan order", err.Error())
		return
	}

	// 3. Minta Snap Token ke Midtrans
	var s = snap.Client{}
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderNo,
			GrossAmt: order.TotalAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FullName,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("SVC-%d", service.ID),
				Name:  service.Name,
				Price: service.Price,
				Qty:   1,
			},
		},
	}

	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Midtrans Error", errSnap.GetMessage())
		return
	}

	// 4. Return Response dengan Token
	utils.APIResponse(c, http.StatusCreated, true, "Order Berhasil! Silakan Bayar.", gin.H{
		"order_id":     order.ID,
		"order_no":     order.OrderNo,
		"total_amount": order.TotalAmount,
		"snap_token":   snapResp.Token,       // <--- INI YG DIPAKAI FRONTEND
		"redirect_url": snapResp.RedirectURL, // <--- Link pembayaran web
	})
}

// GetMyOrders history pesanan customer
func GetMyOrders(c *gin.Context) {
	userID, _ := c.Get("userID")

	var orders []models.Order
	config.DB.
		Preload("Service").
		Preload("Partner").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&orders)

	utils.APIResponse(c, http.StatusOK, true, "History Order", orders)
}

// GetAvailableOrders job yang sudah dibayar tapi belum ada mitra yang ambil
func GetAvailableOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.
		Preload("Service").
		Where("status = ? AND partner_id IS NULL", "PAID").
		Order("schedule_at asc").
		Find(&orders)

	utils.APIResponse(c, http.StatusOK, true, "Job Tersedia", orders)
}

// AcceptOrder mitra ambil job.
// Conditional update biar dua mitra yang rebutan tidak dua-duanya dapat.
func AcceptOrder(c *gin.Context) {
	partnerID, _ := c.Get("userID")
	orderID := utils.StringToUint64(c.Param("id"))

	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ? AND partner_id IS NULL", orderID, "PAID").
		Updates(map[string]interface{}{
			"partner_id": partnerID,
			"status":     "ASSIGNED",
		})

	if res.Error != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil job", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.APIResponse(c, http.StatusConflict, false, "Job sudah diambil mitra lain", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Job Berhasil Diambil!", nil)
}

// CompleteOrder mitra menandai job selesai.
// DI SINILAH fee platform dipotong dari dompet mitra.
func CompleteOrder(c *gin.Context) {
	partnerID, _ := c.Get("userID")
	orderID := utils.StringToUint64(c.Param("id"))

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Order tidak ditemukan", nil)
		return
	}

	if order.PartnerID == nil || *order.PartnerID != partnerID.(uint64) {
		utils.APIResponse(c, http.StatusForbidden, false, "Ini bukan job kamu", nil)
		return
	}

	// Guard status: selesai cuma bisa sekali, fee juga cuma sekali
	res := config.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, "ASSIGNED").
		Update("status", "COMPLETED")
	if res.Error != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update order", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.APIResponse(c, http.StatusConflict, false, "Order sudah selesai atau belum di-assign", nil)
		return
	}

	// Potong fee platform dari penghasilan kotor job ini.
	// Saldo mitra boleh jadi minus, potongan tetap jalan.
	svc := wallet.NewService(config.DB)
	trx, err := svc.ApplyJobFee(*order.PartnerID, order.TotalAmount)
	if err != nil {
		// Order sudah COMPLETED tapi fee gagal kecatat — jangan diem-diem aja
		utils.APIResponse(c, http.StatusInternalServerError, false, "Order selesai tapi fee gagal dicatat, hubungi admin", err.Error())
		return
	}

	// Kabari mitra soal potongannya
	var partner models.User
	if err := config.DB.First(&partner, *order.PartnerID).Error; err == nil && partner.FCMToken != "" && trx != nil {
		go utils.SendNotification(
			partner.FCMToken,
			"Job Selesai! 🎉",
			fmt.Sprintf("Kerja bagus! Fee platform Rp%d sudah dipotong dari dompet kamu.", trx.Amount),
			map[string]string{"order_no": order.OrderNo, "type": "order_completed"},
		)
	}

	utils.APIResponse(c, http.StatusOK, true, "Order Selesai", gin.H{
		"order_no": order.OrderNo,
		"fee":      trx,
	})
}
