package routes

import (
	"tukangku-backend/internal/handlers"
	"tukangku-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		// Grouping Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Route publik (biar orang bisa liat harga dulu sebelum daftar)
		api.GET("/services", handlers.GetServices)
		api.POST("/payment/notification", handlers.HandleMidtransNotification)

		// 2. PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetUserProfile)

			// MODULE ORDER (Customer)
			protected.POST("/orders", handlers.CreateOrder)
			protected.GET("/orders", handlers.GetMyOrders)

			// Group Khusus Mitra
			partner := protected.Group("/partner")
			partner.Use(middleware.PartnerOnly())
			{
				partner.GET("/orders/available", handlers.GetAvailableOrders)
				partner.POST("/orders/:id/accept", handlers.AcceptOrder)
				partner.POST("/orders/:id/complete", handlers.CompleteOrder)

				// MODULE DOMPET
				partner.GET("/wallet", handlers.GetMyWallet)
				partner.GET("/wallet/transactions", handlers.GetMyTransactions)
				partner.GET("/wallet/topup-info", handlers.GetTopupInfo)
				partner.POST("/wallet/deposits", handlers.SubmitDeposit)
				partner.GET("/wallet/deposits", handlers.GetMyDeposits)
			}

			// Group Finance (Admin juga boleh masuk)
			finance := protected.Group("/finance")
			finance.Use(middleware.FinanceOnly())
			{
				finance.GET("/deposits/pending", handlers.GetPendingDeposits)
				finance.POST("/deposits/:id/review", handlers.ReviewDeposit)
				finance.POST("/refunds", handlers.IssueRefund)
				finance.GET("/stats", handlers.GetWalletStats)
			}

			// Group Khusus Admin
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/fee-config", handlers.GetFeeConfig)
				admin.PUT("/fee-config", handlers.UpdateFeeConfig)
				admin.PUT("/services/:id/price", handlers.UpdateServicePrice)
			}
		}

	}
}
