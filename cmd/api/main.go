package main

import (
	"log"
	"os"
	"time"

	"tukangku-backend/internal/config"
	"tukangku-backend/internal/routes"
	"tukangku-backend/internal/wallet"
	"tukangku-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB (sekalian auto-migrate + seed fee config)
	config.ConnectDB()

	// Init Firebase
	utils.InitFCM()

	// 3. Jalankan sweep rekonsiliasi di background.
	// Nyari deposit APPROVED yang (harusnya tidak mungkin) belum dikredit.
	wallet.NewService(config.DB).StartReconcileJob(5 * time.Minute)

	// 4. Init Router
	r := gin.Default()

	// 5. Setup Routes (middleware global dipasang di dalam)
	routes.SetupRoutes(r)

	// 6. Test Ping
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
