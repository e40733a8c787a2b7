package config

import (
	"fmt"
	"log"
	"os"

	"tukangku-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB konek ke MySQL, jalankan auto-migrate, dan seed data awal
func ConnectDB() {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Gagal konek database:", err)
	}

	DB = db
	log.Println("✅ Database terkoneksi")

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Order{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.DepositRequest{},
		&models.PlatformFeeConfig{},
	); err != nil {
		log.Fatal("❌ Gagal auto-migrate:", err)
	}

	SeedFeeConfig(DB)
}

// SeedFeeConfig mengisi konfigurasi fee versi pertama kalau tabelnya masih kosong.
// Tanpa baris ini mitra tidak bisa topup (validasi batas butuh config).
func SeedFeeConfig(db *gorm.DB) {
	var count int64
	db.Model(&models.PlatformFeeConfig{}).Count(&count)
	if count > 0 {
		return
	}

	seed := models.PlatformFeeConfig{
		FeePercentage:     10,
		MinTopup:          50000,    // 50rb
		MaxTopup:          10000000, // 10jt
		BankName:          "BCA",
		BankAccountNumber: "8800123456",
		BankAccountName:   "PT Tukangku Indonesia",
	}
	if err := db.Create(&seed).Error; err != nil {
		log.Fatal("❌ Gagal seed fee config:", err)
	}
	log.Println("🌱 Fee config versi awal di-seed")
}
