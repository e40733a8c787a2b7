package models

import "time"

// Service adalah katalog jasa yang bisa dipesan customer
type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Price    int64  `gorm:"not null" json:"price"` // rupiah
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type Order struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	OrderNo     string    `gorm:"unique;size:50" json:"order_no"`
	CustomerID  uint64    `json:"customer_id"`
	PartnerID   *uint64   `json:"partner_id"` // Pointer karena bisa NULL (belum ada mitra yang ambil)
	ServiceID   uint      `json:"service_id"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `gorm:"size:30" json:"status"` // PENDING_PAYMENT, PAID, ASSIGNED, COMPLETED, CANCELLED
	Address     string    `gorm:"type:text" json:"address"`
	ScheduleAt  time.Time `json:"schedule_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relasi (Preload) biar pas query datanya lengkap
	Service Service `gorm:"foreignKey:ServiceID" json:"service"`
	Partner *User   `gorm:"foreignKey:PartnerID" json:"partner,omitempty"` // Ambil nama mitra dr tabel user
}

type CreateOrderInput struct {
	ServiceID  uint      `json:"service_id" binding:"required"`
	Address    string    `json:"address" binding:"required"`
	ScheduleAt time.Time `json:"schedule_at" binding:"required"` // Format: 2026-09-20T08:00:00Z
}
