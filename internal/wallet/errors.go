package wallet

import "errors"

// Error-error bisnis yang dipetakan handler ke HTTP status.
// Selain ini (dan gorm.ErrRecordNotFound), anggap kegagalan storage -> 500.
var (
	// Input salah -> 400
	ErrAmountOutOfRange    = errors.New("topup amount outside allowed min/max range")
	ErrNotesRequired       = errors.New("admin notes required when rejecting a deposit")
	ErrInvalidActualAmount = errors.New("actual amount must be greater than zero")

	// Request sudah diproses admin lain -> 409.
	// Aman dianggap "sudah ditangani" oleh caller yang retry.
	ErrAlreadyProcessed = errors.New("deposit request already processed")
)
