package domain

import "github.com/google/uuid"

// Barber мастер салона
type Barber struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	PhotoPath *string
}

// AdminUser пользователь панели администратора
type AdminUser struct {
	UserID   uuid.UUID
	IsActive bool
}
