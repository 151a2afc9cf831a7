package model

import "time"

// RoleAdministrator is the elevated role; registering it requires the admin key.
const RoleAdministrator = "Administrador"

// User represents a registered user of the booking system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nombre" gorm:"column:nombre;size:255;not null"`
	Email        string    `json:"correo" gorm:"column:correo;uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:contraseña;size:255;not null"` // bcrypt, never exposed
	Role         string    `json:"rol" gorm:"column:rol;size:50;not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps the historical table name.
func (User) TableName() string {
	return "usuario"
}

// IsAdministrator reports whether the user holds the elevated role.
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
