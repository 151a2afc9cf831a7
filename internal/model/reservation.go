package model

import "time"

// SlotIndex is the unique index that prevents double-booking a space.
const SlotIndex = "idx_reserva_slot"

// Reservation books a space for one date and time slot.
// Fecha and hora are stored as given (YYYY-MM-DD and HH:MM) and compared verbatim.
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Type      string    `json:"tipo" gorm:"column:tipo;size:100;not null"`
	Location  string    `json:"ubicacion" gorm:"column:ubicacion;size:255;not null"`
	Space     string    `json:"espacio" gorm:"column:espacio;size:100;not null;uniqueIndex:idx_reserva_slot,priority:1"`
	Date      string    `json:"fecha" gorm:"column:fecha;size:10;not null;uniqueIndex:idx_reserva_slot,priority:2"`
	Time      string    `json:"hora" gorm:"column:hora;size:5;not null;uniqueIndex:idx_reserva_slot,priority:3"`
	Reason    string    `json:"motivo" gorm:"column:motivo;type:text"`
	UserID    uint      `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	CreatedAt time.Time `json:"-"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName keeps the historical table name.
func (Reservation) TableName() string {
	return "reserva"
}

// ReservationWithOwner is a reservation joined with its owner's identity.
type ReservationWithOwner struct {
	ID         uint   `json:"id" gorm:"column:id"`
	Type       string `json:"tipo" gorm:"column:tipo"`
	Location   string `json:"ubicacion" gorm:"column:ubicacion"`
	Space      string `json:"espacio" gorm:"column:espacio"`
	Date       string `json:"fecha" gorm:"column:fecha"`
	Time       string `json:"hora" gorm:"column:hora"`
	Reason     string `json:"motivo" gorm:"column:motivo"`
	UserID     uint   `json:"usuario_id" gorm:"column:usuario_id"`
	OwnerName  string `json:"usuario_nombre" gorm:"column:usuario_nombre"`
	OwnerEmail string `json:"usuario_correo" gorm:"column:usuario_correo"`
}
