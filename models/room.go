package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Housekeeping conditions for a room.
const (
	ConditionClean     = "clean"
	ConditionDirty     = "dirty"
	ConditionInspected = "inspected"
)

type Room struct {
	gorm.Model

	// RoomTypeID is nullable so a room created without a valid type
	// doesn't force a zero FK into the database.
	RoomTypeID *uint  `json:"room_type_id,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Floor     string          `json:"floor" gorm:"type:varchar(10)"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Condition string          `json:"condition" gorm:"size:32;default:clean"`

	Description string `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}
