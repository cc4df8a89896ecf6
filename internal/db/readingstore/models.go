package readingstore

import (
	"time"
)

type Room struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:text"`
}

func (Room) TableName() string {
	return "rooms"
}

// Reading has no primary key: the table is an append-only log keyed by room.
type Reading struct {
	RoomID      uint      `json:"room_id" gorm:"column:room_id;index:idx_temperatures_room_date"`
	Room        Room      `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Temperature float64   `json:"temperature" gorm:"column:temperature;type:real"`
	Date        time.Time `json:"date" gorm:"column:date;type:timestamp;index:idx_temperatures_room_date"`
}

func (Reading) TableName() string {
	return "temperatures"
}

// DailyFilter narrows a daily average query. A nil RoomID spans the whole store; PerRoom
// keeps rooms apart instead of averaging every room sharing a date.
type DailyFilter struct {
	RoomID  *uint
	PerRoom bool
}
