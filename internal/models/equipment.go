package models

import "time"

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Surcharge   float64 `gorm:"type:decimal(10,2);default:0" json:"surcharge"`
	IsNew       bool    `gorm:"default:true" json:"is_new"`

	Services []Service `gorm:"many2many:equipment_services;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
