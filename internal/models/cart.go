package models

import "time"

// One cart per user, created lazily on first access.
type Cart struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cart) TotalAmount() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].TotalPrice()
	}
	return total
}

func (c *Cart) ItemsCount() int {
	return len(c.Items)
}

type CartItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CartID uint `gorm:"uniqueIndex:idx_cart_line;not null" json:"cart_id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_cart_line;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	UseNewEquipment    bool    `gorm:"uniqueIndex:idx_cart_line;default:false" json:"use_new_equipment"`
	EquipmentSurcharge float64 `gorm:"type:decimal(10,2);default:0" json:"equipment_surcharge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *CartItem) TotalPrice() float64 {
	base := i.Service.Price * float64(i.Quantity)
	if i.UseNewEquipment {
		base += i.EquipmentSurcharge * float64(i.Quantity)
	}
	return base
}
