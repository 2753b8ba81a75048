package domain

// Product is a sellable catalog item. The table holds exactly the four
// persisted fields; category and rating are display-only derivations
// computed at read time (see category.go).
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	Title       string  `gorm:"size:255;not null" json:"title" form:"title"`
	Description string  `gorm:"not null" json:"description" form:"description"`
	Price       float64 `gorm:"not null" json:"price" form:"price"`
	Image       string  `gorm:"size:1024;not null" json:"image" form:"image"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
