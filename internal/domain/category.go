package domain

// Category and rating are a fixed UI-side mapping keyed by product id.
// They were never part of the products table and must stay that way:
// the lookup is pure and evaluated on every read.

const (
	DefaultCategory = "General"
	DefaultRating   = 4.5
)

var categoryMap = map[int64]string{
	1:  "Headphones",
	2:  "Smartwatch",
	3:  "Camera",
	4:  "Sneakers",
	5:  "Backpack",
	6:  "Sunglasses",
	7:  "Laptop",
	8:  "Phone",
	9:  "Coffee",
	10: "Chair",
}

var ratingMap = map[int64]float64{
	1: 4.7, 2: 4.4, 3: 4.8, 4: 4.2, 5: 4.6,
	6: 4.1, 7: 4.9, 8: 4.5, 9: 4.3, 10: 4.0,
}

// CategoryOf returns the display category for a product id.
func CategoryOf(id int64) string {
	if c, ok := categoryMap[id]; ok {
		return c
	}
	return DefaultCategory
}

// RatingOf returns the display rating for a product id.
func RatingOf(id int64) float64 {
	if r, ok := ratingMap[id]; ok {
		return r
	}
	return DefaultRating
}

// ProductView decorates a Product with its derived display attributes.
type ProductView struct {
	Product
	Category string
	Rating   float64
}

func NewProductView(p Product) ProductView {
	return ProductView{Product: p, Category: CategoryOf(p.ID), Rating: RatingOf(p.ID)}
}

func ProductViews(items []Product) []ProductView {
	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, NewProductView(p))
	}
	return views
}
