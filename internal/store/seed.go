package store

import "github.com/mengsruy/webstore/internal/domain"

// seedProducts are the 10 default rows inserted by SeedIfEmpty, in the
// fixed order that establishes ids 1..10 on a fresh database.
var seedProducts = []domain.Product{
	{
		Title:       "Wireless Headphones",
		Description: "Over-ear Bluetooth with ANC and long battery life.",
		Price:       99.99,
		Image:       "https://picsum.photos/id/1062/800/800",
	},
	{
		Title:       "Smartwatch Pro",
		Description: "Fitness tracking, heart rate, GPS, and notifications.",
		Price:       149.00,
		Image:       "https://picsum.photos/id/903/800/800",
	},
	{
		Title:       "Mirrorless Camera",
		Description: "24MP APS-C sensor with 4K video and fast autofocus.",
		Price:       649.00,
		Image:       "https://picsum.photos/id/250/800/800",
	},
	{
		Title:       "Running Sneakers",
		Description: "Lightweight, breathable mesh with responsive cushioning.",
		Price:       79.50,
		Image:       "https://picsum.photos/id/21/800/800",
	},
	{
		Title:       "Urban Backpack",
		Description: "Water-resistant rolltop fits 15\" laptop and accessories.",
		Price:       59.99,
		Image:       "https://picsum.photos/id/1084/800/800",
	},
	{
		Title:       "Polarized Sunglasses",
		Description: "UV400 protection with classic frame and sturdy hinges.",
		Price:       39.99,
		Image:       "https://picsum.photos/id/582/800/800",
	},
	{
		Title:       "Ultrabook 14\"",
		Description: "8GB RAM, 512GB SSD, backlit keyboard, all-day battery.",
		Price:       899.00,
		Image:       "https://picsum.photos/id/7/800/800",
	},
	{
		Title:       "5G Smartphone",
		Description: "6.5\" OLED display, 128GB storage, excellent cameras.",
		Price:       499.00,
		Image:       "https://picsum.photos/id/1011/800/800",
	},
	{
		Title:       "Single-Origin Coffee",
		Description: "Freshly roasted beans, 1 lb bag, notes of chocolate.",
		Price:       16.50,
		Image:       "https://picsum.photos/id/35/800/800",
	},
	{
		Title:       "Ergonomic Chair",
		Description: "Lumbar support, adjustable arms, breathable mesh.",
		Price:       219.00,
		Image:       "https://picsum.photos/id/433/800/800",
	},
}
