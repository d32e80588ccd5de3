package catalog

import "shopgh/internal/models"

// seed is the fixed demo product list. Every session starts from a fresh
// copy of these values; restarting a session resets all stock.
var seed = []models.Product{
	{ID: 1, Name: "iPhone 14", Price: 999, Stock: 5, Category: "Phones", Image: "📱"},
	{ID: 2, Name: "Samsung Galaxy S23", Price: 899, Stock: 7, Category: "Phones", Image: "📱"},
	{ID: 3, Name: "HP Laptop", Price: 1200, Stock: 4, Category: "Computers", Image: "💻"},
	{ID: 4, Name: "MacBook Pro", Price: 2000, Stock: 3, Category: "Computers", Image: "💻"},
	{ID: 5, Name: "Sony Headphones", Price: 199, Stock: 10, Category: "Accessories", Image: "🎧"},
	{ID: 6, Name: "Apple Watch", Price: 499, Stock: 6, Category: "Accessories", Image: "⌚"},
	{ID: 7, Name: "Nike Sneakers", Price: 150, Stock: 8, Category: "Fashion", Image: "👟"},
	{ID: 8, Name: "Adidas Hoodie", Price: 80, Stock: 12, Category: "Fashion", Image: "👕"},
	{ID: 9, Name: "Smart TV", Price: 1300, Stock: 2, Category: "Electronics", Image: "📺"},
	{ID: 10, Name: "Bluetooth Speaker", Price: 120, Stock: 9, Category: "Electronics", Image: "🔊"},
	{ID: 11, Name: "PlayStation 5", Price: 600, Stock: 5, Category: "Gaming", Image: "🎮"},
	{ID: 12, Name: "Xbox Series X", Price: 550, Stock: 4, Category: "Gaming", Image: "🎮"},
	{ID: 13, Name: "Canon DSLR Camera", Price: 850, Stock: 3, Category: "Cameras", Image: "📷"},
	{ID: 14, Name: "Kindle Paperwhite", Price: 140, Stock: 7, Category: "Electronics", Image: "📚"},
	{ID: 15, Name: "Gaming Chair", Price: 220, Stock: 6, Category: "Furniture", Image: "🪑"},
}

// Seed returns a copy of the seed product list.
func Seed() []models.Product {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return products
}
