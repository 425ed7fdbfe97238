package models

import (
	"gorm.io/gorm"
)

// SeedProducts fills the catalog on first boot. No-op once any product exists.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []Product{
		{Name: "Wireless Headphones", Price: 79.99, Description: "Premium wireless headphones with noise cancellation", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", Category: "Electronics", Stock: 25},
		{Name: "Smart Watch", Price: 199.99, Description: "Feature-packed smartwatch with fitness tracking", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400", Category: "Electronics", Stock: 15},
		{Name: "Running Shoes", Price: 89.99, Description: "Comfortable running shoes for all terrains", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400", Category: "Footwear", Stock: 30},
		{Name: "Laptop Backpack", Price: 49.99, Description: "Durable backpack with laptop compartment", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400", Category: "Accessories", Stock: 40},
		{Name: "Bluetooth Speaker", Price: 59.99, Description: "Portable speaker with rich sound quality", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400", Category: "Electronics", Stock: 20},
		{Name: "Coffee Maker", Price: 129.99, Description: "Programmable coffee maker with thermal carafe", Image: "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=400", Category: "Appliances", Stock: 10},
		{Name: "Yoga Mat", Price: 34.99, Description: "Non-slip yoga mat with carrying strap", Image: "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400", Category: "Fitness", Stock: 50},
		{Name: "Desk Lamp", Price: 44.99, Description: "LED desk lamp with adjustable brightness", Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400", Category: "Home", Stock: 35},
		{Name: "Water Bottle", Price: 24.99, Description: "Insulated stainless steel water bottle", Image: "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400", Category: "Accessories", Stock: 60},
		{Name: "Sunglasses", Price: 69.99, Description: "Polarized sunglasses with UV protection", Image: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400", Category: "Accessories", Stock: 22},
	}

	return db.Create(&products).Error
}
