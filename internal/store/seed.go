package store

import (
	"time"

	"github.com/saifFast/anaya-ecommerce-website/internal/domain"
)

// NewDemoStore returns a MemoryStore preloaded with the demo catalog:
// seven categories and thirty-three products. The server starts with this
// fixture set; tests that want an empty catalog use NewMemoryStore.
func NewDemoStore() *MemoryStore {
	s := NewMemoryStore()
	now := time.Now().UTC()

	s.categories = []domain.Category{
		{ID: 1, Name: "Electronics", Description: "Laptops, tablets, smart TVs and other electronic devices", CreatedOn: now.AddDate(0, 0, -45)},
		{ID: 2, Name: "Accessories", Description: "Mice, keyboards, hubs, and computer peripherals", CreatedOn: now.AddDate(0, 0, -40)},
		{ID: 3, Name: "Audio", Description: "Headphones, earbuds, speakers and audio equipment", CreatedOn: now.AddDate(0, 0, -35)},
		{ID: 4, Name: "Monitors & Displays", Description: "Computer monitors and display panels", CreatedOn: now.AddDate(0, 0, -30)},
		{ID: 5, Name: "Furniture & Workspace", Description: "Desks, chairs, and ergonomic office furniture", CreatedOn: now.AddDate(0, 0, -25)},
		{ID: 6, Name: "Lighting & Ambiance", Description: "Smart lights, LED strips, and ambient lighting solutions", CreatedOn: now.AddDate(0, 0, -20)},
		{ID: 7, Name: "Cables & Connectivity", Description: "Cables, adapters, and network connectivity products", CreatedOn: now.AddDate(0, 0, -15)},
	}

	s.products = []domain.Product{
		{ID: 1, Name: "MacBook Pro 14\"", Description: "Powerful laptop with M3 Pro chip, 16GB RAM, and stunning Retina display", CategoryID: 1, Price: 1999, ImageURL: "https://picsum.photos/300/400?random=1"},
		{ID: 2, Name: "Dell XPS 15", Description: "Premium ultrabook with Intel i7, RTX 4060, perfect for creators", CategoryID: 1, Price: 1799, ImageURL: "https://picsum.photos/300/400?random=2"},
		{ID: 3, Name: "ThinkPad X1 Carbon", Description: "Business laptop with legendary keyboard and all-day battery", CategoryID: 1, Price: 1500, ImageURL: "https://picsum.photos/300/400?random=3"},
		{ID: 4, Name: "iPad Pro 12.9\"", Description: "Versatile tablet with M2 chip and stunning OLED display", CategoryID: 1, Price: 1099, ImageURL: "https://picsum.photos/300/400?random=4"},
		{ID: 5, Name: "Samsung Smart TV 55\"", Description: "4K QLED TV with HDR and smart apps built-in", CategoryID: 1, Price: 1299, ImageURL: "https://picsum.photos/300/400?random=5"},
		{ID: 6, Name: "Logitech MX Master 3S", Description: "Premium wireless mouse with advanced tracking and customization", CategoryID: 2, Price: 99, ImageURL: "https://picsum.photos/300/400?random=6"},
		{ID: 7, Name: "Apple Magic Mouse", Description: "Multi-touch surface mouse with minimalist design", CategoryID: 2, Price: 79, ImageURL: "https://picsum.photos/300/400?random=7"},
		{ID: 8, Name: "Razer DeathAdder V3", Description: "Gaming mouse with Focus Pro sensor and wireless connection", CategoryID: 2, Price: 69, ImageURL: "https://picsum.photos/300/400?random=8"},
		{ID: 9, Name: "Keychron K8 Pro", Description: "Compact mechanical keyboard with backlit keys and wireless", CategoryID: 2, Price: 129, ImageURL: "https://picsum.photos/300/400?random=9"},
		{ID: 10, Name: "Cherry MX Board 8.0", Description: "Professional mechanical keyboard with premium build quality", CategoryID: 2, Price: 159, ImageURL: "https://picsum.photos/300/400?random=10"},
		{ID: 11, Name: "Corsair MM700 Extended", Description: "Large gaming mousepad with RGB lighting", CategoryID: 2, Price: 49, ImageURL: "https://picsum.photos/300/400?random=11"},
		{ID: 12, Name: "USB-C Hub 7-in-1", Description: "Multi-port hub with HDMI, USB 3.0, and SD card reader", CategoryID: 2, Price: 35, ImageURL: "https://picsum.photos/300/400?random=12"},
		{ID: 13, Name: "Sony WH-1000XM5", Description: "Industry-leading noise-canceling headphones with 30-hour battery", CategoryID: 3, Price: 399, ImageURL: "https://picsum.photos/300/400?random=13"},
		{ID: 14, Name: "Apple AirPods Pro", Description: "Premium wireless earbuds with active noise cancellation", CategoryID: 3, Price: 249, ImageURL: "https://picsum.photos/300/400?random=14"},
		{ID: 15, Name: "Bose QuietComfort 45", Description: "Comfortable over-ear headphones with world-class noise cancellation", CategoryID: 3, Price: 379, ImageURL: "https://picsum.photos/300/400?random=15"},
		{ID: 16, Name: "Anker Soundcore Liberty 4", Description: "Budget-friendly earbuds with great sound quality", CategoryID: 3, Price: 79, ImageURL: "https://picsum.photos/300/400?random=16"},
		{ID: 17, Name: "JBL Flip 6", Description: "Portable waterproof speaker with 360° sound", CategoryID: 3, Price: 129, ImageURL: "https://picsum.photos/300/400?random=17"},
		{ID: 18, Name: "LG UltraWide 34\" curved", Description: "21:9 ultrawide monitor perfect for productivity and gaming", CategoryID: 4, Price: 599, ImageURL: "https://picsum.photos/300/400?random=18"},
		{ID: 19, Name: "Dell S2722DGM", Description: "1440p gaming monitor with 165Hz and HDR support", CategoryID: 4, Price: 449, ImageURL: "https://picsum.photos/300/400?random=19"},
		{ID: 20, Name: "ASUS VP28UQG", Description: "28\" 4K monitor with 1ms response time for gaming", CategoryID: 4, Price: 349, ImageURL: "https://picsum.photos/300/400?random=20"},
		{ID: 21, Name: "BenQ SW240", Description: "Professional color-accurate monitor for designers and photo editors", CategoryID: 4, Price: 699, ImageURL: "https://picsum.photos/300/400?random=21"},
		{ID: 22, Name: "Herman Miller Aeron Chair", Description: "Ergonomic office chair with adjustable lumbar support", CategoryID: 5, Price: 1395, ImageURL: "https://picsum.photos/300/400?random=22"},
		{ID: 23, Name: "Flexispot E7", Description: "Electric standing desk with memory presets and smooth movement", CategoryID: 5, Price: 599, ImageURL: "https://picsum.photos/300/400?random=23"},
		{ID: 24, Name: "Autonomous Standing Desk", Description: "Motorized desk with dual motor for stability and quick adjustment", CategoryID: 5, Price: 799, ImageURL: "https://picsum.photos/300/400?random=24"},
		{ID: 25, Name: "IKEA Strandtorp Desk", Description: "Solid wood desk with classic design and ample workspace", CategoryID: 5, Price: 299, ImageURL: "https://picsum.photos/300/400?random=25"},
		{ID: 26, Name: "Philips Hue Light Strip Plus", Description: "Smart LED strip with 16M colors and voice control", CategoryID: 6, Price: 89, ImageURL: "https://picsum.photos/300/400?random=26"},
		{ID: 27, Name: "Elgato Key Light", Description: "Professional streaming light with variable color temperature", CategoryID: 6, Price: 199, ImageURL: "https://picsum.photos/300/400?random=27"},
		{ID: 28, Name: "Nanoleaf Essentials", Description: "Modular triangular panels with dynamic effects and music sync", CategoryID: 6, Price: 229, ImageURL: "https://picsum.photos/300/400?random=28"},
		{ID: 29, Name: "Dyson Lightcycle", Description: "Advanced LED light that adapts to your circadian rhythm", CategoryID: 6, Price: 599, ImageURL: "https://picsum.photos/300/400?random=29"},
		{ID: 30, Name: "Belkin Thunderbolt 3 Cable", Description: "High-speed data transfer and charging cable, 6.6 feet", CategoryID: 7, Price: 39, ImageURL: "https://picsum.photos/300/400?random=30"},
		{ID: 31, Name: "Anker USB-C to Lightning Cable", Description: "Certified durable cable with 10000+ bend test certification", CategoryID: 7, Price: 12, ImageURL: "https://picsum.photos/300/400?random=31"},
		{ID: 32, Name: "Nylon Braided HDMI 2.1", Description: "High-speed HDMI cable for 8K video and enhanced audio", CategoryID: 7, Price: 25, ImageURL: "https://picsum.photos/300/400?random=32"},
		{ID: 33, Name: "CAT6A Ethernet Cable Bulk", Description: "100ft network cable for fast and stable internet connection", CategoryID: 7, Price: 49, ImageURL: "https://picsum.photos/300/400?random=33"},
	}

	return s
}
