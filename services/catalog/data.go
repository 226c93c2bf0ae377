package catalog

import "handyhub/models"

// seedServices is the standard storefront catalog. Prices are unit prices in
// dollars; room-tier services are booked as exactly one tier, per-item
// services as any mix of line items.
var seedServices = []models.Service{
	{
		ID:              1,
		Name:            "House Cleaning",
		Category:        models.CategoryCleaning,
		Description:     "Professional house cleaning service with flat-rate pricing based on number of bedrooms",
		BasePrice:       80,
		PricingMode:     models.PricingModeRoomTier,
		DurationMinutes: 120,
		Items: []models.ServiceItem{
			{ID: 1, Name: "Studio/1 Bedroom", Description: "Perfect for apartments and small spaces", Price: 80, Unit: "per_cleaning"},
			{ID: 2, Name: "2 Bedrooms", Description: "Ideal for small families and couples", Price: 120, Unit: "per_cleaning"},
			{ID: 3, Name: "3 Bedrooms", Description: "Great for growing families", Price: 160, Unit: "per_cleaning"},
			{ID: 4, Name: "4+ Bedrooms", Description: "For large homes and families", Price: 200, Unit: "per_cleaning"},
		},
	},
	{
		ID:              2,
		Name:            "Deep Cleaning",
		Category:        models.CategoryCleaning,
		Description:     "Comprehensive deep cleaning for move-in/move-out or seasonal cleaning",
		BasePrice:       150,
		PricingMode:     models.PricingModeRoomTier,
		DurationMinutes: 240,
		Items: []models.ServiceItem{
			{ID: 5, Name: "Studio/1 Bedroom Deep Clean", Description: "Comprehensive deep clean for small spaces", Price: 150, Unit: "per_cleaning"},
			{ID: 6, Name: "2 Bedrooms Deep Clean", Description: "Thorough deep cleaning for medium homes", Price: 220, Unit: "per_cleaning"},
			{ID: 7, Name: "3 Bedrooms Deep Clean", Description: "Complete deep cleaning for family homes", Price: 290, Unit: "per_cleaning"},
			{ID: 8, Name: "4+ Bedrooms Deep Clean", Description: "Full deep cleaning for large properties", Price: 360, Unit: "per_cleaning"},
		},
	},
	{
		ID:              3,
		Name:            "Post-Construction Cleanup",
		Category:        models.CategoryCleaning,
		Description:     "Specialized cleaning after renovations, construction, or major repairs",
		BasePrice:       200,
		PricingMode:     models.PricingModeRoomTier,
		DurationMinutes: 360,
		Items: []models.ServiceItem{
			{ID: 17, Name: "Single Room", Description: "Post-construction cleanup for one room", Price: 200, Unit: "per_room"},
			{ID: 18, Name: "Full Apartment", Description: "Complete apartment post-construction cleanup", Price: 400, Unit: "per_cleaning"},
			{ID: 19, Name: "Full House", Description: "Whole house post-construction cleanup", Price: 600, Unit: "per_cleaning"},
			{ID: 20, Name: "Commercial Space", Description: "Commercial post-construction cleanup", Price: 800, Unit: "per_cleaning"},
		},
	},
	{
		ID:              4,
		Name:            "Office Cleaning",
		Category:        models.CategoryCleaning,
		Description:     "Professional commercial cleaning for offices and workspaces",
		BasePrice:       120,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 180,
		Items: []models.ServiceItem{
			{ID: 21, Name: "Small Office (up to 500 sq ft)", Description: "Perfect for small businesses", Price: 120, Unit: "per_cleaning"},
			{ID: 22, Name: "Medium Office (500-1500 sq ft)", Description: "Ideal for growing companies", Price: 220, Unit: "per_cleaning"},
			{ID: 23, Name: "Large Office (1500+ sq ft)", Description: "Comprehensive cleaning for large offices", Price: 350, Unit: "per_cleaning"},
			{ID: 24, Name: "One-time deep clean", Description: "Deep cleaning service for special occasions", Price: 180, Unit: "per_cleaning"},
		},
	},
	{
		ID:              5,
		Name:            "Handyman Services",
		Category:        models.CategoryRepair,
		Description:     "General handyman services including mounting, assembly, and minor repairs",
		BasePrice:       75,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 60,
		Items: []models.ServiceItem{
			{ID: 9, Name: "TV Wall Mount", Description: "Professional TV mounting on any wall type", Price: 75, Unit: "per_item"},
			{ID: 10, Name: "Furniture Assembly", Description: "Assembly of furniture items", Price: 50, Unit: "per_item"},
			{ID: 11, Name: "Picture Hanging", Description: "Professional hanging of artwork", Price: 25, Unit: "per_item"},
			{ID: 12, Name: "Minor Repairs", Description: "Small household repairs", Price: 60, Unit: "per_hour"},
		},
	},
	{
		ID:              6,
		Name:            "Plumbing Services",
		Category:        models.CategoryRepair,
		Description:     "Professional plumbing repairs and installations for residential properties",
		BasePrice:       95,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 90,
		Items: []models.ServiceItem{
			{ID: 25, Name: "Faucet Repair/Replacement", Description: "Fix or replace kitchen and bathroom faucets", Price: 95, Unit: "per_item"},
			{ID: 26, Name: "Toilet Repair", Description: "Fix running, clogged, or broken toilets", Price: 85, Unit: "per_item"},
			{ID: 27, Name: "Garbage Disposal Installation", Description: "Install new garbage disposal unit", Price: 120, Unit: "per_item"},
			{ID: 28, Name: "Drain Cleaning", Description: "Clear clogged drains and pipes", Price: 110, Unit: "per_item"},
		},
	},
	{
		ID:              7,
		Name:            "Electrical Services",
		Category:        models.CategoryRepair,
		Description:     "Safe electrical repairs and installations by licensed electricians",
		BasePrice:       120,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 120,
		Items: []models.ServiceItem{
			{ID: 29, Name: "Light Fixture Installation", Description: "Install ceiling lights, chandeliers, and fixtures", Price: 120, Unit: "per_item"},
			{ID: 30, Name: "Outlet Installation", Description: "Add new electrical outlets", Price: 80, Unit: "per_item"},
			{ID: 31, Name: "Ceiling Fan Installation", Description: "Install ceiling fans with wiring", Price: 150, Unit: "per_item"},
			{ID: 32, Name: "Panel Upgrade", Description: "Electrical panel upgrade and modernization", Price: 400, Unit: "per_item"},
		},
	},
	{
		ID:              8,
		Name:            "Painting Services",
		Category:        models.CategoryRepair,
		Description:     "Interior and exterior painting with premium paints and professional finish",
		BasePrice:       200,
		PricingMode:     models.PricingModeRoomTier,
		DurationMinutes: 480,
		Items: []models.ServiceItem{
			{ID: 33, Name: "Single Room Interior", Description: "Complete interior room painting", Price: 200, Unit: "per_room"},
			{ID: 34, Name: "Bathroom/Kitchen", Description: "Specialized painting for high-moisture areas", Price: 300, Unit: "per_room"},
			{ID: 35, Name: "Exterior Touch-up", Description: "Exterior paint touch-ups and repairs", Price: 150, Unit: "per_section"},
			{ID: 36, Name: "Full House Exterior", Description: "Complete exterior house painting", Price: 800, Unit: "per_house"},
		},
	},
	{
		ID:              9,
		Name:            "Smart Home Installation",
		Category:        models.CategoryInstallation,
		Description:     "Professional installation of smart home devices and automation systems",
		BasePrice:       100,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 90,
		Items: []models.ServiceItem{
			{ID: 13, Name: "Smart Thermostat", Description: "Install and program smart thermostat", Price: 120, Unit: "per_item"},
			{ID: 14, Name: "Security Camera Setup", Description: "Install and configure security cameras", Price: 100, Unit: "per_camera"},
			{ID: 15, Name: "Smart Lock Installation", Description: "Install smart door locks", Price: 80, Unit: "per_item"},
			{ID: 16, Name: "Whole Home Setup", Description: "Complete smart home system setup", Price: 300, Unit: "per_home"},
		},
	},
	{
		ID:              10,
		Name:            "Appliance Installation",
		Category:        models.CategoryInstallation,
		Description:     "Professional installation of home appliances with warranty and setup",
		BasePrice:       150,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 120,
		Items: []models.ServiceItem{
			{ID: 37, Name: "Washer/Dryer Installation", Description: "Install washer and dryer set", Price: 150, Unit: "per_set"},
			{ID: 38, Name: "Dishwasher Installation", Description: "Install built-in dishwasher", Price: 120, Unit: "per_item"},
			{ID: 39, Name: "Refrigerator Installation", Description: "Install and connect refrigerator", Price: 100, Unit: "per_item"},
			{ID: 40, Name: "Over-Range Microwave", Description: "Install over-range microwave unit", Price: 130, Unit: "per_item"},
		},
	},
	{
		ID:              11,
		Name:            "Flooring Installation",
		Category:        models.CategoryInstallation,
		Description:     "Professional flooring installation including vinyl, laminate, and hardwood",
		BasePrice:       4.50,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 360,
		Items: []models.ServiceItem{
			{ID: 41, Name: "Vinyl Plank (per sq ft)", Description: "Durable and water-resistant vinyl plank flooring", Price: 4.50, Unit: "per_sqft"},
			{ID: 42, Name: "Laminate (per sq ft)", Description: "High-quality laminate flooring installation", Price: 5.20, Unit: "per_sqft"},
			{ID: 43, Name: "Hardwood (per sq ft)", Description: "Premium hardwood flooring installation", Price: 8.75, Unit: "per_sqft"},
			{ID: 44, Name: "Tile (per sq ft)", Description: "Ceramic and porcelain tile installation", Price: 6.30, Unit: "per_sqft"},
		},
	},
	{
		ID:              12,
		Name:            "HVAC Maintenance",
		Category:        models.CategoryMaintenance,
		Description:     "Professional HVAC system maintenance and tune-ups for optimal performance",
		BasePrice:       150,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 120,
		Items: []models.ServiceItem{
			{ID: 45, Name: "AC Tune-up", Description: "Complete air conditioning system maintenance", Price: 150, Unit: "per_unit"},
			{ID: 46, Name: "Heating System Check", Description: "Comprehensive heating system inspection", Price: 140, Unit: "per_unit"},
			{ID: 47, Name: "Duct Cleaning", Description: "Air duct cleaning and sanitization", Price: 200, Unit: "per_system"},
			{ID: 48, Name: "Filter Replacement", Description: "HVAC filter replacement service", Price: 40, Unit: "per_filter"},
		},
	},
	{
		ID:              13,
		Name:            "Lawn Care",
		Category:        models.CategoryMaintenance,
		Description:     "Professional lawn maintenance including mowing, edging, and landscaping",
		BasePrice:       60,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 90,
		Items: []models.ServiceItem{
			{ID: 49, Name: "Standard Mowing (up to 5000 sq ft)", Description: "Regular lawn mowing and edging", Price: 60, Unit: "per_visit"},
			{ID: 50, Name: "Large Lawn (5000+ sq ft)", Description: "Mowing service for large properties", Price: 90, Unit: "per_visit"},
			{ID: 51, Name: "Weed & Feed Treatment", Description: "Weed control and lawn fertilization", Price: 80, Unit: "per_treatment"},
			{ID: 52, Name: "Seasonal Cleanup", Description: "Spring or fall lawn cleanup service", Price: 120, Unit: "per_season"},
		},
	},
	{
		ID:              14,
		Name:            "Gutter Services",
		Category:        models.CategoryMaintenance,
		Description:     "Gutter cleaning, repair, and maintenance to protect your home",
		BasePrice:       120,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 150,
		Items: []models.ServiceItem{
			{ID: 53, Name: "Gutter Cleaning (single story)", Description: "Complete gutter cleaning for one-story homes", Price: 120, Unit: "per_home"},
			{ID: 54, Name: "Gutter Cleaning (two story)", Description: "Gutter cleaning for two-story homes", Price: 180, Unit: "per_home"},
			{ID: 55, Name: "Gutter Repair", Description: "Gutter repair and maintenance", Price: 90, Unit: "per_repair"},
			{ID: 56, Name: "Gutter Guard Installation", Description: "Install gutter guards for protection", Price: 8, Unit: "per_foot"},
		},
	},
	{
		ID:              15,
		Name:            "Moving Help",
		Category:        models.CategoryMoving,
		Description:     "Professional moving assistance for local and long-distance moves",
		BasePrice:       90,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 240,
		Items: []models.ServiceItem{
			{ID: 57, Name: "Local Moving (2 movers)", Description: "Two professional movers for local moves", Price: 90, Unit: "per_hour"},
			{ID: 58, Name: "Local Moving (3 movers)", Description: "Three professional movers for larger moves", Price: 130, Unit: "per_hour"},
			{ID: 59, Name: "Packing Service", Description: "Professional packing and wrapping service", Price: 40, Unit: "per_hour"},
			{ID: 60, Name: "Heavy Item Moving", Description: "Specialized moving for heavy items", Price: 150, Unit: "per_item"},
		},
	},
	{
		ID:              16,
		Name:            "Furniture Delivery",
		Category:        models.CategoryMoving,
		Description:     "Professional furniture delivery and assembly service with care",
		BasePrice:       75,
		PricingMode:     models.PricingModePerItem,
		DurationMinutes: 120,
		Items: []models.ServiceItem{
			{ID: 61, Name: "Small Furniture (chair, table)", Description: "Delivery and assembly of small furniture", Price: 75, Unit: "per_item"},
			{ID: 62, Name: "Large Furniture (sofa, dresser)", Description: "Delivery of large furniture items", Price: 120, Unit: "per_item"},
			{ID: 63, Name: "Appliance Delivery", Description: "Appliance delivery and basic setup", Price: 100, Unit: "per_item"},
			{ID: 64, Name: "Mattress Delivery", Description: "Mattress delivery and setup", Price: 60, Unit: "per_item"},
		},
	},
}
