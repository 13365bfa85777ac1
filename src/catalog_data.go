package main

import (
	"time"

	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gosimple/slug"
)

// The browse catalogs are fixed in-process lists; ids are regenerated per
// request like the search mocks.

func catalogEvents() []types.JSONB {
	return []types.JSONB{
		{
			"event_id":        utils.GenerateID("evt", 8),
			"title":           "Sunset Safari Experience",
			"description":     "Witness the African savanna come alive at sunset with our exclusive safari tour.",
			"location":        "Serengeti National Park",
			"city":            "Tanzania",
			"date":            "2025-02-15",
			"time":            "16:00",
			"duration":        "4 hours",
			"price":           150.00,
			"image_url":       "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
			"category":        "Safari",
			"available_spots": 12,
			"organizer":       "African Adventures",
		},
		{
			"event_id":        utils.GenerateID("evt", 8),
			"title":           "Tokyo Food Walking Tour",
			"description":     "Explore the hidden culinary gems of Tokyo with local guides.",
			"location":        "Shibuya District",
			"city":            "Tokyo",
			"date":            "2025-02-20",
			"time":            "18:00",
			"duration":        "3 hours",
			"price":           85.00,
			"image_url":       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
			"category":        "Food & Culture",
			"available_spots": 8,
			"organizer":       "Tokyo Tastes",
		},
		{
			"event_id":        utils.GenerateID("evt", 8),
			"title":           "Northern Lights Adventure",
			"description":     "Chase the Aurora Borealis across the Arctic wilderness.",
			"location":        "Tromsø",
			"city":            "Norway",
			"date":            "2025-03-01",
			"time":            "20:00",
			"duration":        "6 hours",
			"price":           220.00,
			"image_url":       "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800",
			"category":        "Nature",
			"available_spots": 15,
			"organizer":       "Arctic Expeditions",
		},
		{
			"event_id":        utils.GenerateID("evt", 8),
			"title":           "Machu Picchu Sunrise Trek",
			"description":     "Witness the sunrise over the ancient Incan citadel.",
			"location":        "Machu Picchu",
			"city":            "Peru",
			"date":            "2025-03-10",
			"time":            "04:00",
			"duration":        "8 hours",
			"price":           180.00,
			"image_url":       "https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=800",
			"category":        "Adventure",
			"available_spots": 10,
			"organizer":       "Inca Trail Tours",
		},
	}
}

func catalogEventDetail(eventId string) types.JSONB {
	return types.JSONB{
		"event_id":        eventId,
		"title":           "Sunset Safari Experience",
		"description":     "Witness the African savanna come alive at sunset with our exclusive safari tour. Expert guides will take you through the heart of Serengeti, where you'll encounter lions, elephants, zebras, and more in their natural habitat.",
		"location":        "Serengeti National Park",
		"city":            "Tanzania",
		"date":            "2025-02-15",
		"time":            "16:00",
		"duration":        "4 hours",
		"price":           150.00,
		"image_url":       "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
		"images": types.JSONBArray{
			"https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
			"https://images.unsplash.com/photo-1534177616064-ef1dcaabdfc9?w=800",
		},
		"category":        "Safari",
		"available_spots": 12,
		"organizer":       "African Adventures",
		"includes":        types.JSONBArray{"Transport", "Guide", "Refreshments", "Binoculars"},
		"meeting_point":   "Serengeti Park Gate",
	}
}

func catalogVehicles() []types.JSONB {
	return []types.JSONB{
		{
			"vehicle_id":    utils.GenerateID("veh", 8),
			"name":          "Toyota Land Cruiser",
			"type":          "suv",
			"brand":         "Toyota",
			"model":         "Land Cruiser",
			"year":          2024,
			"price_per_day": 120.00,
			"image_url":     "https://images.unsplash.com/photo-1674476459501-47466da1dbbc?w=800",
			"location":      "Dubai",
			"features":      types.JSONBArray{"4WD", "GPS", "Air Conditioning", "Bluetooth"},
			"available":     true,
			"seats":         7,
			"transmission":  "Automatic",
		},
		{
			"vehicle_id":    utils.GenerateID("veh", 8),
			"name":          "Mercedes-Benz S-Class",
			"type":          "car",
			"brand":         "Mercedes-Benz",
			"model":         "S-Class",
			"year":          2024,
			"price_per_day": 250.00,
			"image_url":     "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800",
			"location":      "Paris",
			"features":      types.JSONBArray{"Leather Seats", "GPS", "Premium Audio", "Sunroof"},
			"available":     true,
			"seats":         5,
			"transmission":  "Automatic",
		},
		{
			"vehicle_id":    utils.GenerateID("veh", 8),
			"name":          "Vespa Primavera",
			"type":          "bike",
			"brand":         "Vespa",
			"model":         "Primavera 150",
			"year":          2024,
			"price_per_day": 45.00,
			"image_url":     "https://images.unsplash.com/photo-1558981285-6f0c94958bb6?w=800",
			"location":      "Rome",
			"features":      types.JSONBArray{"Helmet Included", "Storage Box"},
			"available":     true,
			"seats":         2,
			"transmission":  "Automatic",
		},
		{
			"vehicle_id":    utils.GenerateID("veh", 8),
			"name":          "Ford Transit Van",
			"type":          "van",
			"brand":         "Ford",
			"model":         "Transit",
			"year":          2023,
			"price_per_day": 85.00,
			"image_url":     "https://images.unsplash.com/photo-1532593400-3f0b1f3b2c2a?w=800",
			"location":      "London",
			"features":      types.JSONBArray{"Large Cargo", "GPS", "Air Conditioning"},
			"available":     true,
			"seats":         9,
			"transmission":  "Automatic",
		},
	}
}

func catalogVehicleDetail(vehicleId string) types.JSONB {
	return types.JSONB{
		"vehicle_id":         vehicleId,
		"name":               "Toyota Land Cruiser",
		"type":               "suv",
		"brand":              "Toyota",
		"model":              "Land Cruiser",
		"year":               2024,
		"price_per_day":      120.00,
		"image_url":          "https://images.unsplash.com/photo-1674476459501-47466da1dbbc?w=800",
		"images":             types.JSONBArray{"https://images.unsplash.com/photo-1674476459501-47466da1dbbc?w=800"},
		"location":           "Dubai",
		"features":           types.JSONBArray{"4WD", "GPS", "Air Conditioning", "Bluetooth", "Cruise Control", "Backup Camera"},
		"available":          true,
		"seats":              7,
		"transmission":       "Automatic",
		"fuel_type":          "Petrol",
		"mileage_limit":      "Unlimited",
		"insurance_included": true,
		"deposit_required":   500.00,
	}
}

func catalogVisaPackages() []types.JSONB {
	return []types.JSONB{
		{
			"package_id":         utils.GenerateID("visa", 8),
			"country":            "United States",
			"visa_type":          "Tourist (B1/B2)",
			"processing_time":    "3-5 business days",
			"price":              199.00,
			"documents_required": types.JSONBArray{"Valid Passport", "Photo", "Bank Statement", "Travel Itinerary", "Employment Letter"},
			"description":        "Complete US tourist visa assistance including application review and interview preparation.",
			"image_url":          "https://images.unsplash.com/photo-1485738422979-f5c462d49f74?w=800",
		},
		{
			"package_id":         utils.GenerateID("visa", 8),
			"country":            "United Kingdom",
			"visa_type":          "Standard Visitor",
			"processing_time":    "15 working days",
			"price":              149.00,
			"documents_required": types.JSONBArray{"Valid Passport", "Photo", "Bank Statement", "Accommodation Proof", "Return Ticket"},
			"description":        "UK visitor visa processing with document verification and submission support.",
			"image_url":          "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
		},
		{
			"package_id":         utils.GenerateID("visa", 8),
			"country":            "Schengen Area",
			"visa_type":          "Short Stay (C)",
			"processing_time":    "10-15 working days",
			"price":              129.00,
			"documents_required": types.JSONBArray{"Valid Passport", "Photo", "Travel Insurance", "Hotel Booking", "Flight Itinerary"},
			"description":        "Schengen visa for travel across 27 European countries.",
			"image_url":          "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?w=800",
		},
		{
			"package_id":         utils.GenerateID("visa", 8),
			"country":            "Australia",
			"visa_type":          "Visitor (subclass 600)",
			"processing_time":    "20-30 days",
			"price":              179.00,
			"documents_required": types.JSONBArray{"Valid Passport", "Photo", "Financial Evidence", "Health Insurance", "Character Documents"},
			"description":        "Australian visitor visa with comprehensive application support.",
			"image_url":          "https://images.unsplash.com/photo-1523482580672-f109ba8cb9be?w=800",
		},
	}
}

func catalogBlogPosts() []types.JSONB {
	now := time.Now().UTC().Format(time.RFC3339)
	return []types.JSONB{
		{
			"post_id":      utils.GenerateID("post", 8),
			"title":        "10 Hidden Gems in Southeast Asia You Must Visit",
			"slug":         slug.Make("Hidden Gems Southeast Asia"),
			"excerpt":      "Discover the most beautiful off-the-beaten-path destinations in Southeast Asia.",
			"content":      "Southeast Asia is a treasure trove of incredible destinations...",
			"author":       "Sarah Johnson",
			"author_image": "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150",
			"image_url":    "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=800",
			"category":     "Destinations",
			"tags":         types.JSONBArray{"Asia", "Adventure", "Hidden Gems"},
			"created_at":   now,
			"read_time":    "8 min read",
			"views":        2340,
			"featured":     true,
		},
		{
			"post_id":      utils.GenerateID("post", 8),
			"title":        "The Ultimate Packing Guide for Long-Term Travel",
			"slug":         slug.Make("Ultimate Packing Guide"),
			"excerpt":      "Everything you need to know about packing light for extended adventures.",
			"content":      "Packing for long-term travel can be overwhelming...",
			"author":       "Mike Chen",
			"author_image": "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
			"image_url":    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			"category":     "Tips & Guides",
			"tags":         types.JSONBArray{"Packing", "Tips", "Budget Travel"},
			"created_at":   now,
			"read_time":    "6 min read",
			"views":        1890,
			"featured":     false,
		},
		{
			"post_id":      utils.GenerateID("post", 8),
			"title":        "Sustainable Travel: How to Reduce Your Carbon Footprint",
			"slug":         slug.Make("Sustainable Travel Guide"),
			"excerpt":      "Learn how to travel responsibly while still having amazing experiences.",
			"content":      "Sustainable travel is more important than ever...",
			"author":       "Emma Wilson",
			"author_image": "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150",
			"image_url":    "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?w=800",
			"category":     "Sustainability",
			"tags":         types.JSONBArray{"Eco-friendly", "Green Travel", "Tips"},
			"created_at":   now,
			"read_time":    "5 min read",
			"views":        1456,
			"featured":     true,
		},
	}
}

const blogPostBodyHTML = `
<h2>Introduction</h2>
<p>Southeast Asia is a treasure trove of incredible destinations that go far beyond the typical tourist spots. While places like Bali and Bangkok are certainly worth visiting, there's a whole world of hidden gems waiting to be discovered.</p>

<h2>1. Kampot, Cambodia</h2>
<p>This sleepy riverside town offers a perfect blend of French colonial architecture, pepper plantations, and stunning countryside. Rent a scooter and explore the nearby caves and beaches.</p>

<h2>2. Siargao, Philippines</h2>
<p>Known as the surfing capital of the Philippines, Siargao offers more than just waves. Discover pristine lagoons, coconut forests, and some of the friendliest locals you'll ever meet.</p>

<h2>3. Ninh Binh, Vietnam</h2>
<p>Often called "Ha Long Bay on land," this stunning region features limestone karsts, ancient temples, and peaceful boat rides through flooded rice paddies.</p>
`

func catalogGalleryItems() []types.JSONB {
	return []types.JSONB{
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1653959747793-c7c3775665f0?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1653959747793-c7c3775665f0?w=400",
			"title":     "Tropical Paradise",
			"location":  "Maldives",
			"category":  "Beaches",
		},
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=400",
			"title":     "African Safari",
			"location":  "Serengeti",
			"category":  "Wildlife",
		},
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=400",
			"title":     "Northern Lights",
			"location":  "Norway",
			"category":  "Nature",
		},
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400",
			"title":     "Tokyo Nights",
			"location":  "Japan",
			"category":  "Cities",
		},
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=400",
			"title":     "Machu Picchu",
			"location":  "Peru",
			"category":  "Historical",
		},
		{
			"id":        utils.GenerateID("gal", 8),
			"type":      "image",
			"url":       "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?w=800",
			"thumbnail": "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?w=400",
			"title":     "Swiss Alps",
			"location":  "Switzerland",
			"category":  "Mountains",
		},
	}
}

func catalogFeaturedDestinations() []types.JSONB {
	return []types.JSONB{
		{
			"id":          "dest_1",
			"name":        "Maldives",
			"country":     "Maldives",
			"description": "Paradise islands with crystal clear waters",
			"image_url":   "https://images.unsplash.com/photo-1653959747793-c7c3775665f0?w=800",
			"rating":      4.9,
			"price_from":  299,
		},
		{
			"id":          "dest_2",
			"name":        "Santorini",
			"country":     "Greece",
			"description": "Iconic white buildings and stunning sunsets",
			"image_url":   "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800",
			"rating":      4.8,
			"price_from":  199,
		},
		{
			"id":          "dest_3",
			"name":        "Bali",
			"country":     "Indonesia",
			"description": "Tropical paradise with rich culture",
			"image_url":   "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800",
			"rating":      4.7,
			"price_from":  149,
		},
		{
			"id":          "dest_4",
			"name":        "Tokyo",
			"country":     "Japan",
			"description": "Where tradition meets ultra-modern",
			"image_url":   "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
			"rating":      4.8,
			"price_from":  259,
		},
		{
			"id":          "dest_5",
			"name":        "Dubai",
			"country":     "UAE",
			"description": "Luxury, adventure, and innovation",
			"image_url":   "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800",
			"rating":      4.6,
			"price_from":  189,
		},
		{
			"id":          "dest_6",
			"name":        "Paris",
			"country":     "France",
			"description": "The city of lights and romance",
			"image_url":   "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
			"rating":      4.7,
			"price_from":  179,
		},
	}
}

func catalogStoreProducts() []types.JSONB {
	return []types.JSONB{
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Travel Backpack 40L",
			"description":   "Durable, waterproof backpack perfect for extended travel.",
			"price":         129.99,
			"sale_price":    99.99,
			"image_url":     "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800"},
			"category":      "Bags",
			"stock":         45,
			"rating":        4.7,
			"reviews_count": 128,
		},
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Noise Cancelling Headphones",
			"description":   "Premium wireless headphones for peaceful travels.",
			"price":         249.99,
			"sale_price":    nil,
			"image_url":     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800"},
			"category":      "Electronics",
			"stock":         32,
			"rating":        4.9,
			"reviews_count": 256,
		},
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Packing Cubes Set",
			"description":   "Keep your luggage organized with this 6-piece packing cube set.",
			"price":         34.99,
			"sale_price":    24.99,
			"image_url":     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800"},
			"category":      "Accessories",
			"stock":         120,
			"rating":        4.5,
			"reviews_count": 89,
		},
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Travel Journal - Leather Bound",
			"description":   "Document your adventures in this premium leather journal.",
			"price":         45.99,
			"sale_price":    nil,
			"image_url":     "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=800"},
			"category":      "Books",
			"stock":         78,
			"rating":        4.8,
			"reviews_count": 67,
		},
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Universal Travel Adapter",
			"description":   "Works in 150+ countries with USB-C and USB-A ports.",
			"price":         39.99,
			"sale_price":    29.99,
			"image_url":     "https://images.unsplash.com/photo-1558089687-f282ffcbc126?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1558089687-f282ffcbc126?w=800"},
			"category":      "Electronics",
			"stock":         200,
			"rating":        4.6,
			"reviews_count": 312,
		},
		{
			"product_id":    utils.GenerateID("prod", 8),
			"name":          "Quick-Dry Travel Towel",
			"description":   "Compact, super absorbent microfiber towel.",
			"price":         24.99,
			"sale_price":    nil,
			"image_url":     "https://images.unsplash.com/photo-1620574387735-3624d75b2dbc?w=800",
			"images":        types.JSONBArray{"https://images.unsplash.com/photo-1620574387735-3624d75b2dbc?w=800"},
			"category":      "Accessories",
			"stock":         95,
			"rating":        4.4,
			"reviews_count": 54,
		},
	}
}

func catalogProductDetail(productId string) types.JSONB {
	return types.JSONB{
		"product_id":  productId,
		"name":        "Travel Backpack 40L",
		"description": "Durable, waterproof backpack perfect for extended travel. Features include padded laptop compartment, multiple organization pockets, and comfortable ergonomic straps.",
		"price":       129.99,
		"sale_price":  99.99,
		"image_url":   "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
		"images": types.JSONBArray{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			"https://images.unsplash.com/photo-1581605405669-fcdf81165bc0?w=800",
		},
		"category":      "Bags",
		"stock":         45,
		"rating":        4.7,
		"reviews_count": 128,
		"specifications": types.JSONB{
			"Capacity":   "40 Liters",
			"Material":   "Waterproof Nylon",
			"Weight":     "1.2 kg",
			"Dimensions": "55 x 35 x 25 cm",
		},
	}
}

func catalogHotelDetail(hotelId string) types.JSONB {
	return types.JSONB{
		"hotel_id":        hotelId,
		"name":            "The Grand Resort & Spa",
		"location":        "Maldives",
		"city":            "Maldives",
		"rating":          4.8,
		"reviews_count":   324,
		"price_per_night": 299,
		"image_url":       "https://images.unsplash.com/photo-1702830499141-a0634d87d6af?w=800",
		"images": types.JSONBArray{
			"https://images.unsplash.com/photo-1702830499141-a0634d87d6af?w=800",
			"https://images.unsplash.com/photo-1709187516056-d4929b67e89f?w=800",
		},
		"amenities":   types.JSONBArray{"Pool", "Spa", "Restaurant", "Gym", "WiFi", "Beach Access", "Water Sports"},
		"description": "Experience paradise at The Grand Resort & Spa. Nestled in pristine waters with overwater villas and world-class amenities.",
		"room_types": types.JSONBArray{
			types.JSONB{"type": "Beach Villa", "price": 299, "beds": "1 King", "size": "45 sqm"},
			types.JSONB{"type": "Overwater Villa", "price": 499, "beds": "1 King", "size": "65 sqm"},
			types.JSONB{"type": "Presidential Suite", "price": 899, "beds": "1 King + Living", "size": "120 sqm"},
		},
	}
}

func catalogFlightDetail(flightId string) types.JSONB {
	return types.JSONB{
		"flight_id":        flightId,
		"airline":          "Emirates",
		"airline_logo":     "https://upload.wikimedia.org/wikipedia/commons/d/d0/Emirates_logo.svg",
		"flight_number":    "EK101",
		"origin":           "JFK",
		"origin_city":      "New York",
		"destination":      "DXB",
		"destination_city": "Dubai",
		"departure_time":   "09:00",
		"arrival_time":     "07:30+1",
		"duration":         "12h 30m",
		"price":            850.00,
		"stops":            0,
		"cabin_class":      "economy",
		"available_seats":  25,
		"aircraft":         "Boeing 777-300ER",
		"amenities":        types.JSONBArray{"WiFi", "Entertainment", "Meals", "USB Charging"},
	}
}
