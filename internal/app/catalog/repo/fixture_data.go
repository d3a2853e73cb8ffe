package repo

import (
	"time"

	"github.com/light-bringer/farmlink-service/internal/app/catalog/domain"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// Demo dataset for local development and the default fixture backend.
// Two products (p8, p10/p14) reference farmers that are not in the farmer
// set; they exercise the placeholder join on purpose.
var fixtureProducts = []domain.Product{
	{
		ID:          "p1",
		Name:        "Roma Tomatoes",
		Description: "Fresh, ripe Roma tomatoes perfect for sauces and salads.",
		Category:    "Vegetables",
		Price:       45,
		Unit:        "kg",
		Quantity:    200,
		Image:       "/images/products/roma-tomatoes.jpg",
		FarmerID:    "f1",
		CreatedAt:   day("2024-04-01"),
	},
	{
		ID:          "p2",
		Name:        "Fresh Tomatoes",
		Description: "Vine ripened tomatoes grown using traditional farming methods.",
		Category:    "Vegetables",
		Price:       60,
		Unit:        "kg",
		Quantity:    150,
		Image:       "/images/products/fresh-tomatoes.jpg",
		FarmerID:    "f2",
		CreatedAt:   day("2024-04-02"),
	},
	{
		ID:          "p3",
		Name:        "Dragon Fruit",
		Description: "Exotic dragon fruit rich in antioxidants and vitamins.",
		Category:    "Fruits",
		Price:       180,
		Unit:        "kg",
		Quantity:    45,
		Image:       "/images/products/dragon-fruit.jpg",
		FarmerID:    "f3",
		CreatedAt:   day("2024-04-03"),
	},
	{
		ID:          "p4",
		Name:        "Green Chillies",
		Description: "Fresh green chillies with the perfect spice level.",
		Category:    "Vegetables",
		Price:       70,
		Unit:        "kg",
		Quantity:    80,
		Image:       "/images/products/green-chillies.jpg",
		FarmerID:    "f1",
		CreatedAt:   day("2024-04-04"),
	},
	{
		ID:          "p5",
		Name:        "Lady Finger",
		Description: "Tender and fresh lady finger/okra picked at the right time.",
		Category:    "Vegetables",
		Price:       85,
		Unit:        "kg",
		Quantity:    70,
		Image:       "/images/products/lady-finger.jpg",
		FarmerID:    "f2",
		CreatedAt:   day("2024-04-05"),
	},
	{
		ID:          "p6",
		Name:        "Organic Honey",
		Description: "Pure organic honey collected from forest bees, unprocessed and raw.",
		Category:    "Dairy & Honey",
		Price:       450,
		Unit:        "bottle",
		Quantity:    25,
		Image:       "/images/products/organic-honey.jpg",
		FarmerID:    "f4",
		CreatedAt:   day("2024-04-06"),
	},
	{
		ID:          "p7",
		Name:        "Premium Basmati Rice",
		Description: "Premium long-grain basmati rice with perfect aroma.",
		Category:    "Grains",
		Price:       160,
		Unit:        "kg",
		Quantity:    300,
		Image:       "/images/products/basmati-rice.jpg",
		FarmerID:    "f5",
		CreatedAt:   day("2024-04-07"),
	},
	{
		ID:          "p8",
		Name:        "Brown Rice",
		Description: "Organically grown brown rice rich in fiber and nutrients.",
		Category:    "Grains",
		Price:       140,
		Unit:        "kg",
		Quantity:    250,
		Image:       "/images/products/brown-rice.jpg",
		FarmerID:    "f6",
		CreatedAt:   day("2024-04-08"),
	},
	{
		ID:          "p9",
		Name:        "Potatoes",
		Description: "Farm-fresh potatoes perfect for all your cooking needs.",
		Category:    "Vegetables",
		Price:       30,
		Unit:        "kg",
		Quantity:    500,
		Image:       "/images/products/potatoes.jpg",
		FarmerID:    "f3",
		CreatedAt:   day("2024-04-09"),
	},
	{
		ID:          "p10",
		Name:        "Pure Cow Ghee",
		Description: "Traditional hand-churned pure cow ghee from indigenous cows.",
		Category:    "Dairy & Honey",
		Price:       650,
		Unit:        "kg",
		Quantity:    20,
		Image:       "/images/products/cow-ghee.jpg",
		FarmerID:    "f7",
		CreatedAt:   day("2024-04-10"),
	},
	{
		ID:          "p11",
		Name:        "Fresh Spinach",
		Description: "Freshly harvested spinach leaves full of iron and vitamins.",
		Category:    "Vegetables",
		Price:       55,
		Unit:        "bundle",
		Quantity:    120,
		Image:       "/images/products/fresh-spinach.jpg",
		FarmerID:    "f1",
		CreatedAt:   day("2024-04-11"),
	},
	{
		ID:          "p12",
		Name:        "Alphonso Mango",
		Description: "The king of fruits - premium Alphonso mangoes from Ratnagiri.",
		Category:    "Fruits",
		Price:       350,
		Unit:        "dozen",
		Quantity:    30,
		Image:       "/images/products/alphonso-mango.jpg",
		FarmerID:    "f2",
		CreatedAt:   day("2024-04-12"),
	},
	{
		ID:          "p13",
		Name:        "Organic Okra",
		Description: "Certified organic lady fingers grown without pesticides.",
		Category:    "Vegetables",
		Price:       120,
		Unit:        "kg",
		Quantity:    50,
		Image:       "/images/products/organic-okra.jpg",
		FarmerID:    "f4",
		CreatedAt:   day("2024-04-13"),
	},
	{
		ID:          "p14",
		Name:        "Fresh Paneer",
		Description: "Homemade fresh cottage cheese made from farm-fresh milk.",
		Category:    "Dairy & Honey",
		Price:       280,
		Unit:        "kg",
		Quantity:    15,
		Image:       "/images/products/fresh-paneer.jpg",
		FarmerID:    "f7",
		CreatedAt:   day("2024-04-14"),
	},
}

var fixtureFarmers = []domain.Farmer{
	{
		ID:       "f1",
		Name:     "Rajesh Patel",
		Email:    "rajesh@example.com",
		Location: "Gujarat",
		Rating:   4.8,
		Bio:      "Third-generation farmer specializing in organic vegetables and sustainable farming practices.",
		JoinedAt: day("2023-01-15"),
		Image:    "/images/farmers/rajesh-patel.jpg",
	},
	{
		ID:       "f2",
		Name:     "Anita Sharma",
		Email:    "anita@example.com",
		Location: "Punjab",
		Rating:   4.5,
		Bio:      "Family-owned farm producing premium quality grains and fruits.",
		JoinedAt: day("2023-02-10"),
		Image:    "/images/farmers/anita-sharma.jpg",
	},
	{
		ID:       "f3",
		Name:     "Vikram Singh",
		Email:    "vikram@example.com",
		Location: "Haryana",
		Rating:   4.7,
		Bio:      "Organic dairy farm producing fresh milk and dairy products using traditional methods.",
		JoinedAt: day("2023-03-05"),
		Image:    "/images/farmers/vikram-singh.jpg",
	},
	{
		ID:       "f4",
		Name:     "Meena Kumari",
		Email:    "meena@example.com",
		Location: "Karnataka",
		Rating:   4.9,
		Bio:      "Award-winning farmer specializing in exotic fruits and spices.",
		JoinedAt: day("2023-01-20"),
		Image:    "/images/farmers/meena-kumari.jpg",
	},
	{
		ID:       "f5",
		Name:     "Sanjay Reddy",
		Email:    "sanjay@example.com",
		Location: "Andhra Pradesh",
		Rating:   4.6,
		Bio:      "Rice and vegetable farmer using integrated farming techniques.",
		JoinedAt: day("2023-02-25"),
		Image:    "/images/farmers/sanjay-reddy.jpg",
	},
}
