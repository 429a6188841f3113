package menu

import "github.com/friends-cafe/cafe-api/models"

// Categories returns the seed menu. Prices are in rupees; the made-to-order
// pizzas in "Veg Pizza" are priced per size, everything else is fixed-price.
func Categories() []models.MenuCategory {
	return []models.MenuCategory{
		{
			Name:     "Breakfast",
			Position: 1,
			Items: []models.MenuItem{
				{Name: "Parantha (Aloo, Gobi, Onion)", Price: 49, IsVeg: true,
					Description: "Whole wheat flatbread stuffed with spiced potatoes, cauliflower, or onions",
					Image:       "/images/parantha.jpeg"},
				{Name: "Paneer Parantha", Price: 59, IsVeg: true,
					Description: "Whole wheat flatbread stuffed with spiced cottage cheese",
					Image:       "/images/paneer parantha.jpeg"},
				{Name: "Chana Puri", Price: 79, IsVeg: true,
					Description: "Deep-fried bread served with spiced chickpeas curry",
					Image:       "/images/chana puri.jpeg"},
				{Name: "Chana Bhatura", Price: 89, IsVeg: true,
					Description: "Fluffy deep-fried bread served with spiced chickpeas curry",
					Image:       "/images/chana bhatura.jpeg"},
			},
		},
		{
			Name:     "Noodles",
			Position: 2,
			Items: []models.MenuItem{
				{Name: "Veg Noodles", Price: 109, IsVeg: true,
					Description: "Stir-fried noodles with mixed vegetables and soy sauce",
					Image:       "/images/veg noodles.jpeg"},
				{Name: "Paneer Noodles", Price: 139, IsVeg: true,
					Description: "Stir-fried noodles with cottage cheese and vegetables",
					Image:       "/images/paneer noodles.jpeg"},
				{Name: "Chicken Noodles", Price: 149, IsVeg: false,
					Description: "Stir-fried noodles with chicken pieces and vegetables",
					Image:       "/images/chicken noodles.jpeg"},
			},
		},
		{
			Name:     "Chinese",
			Position: 3,
			Items: []models.MenuItem{
				{Name: "Spring Roll", Price: 119, IsVeg: true,
					Description: "Crispy rolls filled with vegetables and served with dipping sauce",
					Image:       "/images/spring roll.jpeg"},
				{Name: "Veg Manchurian", Price: 119, IsVeg: true, IsSpicy: true,
					Description: "Vegetable balls in a spicy, sweet and sour sauce",
					Image:       "/images/veg manchurian.jpeg"},
				{Name: "Honey Chilly Potato", Price: 119, IsVeg: true, IsSpicy: true,
					Description: "Crispy potato tossed in honey chilli sauce",
					Image:       "/images/honey chilly potato.jpeg"},
			},
		},
		{
			Name:     "Single Pizza",
			Position: 4,
			Items: []models.MenuItem{
				{Name: "Onion Pizza", Price: 69, IsVeg: true,
					Description: "Pizza topped with onions and cheese",
					Image:       "/images/onion pizza.jpeg"},
				{Name: "Capsicum Pizza", Price: 79, IsVeg: true,
					Description: "Pizza topped with bell peppers and cheese",
					Image:       "/images/capsicum pizza.jpeg"},
				{Name: "Sweet Corn Pizza", Price: 79, IsVeg: true,
					Description: "Pizza topped with sweet corn kernels and cheese",
					Image:       "/images/corn pizza.jpeg"},
				{Name: "Olive Pizza", Price: 89, IsVeg: true,
					Description: "Pizza topped with olives and cheese",
					Image:       "/images/olive pizza.jpeg"},
				{Name: "Paneer Pizza", Price: 99, IsVeg: true,
					Description: "Pizza topped with cottage cheese and vegetables",
					Image:       "/images/panner pizza.webp"},
			},
		},
		{
			Name:     "Double Pizza",
			Position: 5,
			Items: []models.MenuItem{
				{Name: "Onion & Capsicum Pizza", Price: 89, IsVeg: true,
					Description: "Pizza topped with onions, bell peppers, and cheese",
					Image:       "/images/Onion & Capsicum Pizza.jpeg"},
				{Name: "Onion Corn Pizza", Price: 89, IsVeg: true,
					Description: "Pizza topped with onions, corn, and cheese",
					Image:       "/images/Onion Corn Pizza.jpeg"},
			},
		},
		{
			Name:     "Veg Pizza",
			Position: 6,
			Items: []models.MenuItem{
				{Name: "Margherita Pizza", PriceSmall: 99, PriceMedium: 155, PriceLarge: 259, IsVeg: true,
					Description: "Classic pizza with tomato sauce, mozzarella cheese, and basil",
					Image:       "/images/margherita pizza.jpeg"},
				{Name: "Garden Delight Pizza", PriceSmall: 99, PriceMedium: 209, PriceLarge: 309, IsVeg: true,
					Description: "Pizza topped with assorted garden vegetables",
					Image:       "/images/garden delight pizza.jpeg"},
				{Name: "Veg. Hawaiian Pizza", PriceSmall: 119, PriceMedium: 219, PriceLarge: 319, IsVeg: true,
					Description: "Pizza topped with pineapple and vegetables",
					Image:       "/images/veg hawaiian pizza.jpeg"},
				{Name: "Double Cheese Margherita Pizza", PriceSmall: 129, PriceMedium: 209, PriceLarge: 319, IsVeg: true,
					Description: "Margherita pizza with double the cheese",
					Image:       "/images/double cheese margherita pizza.jpeg"},
			},
		},
		{
			Name:     "Mocktails",
			Position: 7,
			Items: []models.MenuItem{
				{Name: "Virgin Mojito", Price: 99, IsVeg: true,
					Description: "Refreshing lime and mint cooler",
					Image:       "/images/virgin mojito.jpeg"},
				{Name: "Blue Lagoon", Price: 109, IsVeg: true,
					Description: "Blue curacao syrup with lemonade and ice",
					Image:       "/images/blue lagoon.jpeg"},
			},
		},
	}
}
