package category

// Default returns the built-in grocery category table. Deployments with
// their own taxonomy load one from file instead.
func Default() *Index {
	return NewIndex(map[string]string{
		// Dairy
		"whole milk":         "dairy",
		"yogurt":             "dairy",
		"whipped/sour cream": "dairy",
		"butter":             "dairy",
		"cheese":             "dairy",
		// Vegetables
		"other vegetables": "vegetables",
		"root vegetables":  "vegetables",
		"carrots":          "vegetables",
		"tomatoes":         "vegetables",
		// Fruits
		"tropical fruit": "fruits",
		"pip fruit":      "fruits",
		"citrus fruit":   "fruits",
		"grapes":         "fruits",
		"berries":        "fruits",
		// Bakery
		"rolls/buns":  "bakery",
		"brown bread": "bakery",
		"white bread": "bakery",
		"pastry":      "bakery",
		// Drinks
		"soda":          "drinks",
		"bottled water": "drinks",
		"canned beer":   "drinks",
		"bottled beer":  "drinks",
		"coffee":        "drinks",
		"tea":           "drinks",
		// Meat
		"sausage":     "meat",
		"frankfurter": "meat",
		"pork":        "meat",
		"beef":        "meat",
		"chicken":     "meat",
	})
}
