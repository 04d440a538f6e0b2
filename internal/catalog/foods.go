// ABOUTME: Built-in food reference data with per-100g macros and additives.
// ABOUTME: Indonesian foods sourced from Kemenkes RI / TKPI composition tables.
package catalog

import "github.com/harperreed/nutriscan/internal/models"

// Categories lists the food categories in display order.
var Categories = []models.CategoryInfo{
	{ID: models.CategoryAll, Name: "Semua"},
	{ID: models.CategoryStaple, Name: "Makanan Pokok"},
	{ID: models.CategoryAnimal, Name: "Lauk Hewani"},
	{ID: models.CategoryPlant, Name: "Lauk Nabati"},
	{ID: models.CategoryVeggie, Name: "Sayuran"},
	{ID: models.CategoryFruit, Name: "Buah-buahan"},
	{ID: models.CategoryDish, Name: "Masakan Indonesia"},
	{ID: models.CategorySnack, Name: "Jajanan & Snack"},
	{ID: models.CategoryDrink, Name: "Minuman & Dairy"},
	{ID: models.CategorySauce, Name: "Bumbu & Saus"},
	{ID: models.CategoryFastFood, Name: "Fast Food"},
}

// CategoryByID returns the category info for an ID, or nil if unknown.
func CategoryByID(id models.Category) *models.CategoryInfo {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// Foods is the built-in catalog. Order is the catalog insertion order and is
// the order search results are returned in.
var Foods = []models.FoodDefinition{
	// Makanan pokok
	{Name: "Nasi Putih", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28, Category: models.CategoryStaple, Additives: []string{}},
	{Name: "Nasi Merah", Calories: 110, Protein: 2.5, Fat: 0.8, Carbs: 23, Category: models.CategoryStaple, Additives: []string{}},
	{Name: "Mie Instan", Calories: 436, Protein: 9, Fat: 17, Carbs: 63, Category: models.CategoryStaple, Additives: []string{"E621", "E627", "E631", "E150c", "E501"}},
	{Name: "Roti Tawar", Calories: 265, Protein: 9, Fat: 3, Carbs: 49, Category: models.CategoryStaple, Additives: []string{"E282", "E471"}},
	{Name: "Kentang Rebus", Calories: 87, Protein: 1.9, Fat: 0.1, Carbs: 20, Category: models.CategoryStaple, Additives: []string{}},
	{Name: "Singkong Rebus", Calories: 154, Protein: 1.4, Fat: 0.3, Carbs: 36, Category: models.CategoryStaple, Additives: []string{}},

	// Lauk hewani
	{Name: "Ayam Goreng", Calories: 246, Protein: 27, Fat: 14, Carbs: 0, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Ayam Bakar", Calories: 190, Protein: 28, Fat: 8, Carbs: 0, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Telur Rebus", Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Telur Dadar", Calories: 196, Protein: 14, Fat: 15, Carbs: 1, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Ikan Goreng", Calories: 199, Protein: 22, Fat: 11, Carbs: 2, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Ikan Bakar", Calories: 166, Protein: 25, Fat: 7, Carbs: 0, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Udang Goreng", Calories: 242, Protein: 21, Fat: 16, Carbs: 3, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Daging Sapi Rendang", Calories: 193, Protein: 22, Fat: 10, Carbs: 4, Category: models.CategoryAnimal, Additives: []string{}},
	{Name: "Bakso Sapi", Calories: 202, Protein: 10, Fat: 12, Carbs: 8, Category: models.CategoryAnimal, Additives: []string{"E621", "E451"}},
	{Name: "Sosis Sapi", Calories: 228, Protein: 12, Fat: 18, Carbs: 4, Category: models.CategoryAnimal, Additives: []string{"E250", "E316", "E621", "E451"}},
	{Name: "Nugget Ayam", Calories: 245, Protein: 13, Fat: 15, Carbs: 15, Category: models.CategoryAnimal, Additives: []string{"E450", "E452", "E621", "E412"}},
	{Name: "Kornet Sapi", Calories: 220, Protein: 14, Fat: 18, Carbs: 2, Category: models.CategoryAnimal, Additives: []string{"E250", "E316"}},

	// Lauk nabati
	{Name: "Tempe Goreng", Calories: 192, Protein: 19, Fat: 10, Carbs: 7.8, Category: models.CategoryPlant, Additives: []string{}},
	{Name: "Tahu Goreng", Calories: 271, Protein: 17, Fat: 20, Carbs: 6, Category: models.CategoryPlant, Additives: []string{}},
	{Name: "Tempe Bacem", Calories: 158, Protein: 16, Fat: 8, Carbs: 8, Category: models.CategoryPlant, Additives: []string{}},
	{Name: "Tahu Bacem", Calories: 165, Protein: 12, Fat: 10, Carbs: 8, Category: models.CategoryPlant, Additives: []string{}},
	{Name: "Oncom Goreng", Calories: 180, Protein: 13, Fat: 11, Carbs: 8, Category: models.CategoryPlant, Additives: []string{}},

	// Sayuran
	{Name: "Sayur Bayam", Calories: 23, Protein: 2.9, Fat: 0.4, Carbs: 3.6, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Kangkung", Calories: 19, Protein: 2.6, Fat: 0.2, Carbs: 3.1, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Wortel", Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 10, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Brokoli", Calories: 34, Protein: 2.8, Fat: 0.4, Carbs: 7, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Sayur Sop", Calories: 45, Protein: 2, Fat: 1.5, Carbs: 6, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Capcay", Calories: 55, Protein: 3, Fat: 2, Carbs: 7, Category: models.CategoryVeggie, Additives: []string{}},
	{Name: "Tumis Kacang Panjang", Calories: 67, Protein: 3, Fat: 3, Carbs: 8, Category: models.CategoryVeggie, Additives: []string{}},

	// Buah-buahan
	{Name: "Pisang", Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Apel", Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 14, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Jeruk", Calories: 47, Protein: 0.9, Fat: 0.1, Carbs: 12, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Mangga", Calories: 60, Protein: 0.8, Fat: 0.4, Carbs: 15, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Pepaya", Calories: 43, Protein: 0.5, Fat: 0.3, Carbs: 11, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Semangka", Calories: 30, Protein: 0.6, Fat: 0.2, Carbs: 8, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Alpukat", Calories: 160, Protein: 2, Fat: 15, Carbs: 9, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Anggur", Calories: 69, Protein: 0.7, Fat: 0.2, Carbs: 18, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Salak", Calories: 82, Protein: 0.4, Fat: 0, Carbs: 22, Category: models.CategoryFruit, Additives: []string{}},
	{Name: "Durian", Calories: 147, Protein: 1.5, Fat: 5, Carbs: 27, Category: models.CategoryFruit, Additives: []string{}},

	// Masakan Indonesia
	{Name: "Nasi Goreng", Calories: 163, Protein: 6, Fat: 6, Carbs: 22, Category: models.CategoryDish, Additives: []string{"E621", "E150c"}},
	{Name: "Nasi Uduk", Calories: 175, Protein: 4, Fat: 6, Carbs: 27, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Nasi Kuning", Calories: 180, Protein: 4, Fat: 5, Carbs: 30, Category: models.CategoryDish, Additives: []string{"E100"}},
	{Name: "Sate Ayam (5 tusuk)", Calories: 170, Protein: 15, Fat: 10, Carbs: 5, Category: models.CategoryDish, Additives: []string{"E621", "E150c"}},
	{Name: "Gado-Gado", Calories: 150, Protein: 8, Fat: 9, Carbs: 12, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Soto Ayam", Calories: 75, Protein: 6, Fat: 4, Carbs: 4, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Rawon", Calories: 85, Protein: 8, Fat: 5, Carbs: 2, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Gudeg", Calories: 180, Protein: 4, Fat: 8, Carbs: 25, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Pecel Lele", Calories: 195, Protein: 18, Fat: 12, Carbs: 3, Category: models.CategoryDish, Additives: []string{}},
	{Name: "Mie Goreng", Calories: 350, Protein: 8, Fat: 14, Carbs: 48, Category: models.CategoryDish, Additives: []string{"E621", "E627", "E150c"}},
	{Name: "Mie Ayam", Calories: 280, Protein: 12, Fat: 10, Carbs: 35, Category: models.CategoryDish, Additives: []string{"E621"}},
	{Name: "Bakmi Goreng", Calories: 320, Protein: 10, Fat: 12, Carbs: 42, Category: models.CategoryDish, Additives: []string{"E621"}},

	// Jajanan & snack
	{Name: "Cilok (5 butir)", Calories: 180, Protein: 2, Fat: 4, Carbs: 35, Category: models.CategorySnack, Additives: []string{"E621"}},
	{Name: "Seblak", Calories: 260, Protein: 8, Fat: 12, Carbs: 30, Category: models.CategorySnack, Additives: []string{"E621", "E124"}},
	{Name: "Batagor (5 pcs)", Calories: 220, Protein: 10, Fat: 12, Carbs: 18, Category: models.CategorySnack, Additives: []string{"E621"}},
	{Name: "Risoles (2 pcs)", Calories: 285, Protein: 7, Fat: 15, Carbs: 30, Category: models.CategorySnack, Additives: []string{}},
	{Name: "Pastel (2 pcs)", Calories: 265, Protein: 6, Fat: 14, Carbs: 28, Category: models.CategorySnack, Additives: []string{}},
	{Name: "Donat", Calories: 452, Protein: 4, Fat: 25, Carbs: 51, Category: models.CategorySnack, Additives: []string{"E102", "E471", "E202"}},
	{Name: "Martabak Manis (1 potong)", Calories: 270, Protein: 4, Fat: 12, Carbs: 38, Category: models.CategorySnack, Additives: []string{"E500", "E503", "E102"}},
	{Name: "Pempek Lenjer", Calories: 150, Protein: 7, Fat: 4, Carbs: 22, Category: models.CategorySnack, Additives: []string{"E621"}},
	{Name: "Keripik Kentang", Calories: 536, Protein: 7, Fat: 35, Carbs: 53, Category: models.CategorySnack, Additives: []string{"E621", "E627", "E631"}},
	{Name: "Keripik Singkong", Calories: 160, Protein: 1, Fat: 10, Carbs: 20, Category: models.CategorySnack, Additives: []string{"E621", "E319"}},
	{Name: "Biskuit Coklat", Calories: 502, Protein: 6, Fat: 22, Carbs: 68, Category: models.CategorySnack, Additives: []string{"E322", "E503", "E500"}},
	{Name: "Permen Karet", Calories: 360, Protein: 0, Fat: 0, Carbs: 90, Category: models.CategorySnack, Additives: []string{"E133", "E102", "E129", "E422"}},

	// Minuman & dairy
	{Name: "Susu UHT Coklat", Calories: 80, Protein: 3, Fat: 2, Carbs: 12, Category: models.CategoryDrink, Additives: []string{"E407", "E471"}},
	{Name: "Susu Full Cream", Calories: 61, Protein: 3.2, Fat: 3.3, Carbs: 4.8, Category: models.CategoryDrink, Additives: []string{}},
	{Name: "Yoghurt Buah", Calories: 95, Protein: 5, Fat: 2, Carbs: 15, Category: models.CategoryDrink, Additives: []string{"E124", "E440"}},
	{Name: "Es Krim", Calories: 207, Protein: 3.5, Fat: 11, Carbs: 24, Category: models.CategoryDrink, Additives: []string{"E410", "E412", "E407"}},
	{Name: "Minuman Soda", Calories: 41, Protein: 0, Fat: 0, Carbs: 10, Category: models.CategoryDrink, Additives: []string{"E150d", "E331", "E338", "E211"}},
	{Name: "Jus Jeruk", Calories: 45, Protein: 0.7, Fat: 0.2, Carbs: 10, Category: models.CategoryDrink, Additives: []string{}},
	{Name: "Teh Manis", Calories: 40, Protein: 0, Fat: 0, Carbs: 10, Category: models.CategoryDrink, Additives: []string{}},
	{Name: "Kopi Susu", Calories: 65, Protein: 2, Fat: 2, Carbs: 10, Category: models.CategoryDrink, Additives: []string{}},

	// Bumbu & saus
	{Name: "Saus Sambal", Calories: 93, Protein: 2, Fat: 0.4, Carbs: 20, Category: models.CategorySauce, Additives: []string{"E211", "E202", "E110", "E124"}},
	{Name: "Kecap Manis", Calories: 290, Protein: 6, Fat: 0.1, Carbs: 67, Category: models.CategorySauce, Additives: []string{"E150c", "E621"}},
	{Name: "Mayonaise", Calories: 680, Protein: 1, Fat: 75, Carbs: 1, Category: models.CategorySauce, Additives: []string{"E202", "E385"}},

	// Fast food
	{Name: "Pizza (1 slice)", Calories: 266, Protein: 11, Fat: 10, Carbs: 33, Category: models.CategoryFastFood, Additives: []string{"E450", "E282", "E322"}},
	{Name: "Burger Daging", Calories: 295, Protein: 17, Fat: 14, Carbs: 24, Category: models.CategoryFastFood, Additives: []string{"E621", "E451", "E282"}},
	{Name: "French Fries", Calories: 312, Protein: 3.4, Fat: 15, Carbs: 41, Category: models.CategoryFastFood, Additives: []string{"E330"}},
	{Name: "Ayam Crispy", Calories: 260, Protein: 18, Fat: 16, Carbs: 12, Category: models.CategoryFastFood, Additives: []string{"E621", "E471"}},
}
