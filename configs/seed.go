package configs

import (
	"log"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
)

// SeedMenu fills the catalog tables on first boot. FirstOrCreate keeps the
// seed idempotent across restarts.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("menu already seeded, skipping")
		return nil
	}

	categories := map[string]*entity.Category{}
	for _, c := range []entity.Category{
		{Name: "Burgers", Description: "Flame-grilled and stacked"},
		{Name: "Pizzas", Description: "Stone-baked, generous toppings"},
		{Name: "Burritos", Description: "Wrapped and loaded"},
		{Name: "Sandwiches", Description: "Toasted classics"},
		{Name: "Wraps", Description: "Light and fresh"},
		{Name: "Bowls", Description: "Rice and salad bowls"},
	} {
		row := c
		if err := db.Where(entity.Category{Name: row.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		categories[row.Name] = &row
	}

	customizations := map[string]*entity.Customization{}
	for _, cu := range []entity.Customization{
		{Name: "Extra Cheese", PriceDelta: 100, Type: "topping"},
		{Name: "Jalapenos", PriceDelta: 50, Type: "topping"},
		{Name: "Bacon", PriceDelta: 150, Type: "topping"},
		{Name: "Onions", PriceDelta: 25, Type: "topping"},
		{Name: "Fries", PriceDelta: 250, Type: "side"},
		{Name: "Coke", PriceDelta: 150, Type: "side"},
		{Name: "Garlic Bread", PriceDelta: 200, Type: "side"},
	} {
		row := cu
		if err := db.Where(entity.Customization{Name: row.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		customizations[row.Name] = &row
	}

	items := []struct {
		item entity.MenuItem
		cat  string
		cus  []string
	}{
		{entity.MenuItem{Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, pickles", Price: 800, ImageURL: "/images/burger-one.png", Rating: 4.5, Calories: 550, Protein: 26}, "Burgers", []string{"Extra Cheese", "Bacon", "Onions", "Fries", "Coke"}},
		{entity.MenuItem{Name: "BBQ Bacon Burger", Description: "Smoky BBQ sauce, crispy bacon", Price: 1050, ImageURL: "/images/burger-two.png", Rating: 4.7, Calories: 680, Protein: 32}, "Burgers", []string{"Extra Cheese", "Jalapenos", "Fries", "Coke"}},
		{entity.MenuItem{Name: "Pepperoni Pizza", Description: "Double pepperoni, mozzarella", Price: 1200, ImageURL: "/images/pizza-one.png", Rating: 4.6, Calories: 760, Protein: 30}, "Pizzas", []string{"Extra Cheese", "Jalapenos", "Garlic Bread"}},
		{entity.MenuItem{Name: "Bean Burrito", Description: "Black beans, rice, pico de gallo", Price: 750, ImageURL: "/images/buritto.png", Rating: 4.2, Calories: 520, Protein: 18}, "Burritos", []string{"Jalapenos", "Extra Cheese", "Coke"}},
		{entity.MenuItem{Name: "Grilled Chicken Sandwich", Description: "Chicken breast, lettuce, aioli", Price: 850, ImageURL: "/images/sandwich.png", Rating: 4.4, Calories: 470, Protein: 35}, "Sandwiches", []string{"Bacon", "Fries", "Coke"}},
		{entity.MenuItem{Name: "Veggie Wrap", Description: "Grilled veggies, hummus, greens", Price: 700, ImageURL: "/images/wrap.png", Rating: 4.1, Calories: 390, Protein: 12}, "Wraps", []string{"Extra Cheese", "Jalapenos"}},
		{entity.MenuItem{Name: "Teriyaki Chicken Bowl", Description: "Rice, glazed chicken, sesame", Price: 950, ImageURL: "/images/salad.png", Rating: 4.8, Calories: 610, Protein: 38}, "Bowls", []string{"Jalapenos", "Coke"}},
	}

	for _, row := range items {
		m := row.item
		m.CategoryID = categories[row.cat].ID
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		for _, name := range row.cus {
			if err := db.Model(&m).Association("Customizations").Append(customizations[name]); err != nil {
				return err
			}
		}
	}

	log.Printf("seeded %d menu items", len(items))
	return nil
}
