package seed

type menuEntry struct {
	Name        string
	Description string
	Price       float64
}

type menuCategory struct {
	Name  string
	Items []menuEntry
}

// menuData is the fixed menu inserted by the seeder, grouped by category.
var menuData = []menuCategory{
	{
		Name: "Appetizers",
		Items: []menuEntry{
			{"Crispy Calamari", "Lightly breaded and fried, served with marinara sauce", 14.99},
			{"Bruschetta", "Grilled bread topped with tomatoes, basil, and balsamic glaze", 9.99},
			{"Spinach Artichoke Dip", "Creamy blend served with tortilla chips", 12.99},
			{"Soup of the Day", "Ask your server for today's selection", 7.99},
			{"Stuffed Mushrooms", "Filled with crab meat and cream cheese", 13.99},
			{"Shrimp Cocktail", "Six jumbo shrimp with cocktail sauce", 16.99},
			{"Chicken Wings", "Choice of buffalo, BBQ, or garlic parmesan", 14.99},
			{"Loaded Nachos", "Topped with cheese, jalapeños, sour cream, and guacamole", 15.99},
		},
	},
	{
		Name: "Salads",
		Items: []menuEntry{
			{"Caesar Salad", "Romaine lettuce, parmesan, croutons, caesar dressing", 11.99},
			{"House Salad", "Mixed greens with cherry tomatoes and balsamic vinaigrette", 9.99},
			{"Greek Salad", "Cucumber, tomatoes, olives, feta cheese, red onion", 12.99},
			{"Cobb Salad", "Chicken, bacon, avocado, egg, blue cheese", 16.99},
			{"Wedge Salad", "Iceberg lettuce with blue cheese and bacon", 11.99},
			{"Caprese Salad", "Fresh mozzarella, tomatoes, and basil", 13.99},
		},
	},
	{
		Name: "Entrees",
		Items: []menuEntry{
			{"Grilled Salmon", "Atlantic salmon with lemon butter sauce, seasonal vegetables", 28.99},
			{"Filet Mignon", "8oz center-cut filet with red wine reduction", 42.99},
			{"New York Strip", "12oz prime cut with herb butter", 38.99},
			{"Chicken Parmesan", "Breaded chicken breast with marinara and mozzarella", 22.99},
			{"Lobster Tail", "8oz tail with drawn butter and lemon", 48.99},
			{"Rack of Lamb", "Herb-crusted with mint jelly", 44.99},
			{"Seafood Pasta", "Shrimp, scallops, and mussels in garlic cream sauce", 32.99},
			{"Vegetable Risotto", "Arborio rice with seasonal vegetables and parmesan", 19.99},
			{"BBQ Baby Back Ribs", "Full rack with house-made BBQ sauce", 29.99},
			{"Pan-Seared Duck", "With cherry reduction and wild rice", 34.99},
			{"Catch of the Day", "Fresh fish prepared to chef's specifications", 32.99},
			{"Prime Rib", "Slow-roasted 14oz cut with au jus", 39.99},
		},
	},
	{
		Name: "Sides",
		Items: []menuEntry{
			{"Mashed Potatoes", "Creamy garlic mashed potatoes", 6.99},
			{"Grilled Asparagus", "With lemon and olive oil", 7.99},
			{"Mac and Cheese", "Four-cheese blend with breadcrumb topping", 8.99},
			{"Sautéed Spinach", "With garlic and olive oil", 6.99},
			{"Baked Potato", "With butter, sour cream, and chives", 5.99},
			{"French Fries", "Crispy seasoned fries", 5.99},
			{"Onion Rings", "Beer-battered and fried", 7.99},
			{"Roasted Brussels Sprouts", "With bacon and balsamic", 8.99},
		},
	},
	{
		Name: "Desserts",
		Items: []menuEntry{
			{"Chocolate Lava Cake", "Warm chocolate cake with molten center", 10.99},
			{"New York Cheesecake", "Classic style with berry compote", 9.99},
			{"Crème Brûlée", "Classic vanilla custard with caramelized sugar", 9.99},
			{"Tiramisu", "Espresso-soaked ladyfingers with mascarpone", 10.99},
			{"Apple Pie à la Mode", "Warm apple pie with vanilla ice cream", 8.99},
			{"Ice Cream Sundae", "Three scoops with chocolate sauce and whipped cream", 7.99},
			{"Key Lime Pie", "Tangy and sweet with whipped cream", 8.99},
		},
	},
	{
		Name: "Beverages",
		Items: []menuEntry{
			{"Soft Drinks", "Coca-Cola products, refills included", 3.49},
			{"Fresh Lemonade", "House-made with fresh lemons", 4.49},
			{"Iced Tea", "Sweetened or unsweetened", 3.49},
			{"Coffee", "Regular or decaf", 3.99},
			{"Espresso", "Single or double shot", 4.49},
			{"Hot Tea", "Selection of premium teas", 3.99},
			{"Juice", "Orange, apple, or cranberry", 4.49},
			{"Sparkling Water", "San Pellegrino", 4.99},
		},
	},
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen", "Carlos",
	"Maria", "Kenji", "Aisha", "Elena", "Omar", "Priya", "Lucas", "Ingrid", "Noah",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Walker",
}

var tableLocations = []string{"Main Dining", "Patio", "Bar Area", "Private Room"}
