package category

// DefaultCategories are created at startup and shared by all users.
var DefaultCategories = []Category{
	{Name: "Groceries", Icon: "shopping-cart", Color: "#4CAF50"},
	{Name: "Housing", Icon: "home", Color: "#2196F3"},
	{Name: "Transport", Icon: "car", Color: "#FF9800"},
	{Name: "Health", Icon: "heart", Color: "#F44336"},
	{Name: "Entertainment", Icon: "film", Color: "#9C27B0"},
	{Name: "Salary", Icon: "briefcase", Color: "#009688"},
	{Name: "Other", Icon: "tag", Color: "#607D8B"},
}
