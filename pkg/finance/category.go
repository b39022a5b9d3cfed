package finance

// Category classifies spending.
type Category string

const (
	Food      Category = "food"
	Housing   Category = "housing"
	Transport Category = "transport"
	Clothing  Category = "clothing"
	Beauty    Category = "beauty"
	Leisure   Category = "leisure"
	Health    Category = "health"
	Friends   Category = "friends"
)

// CategoryInfo is how a category is shown.
type CategoryInfo struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
}

// Categories in display order.
var Categories = []CategoryInfo{
	{Food, "Courses et alimentation", "#FECACA"},
	{Housing, "Logement et charges", "#FBCFE8"},
	{Transport, "Abonnements", "#C7D2FE"},
	{Clothing, "Shopping", "#FDE68A"},
	{Beauty, "Restaurants et bars", "#FBCFE8"},
	{Leisure, "Loisirs", "#BBF7D0"},
	{Health, "Taxes et impots", "#BFDBFE"},
	{Friends, "Amis", "#FCA5A5"},
}

// Lookup returns the display info of c.
func Lookup(c Category) (CategoryInfo, bool) {
	for _, info := range Categories {
		if info.Category == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}
