package cuisine

// GenericDish is one row of generic_dishes, keyed by
// (cuisine, dish name, preferred-language code). There is no expiry:
// regeneration is an operational decision, not a TTL.
type GenericDish struct {
	Cuisine      string `json:"cuisine"`
	DishName     string `json:"dishName"`
	OrigLang     string `json:"origLang"`
	EngLang      string `json:"engLang"`
	PrefLang     string `json:"prefLang"`
	PrefLangCode string `json:"prefLangCode"`
	Ingredients  string `json:"ingredients"`
	Taste        string `json:"taste"`
	EatMethod    string `json:"eatMethod"`
	Sauces       string `json:"sauces"`
	AvgPrice     string `json:"avgPrice"`
	ImageURL     string `json:"imageUrl"`
}
