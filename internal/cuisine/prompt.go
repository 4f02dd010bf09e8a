package cuisine

import "fmt"

const catalogSystemPrompt = `You are a world-class food expert. When given a cuisine type and a target language, return a JSON array of 10-15 signature dishes for that cuisine. Each dish object MUST have these exact fields:
{
  "dishName": "name in the original language of the cuisine",
  "origLang": "name in the cuisine's original language",
  "engLang": "English name/translation",
  "prefLang": "name translated into the requested target language",
  "ingredients": "main ingredients, comma-separated",
  "taste": "taste profile description (1 sentence)",
  "eatMethod": "how to eat it (1 sentence)",
  "sauces": "typical sauces/dips/condiments",
  "avgPrice": "estimated typical price range in USD"
}
Return ONLY a valid JSON array, no extra text.`

func buildCatalogUserPrompt(cuisine, language string) string {
	return fmt.Sprintf(
		"Cuisine: %s. Target language: %s. Return the JSON array of signature dishes.",
		cuisine,
		language,
	)
}
