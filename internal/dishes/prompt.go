package dishes

import (
	"fmt"
	"strings"
)

const extractionSystemPrompt = `You are a restaurant review analyst. Given a set of customer reviews for a restaurant, extract the top 5-10 most recommended dishes. Return a JSON array where each element has:
{
  "name": "dish name",
  "description": "brief description based on reviews",
  "price": "price if mentioned, otherwise 'N/A'",
  "mentions": number of times mentioned or implied,
  "sentiment": "positive/mixed/negative"
}
Sort by number of mentions descending. Return ONLY a valid JSON array, no extra text.`

func buildExtractionUserPrompt(name, address string, reviews []string) string {
	var sb strings.Builder

	sb.WriteString("Restaurant: " + name)
	if address != "" {
		sb.WriteString(" (" + address + ")")
	}
	sb.WriteString("\n\nCustomer Reviews:\n")

	for i, review := range reviews {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("Review %d: %s", i+1, review))
	}

	sb.WriteString("\n\nExtract the top recommended dishes as JSON.")
	return sb.String()
}
