package pagefeed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildContainerPrompt builds the prompt asking a model to pick the best
// content container from an analysis summary.
func BuildContainerPrompt(structure string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following HTML structure and identify the best container for main content extraction.\n")
	sb.WriteString("Return a JSON response with the selector and confidence score (0-100).\n\n")
	sb.WriteString("HTML Structure:\n")
	sb.WriteString(structure)
	sb.WriteString("\n\nResponse format:\n")
	sb.WriteString(`{
  "selector": "CSS selector for the best container",
  "confidence_score": 85,
  "reasoning": "Brief explanation of why this container was chosen"
}`)
	sb.WriteString("\n")
	return sb.String()
}

// BuildFeedPrompt builds the prompt asking a model to extract feed items
// from an item summary of the page at url.
func BuildFeedPrompt(structure, url string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extract feed information from the following HTML structure from %s.\n", url)
	sb.WriteString("Return a JSON response with feed title, description, and an array of at least 10 items.\n")
	sb.WriteString("Extract as many relevant feed items as possible from the provided HTML containers.\n\n")
	sb.WriteString("HTML Structure:\n")
	sb.WriteString(structure)
	sb.WriteString("\n\nResponse format:\n")
	sb.WriteString(`{
  "feed_title": "Website or Feed Title",
  "feed_description": "Brief description of the feed content",
  "items": [
    {
      "title": "Article title",
      "link": "https://example.com/article",
      "published_at": "2024-01-01T12:00:00Z"
    }
  ]
}`)
	sb.WriteString("\n")
	return sb.String()
}

// ExtractJSONObject returns the span of content running from the first
// "{" to the last "}". Models often wrap their JSON in prose.
func ExtractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// DecodeContainerSuggestion parses a model's reply to a container prompt.
// Returns EUNAVAILABLE when the reply holds no JSON object, the object
// does not parse, or the selector is missing.
func DecodeContainerSuggestion(content string) (*ContainerSuggestion, error) {
	span, ok := ExtractJSONObject(content)
	if !ok {
		return nil, Errorf(EUNAVAILABLE, "no JSON object in analysis response")
	}

	var s ContainerSuggestion
	if err := json.Unmarshal([]byte(span), &s); err != nil {
		return nil, Errorf(EUNAVAILABLE, "invalid analysis response: %v", err)
	}
	if strings.TrimSpace(s.Selector) == "" {
		return nil, Errorf(EUNAVAILABLE, "analysis response missing selector")
	}
	return &s, nil
}

// DecodeRawFeed parses a model's reply to a feed prompt.
// Returns EUNAVAILABLE when the reply holds no JSON object, the object
// does not parse, or the items field is missing.
func DecodeRawFeed(content string) (*RawFeed, error) {
	span, ok := ExtractJSONObject(content)
	if !ok {
		return nil, Errorf(EUNAVAILABLE, "no JSON object in extraction response")
	}

	var envelope struct {
		RawFeed
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(span), &envelope); err != nil {
		return nil, Errorf(EUNAVAILABLE, "invalid extraction response: %v", err)
	}
	if len(envelope.Items) == 0 {
		return nil, Errorf(EUNAVAILABLE, "extraction response missing items")
	}

	feed := envelope.RawFeed
	if err := json.Unmarshal(envelope.Items, &feed.Items); err != nil {
		return nil, Errorf(EUNAVAILABLE, "invalid extraction items: %v", err)
	}
	return &feed, nil
}
