package calendar

import "strings"

// MaskCustomerName hides the interior of each word of a customer name for
// on-screen display. Words of up to two characters are kept as-is, longer
// words keep their first and last character with '*' in between. The stored
// name is never modified.
func MaskCustomerName(name string) string {
	if len(name) <= 2 {
		return name
	}

	words := strings.Split(strings.TrimSpace(name), " ")
	masked := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		if len(runes) <= 2 {
			masked = append(masked, word)
			continue
		}
		masked = append(masked, string(runes[0])+strings.Repeat("*", len(runes)-2)+string(runes[len(runes)-1]))
	}

	return strings.Join(masked, " ")
}

// sanitizeTitle replaces occurrences of the raw customer name inside a
// booking title with its masked form, so the title cannot leak the name.
func sanitizeTitle(title, customerName string) string {
	if title == "" || customerName == "" {
		return title
	}
	return strings.ReplaceAll(title, customerName, MaskCustomerName(customerName))
}
