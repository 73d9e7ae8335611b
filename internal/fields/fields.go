package fields

import "strings"

// Split returns the substrings between occurrences of delim. Adjacent
// delimiters produce empty fields and a line without delim is one field.
func Split(line, delim string) []string {
	return strings.Split(line, delim)
}

// Select picks parts in the order of indexes. Indexes outside parts are
// skipped.
func Select(parts []string, indexes []int) []string {
	selected := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(parts) {
			continue
		}
		selected = append(selected, parts[i])
	}
	return selected
}

// Join concatenates selected with delim between each consecutive pair.
func Join(selected []string, delim string) string {
	return strings.Join(selected, delim)
}
