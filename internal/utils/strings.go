package utils

import "strings"

// ContainsFold checks if a string contains a substring, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
