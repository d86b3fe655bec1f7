package validators

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailValid performs a syntactic check only; deliverability is not
// verified.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}
