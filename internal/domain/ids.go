package domain

import "math/rand"

// Customer-facing references, not secrets. Order references are short so
// they can be read over the phone; the order service re-rolls them on
// collision with the persisted log.

const (
	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func randomToken(charset string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// NewOrderRef returns a 4-character uppercase order reference.
func NewOrderRef() string {
	return randomToken(upperAlnum, 4)
}

// NewItemID returns a 9-character order line identifier.
func NewItemID() string {
	return randomToken(lowerAlnum, 9)
}

// NewDishID returns a 9-character dish identifier.
func NewDishID() string {
	return randomToken(lowerAlnum, 9)
}

// NewExtraID returns an add-on identifier of the form "e" + 5 characters.
func NewExtraID() string {
	return "e" + randomToken(lowerAlnum, 5)
}
