package accounts

import (
	"math/rand/v2"
)

const idLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const idDigits = "0123456789"

// NewUserID returns an id like 'AA12-BB43': two groups of two uppercase
// letters plus two digits, every character independently random. Uniqueness
// is probabilistic only, there is no collision check (see DESIGN.md).
func NewUserID() string {

	group := func() []byte {
		return []byte{
			idLetters[rand.IntN(len(idLetters))],
			idLetters[rand.IntN(len(idLetters))],
			idDigits[rand.IntN(len(idDigits))],
			idDigits[rand.IntN(len(idDigits))],
		}
	}

	id := group()
	id = append(id, '-')
	id = append(id, group()...)

	return string(id)
}
