package radweb

import "math/rand"

// genRandString returns a random uppercase alphanumeric string, used to tag
// internal-error log lines with a correlation code a client can quote back.
func genRandString(n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
