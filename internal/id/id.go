// Package id generates the random identifiers attached to questions.
package id

import "crypto/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a 16-character lowercase alphanumeric ID. Questions
// imported from plain text carry no natural identifier, so each one gets
// an ID at construction time.
func GenerateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[b[i]%byte(len(alphabet))]
	}
	return string(b)
}
