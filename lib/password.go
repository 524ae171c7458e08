package lib

import "encoding/base64"

// EncodePassword base64-encodes the text and reverses the resulting character
// sequence. It is reversible obfuscation, not hashing; existing stored rows use
// this form, so login keeps comparing against it.
func EncodePassword(plaintext string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(plaintext))

	runes := []byte(encoded) // base64 output is plain ASCII
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
