// Package hashgen computes hex digests of a string with several hash
// functions at once.
package hashgen

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digests holds the hex encoded digest of one input for every supported
// algorithm.
type Digests struct {
	SHA1       string
	SHA256     string
	SHA384     string
	SHA512     string
	SHA3_256   string
	BLAKE2b256 string
}

// Sum computes every digest of input.
func Sum(input string) Digests {
	b := []byte(input)
	sha1Sum := sha1.Sum(b)
	sha256Sum := sha256.Sum256(b)
	sha384Sum := sha512.Sum384(b)
	sha512Sum := sha512.Sum512(b)
	sha3Sum := sha3.Sum256(b)
	blakeSum := blake2b.Sum256(b)
	return Digests{
		SHA1:       hex.EncodeToString(sha1Sum[:]),
		SHA256:     hex.EncodeToString(sha256Sum[:]),
		SHA384:     hex.EncodeToString(sha384Sum[:]),
		SHA512:     hex.EncodeToString(sha512Sum[:]),
		SHA3_256:   hex.EncodeToString(sha3Sum[:]),
		BLAKE2b256: hex.EncodeToString(blakeSum[:]),
	}
}

// Lines returns the digests as labelled lines, in a stable order.
func (d Digests) Lines() []string {
	return []string{
		"SHA-1: " + d.SHA1,
		"SHA-256: " + d.SHA256,
		"SHA-384: " + d.SHA384,
		"SHA-512: " + d.SHA512,
		"SHA3-256: " + d.SHA3_256,
		"BLAKE2b-256: " + d.BLAKE2b256,
	}
}
