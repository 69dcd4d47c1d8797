package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a digest algorithm. Names are case-insensitive.
type Algorithm string

// Built-in algorithm names.
const (
	AlgMD5        Algorithm = "md5"
	AlgSHA1       Algorithm = "sha1"
	AlgSHA256     Algorithm = "sha256"
	AlgSHA512     Algorithm = "sha512"
	AlgSHA3_256   Algorithm = "sha3-256"
	AlgBLAKE2b256 Algorithm = "blake2b-256"
)

// Factory returns a new, empty hash.Hash.
type Factory func() hash.Hash

// ParseAlgorithm normalises a user-supplied algorithm name: it lower-cases
// it and accepts the common spellings "sha-256", "sha3_256" and "blake2b".
func ParseAlgorithm(s string) Algorithm {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "sha-1":
		return AlgSHA1
	case "sha-256":
		return AlgSHA256
	case "sha-512":
		return AlgSHA512
	case "sha3_256", "sha3":
		return AlgSHA3_256
	case "blake2b", "blake2b256", "blake2b_256":
		return AlgBLAKE2b256
	}
	return Algorithm(name)
}

func (a Algorithm) String() string { return string(a) }

// builtins lists the algorithms registered by NewDefaultManager.
var builtins = map[Algorithm]Factory{
	AlgMD5:      md5.New,
	AlgSHA1:     sha1.New,
	AlgSHA256:   sha256.New,
	AlgSHA512:   sha512.New,
	AlgSHA3_256: sha3.New256,
	AlgBLAKE2b256: func() hash.Hash {
		// blake2b.New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}
