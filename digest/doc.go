// Package digest computes hex-encoded message digests of strings, byte
// slices, readers and string sequences.
//
// # Architecture
//
// An [Algorithm] names a hash constructor. The [Manager] is a registry of
// algorithms with a default, in the same shape as a driver registry: register
// named constructors, pick a default, and hash through the Manager.
//
// # Quick start
//
//	sum := digest.MD5("hello")             // "5d41402abc4b2a76b9719d911017c592"
//
//	m := digest.NewDefaultManager()         // md5 default, every built-in registered
//	_ = m.SetDefault(digest.AlgSHA256)
//	sum, _ = m.String("hello")
//	ok, _ := m.Verify("hello", sum)
//
// # Portability
//
// Digests are lower-case hex strings of fixed length per algorithm (32 for
// md5, 64 for sha256). They are stable across platforms, so they can be
// stored and compared with values produced by any other md5 or sha tool.
// Strings are hashed as their UTF-8 bytes with no normalisation.
//
// # Concurrency
//
// Package-level helpers and [Hasher] values are stateless. [Manager] guards
// its registry with a read/write mutex; see its documentation.
//
// # Built-in algorithms
//
// md5, sha1, sha256, sha512, sha3-256 and blake2b-256. md5 and sha1 are
// provided for checksums and compatibility only; do not use them where
// collision resistance matters.
package digest
