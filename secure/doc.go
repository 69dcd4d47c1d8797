// Package secure keeps sensitive strings encrypted while they sit in memory.
//
// A [String] holds its value sealed with XChaCha20-Poly1305 under a random
// per-value key. The plaintext is only materialised by [String.Plain] and is
// never printed: String, GoString, MarshalText and the slog LogValue all
// render as "[redacted]".
//
//	s, err := secure.New(os.Getenv("DB_PASSWORD"))
//	if err != nil {
//	    return err
//	}
//	defer s.Clear()
//
//	pw, _ := s.Plain()
//
// # Export and import
//
// [String.Export] re-seals the value under a caller-supplied 32-byte key and
// returns a base64 payload that [Import] can read back in another process:
//
//	key, _ := secure.GenerateKey()
//	payload, _ := s.Export(key)
//	s2, _ := secure.Import(key, payload)
package secure
