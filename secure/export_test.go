package secure_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-typex/secure"
)

func TestExportImport(t *testing.T) {
	key, err := secure.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	s := mustNew(t, "token-123")

	payload, err := s.Export(key)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	again, _ := s.Export(key)
	if payload == again {
		t.Fatal("two exports should use different nonces")
	}

	back, err := secure.Import(key, payload)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if ok, _ := back.EqualString("token-123"); !ok {
		t.Fatal("imported value differs")
	}
}

func TestImport_WrongKey(t *testing.T) {
	k1, _ := secure.GenerateKey()
	k2, _ := secure.GenerateKey()
	payload, _ := mustNew(t, "x").Export(k1)
	if _, err := secure.Import(k2, payload); !errors.Is(err, secure.ErrDecryptFailed) {
		t.Fatalf("Import(wrong key) err = %v", err)
	}
}

func TestImport_BadInput(t *testing.T) {
	key, _ := secure.GenerateKey()
	if _, err := secure.Import(key, "%%%"); !errors.Is(err, secure.ErrInvalidPayload) {
		t.Fatalf("Import(bad base64) err = %v", err)
	}
	if _, err := secure.Import(key, "AAAA"); !errors.Is(err, secure.ErrInvalidPayload) {
		t.Fatalf("Import(short) err = %v", err)
	}
	if _, err := secure.Import([]byte("short"), "AAAA"); !errors.Is(err, secure.ErrInvalidKeyLength) {
		t.Fatalf("Import(short key) err = %v", err)
	}
}

func TestExport_Cleared(t *testing.T) {
	key, _ := secure.GenerateKey()
	s := mustNew(t, "x")
	s.Clear()
	if _, err := s.Export(key); !errors.Is(err, secure.ErrCleared) {
		t.Fatalf("Export after Clear err = %v", err)
	}
}

func TestKeyEncoding(t *testing.T) {
	key, _ := secure.GenerateKey()
	decoded, err := secure.DecodeKey(secure.EncodeKey(key))
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != string(key) {
		t.Fatal("DecodeKey(EncodeKey(k)) != k")
	}
	if _, err := secure.DecodeKey("c2hvcnQ="); !errors.Is(err, secure.ErrInvalidKeyLength) {
		t.Fatalf("DecodeKey(short) err = %v", err)
	}
}
