package parquetcrypt

import (
	"testing"

	"github.com/google/uuid"
)

func TestRandomKeyID(t *testing.T) {
	id1 := RandomKeyID()
	id2 := RandomKeyID()

	if id1 == id2 {
		t.Error("RandomKeyID() returned the same identifier twice")
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("RandomKeyID() = %q is not a valid UUID: %v", id1, err)
	}
}

func TestRandomKeyID_AsFooterKeyMetadata(t *testing.T) {
	keyID := RandomKeyID()
	props, err := NewBuilder(testKey(16)).WithFooterKeyID(keyID).Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if got := string(props.FooterKeyMetadata()); got != keyID {
		t.Errorf("FooterKeyMetadata() = %q, want %q", got, keyID)
	}
}
