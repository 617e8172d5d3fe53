package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

func TestParseProductID(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	oid, err := parseProductID(valid)
	if err != nil {
		t.Fatalf("expected valid id to parse: %v", err)
	}
	if oid.Hex() != valid {
		t.Fatalf("round trip mismatch: %s vs %s", oid.Hex(), valid)
	}

	// Malformed ids are rejected before any query is issued.
	for _, id := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "123"} {
		if _, err := parseProductID(id); !errors.Is(err, domain.ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID for %q, got %v", id, err)
		}
	}
}
