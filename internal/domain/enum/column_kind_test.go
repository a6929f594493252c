package enum

import (
	"encoding/json"
	"testing"
)

func TestColumnKindRoundTrip(t *testing.T) {
	for _, kind := range AllColumnKinds() {
		got, ok := ColumnKindFromString(kind.String())
		if !ok {
			t.Errorf("ColumnKindFromString(%q) not found", kind.String())
			continue
		}
		if got != kind {
			t.Errorf("round trip %q = %v, want %v", kind.String(), got, kind)
		}
	}
}

func TestColumnKindUnmarshalUnknown(t *testing.T) {
	var kind ColumnKind
	if err := json.Unmarshal([]byte(`"frobnicator"`), &kind); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind.IsValid() {
		t.Errorf("unknown id should unmarshal as invalid, got %v", kind)
	}
}

func TestColumnKindNumeric(t *testing.T) {
	numeric := map[ColumnKind]bool{
		ColumnKindRate:     true,
		ColumnKindDiscount: true,
		ColumnKindTaxable:  true,
		ColumnKindCGST:     true,
		ColumnKindSGST:     true,
		ColumnKindIGST:     true,
		ColumnKindAmount:   true,
	}
	for _, kind := range AllColumnKinds() {
		if kind.Numeric() != numeric[kind] {
			t.Errorf("%s: Numeric() = %v, want %v", kind, kind.Numeric(), numeric[kind])
		}
	}
}

func TestColumnKindCount(t *testing.T) {
	if got := len(AllColumnKinds()); got != 12 {
		t.Fatalf("AllColumnKinds() returned %d kinds, want 12", got)
	}
}
