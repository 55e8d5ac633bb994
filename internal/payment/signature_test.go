package payment

import "testing"

func TestSignatureDeterministic(t *testing.T) {
	a := Signature("ORD-1", "200", "85000.00", "key")
	b := Signature("ORD-1", "200", "85000.00", "key")
	if a != b {
		t.Fatalf("expected deterministic signature, got %s and %s", a, b)
	}
	if len(a) != 128 {
		t.Fatalf("expected 128 hex chars for sha512, got %d", len(a))
	}
}

func TestSignatureChangesWithEveryField(t *testing.T) {
	base := Signature("ORD-1", "200", "85000.00", "key")
	variants := []string{
		Signature("ORD-2", "200", "85000.00", "key"),
		Signature("ORD-1", "201", "85000.00", "key"),
		Signature("ORD-1", "200", "85000.01", "key"),
		Signature("ORD-1", "200", "85000.00", "other"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d produced the same signature as the base", i)
		}
	}
}

func TestValidSignature(t *testing.T) {
	n := Notification{OrderID: "ORD-1", StatusCode: "200", GrossAmount: "85000.00"}
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, "key")

	if !validSignature(n, "key") {
		t.Fatalf("expected signature to verify")
	}
	if validSignature(n, "wrong-key") {
		t.Fatalf("expected verification failure with wrong key")
	}

	n.SignatureKey = n.SignatureKey[:127] + "x"
	if validSignature(n, "key") {
		t.Fatalf("expected verification failure for tampered signature")
	}
}
