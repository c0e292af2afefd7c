package sealer

import "testing"

func TestPaymentTokenRoundTrip(t *testing.T) {
	token, err := CreatePaymentToken("507f1f77bcf86cd799439011", "recurring")
	if err != nil {
		t.Fatalf("CreatePaymentToken: %v", err)
	}

	bookingID, kind, err := ParsePaymentToken(token)
	if err != nil {
		t.Fatalf("ParsePaymentToken: %v", err)
	}
	if bookingID != "507f1f77bcf86cd799439011" {
		t.Errorf("bookingID = %q", bookingID)
	}
	if kind != "recurring" {
		t.Errorf("kind = %q", kind)
	}
}

func TestPaymentTokenUniqueNonce(t *testing.T) {
	a, _ := CreatePaymentToken("abc", "booking")
	b, _ := CreatePaymentToken("abc", "booking")
	if a == b {
		t.Error("two tokens for the same booking should not be identical")
	}
}

func TestParsePaymentToken_Garbage(t *testing.T) {
	if _, _, err := ParsePaymentToken("not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}
	if _, _, err := ParsePaymentToken(""); err == nil {
		t.Error("expected error for empty token")
	}
}
