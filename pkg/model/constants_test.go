package model

import "testing"

func TestIsCanonicalWeekday(t *testing.T) {
	for _, wd := range CanonicalWeekdays {
		if !IsCanonicalWeekday(wd) {
			t.Errorf("expected %q to be canonical", wd)
		}
	}

	for _, name := range []string{"", "monday", "Funday", "MONDAY", " Monday"} {
		if IsCanonicalWeekday(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestSlotPriceCents_CoversBookableSlots(t *testing.T) {
	room := validRoom()

	var sum int64
	for _, slot := range BookableSlots {
		if slot == SlotFullDay {
			continue
		}
		price := room.SlotPriceCents(slot)
		if price <= 0 {
			t.Errorf("expected a positive price for slot %q, got %d", slot, price)
		}
		sum += price
	}

	if got := room.SlotPriceCents(SlotFullDay); got != sum {
		t.Errorf("expected full day price %d, got %d", sum, got)
	}
}
