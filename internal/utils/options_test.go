package utils

import "testing"

func TestEnumMembership(t *testing.T) {
	if !IsValidDestination("Dal Lake, Srinagar") || !IsValidDestination("Custom Package") {
		t.Error("known destinations must be accepted")
	}
	if IsValidDestination("Leh") {
		t.Error("unknown destination accepted")
	}

	if !IsValidRoomType("houseboat") || IsValidRoomType("penthouse") {
		t.Error("room type membership wrong")
	}
	if !IsValidMealPreference("nonVegetarian") || IsValidMealPreference("NonVegetarian") {
		t.Error("meal preference must be case sensitive")
	}
	if !IsValidContactStatus("replied") || IsValidContactStatus("archived") {
		t.Error("contact status membership wrong")
	}
}

func TestCountDigits(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"+91 7006276358", 10},
		{"700-627", 6},
		{"abc", 0},
	}
	for _, c := range cases {
		if got := CountDigits(c.in); got != c.want {
			t.Errorf("CountDigits(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" +91 700-627-6358 "); got != "+917006276358" {
		t.Errorf("got %q", got)
	}
}
