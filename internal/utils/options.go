package utils

import "strings"

// Destinations are the packages offered on the booking form. "Custom Package"
// lets the user describe their own itinerary in special requests.
var Destinations = []string{
	"Dal Lake, Srinagar",
	"Gulmarg",
	"Pahalgam",
	"Sonamarg",
	"Yusmarg",
	"Doodhpathri",
	"Custom Package",
}

var RoomTypes = []string{"standard", "deluxe", "suite", "houseboat"}

var MealPreferences = []string{"vegetarian", "nonVegetarian", "vegan", "halal"}

var ContactStatuses = []string{"new", "read", "replied"}

func IsValidDestination(name string) bool {
	return contains(Destinations, name)
}

func IsValidRoomType(name string) bool {
	return contains(RoomTypes, name)
}

func IsValidMealPreference(name string) bool {
	return contains(MealPreferences, name)
}

func IsValidContactStatus(name string) bool {
	return contains(ContactStatuses, name)
}

func contains(options []string, name string) bool {
	for _, opt := range options {
		if opt == name {
			return true
		}
	}
	return false
}

// CountDigits returns how many decimal digits appear in s. Phone numbers are
// accepted with separators, so validity is judged on digit count.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// NormalizePhone strips spaces and dashes, keeping a leading +.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
