// Package profile renders the member profile card and checks member age.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dev-mike-s/foodmart/internal/models"
)

// AdultAge is the minimum age of a member
const AdultAge = 18

var (
	ErrNegativeAge = errors.New("age cannot be negative")
	ErrUnderage    = errors.New("member must be at least 18 years old")
)

var euroPrinter = message.NewPrinter(language.German)

// ValidateAge rejects negative ages and minors
func ValidateAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAge, age)
	}
	if age < AdultAge {
		return fmt.Errorf("%w: %d", ErrUnderage, age)
	}
	return nil
}

// AgeStatus returns the German legal age label
func AgeStatus(age int) string {
	if age >= AdultAge {
		return "Volljährig"
	}
	return "Minderjährig"
}

// MembershipYears counts calendar years since the member joined
func MembershipYears(m models.Member, now time.Time) int {
	return now.Year() - m.MemberSince
}

// FormatEuro formats an amount the German way, e.g. 1.234,56 €
func FormatEuro(amount float64) string {
	return euroPrinter.Sprintf("%.2f €", amount)
}

func yesNo(b bool) string {
	if b {
		return "Ja"
	}
	return "Nein"
}

// Card renders the profile block of m as of now
func Card(m models.Member, now time.Time) string {
	var b strings.Builder
	b.WriteString("=== Benutzerprofil ===\n")
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Alter: %d Jahre\n", m.Age)
	fmt.Fprintf(&b, "Altersstatus: %s\n", AgeStatus(m.Age))
	fmt.Fprintf(&b, "Premium-Mitglied: %s\n", yesNo(m.Premium))
	fmt.Fprintf(&b, "Kontostand: %s\n", FormatEuro(m.Balance))
	fmt.Fprintf(&b, "Mitglied seit: %d\n", m.MemberSince)
	fmt.Fprintf(&b, "Mitgliedsjahre: %d\n", MembershipYears(m, now))
	return b.String()
}
