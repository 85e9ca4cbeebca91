package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mike-s/foodmart/internal/models"
)

func TestValidateAge(t *testing.T) {
	assert.ErrorIs(t, ValidateAge(-1), ErrNegativeAge)
	assert.ErrorIs(t, ValidateAge(15), ErrUnderage)
	assert.NoError(t, ValidateAge(18))
	assert.NoError(t, ValidateAge(25))
}

func TestAgeStatus(t *testing.T) {
	assert.Equal(t, "Minderjährig", AgeStatus(17))
	assert.Equal(t, "Volljährig", AgeStatus(18))
}

func TestMembershipYears(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, MembershipYears(models.Member{MemberSince: 2020}, now))
	assert.Equal(t, 0, MembershipYears(models.Member{MemberSince: 2025}, now))
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "1.234,56 €", FormatEuro(1234.56))
	assert.Equal(t, "0,50 €", FormatEuro(0.5))
}

func TestCard(t *testing.T) {
	m := models.Member{
		Name:        "Max Mustermann",
		Age:         28,
		Premium:     true,
		Balance:     1234.56,
		MemberSince: 2020,
	}
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	want := "=== Benutzerprofil ===\n" +
		"Name: Max Mustermann\n" +
		"Alter: 28 Jahre\n" +
		"Altersstatus: Volljährig\n" +
		"Premium-Mitglied: Ja\n" +
		"Kontostand: 1.234,56 €\n" +
		"Mitglied seit: 2020\n" +
		"Mitgliedsjahre: 5\n"

	assert.Equal(t, want, Card(m, now))
}
