package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "€2,500 - €3,200", FormatSalary(2500, 3200, "€"))
	assert.Equal(t, "€2,500", FormatSalary(2500, 2500, "€"))
	assert.Equal(t, "От PLN4,000", FormatSalary(4000, 0, "PLN"))
	assert.Equal(t, "До £30,000", FormatSalary(0, 30000, "£"))
	assert.Equal(t, "", FormatSalary(0, 0, "€"))
	assert.Equal(t, "$1,234,567", FormatSalary(1234567, 1234567, "$"))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Drive a van. Apply now.",
		StripHTML("<p>Drive a   van.</p><b>Apply now.</b>"))
	assert.Equal(t, "One Two Three",
		StripHTML("<div><p>One</p><p>Two</p></div><p>Three</p>"))
	assert.Equal(t, "plain text stays", StripHTML("plain   text \n stays"))
	assert.Equal(t, "", StripHTML(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	assert.Equal(t, "пят...", Truncate("пятница", 3))
}

func TestStatusError(t *testing.T) {
	assert.NoError(t, StatusError(200))
	assert.ErrorIs(t, StatusError(429), ErrRateLimited)
	assert.ErrorIs(t, StatusError(500), ErrTransient)
	assert.ErrorIs(t, StatusError(503), ErrTransient)
	assert.ErrorIs(t, StatusError(404), ErrProtocol)
	assert.ErrorIs(t, StatusError(403), ErrProtocol)
}
