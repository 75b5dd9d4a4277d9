package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	assert.Equal(t, "RK", Initials("Rakesh Kumar"))
	assert.Equal(t, "A", Initials("aryan"))
	assert.Equal(t, "JD", Initials("john doe smith"))
	assert.Equal(t, "", Initials("   "))
}

func TestInitialsAvatarURL(t *testing.T) {
	url := InitialsAvatarURL("https://ui-avatars.com/api", "Rakesh Kumar")
	assert.Equal(t, "https://ui-avatars.com/api/?name=RK&size=256", url)

	// Empty usernames still yield a renderable URL.
	url = InitialsAvatarURL("https://ui-avatars.com/api/", "")
	assert.Equal(t, "https://ui-avatars.com/api/?name=%3F&size=256", url)
}
