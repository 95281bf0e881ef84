package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
)

const canonical = "069a79f444e94726a5befca90e38aaf5"

func TestParseUUID_NormalizesDashesAndCase(t *testing.T) {
	inputs := []string{
		"069a79f444e94726a5befca90e38aaf5",
		"069a79f4-44e9-4726-a5be-fca90e38aaf5",
		"069A79F4-44E9-4726-A5BE-FCA90E38AAF5",
		"069A79F444E94726A5BEFCA90E38AAF5",
		"0-6-9-a-7-9-f-4-44e94726a5befca90e38aaf5",
		"-069a79f444e94726a5befca90e38aaf5-",
	}

	for _, input := range inputs {
		// Act
		id, err := player.ParseUUID(input)

		// Assert
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, canonical, id.String(), "input %q", input)
	}
}

func TestParseUUID_RejectsInvalidInput(t *testing.T) {
	inputs := []string{
		"",
		"Technoblade",
		"069a79f444e94726a5befca90e38aaf",    // 31 chars
		"069a79f444e94726a5befca90e38aaf55",  // 33 chars
		"069a79f444e94726a5befca90e38aag5",   // non-hex character
		"069a79f4-44e9-4726-a5be-fca90e38aa", // 30 chars after dash removal
	}

	for _, input := range inputs {
		// Act
		_, err := player.ParseUUID(input)

		// Assert
		assert.Error(t, err, "input %q", input)
		assert.False(t, player.IsUUID(input), "input %q", input)
	}
}

func TestIsUUID(t *testing.T) {
	assert.True(t, player.IsUUID("069a79f4-44e9-4726-a5be-fca90e38aaf5"))
	assert.False(t, player.IsUUID("not-a-uuid"))
}

func TestUUID_Equals(t *testing.T) {
	a := player.MustParseUUID("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	b := player.MustParseUUID("069A79F444E94726A5BEFCA90E38AAF5")

	assert.True(t, a.Equals(b))
	assert.False(t, a.IsZero())
	assert.True(t, player.UUID{}.IsZero())
}
