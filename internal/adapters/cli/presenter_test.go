package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblock-tools/skyblock-checker/internal/adapters/cli"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/skyblock"
)

var viewerUUID = player.MustParseUUID("b876ec32e396476ba1158438d83c67d4")

func ptr[T any](v T) *T { return &v }

func memberFor(experience *float64, purse *float64, skills map[string]float64) map[string]skyblock.Member {
	member := skyblock.Member{CoinPurse: purse, Skills: skills}
	if experience != nil {
		member.Leveling = &skyblock.Leveling{Experience: experience}
	}
	return map[string]skyblock.Member{viewerUUID.String(): member}
}

func TestPresenter_PrintProfile_FullRecord(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	presenter := cli.NewPresenter(&out)
	profile := skyblock.Profile{
		ProfileID: "p1",
		CuteName:  ptr("Blueberry"),
		GameMode:  ptr("ironman"),
		Banking:   &skyblock.Banking{Balance: ptr(1234567.891)},
		Members: memberFor(ptr(250.0), ptr(9876.5), map[string]float64{
			"mining": 100,
			"combat": 300,
		}),
	}

	// Act
	presenter.PrintProfile(profile, viewerUUID, true)

	// Assert
	text := out.String()
	assert.Contains(t, text, "[Selected] Profile: Blueberry")
	assert.Contains(t, text, "Game Mode: Ironman")
	assert.Contains(t, text, "SkyBlock Level: 2 (experience: 250)")
	assert.Contains(t, text, "Purse: 9,876.50")
	assert.Contains(t, text, "Bank: 1,234,567.89")
	assert.Contains(t, text, "Skills (exp): mining=100, combat=300")
}

func TestPresenter_PrintProfile_MissingFieldsRenderPlaceholders(t *testing.T) {
	// Arrange: completely empty record
	var out bytes.Buffer
	presenter := cli.NewPresenter(&out)

	// Act
	presenter.PrintProfile(skyblock.Profile{}, viewerUUID, false)

	// Assert
	text := out.String()
	assert.Contains(t, text, "Profile: Unknown")
	assert.NotContains(t, text, "[Selected]")
	assert.NotContains(t, text, "Game Mode:")
	assert.Contains(t, text, "SkyBlock Level: N/A")
	assert.Contains(t, text, "Purse: 0.00")
	assert.Contains(t, text, "Bank: 0.00")
	assert.Contains(t, text, "Skills (exp): not available")
}

func TestPresenter_PrintProfile_SkillsTruncatedToFive(t *testing.T) {
	// Arrange: all eight canonical skills present
	skills := map[string]float64{}
	for i, name := range skyblock.SkillNames {
		skills[name] = float64((i + 1) * 10)
	}
	var out bytes.Buffer
	presenter := cli.NewPresenter(&out)
	profile := skyblock.Profile{Members: memberFor(nil, nil, skills)}

	// Act
	presenter.PrintProfile(profile, viewerUUID, false)

	// Assert: first five in canonical order, rest silently omitted
	text := out.String()
	assert.Contains(t, text, "Skills (exp): mining=10, farming=20, combat=30, foraging=40, fishing=50")
	assert.NotContains(t, text, "enchanting")
	assert.NotContains(t, text, "alchemy")
	assert.NotContains(t, text, "taming")
}

func TestPresenter_PrintProfiles_MarksOnlySelectedRecord(t *testing.T) {
	// Arrange: selected record deliberately not first
	var out bytes.Buffer
	presenter := cli.NewPresenter(&out)
	records := []skyblock.Profile{
		{ProfileID: "a", CuteName: ptr("Apple")},
		{ProfileID: "b", CuteName: ptr("Banana"), Selected: true},
	}

	// Act
	presenter.PrintProfiles(records, viewerUUID)

	// Assert
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "[Selected]"))
	assert.Contains(t, text, "[Selected] Profile: Banana")
	assert.Contains(t, text, "\nProfile: Apple")

	// Records render in returned order.
	require.Less(t, strings.Index(text, "Apple"), strings.Index(text, "Banana"))
}

func TestPresenter_PrintProfiles_NoSelectedRecord(t *testing.T) {
	var out bytes.Buffer
	presenter := cli.NewPresenter(&out)
	records := []skyblock.Profile{
		{ProfileID: "a", CuteName: ptr("Apple")},
		{ProfileID: "b", CuteName: ptr("Banana")},
	}

	presenter.PrintProfiles(records, viewerUUID)

	assert.NotContains(t, out.String(), "[Selected]")
}
