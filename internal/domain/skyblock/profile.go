package skyblock

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
)

// SkillNames is the canonical ordering of member skill experience fields.
// Rendering follows this order regardless of the order keys appear in the
// API payload.
var SkillNames = []string{
	"mining",
	"farming",
	"combat",
	"foraging",
	"fishing",
	"enchanting",
	"alchemy",
	"taming",
}

const skillExperiencePrefix = "experience_skill_"

// experiencePerLevel is the amount of leveling experience per SkyBlock level.
const experiencePerLevel = 100

// Level derives the SkyBlock level from leveling experience.
func Level(experience float64) int {
	return int(math.Floor(experience / experiencePerLevel))
}

// Profile is one SkyBlock profile record as returned by the stats service.
// Any field may be absent; absence is not an error and is rendered as a
// placeholder, so optional fields are pointers.
type Profile struct {
	ProfileID string            `json:"profile_id"`
	CuteName  *string           `json:"cute_name"`
	GameMode  *string           `json:"game_mode"`
	Selected  bool              `json:"selected"`
	Members   map[string]Member `json:"members"`
	Banking   *Banking          `json:"banking"`
}

// Banking holds the profile-level bank account.
type Banking struct {
	Balance *float64 `json:"balance"`
}

// Leveling holds the member's SkyBlock leveling progress.
type Leveling struct {
	Experience *float64 `json:"experience"`
}

// Member is one player's slice of a profile. Skill experience arrives as
// flat experience_skill_* keys and is collected into Skills by the custom
// unmarshaller.
type Member struct {
	Leveling  *Leveling
	CoinPurse *float64
	Skills    map[string]float64
}

// UnmarshalJSON decodes the known member fields and sweeps the remaining
// keys for experience_skill_* entries.
func (m *Member) UnmarshalJSON(data []byte) error {
	var known struct {
		Leveling  *Leveling `json:"leveling"`
		CoinPurse *float64  `json:"coin_purse"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	skills := make(map[string]float64)
	for key, value := range raw {
		name, ok := strings.CutPrefix(key, skillExperiencePrefix)
		if !ok {
			continue
		}
		var experience float64
		if err := json.Unmarshal(value, &experience); err != nil {
			// Non-numeric skill values are treated as absent.
			continue
		}
		skills[name] = experience
	}

	m.Leveling = known.Leveling
	m.CoinPurse = known.CoinPurse
	m.Skills = skills
	return nil
}

// Skill is a named skill experience value.
type Skill struct {
	Name       string
	Experience float64
}

// Name returns the profile's display name, or "Unknown" when absent.
func (p Profile) Name() string {
	if p.CuteName == nil {
		return "Unknown"
	}
	return *p.CuteName
}

// Member returns the member entry for the given player, if present.
func (p Profile) Member(id player.UUID) (Member, bool) {
	member, ok := p.Members[id.String()]
	return member, ok
}

// BankBalance returns the banking balance, defaulting to zero when either
// the banking section or the balance field is absent.
func (p Profile) BankBalance() float64 {
	if p.Banking == nil || p.Banking.Balance == nil {
		return 0
	}
	return *p.Banking.Balance
}

// LevelingExperience returns the member's leveling experience and whether
// it is present.
func (m Member) LevelingExperience() (float64, bool) {
	if m.Leveling == nil || m.Leveling.Experience == nil {
		return 0, false
	}
	return *m.Leveling.Experience, true
}

// Purse returns the member's coin purse, defaulting to zero when absent.
func (m Member) Purse() float64 {
	if m.CoinPurse == nil {
		return 0
	}
	return *m.CoinPurse
}

// SkillsInOrder returns the member's present skills in the canonical order.
func (m Member) SkillsInOrder() []Skill {
	skills := make([]Skill, 0, len(SkillNames))
	for _, name := range SkillNames {
		if experience, ok := m.Skills[name]; ok {
			skills = append(skills, Skill{Name: name, Experience: experience})
		}
	}
	return skills
}

// SelectedProfileID returns the profile id of the first record flagged as
// selected, or "" when no record is selected.
func SelectedProfileID(profiles []Profile) string {
	for _, profile := range profiles {
		if profile.Selected {
			return profile.ProfileID
		}
	}
	return ""
}
