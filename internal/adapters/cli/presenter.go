package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/skyblock"
)

// maxSkillsShown caps the skill line at the first five present skills.
const maxSkillsShown = 5

// Presenter renders profile records as human-readable text. Missing fields
// are rendered as placeholders, never treated as errors.
type Presenter struct {
	out     io.Writer
	numbers *message.Printer
	titles  cases.Caser
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		numbers: message.NewPrinter(language.English),
		titles:  cases.Title(language.English),
	}
}

// PrintProfiles renders every record in returned order, marking the
// selected profile: the first record flagged selected, if any.
func (p *Presenter) PrintProfiles(records []skyblock.Profile, id player.UUID) {
	selectedID := skyblock.SelectedProfileID(records)
	for _, record := range records {
		p.PrintProfile(record, id, selectedID != "" && record.ProfileID == selectedID)
	}
}

// PrintProfile renders one profile for the player identified by id.
func (p *Presenter) PrintProfile(record skyblock.Profile, id player.UUID, selected bool) {
	if selected {
		fmt.Fprintf(p.out, "\n[Selected] Profile: %s\n", record.Name())
	} else {
		fmt.Fprintf(p.out, "\nProfile: %s\n", record.Name())
	}

	// Game mode line is omitted entirely when the tag is absent.
	if record.GameMode != nil {
		fmt.Fprintf(p.out, "  Game Mode: %s\n", p.titles.String(*record.GameMode))
	}

	// A missing member entry renders every member field as absent.
	member, _ := record.Member(id)

	if experience, ok := member.LevelingExperience(); ok {
		fmt.Fprintf(p.out, "  SkyBlock Level: %d (experience: %.0f)\n", skyblock.Level(experience), experience)
	} else {
		fmt.Fprintln(p.out, "  SkyBlock Level: N/A")
	}

	fmt.Fprintf(p.out, "  Purse: %s\n", p.formatAmount(member.Purse()))
	fmt.Fprintf(p.out, "  Bank: %s\n", p.formatAmount(record.BankBalance()))

	skills := member.SkillsInOrder()
	if len(skills) == 0 {
		fmt.Fprintln(p.out, "  Skills (exp): not available")
		return
	}
	// Show first 5 skills
	if len(skills) > maxSkillsShown {
		skills = skills[:maxSkillsShown]
	}
	parts := make([]string, len(skills))
	for i, skill := range skills {
		parts[i] = fmt.Sprintf("%s=%.0f", skill.Name, skill.Experience)
	}
	fmt.Fprintf(p.out, "  Skills (exp): %s\n", strings.Join(parts, ", "))
}

// formatAmount renders a coin amount with thousands separators and two
// decimal places.
func (p *Presenter) formatAmount(amount float64) string {
	return p.numbers.Sprintf("%.2f", amount)
}
