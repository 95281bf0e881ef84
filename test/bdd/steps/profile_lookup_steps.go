package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/rs/zerolog"

	"github.com/skyblock-tools/skyblock-checker/internal/adapters/api"
	"github.com/skyblock-tools/skyblock-checker/internal/adapters/cli"
	"github.com/skyblock-tools/skyblock-checker/internal/application/profiles"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/skyblock"
)

type knownPlayer struct {
	username string
	uuid     string
}

type profileLookupContext struct {
	nameServer  *httptest.Server
	statsServer *httptest.Server

	players     map[string]knownPlayer
	statsStatus int
	statsBody   []byte

	nameCalls  int
	statsCalls int

	out    bytes.Buffer
	lookup profiles.Lookup
	err    error
}

func InitializeProfileLookupScenario(ctx *godog.ScenarioContext) {
	c := &profileLookupContext{}

	// Given steps
	ctx.Step(`^the name service knows the following players:$`, c.theNameServiceKnowsPlayers)
	ctx.Step(`^the stats service returns a selected profile "([^"]*)" with members:$`, c.theStatsServiceReturnsProfile)
	ctx.Step(`^the stats service denies access$`, c.theStatsServiceDeniesAccess)
	ctx.Step(`^the stats service is rate limited$`, c.theStatsServiceIsRateLimited)
	ctx.Step(`^the stats service returns no profiles$`, c.theStatsServiceReturnsNoProfiles)
	ctx.Step(`^the stats service reports failure with cause "([^"]*)"$`, c.theStatsServiceReportsFailure)

	// When steps
	ctx.Step(`^I look up "([^"]*)"$`, c.iLookUp)

	// Then steps
	ctx.Step(`^the lookup succeeds$`, c.theLookupSucceeds)
	ctx.Step(`^the lookup fails with username not found$`, c.theLookupFailsUsernameNotFound)
	ctx.Step(`^the lookup fails with access denied$`, c.theLookupFailsAccessDenied)
	ctx.Step(`^the lookup fails with rate limited$`, c.theLookupFailsRateLimited)
	ctx.Step(`^the lookup fails with cause "([^"]*)"$`, c.theLookupFailsWithCause)
	ctx.Step(`^the lookup returns no profiles$`, c.theLookupReturnsNoProfiles)
	ctx.Step(`^the output contains "([^"]*)"$`, c.theOutputContains)
	ctx.Step(`^no name lookup request is made$`, c.noNameLookupRequestIsMade)
	ctx.Step(`^no profile request is made$`, c.noProfileRequestIsMade)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		c.startServers()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		c.stopServers()
		return ctx, nil
	})
}

func (c *profileLookupContext) reset() {
	c.players = make(map[string]knownPlayer)
	c.statsStatus = http.StatusOK
	c.statsBody = []byte(`{"success":true,"profiles":[]}`)
	c.nameCalls = 0
	c.statsCalls = 0
	c.out.Reset()
	c.lookup = profiles.Lookup{}
	c.err = nil
}

func (c *profileLookupContext) startServers() {
	c.nameServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.nameCalls++
		username := path.Base(r.URL.Path)
		known, ok := c.players[strings.ToLower(username)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"id":%q,"name":%q}`, known.uuid, known.username)
	}))
	c.statsServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.statsCalls++
		if c.statsStatus != http.StatusOK {
			w.WriteHeader(c.statsStatus)
			return
		}
		w.Write(c.statsBody)
	}))
}

func (c *profileLookupContext) stopServers() {
	if c.nameServer != nil {
		c.nameServer.Close()
	}
	if c.statsServer != nil {
		c.statsServer.Close()
	}
}

// Given steps

func (c *profileLookupContext) theNameServiceKnowsPlayers(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		username := row.Cells[0].Value
		c.players[strings.ToLower(username)] = knownPlayer{
			username: username,
			uuid:     row.Cells[1].Value,
		}
	}
	return nil
}

func (c *profileLookupContext) theStatsServiceReturnsProfile(cuteName string, table *godog.Table) error {
	members := make(map[string]any)
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		experience, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid experience %q: %w", row.Cells[1].Value, err)
		}
		purse, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid coin purse %q: %w", row.Cells[2].Value, err)
		}
		members[row.Cells[0].Value] = map[string]any{
			"leveling":   map[string]any{"experience": experience},
			"coin_purse": purse,
		}
	}

	body, err := json.Marshal(map[string]any{
		"success": true,
		"profiles": []any{map[string]any{
			"profile_id": "bdd-profile",
			"cute_name":  cuteName,
			"selected":   true,
			"members":    members,
		}},
	})
	if err != nil {
		return err
	}
	c.statsBody = body
	return nil
}

func (c *profileLookupContext) theStatsServiceDeniesAccess() error {
	c.statsStatus = http.StatusForbidden
	return nil
}

func (c *profileLookupContext) theStatsServiceIsRateLimited() error {
	c.statsStatus = http.StatusTooManyRequests
	return nil
}

func (c *profileLookupContext) theStatsServiceReturnsNoProfiles() error {
	c.statsBody = []byte(`{"success":true,"profiles":[]}`)
	return nil
}

func (c *profileLookupContext) theStatsServiceReportsFailure(cause string) error {
	body, err := json.Marshal(map[string]any{"success": false, "cause": cause})
	if err != nil {
		return err
	}
	c.statsBody = body
	return nil
}

// When steps

func (c *profileLookupContext) iLookUp(input string) error {
	resolver := api.NewMojangClient(api.MojangConfig{
		BaseURL: c.nameServer.URL,
		Logger:  zerolog.Nop(),
	})
	client := api.NewHypixelClient(api.HypixelConfig{
		BaseURL: c.statsServer.URL,
		Logger:  zerolog.Nop(),
	})
	service := profiles.NewService(resolver, client, &c.out, zerolog.Nop())

	c.lookup, c.err = service.Run(context.Background(), input, "test-key")
	if c.err == nil && len(c.lookup.Profiles) > 0 {
		cli.NewPresenter(&c.out).PrintProfiles(c.lookup.Profiles, c.lookup.UUID)
	}
	return nil
}

// Then steps

func (c *profileLookupContext) theLookupSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got error: %v", c.err)
	}
	return nil
}

func (c *profileLookupContext) theLookupFailsUsernameNotFound() error {
	var notFound *player.NotFoundError
	if !errors.As(c.err, &notFound) {
		return fmt.Errorf("expected a username-not-found error, got %v", c.err)
	}
	return nil
}

func (c *profileLookupContext) theLookupFailsAccessDenied() error {
	if !errors.Is(c.err, skyblock.ErrAccessDenied) {
		return fmt.Errorf("expected access denied, got %v", c.err)
	}
	return nil
}

func (c *profileLookupContext) theLookupFailsRateLimited() error {
	if !errors.Is(c.err, skyblock.ErrRateLimited) {
		return fmt.Errorf("expected rate limited, got %v", c.err)
	}
	return nil
}

func (c *profileLookupContext) theLookupFailsWithCause(cause string) error {
	var apiErr *skyblock.APIError
	if !errors.As(c.err, &apiErr) {
		return fmt.Errorf("expected a service-reported failure, got %v", c.err)
	}
	if apiErr.Cause != cause {
		return fmt.Errorf("expected cause %q, got %q", cause, apiErr.Cause)
	}
	return nil
}

func (c *profileLookupContext) theLookupReturnsNoProfiles() error {
	if len(c.lookup.Profiles) != 0 {
		return fmt.Errorf("expected no profiles, got %d", len(c.lookup.Profiles))
	}
	return nil
}

func (c *profileLookupContext) theOutputContains(expected string) error {
	if !strings.Contains(c.out.String(), expected) {
		return fmt.Errorf("output does not contain %q:\n%s", expected, c.out.String())
	}
	return nil
}

func (c *profileLookupContext) noNameLookupRequestIsMade() error {
	if c.nameCalls != 0 {
		return fmt.Errorf("expected no name lookup requests, got %d", c.nameCalls)
	}
	return nil
}

func (c *profileLookupContext) noProfileRequestIsMade() error {
	if c.statsCalls != 0 {
		return fmt.Errorf("expected no profile requests, got %d", c.statsCalls)
	}
	return nil
}
