package profiles

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/skyblock"
)

// Service sequences one lookup run: classify the input, resolve it when it
// is a username, then fetch the player's profiles. Rendering and exit-code
// decisions stay with the caller.
type Service struct {
	resolver player.Resolver
	client   skyblock.Client
	out      io.Writer
	logger   zerolog.Logger
}

// NewService wires the orchestrator. Progress lines for the user go to
// out; diagnostics go to the logger.
func NewService(resolver player.Resolver, client skyblock.Client, out io.Writer, logger zerolog.Logger) *Service {
	return &Service{
		resolver: resolver,
		client:   client,
		out:      out,
		logger:   logger,
	}
}

// Lookup is the outcome of one successful run.
type Lookup struct {
	UUID     player.UUID
	Resolved bool
	Profiles []skyblock.Profile
	RawBody  []byte
}

// Run executes one lookup for raw user input. Empty input fails before any
// network call; every downstream failure is returned as-is and terminal.
func (s *Service) Run(ctx context.Context, input, apiKey string) (Lookup, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Lookup{}, fmt.Errorf("username/UUID cannot be empty")
	}

	var id player.UUID
	resolved := false

	if parsed, err := player.ParseUUID(trimmed); err == nil {
		id = parsed
		fmt.Fprintf(s.out, "Using UUID: %s\n", id)
	} else {
		fmt.Fprintf(s.out, "Resolving username '%s'...\n", trimmed)
		identity, err := s.resolver.Resolve(ctx, trimmed)
		if err != nil {
			return Lookup{}, err
		}
		id = identity.UUID
		resolved = true
		fmt.Fprintf(s.out, "Username resolved to UUID: %s\n", id)
	}

	fmt.Fprintf(s.out, "Fetching SkyBlock profiles for UUID: %s\n", id)
	result, err := s.client.FetchProfiles(ctx, id, apiKey)
	if err != nil {
		return Lookup{}, err
	}

	s.logger.Debug().
		Int("profiles", len(result.Profiles)).
		Str("uuid", id.String()).
		Msg("profiles retrieved")

	return Lookup{
		UUID:     id,
		Resolved: resolved,
		Profiles: result.Profiles,
		RawBody:  result.RawBody,
	}, nil
}
