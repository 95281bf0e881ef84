package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyblock-tools/skyblock-checker/internal/adapters/api"
	"github.com/skyblock-tools/skyblock-checker/internal/application/profiles"
	"github.com/skyblock-tools/skyblock-checker/internal/infrastructure/config"
	"github.com/skyblock-tools/skyblock-checker/internal/infrastructure/logging"
)

// Options wires the command's streams so the pipeline can run without a
// TTY in tests.
type Options struct {
	In  io.Reader
	Out io.Writer
}

// NewRootCommand creates the root command for the checker
func NewRootCommand(opts Options) *cobra.Command {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	var (
		configPath string
		debug      bool
		rawJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "skyblock-checker [username|uuid]",
		Short: "Check Hypixel SkyBlock profiles for a player",
		Long: `SkyBlock Profile Checker resolves a Minecraft username (or accepts a
UUID directly), fetches the player's SkyBlock profiles from the Hypixel
API, and renders them as readable text.

The API key is taken from the HYPIXEL_API_KEY environment variable,
config, or an interactive prompt, in that order.

Examples:
  skyblock-checker
  skyblock-checker Technoblade
  skyblock-checker b876ec32-e396-476b-a115-8438d83c67d4 --json
  skyblock-checker Technoblade --debug`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts, configPath, debug, rawJSON)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "Output raw JSON response in addition to the report")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts Options, configPath string, debug, rawJSON bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	logger := logging.NewLogger(cfg.Logging)
	out := opts.Out
	reader := bufio.NewReader(opts.In)

	fmt.Fprintln(out, "=== SkyBlock Profile Checker ===")
	if debug {
		logger.Debug().Msg("debug mode enabled")
	}

	apiKey, err := config.ResolveAPIKey(cfg, func() (string, error) {
		fmt.Fprintln(out, "Enter your Hypixel API key:")
		return promptLine(reader, out)
	})
	if err != nil {
		return err
	}
	logger.Debug().Str("api_key", maskKey(apiKey)).Msg("using API key")

	var input string
	if len(args) == 1 {
		input = strings.TrimSpace(args[0])
	} else {
		fmt.Fprintln(out, "\nEnter Minecraft username or UUID:")
		input, err = promptLine(reader, out)
		if err != nil {
			return err
		}
	}

	mojang := api.NewMojangClient(api.MojangConfig{
		BaseURL: cfg.API.MojangBaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	hypixel := api.NewHypixelClient(api.HypixelConfig{
		BaseURL:           cfg.API.HypixelBaseURL,
		Timeout:           cfg.API.Timeout,
		RateLimitRequests: cfg.API.RateLimit.Requests,
		RateLimitBurst:    cfg.API.RateLimit.Burst,
		Logger:            logger,
	})

	service := profiles.NewService(mojang, hypixel, out, logger)

	lookup, err := service.Run(cmd.Context(), input, apiKey)
	if err != nil {
		return err
	}

	if rawJSON {
		fmt.Fprintln(out, "\n=== RAW JSON RESPONSE ===")
		fmt.Fprintln(out, prettyJSON(lookup.RawBody))
		fmt.Fprintln(out, "=== END RAW JSON ===")
	}

	// A player without profiles is not an error.
	if len(lookup.Profiles) == 0 {
		fmt.Fprintln(out, "\nNo SkyBlock profiles found for this player")
		return nil
	}

	fmt.Fprintf(out, "\nFound %d profile(s):\n", len(lookup.Profiles))
	fmt.Fprintln(out, strings.Repeat("-", 50))

	presenter := NewPresenter(out)
	presenter.PrintProfiles(lookup.Profiles, lookup.UUID)

	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintln(out, "\nDone!")

	return nil
}
