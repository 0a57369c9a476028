package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/adapters/driven/config/file"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

var errNoConfigStore = errors.New("config store not configured")

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Annotations: map[string]string{annotationNoServices: "true"},
	Long: `View and change settings stored in ~/.smartdocs/config.toml.

Every key can also be overridden with an environment variable named
SMARTDOCS_ followed by the key in upper case with dots replaced by
underscores, for example SMARTDOCS_OPENSEARCH_URL.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Lists are comma separated.

Keys:
  ` + strings.Join(file.KnownKeys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s := appSettings

	cmd.Println(render(cmd, headerStyle, "Current Settings"))
	cmd.Println("================")
	if configStore != nil {
		cmd.Printf("File: %s\n", configStore.Path())
	}
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Backend: %s\n", s.Search.Backend.Description())
	cmd.Printf("  Over-fetch: %d\n", s.Search.OverFetch)
	cmd.Printf("  Post-processors: %s\n", strings.Join(s.Search.PostProcessors, ", "))
	cmd.Println()

	cmd.Println("[OpenSearch]")
	cmd.Printf("  URL: %s\n", s.OpenSearch.URL)
	cmd.Printf("  Index: %s\n", s.OpenSearch.Index)
	if s.OpenSearch.Username != "" {
		cmd.Printf("  Username: %s\n", s.OpenSearch.Username)
		cmd.Printf("  Password: %s\n", maskSecret(s.OpenSearch.Password))
	}
	cmd.Printf("  Timeout: %s\n", s.OpenSearch.Timeout)
	cmd.Println()

	cmd.Println("[Recognizer]")
	cmd.Printf("  Backend: %s\n", s.Recognizer.Backend)
	switch {
	case s.Recognizer.Backend == domain.RecognizerHTTP:
		cmd.Printf("  URL: %s\n", orDefault(s.Recognizer.URL))
	case s.Recognizer.Backend == domain.RecognizerOllama:
		cmd.Printf("  URL: %s\n", orDefault(s.Recognizer.URL))
		cmd.Printf("  Model: %s\n", orDefault(s.Recognizer.Model))
	case s.Recognizer.Gazetteer != "":
		cmd.Printf("  Gazetteer: %s\n", s.Recognizer.Gazetteer)
	default:
		cmd.Println("  Gazetteer: (built-in)")
	}
	cmd.Println()

	cmd.Println("[Geocoder]")
	cmd.Printf("  Enabled: %t\n", s.Geocoder.Enabled)
	cmd.Printf("  URL: %s\n", s.Geocoder.URL)
	cmd.Printf("  User agent: %s\n", s.Geocoder.UserAgent)
	cmd.Printf("  Min interval: %s\n", s.Geocoder.MinInterval.Round(time.Millisecond))
	cmd.Printf("  Places per document: %d\n", s.Geocoder.Limit)
	cmd.Println()

	cmd.Println("[Cache]")
	if s.Cache.RedisAddr != "" {
		cmd.Printf("  Redis: %s (prefix %s)\n", s.Cache.RedisAddr, s.Cache.RedisPrefix)
	} else {
		cmd.Println("  In-memory")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	switch {
	case s.Storage.Disabled:
		cmd.Println("  Journal: disabled")
	case s.Storage.DataDir != "":
		cmd.Printf("  Journal: %s\n", s.Storage.DataDir)
	default:
		cmd.Println("  Journal: ~/.smartdocs/data")
	}
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", s.Server.Addr)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errNoConfigStore
	}

	key, raw := args[0], args[1]
	value, err := file.ParseValue(key, raw)
	if err != nil {
		return err
	}
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	cmd.Println(render(cmd, mutedStyle, fmt.Sprintf("(override with %s)", file.EnvName(key))))
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
