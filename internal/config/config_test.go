package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func testCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("dataset", "", "")
	cmd.Flags().String("db_type", "", "")
	cmd.Flags().String("language", "", "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	// Run in an empty directory so no stray tablekit.yaml is picked up.
	t.Chdir(t.TempDir())

	c, err := Load(testCmd(), map[string]any{"language": "en", "db_type": ""}, nil)
	// Without any config file the defaults still apply; the missing file is
	// reported so callers can persist a default config.
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("Load: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("default language = %q", c.Language)
	}
	if c.DBType != "" {
		t.Fatalf("default db_type = %q", c.DBType)
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\ndataset: issues.yaml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(testCmd(), map[string]any{"language": "en"}, &path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Language != "de" {
		t.Fatalf("language from file = %q", c.Language)
	}
	if c.Dataset != "issues.yaml" {
		t.Fatalf("dataset from file = %q", c.Dataset)
	}
}

func TestLoad_FlagsWinOverFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := testCmd()
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatal(err)
	}

	c, err := Load(cmd, nil, &path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("flag must win over file, got %q", c.Language)
	}
}
