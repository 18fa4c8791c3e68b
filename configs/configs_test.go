package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IR2816/Party-Gallery-Logic/constants"
	"github.com/IR2816/Party-Gallery-Logic/domains"
)

func TestLoadEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	envBody := constants.ENV_USER_AGENT_KEY + "=TestAgent/1.0\n" +
		constants.ENV_KEMONO_DOMAINS_KEY + "=mirror-a.example.com,https://mirror-b.example.com/\n"
	if err := os.WriteFile(envPath, []byte(envBody), 0600); err != nil {
		t.Fatalf("Failed to write test env file: %v", err)
	}

	original := domains.CandidateDomains(constants.KEMONO)
	t.Cleanup(func() {
		domains.OverrideDomains(constants.KEMONO, original)
		os.Unsetenv(constants.ENV_USER_AGENT_KEY)
		os.Unsetenv(constants.ENV_KEMONO_DOMAINS_KEY)
	})

	config := LoadEnv(envPath)
	if config.UserAgent != "TestAgent/1.0" {
		t.Errorf("Unexpected user agent: %q", config.UserAgent)
	}

	candidates := domains.CandidateDomains(constants.KEMONO)
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 override domains, got %v", candidates)
	}
	if candidates[0] != "mirror-a.example.com" || candidates[1] != "mirror-b.example.com" {
		t.Errorf("Expected the overrides to be normalized, got %v", candidates)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	// a missing env file is not an error, just no overrides
	config := LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if config == nil {
		t.Fatal("Expected a config even without an env file")
	}
}
