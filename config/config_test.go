package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		YearDirs:        map[int]string{2025: "/data/2025"},
		Allocations:     DefaultAllocations,
		ListenAddr:      ":8000",
		HighlightMaker:  "MAHINDRA",
		FiscalBaseYear:  2025,
		RecheckInterval: 5 * time.Second,
		MaxConcurrent:   10,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadAllocationSum(t *testing.T) {
	cfg := validConfig()
	cfg.Allocations = map[string]Allocation{
		"MH31": {UnnatiPct: 60, PACLPct: 30},
	}
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingPartitions(t *testing.T) {
	cfg := validConfig()
	cfg.YearDirs = nil
	require.Error(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("RTOPULSE_DATA_DIR", "/srv/reports")
	t.Setenv("RTOPULSE_DATA_2027", "/srv/special/2027")
	t.Setenv("RTOPULSE_ADDR", ":9090")
	t.Setenv("RTOPULSE_RECHECK", "30s")

	cfg := FromEnv()
	require.Equal(t, "/srv/reports/2025", cfg.YearDirs[2025])
	require.Equal(t, "/srv/special/2027", cfg.YearDirs[2027])
	require.Equal(t, ":9090", cfg.ListenAddr)
	require.Equal(t, 30*time.Second, cfg.RecheckInterval)
	require.NoError(t, cfg.Validate())

	require.Equal(t, []int{2024, 2025, 2026, 2027}, cfg.Years())
}
