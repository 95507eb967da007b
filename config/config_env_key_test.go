package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"gemini": map[string]any{
			"apiKey": "",
		},
		"entitlement": map[string]any{
			"purchaseBatchSize": 3,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEMINI_APIKEY", want: "gemini.apiKey"},
		{envKey: "ENTITLEMENT_PURCHASEBATCHSIZE", want: "entitlement.purchaseBatchSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Entitlement.PurchaseBatchSize != defaultPurchaseBatchSize {
		t.Fatalf("PurchaseBatchSize = %d, want %d", cfg.Entitlement.PurchaseBatchSize, defaultPurchaseBatchSize)
	}
	if cfg.Progress.WaterDailyCap != defaultWaterDailyCap {
		t.Fatalf("WaterDailyCap = %d, want %d", cfg.Progress.WaterDailyCap, defaultWaterDailyCap)
	}
	if cfg.Progress.StreakLookbackDays != defaultStreakLookbackDays {
		t.Fatalf("StreakLookbackDays = %d, want %d", cfg.Progress.StreakLookbackDays, defaultStreakLookbackDays)
	}
}
