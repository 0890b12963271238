package impl

import (
	"io"
	"log/slog"

	"bizvistar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:           &config.AuthConfig{BcryptCost: 12},
		Storefront:     &config.StorefrontConfig{BaseURL: "https://bizvistar.test"},
		Recommendation: &config.RecommendationConfig{MinLimit: 2, MaxLimit: 8, SameCategoryCap: 4},
		StockAlert:     &config.StockAlertConfig{LowStockThreshold: 5},
	}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}
