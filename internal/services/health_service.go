package services

import (
	"context"
	"errors"

	"github.com/kujivinjari/backend/internal/models"
)

// Health states for the diagnostics report. The report never carries an
// error value: every failure path degrades to one of these strings or a
// truncated error description.
const (
	StatusRunning      = "running"
	StatusAvailable    = "available"
	StatusNotAvailable = "not available"
	StatusWorking      = "connected and working"
	StatusConnected    = "connected"
	StatusNotConnected = "not connected"
	StatusSet          = "set"
	StatusNotSet       = "not set"
)

const maxErrorLen = 80

// HealthReport is the full diagnostics payload. Field names match the
// public wire format of /test.
type HealthReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthService struct {
	store          models.DocumentStore
	databaseName   string
	databaseURLSet bool
}

func NewHealthService(store models.DocumentStore, databaseName string, databaseURLSet bool) *HealthService {
	return &HealthService{
		store:          store,
		databaseName:   databaseName,
		databaseURLSet: databaseURLSet,
	}
}

// Report inspects database connectivity. It must never fail: every error is
// folded into the report as a descriptive string.
func (hs *HealthService) Report(ctx context.Context) HealthReport {
	report := HealthReport{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		DatabaseURL:      StatusNotSet,
		DatabaseName:     StatusNotSet,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	if hs.databaseURLSet {
		report.DatabaseURL = StatusSet
	}

	if err := hs.store.Ping(ctx); err != nil {
		if !errors.Is(err, models.ErrStorageUnavailable) {
			report.Database = "error: " + truncate(err.Error(), maxErrorLen)
		}
		return report
	}

	report.Database = StatusAvailable
	report.ConnectionStatus = StatusConnected
	if hs.databaseName != "" {
		report.DatabaseName = hs.databaseName
	}

	names, err := hs.store.CollectionNames(ctx, 10)
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error(), maxErrorLen)
		return report
	}
	report.Collections = names
	report.Database = StatusWorking
	return report
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
