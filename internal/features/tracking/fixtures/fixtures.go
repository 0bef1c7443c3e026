// Package fixtures holds the canned tracking records served in mock mode.
package fixtures

import (
	_ "embed"
	"fmt"
	"strings"

	"tracking-bridge/internal/features/tracking/domain"

	"gopkg.in/yaml.v3"
)

//go:embed estes.yaml
var estesYAML []byte

var byCarrier = map[string][]byte{
	"estes": estesYAML,
}

// Record returns a fresh copy of the canned record for carrier. The caller
// fills in carrier name, identifier and link.
func Record(carrier string) (*domain.TrackingRecord, error) {
	data, ok := byCarrier[strings.ToLower(carrier)]
	if !ok {
		return nil, fmt.Errorf("no mock fixture for carrier %q", carrier)
	}

	var record domain.TrackingRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse %s fixture: %w", carrier, err)
	}
	return &record, nil
}
