package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OutdatedPackage is one entry of a package manager's outdated report.
type OutdatedPackage struct {
	Current string `json:"current"`
	Wanted  string `json:"wanted"`
	Latest  string `json:"latest"`
	Type    string `json:"type"`           // npm: "dependencies" / "devDependencies"
	DepType string `json:"dependencyType"` // pnpm spelling of Type
}

// OutdatedReport maps a package name to its installed and available versions.
type OutdatedReport map[string]OutdatedPackage

// ParseOutdatedReport decodes the machine-readable output of an outdated
// query. Empty output means nothing is outdated.
func ParseOutdatedReport(output []byte) (OutdatedReport, error) {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return OutdatedReport{}, nil
	}

	var report OutdatedReport
	if err := json.Unmarshal(trimmed, &report); err != nil {
		return nil, fmt.Errorf("invalid outdated report: %w", err)
	}
	if report == nil {
		report = OutdatedReport{}
	}
	return report, nil
}
