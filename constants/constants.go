package constants

import (
	"os"
	"strings"
)

func getenv(name, fallback string) string {
	v := os.Getenv(name)
	if v != "" {
		return v
	}
	return fallback
}

func GetChartDir() string {
	return getenv("CHART_PATH", "./charts")
}

func GetOutDir() string {
	return getenv("OUT_PATH", "./out")
}

func GetPort() string {
	return getenv("PORT", "8080")
}

// GetMetadataEndpoint returns "" when no metadata store is configured.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataTable() string {
	return getenv("METADATA_TABLE", "stardex-metadata")
}

func GetMetadataRegion() string {
	return getenv("METADATA_REGION", "localhost")
}

func GetCorsOrigins() []string {
	return strings.Split(getenv("CORS_ORIGINS", "*"), ",")
}

const RatingsFilename = "ratings.json"

// Timing tolerances, in milliseconds.
const (
	// Notes closer than this form one row.
	ChordToleranceMs = 10.0
	// Notes closer than this are snapped onto one timestamp before rows are built.
	SnapToleranceMs = 20.0
	// Holds shorter than this are scored as taps.
	MinHoldMs = 40.0
	// Width of one strain peak bin.
	SectionLengthMs = 400.0
)

const DefaultOverallDifficulty = 5.0
