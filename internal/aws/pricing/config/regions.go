package config

import "sort"

// DefaultLocation is used for region codes missing from RegionToLocation
const DefaultLocation = "US East (N. Virginia)"

// RegionToLocation maps AWS region codes to their location names for pricing API
var RegionToLocation = map[string]string{
	// US Regions
	"us-east-1": "US East (N. Virginia)",
	"us-east-2": "US East (Ohio)",
	"us-west-1": "US West (N. California)",
	"us-west-2": "US West (Oregon)",

	// Europe
	"eu-west-1":    "EU (Ireland)",
	"eu-central-1": "EU (Frankfurt)",

	// Asia Pacific
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
}

// GetLocationForRegion returns the location name for a given AWS region
func GetLocationForRegion(region string) (string, bool) {
	location, ok := RegionToLocation[region]
	return location, ok
}

// LocationForRegion is GetLocationForRegion with DefaultLocation for unknown regions
func LocationForRegion(region string) string {
	if location, ok := RegionToLocation[region]; ok {
		return location
	}
	return DefaultLocation
}

// SupportedRegions returns the known region codes in sorted order
func SupportedRegions() []string {
	regions := make([]string, 0, len(RegionToLocation))
	for region := range RegionToLocation {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
