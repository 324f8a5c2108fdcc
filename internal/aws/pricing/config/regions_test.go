package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationForRegion(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"us-east-1", "US East (N. Virginia)"},
		{"us-west-2", "US West (Oregon)"},
		{"eu-central-1", "EU (Frankfurt)"},
		{"ap-northeast-1", "Asia Pacific (Tokyo)"},
		{"sa-east-1", DefaultLocation},
		{"", DefaultLocation},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationForRegion(tt.region))
		})
	}
}

func TestGetLocationForRegionUnknown(t *testing.T) {
	_, ok := GetLocationForRegion("mars-north-1")
	assert.False(t, ok)
}

func TestSupportedRegions(t *testing.T) {
	regions := SupportedRegions()
	assert.Len(t, regions, 9)
	assert.IsIncreasing(t, regions)
	assert.Contains(t, regions, "ap-southeast-2")
}
