package aws

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"budgetplanner/internal/logging"
)

// PricingAPIRegion is where the Price List API is served from. It returns
// prices for every region regardless of the endpoint used.
const PricingAPIRegion = "us-east-1"

// NewSession creates a new AWS session with the specified profile and region
func NewSession(profile string, region string) (*session.Session, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}

	opts := session.Options{
		Config:            *cfg,
		Profile:           profile,
		SharedConfigState: session.SharedConfigEnable,
	}

	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return sess, nil
}

// NewPricingSession creates a session pinned to the Price List API region.
// A zero timeout leaves the SDK's default HTTP client in place.
func NewPricingSession(profile string, timeout time.Duration) (*session.Session, error) {
	logging.Debug("Creating pricing session", map[string]interface{}{
		"profile": profile,
		"region":  PricingAPIRegion,
	})

	sess, err := NewSession(profile, PricingAPIRegion)
	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		return sess, nil
	}

	httpClient := &http.Client{Timeout: timeout}
	newSess, err := session.NewSession(sess.Config.Copy().WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return newSess, nil
}
