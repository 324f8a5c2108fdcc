package projects

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"budgetplanner/internal/aws/pricing/models"
)

type stubSource struct {
	ec2    models.PriceResult
	rds    models.PriceResult
	lambda models.LambdaResult
	calls  atomic.Int32
	delay  time.Duration
}

func found(price float64) models.PriceResult {
	return models.PriceResult{Status: models.Found, Price: price}
}

func (s *stubSource) wait(ctx context.Context) {
	s.calls.Add(1)
	if s.delay == 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.delay):
	}
}

func (s *stubSource) EC2Price(ctx context.Context, _ string) models.PriceResult {
	s.wait(ctx)
	return s.ec2
}

func (s *stubSource) RDSPrice(ctx context.Context, _, _ string) models.PriceResult {
	s.wait(ctx)
	return s.rds
}

func (s *stubSource) LambdaPrices(ctx context.Context) models.LambdaResult {
	s.wait(ctx)
	return s.lambda
}

func liveStub() *stubSource {
	return &stubSource{
		ec2: found(0.0042),
		rds: found(0.016),
		lambda: models.LambdaResult{
			Requests: found(0.0000002),
			Duration: found(0.0000166667),
		},
	}
}

func TestAssembleLive(t *testing.T) {
	src := liveStub()
	a := NewCatalog(src, 0).Assemble(context.Background())

	assert.Equal(t, SourceLive, a.Source)
	assert.Equal(t, 0.016, a.Prices.RDSHourly)
	assert.Len(t, a.Templates, 6)
	for _, tpl := range a.Templates {
		assert.Equal(t, SourceLive, tpl.PricingSource)
	}
	assert.Equal(t, 11.68, a.Templates[3].Components[1].Cost)
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestAssembleFallsBackOnAnyFailure(t *testing.T) {
	boom := errors.New("throttled")
	tests := []struct {
		name   string
		mutate func(s *stubSource)
	}{
		{"ec2 failed", func(s *stubSource) { s.ec2 = models.PriceResult{Status: models.Failed, Err: boom} }},
		{"rds not found", func(s *stubSource) { s.rds = models.PriceResult{Status: models.NotFound} }},
		{"lambda duration failed", func(s *stubSource) {
			s.lambda.Duration = models.PriceResult{Status: models.Failed, Err: boom}
		}},
	}

	want := Build(FallbackPrices(), SourceFallback)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := liveStub()
			tt.mutate(src)

			a := NewCatalog(src, 0).Assemble(context.Background())
			assert.Equal(t, SourceFallback, a.Source)
			assert.Equal(t, FallbackPrices(), a.Prices)
			assert.Equal(t, want, a.Templates, "partial live prices must be discarded")
		})
	}
}

func TestAssembleWithoutSource(t *testing.T) {
	a := NewCatalog(nil, 0).Assemble(context.Background())
	assert.Equal(t, SourceFallback, a.Source)
	assert.Len(t, a.Templates, 6)
}

func TestAssembleTimeout(t *testing.T) {
	src := liveStub()
	src.delay = time.Second
	src.ec2 = models.PriceResult{Status: models.Failed, Err: context.DeadlineExceeded}

	start := time.Now()
	a := NewCatalog(src, 20*time.Millisecond).Assemble(context.Background())
	assert.Equal(t, SourceFallback, a.Source)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
