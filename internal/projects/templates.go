package projects

import (
	"fmt"

	"budgetplanner/internal/aws/pricing/calculators"
)

// Usage assumptions for the Lambda line items
var (
	apiUsage     = calculators.LambdaUsage{Requests: 100_000, DurationMs: 200, MemoryMB: 128}
	scraperUsage = calculators.LambdaUsage{Requests: 30, DurationMs: 5 * 60 * 1000, MemoryMB: 128}
	imageUsage   = calculators.LambdaUsage{Requests: 50_000, DurationMs: 2000, MemoryMB: 512}
	botUsage     = calculators.LambdaUsage{Requests: 20_000, DurationMs: 100, MemoryMB: 128}
)

// Build constructs the six project archetypes from prices, ordered by id
func Build(prices Prices, source PricingSource) []ProjectTemplate {
	lambda := &calculators.LambdaCalculator{}
	ec2 := &calculators.EC2Calculator{}
	rds := &calculators.RDSCalculator{}

	lambdaCost := func(u calculators.LambdaUsage) float64 {
		return lambda.CalculateCost(u, prices.Lambda)
	}

	templates := []ProjectTemplate{
		{
			ID:          1,
			Name:        "Static Portfolio Website",
			Description: "HTML/CSS/JS site with global CDN delivery",
			Components: []CostComponent{
				line("S3", "Storage (5GB)", 0.12),
				line("CloudFront", "CDN (100GB transfer)", 0.85),
				line("Route53", "DNS hosting", 0.50),
			},
			EstimatedTraffic: "~50K visitors/month",
			Complexity:       "Beginner",
		},
		{
			ID:          2,
			Name:        "Serverless REST API",
			Description: "API with database for small apps",
			Components: []CostComponent{
				line("Lambda", lambdaDescription(apiUsage), lambdaCost(apiUsage)),
				line("API Gateway", "100K requests", 1.00),
				line("DynamoDB", "1GB storage, 100K reads/writes", 1.25),
				line("CloudWatch", "Basic logs", 0.25),
			},
			EstimatedTraffic: "~100K API calls/month",
			Complexity:       "Intermediate",
		},
		{
			ID:          3,
			Name:        "Scheduled Data Scraper",
			Description: "Run tasks on a schedule, store results",
			Components: []CostComponent{
				line("Lambda", "Daily runs, 5 min each", lambdaCost(scraperUsage)),
				line("EventBridge", "Scheduled triggers", 0.00),
				line("S3", "Results storage (10GB)", 0.25),
				line("DynamoDB", "Metadata storage", 1.25),
			},
			EstimatedTraffic: "Daily automated tasks",
			Complexity:       "Intermediate",
		},
		{
			ID:          4,
			Name:        "Small Full-Stack App",
			Description: "Always-on server with database",
			Components: []CostComponent{
				line("EC2", ComputeInstanceType+" (ARM, 2 vCPU, 0.5GB RAM)", ec2.CalculateCost(prices.EC2Hourly)),
				line("RDS", "t4g.micro "+DatabaseEngine+" (1 vCPU, 1GB RAM)", rds.CalculateCost(prices.RDSHourly)),
				line("EBS", "20GB SSD storage", 0.40),
				line("Data Transfer", "10GB outbound", 0.19),
			},
			EstimatedTraffic: "~10K users/month",
			Complexity:       "Advanced",
		},
		{
			ID:          5,
			Name:        "Image Processing Service",
			Description: "Upload images, auto-resize/optimize",
			Components: []CostComponent{
				line("Lambda", "50K invocations, 512MB, 2s avg", lambdaCost(imageUsage)),
				line("S3", "Input/output storage (20GB)", 0.50),
				line("S3", "100K PUT/GET requests", 0.50),
				line("CloudWatch", "Logs", 0.50),
			},
			EstimatedTraffic: "~50K images/month",
			Complexity:       "Intermediate",
		},
		{
			ID:          6,
			Name:        "Discord/Slack Bot",
			Description: "Serverless bot responding to commands",
			Components: []CostComponent{
				line("Lambda", lambdaDescription(botUsage), lambdaCost(botUsage)),
				line("API Gateway", "Webhook endpoint", 0.20),
				line("DynamoDB", "Bot state/config", 0.40),
			},
			EstimatedTraffic: "~20K bot commands/month",
			Complexity:       "Beginner",
		},
	}

	for i := range templates {
		templates[i].TotalCost = TotalCost(templates[i].Components)
		templates[i].PricingSource = source
	}
	return templates
}

// TotalCost is the sum of component costs rounded to cents
func TotalCost(components []CostComponent) float64 {
	var sum float64
	for _, c := range components {
		sum += c.Cost
	}
	return calculators.RoundCents(sum)
}

func line(service, description string, cost float64) CostComponent {
	return CostComponent{
		Service:     service,
		Description: description,
		Cost:        calculators.RoundCents(cost),
	}
}

func lambdaDescription(u calculators.LambdaUsage) string {
	return fmt.Sprintf("%s requests, %dMB, %dms avg", shortCount(u.Requests), u.MemoryMB, u.DurationMs)
}

func shortCount(n int64) string {
	if n >= 1000 && n%1000 == 0 {
		return fmt.Sprintf("%dK", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
