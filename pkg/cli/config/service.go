package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/asteca/isofetch/pkg/infra/cmdsvc"
)

// Service holds CMD web service configuration
type Service struct {
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for service configuration
func (c *Service) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "service-url",
			Usage:       "Base URL of the CMD service",
			Value:       cmdsvc.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("ISOFETCH_SERVICE_URL"),
		},
		&cli.DurationFlag{
			Name:        "service-timeout",
			Usage:       "Per-request timeout (isochrone generation can take minutes)",
			Value:       5 * time.Minute,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("ISOFETCH_SERVICE_TIMEOUT"),
		},
	}
}
