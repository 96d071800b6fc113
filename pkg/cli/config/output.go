package config

import "github.com/urfave/cli/v3"

// Output holds output directory configuration
type Output struct {
	Dir string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out-dir",
			Usage:       "Directory for the per-age isochrone files",
			Value:       "isochrones",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("ISOFETCH_OUT_DIR"),
		},
	}
}
