package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/asteca/isofetch/pkg/domain/model"
	"github.com/asteca/isofetch/pkg/domain/types"
)

// Params holds the location of the run-parameter file
type Params struct {
	Path string
}

// Flags returns CLI flags for parameter file configuration
func (c *Params) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "params",
			Aliases:     []string{"p"},
			Usage:       "Path to the TOML parameter file",
			Value:       "params.toml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("ISOFETCH_PARAMS"),
		},
	}
}

// paramsFile mirrors the sections of the parameter file
type paramsFile struct {
	Compress struct {
		Gzip bool `toml:"gzip"`
	} `toml:"compress"`
	Tracks struct {
		EvolTrack string `toml:"evol_track"`
		RmLabel9  bool   `toml:"rm_label9"`
	} `toml:"tracks"`
	Photometric struct {
		System     string `toml:"system"`
		YBCVersion string `toml:"ybc_version"`
	} `toml:"photometric"`
	Ranges struct {
		MetMode  string    `toml:"met_mode"`
		MetRange []float64 `toml:"met_range"`
		AgeMode  string    `toml:"age_mode"`
		AgeRange []float64 `toml:"age_range"`
	} `toml:"ranges"`
}

// Load reads and validates the parameter file
func (c *Params) Load() (*model.Params, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read parameter file",
			goerr.V("path", c.Path), goerr.T(types.ErrTagConfig))
	}

	var file paramsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse parameter file",
			goerr.V("path", c.Path), goerr.T(types.ErrTagConfig))
	}

	metRange, err := toRange(file.Ranges.MetRange, "ranges.met_range")
	if err != nil {
		return nil, err
	}
	ageRange, err := toRange(file.Ranges.AgeRange, "ranges.age_range")
	if err != nil {
		return nil, err
	}

	params := &model.Params{
		Track:         file.Tracks.EvolTrack,
		RemoveLabel9:  file.Tracks.RmLabel9,
		System:        file.Photometric.System,
		SystemVersion: file.Photometric.YBCVersion,
		MetMode:       model.MetMode(file.Ranges.MetMode),
		MetRange:      metRange,
		AgeMode:       model.AgeMode(file.Ranges.AgeMode),
		AgeRange:      ageRange,
		Gzip:          file.Compress.Gzip,
	}

	if err := params.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid parameter file", goerr.V("path", c.Path))
	}
	return params, nil
}

func toRange(vals []float64, key string) (model.Range, error) {
	if len(vals) != 3 {
		return model.Range{}, goerr.New("range needs exactly min, max and step",
			goerr.V("key", key), goerr.V("values", vals), goerr.T(types.ErrTagConfig))
	}
	return model.Range{Min: vals[0], Max: vals[1], Step: vals[2]}, nil
}
