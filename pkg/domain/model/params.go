package model

import (
	"math"

	"github.com/asteca/isofetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MetMode selects how metallicity range values are expressed
type MetMode string

const (
	MetModeZ  MetMode = "Z"  // Mass fraction
	MetModeMH MetMode = "MH" // Logarithmic [M/H]
)

// AgeMode selects how age range values are expressed
type AgeMode string

const (
	AgeModeLog    AgeMode = "log"    // log10(age/yr)
	AgeModeLinear AgeMode = "linear" // age in yr
)

// ZSun is the solar metallicity mass fraction on the PARSEC scale, used to
// convert between Z and [M/H].
const ZSun = 0.0152

// Documented limits of the CMD form, in [M/H] and log10(age/yr)
const (
	metMin    = -2.2
	metMax    = 0.7
	logAgeMin = 6.6
	logAgeMax = 10.13
)

// Range is an inclusive numeric range with a sampling step
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Params is the immutable record of user inputs driving one run. It is
// built once from the params file and never mutated afterwards.
type Params struct {
	Track         string  // Evolutionary-track family id (key of TrackFamilies)
	RemoveLabel9  bool    // Drop rows whose evolutionary label is 9
	System        string  // Photometric system id
	SystemVersion string  // YBC table version (photsys_version)
	MetMode       MetMode // How MetRange values are expressed
	MetRange      Range
	AgeMode       AgeMode // How AgeRange values are expressed
	AgeRange      Range
	Gzip          bool // Request gzip-compressed output
}

// Validate checks the record against the documented limits of the service
// form. It returns a config-tagged error on the first violation.
func (p *Params) Validate() error {
	if _, ok := TrackFamilies[p.Track]; !ok {
		return goerr.New("unknown evolutionary track family",
			goerr.V("track", p.Track), goerr.T(types.ErrTagConfig))
	}
	if p.System == "" {
		return goerr.New("photometric system is required", goerr.T(types.ErrTagConfig))
	}
	if p.SystemVersion == "" {
		return goerr.New("photometric system version is required", goerr.T(types.ErrTagConfig))
	}

	switch p.MetMode {
	case MetModeZ, MetModeMH:
	default:
		return goerr.New("metallicity mode must be Z or MH",
			goerr.V("mode", string(p.MetMode)), goerr.T(types.ErrTagConfig))
	}
	switch p.AgeMode {
	case AgeModeLog, AgeModeLinear:
	default:
		return goerr.New("age mode must be log or linear",
			goerr.V("mode", string(p.AgeMode)), goerr.T(types.ErrTagConfig))
	}

	if err := checkRange(p.MetRange, "metallicity"); err != nil {
		return err
	}
	if err := checkRange(p.AgeRange, "age"); err != nil {
		return err
	}

	for _, met := range []float64{p.MetRange.Min, p.MetRange.Max} {
		mh, err := p.toMH(met)
		if err != nil {
			return err
		}
		if mh < metMin || mh > metMax {
			return goerr.New("metallicity outside supported range",
				goerr.V("value", met),
				goerr.V("m_h", mh),
				goerr.V("min_m_h", metMin),
				goerr.V("max_m_h", metMax),
				goerr.T(types.ErrTagConfig))
		}
	}

	for _, age := range []float64{p.AgeRange.Min, p.AgeRange.Max} {
		la, err := p.toLogAge(age)
		if err != nil {
			return err
		}
		if la < logAgeMin || la > logAgeMax {
			return goerr.New("age outside supported range",
				goerr.V("value", age),
				goerr.V("log_age", la),
				goerr.V("min_log_age", logAgeMin),
				goerr.V("max_log_age", logAgeMax),
				goerr.T(types.ErrTagConfig))
		}
	}

	return nil
}

func checkRange(r Range, name string) error {
	if r.Step <= 0 {
		return goerr.New("range step must be positive",
			goerr.V("range", name), goerr.V("step", r.Step), goerr.T(types.ErrTagConfig))
	}
	if r.Min > r.Max {
		return goerr.New("range minimum exceeds maximum",
			goerr.V("range", name), goerr.V("min", r.Min), goerr.V("max", r.Max),
			goerr.T(types.ErrTagConfig))
	}
	return nil
}

func (p *Params) toMH(met float64) (float64, error) {
	if p.MetMode == MetModeMH {
		return met, nil
	}
	if met <= 0 {
		return 0, goerr.New("mass fraction must be positive",
			goerr.V("z", met), goerr.T(types.ErrTagConfig))
	}
	return math.Log10(met / ZSun), nil
}

func (p *Params) toLogAge(age float64) (float64, error) {
	if p.AgeMode == AgeModeLog {
		return age, nil
	}
	if age <= 0 {
		return 0, goerr.New("linear age must be positive",
			goerr.V("age", age), goerr.T(types.ErrTagConfig))
	}
	return math.Log10(age), nil
}

// MassFraction converts a value drawn from MetRange into the mass fraction
// Z submitted to the service.
func (p *Params) MassFraction(met float64) float64 {
	if p.MetMode == MetModeZ {
		return met
	}
	return ZSun * math.Pow(10, met)
}

// Metallicities expands MetRange into the individual values queried, one
// request per value. The upper bound is always included.
func (p *Params) Metallicities() []float64 {
	return expandRange(p.MetRange)
}

// LogAges expands AgeRange into log10(age/yr) values, one per output file.
// Linear ranges are expanded in yr first, then converted, so the sequence
// matches the blocks the service returns.
func (p *Params) LogAges() []float64 {
	vals := expandRange(p.AgeRange)
	if p.AgeMode == AgeModeLinear {
		for i, v := range vals {
			vals[i] = math.Log10(v)
		}
	}
	return vals
}

// expandRange samples [Min, Max] with Step, appending Max when the step
// does not land on it exactly.
func expandRange(r Range) []float64 {
	const eps = 1e-9

	var vals []float64
	for v := r.Min; v < r.Max-eps; v += r.Step {
		vals = append(vals, v)
	}
	if len(vals) == 0 || math.Abs(vals[len(vals)-1]-r.Max) > eps {
		vals = append(vals, r.Max)
	}
	return vals
}
