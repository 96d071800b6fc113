package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/asteca/isofetch/pkg/domain/model"
)

var requiredFields = []string{
	"submit_form",
	"track_parsec",
	"track_colibri",
	"track_postagb",
	"photsys_file",
	"photsys_version",
	"dust_sourceM",
	"dust_sourceC",
	"extinction_coeff",
	"extinction_curve",
	"kind_LPV",
	"imf_file",
	"output_kind",
	"output_gzip",
	"isoc_ismetlog",
	"isoc_zlow",
	"isoc_isagelog",
}

func TestParams_QueryFields(t *testing.T) {
	t.Run("every required field is present", func(t *testing.T) {
		fields := validParams().QueryFields(-0.5)
		for _, name := range requiredFields {
			if _, ok := fields[name]; !ok {
				t.Errorf("missing field %q", name)
			}
		}
	})

	t.Run("track family mapped to form values", func(t *testing.T) {
		fields := validParams().QueryFields(0.0)
		gt.V(t, fields["track_parsec"]).Equal("parsec_CAF09_v1.2S")
		gt.V(t, fields["track_colibri"]).Equal("parsec_CAF09_v1.2S_S_LMC_08_web")
	})

	t.Run("photometric system templated into file path", func(t *testing.T) {
		fields := validParams().QueryFields(0.0)
		gt.V(t, fields["photsys_file"]).Equal("YBC_tab_mag_odfnew/tab_mag_gaiaEDR3.dat")
		gt.V(t, fields["photsys_version"]).Equal("YBCnewVega")
	})

	t.Run("Z mode values pass through linearly", func(t *testing.T) {
		p := validParams()
		p.MetMode = model.MetModeZ
		p.MetRange = model.Range{Min: 0.0152, Max: 0.03, Step: 0.005}
		p.AgeRange = model.Range{Min: 7.0, Max: 10.13, Step: 0.05}

		fields := p.QueryFields(0.0152)
		gt.V(t, fields["isoc_ismetlog"]).Equal("0")
		gt.V(t, fields["isoc_zlow"]).Equal("0.0152")
		gt.V(t, fields["isoc_lagelow"]).Equal("7")
		gt.V(t, fields["isoc_lageupp"]).Equal("10.13")
		gt.V(t, fields["isoc_dlage"]).Equal("0.05")
	})

	t.Run("MH mode converted to mass fraction", func(t *testing.T) {
		fields := validParams().QueryFields(0.0) // [M/H] = 0 is solar
		gt.V(t, fields["isoc_ismetlog"]).Equal("0")
		gt.V(t, fields["isoc_zlow"]).Equal("0.0152")
	})

	t.Run("log age mode sets log fields", func(t *testing.T) {
		fields := validParams().QueryFields(0.0)
		gt.V(t, fields["isoc_isagelog"]).Equal("1")
		if _, ok := fields["isoc_agelow"]; ok {
			t.Error("linear age fields must not be set in log mode")
		}
	})

	t.Run("linear age mode sets linear fields", func(t *testing.T) {
		p := validParams()
		p.AgeMode = model.AgeModeLinear
		p.AgeRange = model.Range{Min: 1e7, Max: 1e10, Step: 1e9}

		fields := p.QueryFields(0.0)
		gt.V(t, fields["isoc_isagelog"]).Equal("0")
		gt.V(t, fields["isoc_agelow"]).Equal("1e+07")
		gt.V(t, fields["isoc_ageupp"]).Equal("1e+10")
		gt.V(t, fields["isoc_dage"]).Equal("1e+09")
	})

	t.Run("gzip flag reflected", func(t *testing.T) {
		p := validParams()
		gt.V(t, p.QueryFields(0.0)["output_gzip"]).Equal("0")
		p.Gzip = true
		gt.V(t, p.QueryFields(0.0)["output_gzip"]).Equal("1")
	})

	t.Run("deterministic for equal input", func(t *testing.T) {
		p := validParams()
		a := p.QueryFields(-0.25)
		b := p.QueryFields(-0.25)
		gt.V(t, a).Equal(b)
	})
}
