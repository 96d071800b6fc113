package model

// TrackFamily holds the form values for one PARSEC+COLIBRI track combination
type TrackFamily struct {
	Parsec      string // track_parsec form value
	Colibri     string // track_colibri form value
	Description string // Human readable name shown in logs
}

// TrackFamilies maps the supported evolutionary-track identifiers to their
// form values on the CMD service.
var TrackFamilies = map[string]TrackFamily{
	"PAR12+CS_37": {
		Parsec:      "parsec_CAF09_v1.2S",
		Colibri:     "parsec_CAF09_v1.2S_S_LMC_08_web",
		Description: "PARSEC v1.2S + COLIBRI S_37",
	},
	"PAR12+CS_35": {
		Parsec:      "parsec_CAF09_v1.2S",
		Colibri:     "parsec_CAF09_v1.2S_S35",
		Description: "PARSEC v1.2S + COLIBRI S_35",
	},
	"PAR12+CS_07": {
		Parsec:      "parsec_CAF09_v1.2S",
		Colibri:     "parsec_CAF09_v1.2S_S07",
		Description: "PARSEC v1.2S + COLIBRI S_07",
	},
	"PAR12+CPR16": {
		Parsec:      "parsec_CAF09_v1.2S",
		Colibri:     "parsec_CAF09_v1.2S_NOV13",
		Description: "PARSEC v1.2S + COLIBRI PR16",
	},
	"PAR12+No": {
		Parsec:      "parsec_CAF09_v1.2S",
		Colibri:     "no",
		Description: "PARSEC v1.2S + No",
	},
}
