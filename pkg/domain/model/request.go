package model

import "strconv"

// Form field defaults of the CMD v3.2+ input form. Taken from the live
// form; values not driven by Params stay fixed.
var defaultFields = map[string]string{
	"submit_form":      "Submit",
	"track_postagb":    "no",
	"dust_sourceM":     "dpmod60alox40",
	"dust_sourceC":     "AMCSIC15",
	"extinction_coeff": "constant",
	"extinction_curve": "cardelli",
	"kind_LPV":         "1",
	"imf_file":         "tab_imf/imf_kroupa_orig.dat",
	"output_kind":      "0",
}

// photSysRoot is the table directory prefix on the service. It changes
// between CMD releases.
const photSysRoot = "YBC_tab_mag_odfnew/tab_mag"

// QueryFields maps the parameter record to the form fields of one request,
// for a single value drawn from the metallicity range. Metallicity is
// always submitted as mass fraction; [M/H] input is converted. Ages go out
// in the representation the record was given in, with the matching
// isoc_isagelog toggle. Pure function, no I/O.
func (p *Params) QueryFields(met float64) map[string]string {
	fields := make(map[string]string, len(defaultFields)+12)
	for k, v := range defaultFields {
		fields[k] = v
	}

	family := TrackFamilies[p.Track]
	fields["track_parsec"] = family.Parsec
	fields["track_colibri"] = family.Colibri

	fields["photsys_file"] = photSysRoot + "_" + p.System + ".dat"
	fields["photsys_version"] = p.SystemVersion

	if p.Gzip {
		fields["output_gzip"] = "1"
	} else {
		fields["output_gzip"] = "0"
	}

	fields["isoc_ismetlog"] = "0"
	fields["isoc_zlow"] = formatNum(p.MassFraction(met))

	switch p.AgeMode {
	case AgeModeLinear:
		fields["isoc_isagelog"] = "0"
		fields["isoc_agelow"] = formatNum(p.AgeRange.Min)
		fields["isoc_ageupp"] = formatNum(p.AgeRange.Max)
		fields["isoc_dage"] = formatNum(p.AgeRange.Step)
	default:
		fields["isoc_isagelog"] = "1"
		fields["isoc_lagelow"] = formatNum(p.AgeRange.Min)
		fields["isoc_lageupp"] = formatNum(p.AgeRange.Max)
		fields["isoc_dlage"] = formatNum(p.AgeRange.Step)
	}

	return fields
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
