package model

import "strings"

// Block is one age bin of a downloaded isochrone table: the column header
// plus the raw data lines belonging to that age.
type Block struct {
	Index   int      // Position within the downloaded table
	LogAge  float64  // log10(age/yr) as printed by the service (rounded)
	Columns []string // Column names as received
	Lines   []string // Data rows, verbatim
}

// System is one photometric system offered by the service
type System struct {
	ID   string // Identifier used in photsys_file
	Name string // Human readable description
}

// columnNames normalizes the service's header names for the downstream
// package. Magnitude columns are handled separately in NormalizeColumn.
var columnNames = map[string]string{
	"Zini":    "z_ini",
	"Z":       "z",
	"MH":      "m_h",
	"logAge":  "log_age",
	"Mini":    "m_ini",
	"int_IMF": "int_imf",
	"Mass":    "m_act",
	"logL":    "log_l",
	"logTe":   "log_te",
	"logg":    "log_g",
	"label":   "label",
	"McoreTP": "m_core_tp",
	"C_O":     "c_o",
	"period0": "period0",
	"period1": "period1",
	"pmode":   "pmode",
	"Mloss":   "m_loss",
	"tau1m":   "tau1m",
	"X":       "x",
	"Y":       "y",
	"Xc":      "x_c",
	"Xn":      "x_n",
	"Xo":      "x_o",
	"Cexcess": "c_excess",
	"mbolmag": "mbol_mag",
}

// NormalizeColumn maps a service column name to the downstream naming
// scheme. Magnitude columns keep their filter name with a _mag suffix;
// unknown names pass through lowercased so a service-side schema change
// degrades instead of failing.
func NormalizeColumn(name string) string {
	if n, ok := columnNames[name]; ok {
		return n
	}
	if strings.HasSuffix(name, "mag") {
		return strings.TrimSuffix(name, "mag") + "_mag"
	}
	return strings.ToLower(name)
}

// NormalizedColumns applies NormalizeColumn to the whole header
func (b *Block) NormalizedColumns() []string {
	out := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = NormalizeColumn(c)
	}
	return out
}
