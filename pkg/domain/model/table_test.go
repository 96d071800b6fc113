package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/asteca/isofetch/pkg/domain/model"
)

func TestNormalizeColumn(t *testing.T) {
	cases := map[string]string{
		"Zini":    "z_ini",
		"MH":      "m_h",
		"logAge":  "log_age",
		"Mini":    "m_ini",
		"int_IMF": "int_imf",
		"Mass":    "m_act",
		"mbolmag": "mbol_mag",
		"Gmag":    "G_mag",
		"G_BPmag": "G_BP_mag",
		"Unknown": "unknown",
		"label":   "label",
	}

	for in, want := range cases {
		gt.V(t, model.NormalizeColumn(in)).Equal(want)
	}
}

func TestBlock_NormalizedColumns(t *testing.T) {
	b := &model.Block{Columns: []string{"Zini", "MH", "logAge", "Gmag"}}
	gt.V(t, b.NormalizedColumns()).Equal([]string{"z_ini", "m_h", "log_age", "G_mag"})
}
