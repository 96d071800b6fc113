package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/asteca/isofetch/pkg/usecase"
)

const ackPageWithFilters = `<html><body>
<p>Your calculation is available as output12345</p>
<table>
<tr><th>Filter</th><td>G</td><td>G_BP</td><td>G_RP</td></tr>
<tr><th>&lambda;<sub>eff</sub></th><td>6230</td><td>5320</td><td>7970</td></tr>
<tr><th>&omega;<sub>eff</sub></th><td>0.35</td><td>0.30</td><td>0.28</td></tr>
</table>
</body></html>`

func TestWriteFilters(t *testing.T) {
	t.Run("writes the combined metadata line", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, usecase.WriteFilters(ackPageWithFilters, dir, "PAR12+CS_37"))

		data, err := os.ReadFile(filepath.Join(dir, usecase.FiltersFileName))
		gt.NoError(t, err)
		gt.V(t, string(data)).Equal(
			"PAR12+CS_37     Gmag    G_BPmag    G_RPmag    6230    5320    7970    0.35    0.30    0.28\n")
	})

	t.Run("page without filter table is a parse error", func(t *testing.T) {
		dir := t.TempDir()
		err := usecase.WriteFilters("<html><body>nothing</body></html>", dir, "PAR12+CS_37")
		gt.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, usecase.FiltersFileName))
		gt.V(t, os.IsNotExist(statErr)).Equal(true)
	})
}
