package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"

	"github.com/asteca/isofetch/pkg/domain/types"
)

// FiltersFileName is the metadata file written next to the per-age files
const FiltersFileName = "filterslambdas.dat"

// WriteFilters extracts the filter names with their effective wavelengths
// and omega coefficients from the acknowledgment page and stores them as a
// single-line metadata file for the downstream package.
func WriteFilters(page, dir, track string) error {
	filters, lambdas, omegas, err := parseFilterTable(page)
	if err != nil {
		return err
	}

	values := append(append(filters, lambdas...), omegas...)
	line := track + "     " + strings.Join(values, "    ")

	path := filepath.Join(dir, FiltersFileName)
	if err := os.WriteFile(path, []byte(line+"\n"), 0644); err != nil {
		return goerr.Wrap(err, "failed to write filters file", goerr.V("path", path))
	}
	return nil
}

// parseFilterTable reads the three-row table the service renders on the
// acknowledgment page: filter names, lambda_eff values and omega values.
// Since CMD v3.2 every filter column carries a 'mag' suffix.
func parseFilterTable(page string) (filters, lambdas, omegas []string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "failed to parse acknowledgment page",
			goerr.T(types.ErrTagParse))
	}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").First().Text())
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) == 0 {
			return
		}

		switch {
		case strings.HasPrefix(label, "Filter"):
			for _, c := range cells {
				filters = append(filters, c+"mag")
			}
		case strings.Contains(label, "λ") || strings.Contains(label, "lambda"):
			lambdas = append(lambdas, cells...)
		case strings.Contains(label, "ω") || strings.Contains(label, "omega"):
			omegas = append(omegas, cells...)
		}
	})

	if len(filters) == 0 {
		return nil, nil, nil, goerr.New("acknowledgment page has no filter table",
			goerr.T(types.ErrTagParse))
	}
	return filters, lambdas, omegas, nil
}
