package cmdsvc

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/goerr/v2"

	"github.com/asteca/isofetch/pkg/domain/model"
	"github.com/asteca/isofetch/pkg/domain/types"
)

// ListSystems fetches the input form and scrapes the photometric-system
// selector. The first <select> on the page is the system list.
func (c *client) ListSystems(ctx context.Context) ([]model.System, error) {
	url := c.baseURL + formPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create form request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "service is unreachable",
			goerr.V("url", url), goerr.T(types.ErrTagNetwork))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status from service",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.T(types.ErrTagNetwork))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse form page",
			goerr.V("url", url), goerr.T(types.ErrTagParse))
	}

	sel := doc.Find("select").First()
	if sel.Length() == 0 {
		return nil, goerr.New("form page has no system selector",
			goerr.V("url", url), goerr.T(types.ErrTagParse))
	}

	var systems []model.System
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		val, ok := opt.Attr("value")
		if !ok {
			return
		}
		id := systemID(val)
		if id == "" {
			return
		}
		systems = append(systems, model.System{
			ID:   id,
			Name: strings.Join(strings.Fields(opt.Text()), " "),
		})
	})

	if len(systems) == 0 {
		return nil, goerr.New("system selector has no options",
			goerr.V("url", url), goerr.T(types.ErrTagParse))
	}

	return systems, nil
}

// systemID strips the table path down to the system identifier, e.g.
// "YBC_tab_mag_odfnew/tab_mag_gaiaEDR3.dat" -> "gaiaEDR3".
func systemID(val string) string {
	base := path.Base(val)
	base = strings.TrimSuffix(base, ".dat")
	return strings.TrimPrefix(base, "tab_mag_")
}
