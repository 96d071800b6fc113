package cmdsvc_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/asteca/isofetch/pkg/infra/cmdsvc"
)

func TestClient_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("posts multipart form and returns the page", func(t *testing.T) {
		var gotFields map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/cgi-bin/cmd")
			gt.NoError(t, r.ParseMultipartForm(1<<20))
			gotFields = r.MultipartForm.Value
			w.Write([]byte("<html>output12345</html>"))
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		page, err := client.Submit(ctx, map[string]string{
			"submit_form": "Submit",
			"isoc_zlow":   "0.0152",
		})
		gt.NoError(t, err)
		gt.V(t, page).Equal("<html>output12345</html>")
		gt.V(t, gotFields["isoc_zlow"]).Equal([]string{"0.0152"})
	})

	t.Run("non-success status is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		_, err := client.Submit(ctx, map[string]string{"submit_form": "Submit"})
		gt.Error(t, err)
	})

	t.Run("unreachable host is a network error", func(t *testing.T) {
		client := cmdsvc.NewClient(cmdsvc.WithBaseURL("http://127.0.0.1:1"))
		_, err := client.Submit(ctx, map[string]string{"submit_form": "Submit"})
		gt.Error(t, err)
	})
}

func TestClient_ExtractResultPath(t *testing.T) {
	client := cmdsvc.NewClient()

	t.Run("finds the generated file name", func(t *testing.T) {
		name, err := client.ExtractResultPath(`<a href="../tmp/output98765.dat">download</a>`)
		gt.NoError(t, err)
		gt.V(t, name).Equal("output98765")
	})

	t.Run("missing link is a parse error", func(t *testing.T) {
		_, err := client.ExtractResultPath("<html><body>done</body></html>")
		gt.Error(t, err)
	})

	t.Run("service error message is surfaced", func(t *testing.T) {
		page := `<html><p class="errorwarning"><b>Error:</b> Wrong parameter values</p></html>`
		_, err := client.ExtractResultPath(page)
		gt.Error(t, err)
		gt.V(t, strings.Contains(err.Error(), "rejected")).Equal(true)
	})
}

func TestClient_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("downloads plain result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/tmp/output12345.dat")
			w.Write([]byte("# Zini MH logAge\n"))
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		data, err := client.Fetch(ctx, "output12345")
		gt.NoError(t, err)
		gt.V(t, string(data)).Equal("# Zini MH logAge\n")
	})

	t.Run("decompresses gzip result", func(t *testing.T) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		gz.Write([]byte("# Zini MH logAge\n"))
		gt.NoError(t, gz.Close())

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(buf.Bytes())
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		data, err := client.Fetch(ctx, "output12345")
		gt.NoError(t, err)
		gt.V(t, string(data)).Equal("# Zini MH logAge\n")
	})

	t.Run("missing result file is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		_, err := client.Fetch(ctx, "output12345")
		gt.Error(t, err)
	})
}

func TestClient_ListSystems(t *testing.T) {
	ctx := context.Background()

	const formPage = `<html><form>
<select name="photsys_file">
<option value="YBC_tab_mag_odfnew/tab_mag_ubvrijhk.dat">UBVRIJHK (cf. Maiz-Apellaniz &amp; Bessell)</option>
<option selected value="YBC_tab_mag_odfnew/tab_mag_gaiaEDR3.dat">Gaia EDR3 (all Vegamags)</option>
</select>
</form></html>`

	t.Run("scrapes the system selector", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/cgi-bin/cmd")
			w.Write([]byte(formPage))
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		systems, err := client.ListSystems(ctx)
		gt.NoError(t, err)
		gt.V(t, len(systems)).Equal(2)
		gt.V(t, systems[0].ID).Equal("ubvrijhk")
		gt.V(t, systems[1].ID).Equal("gaiaEDR3")
		gt.V(t, systems[1].Name).Equal("Gaia EDR3 (all Vegamags)")
	})

	t.Run("page without selector is a parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body>maintenance</body></html>"))
		}))
		defer server.Close()

		client := cmdsvc.NewClient(cmdsvc.WithBaseURL(server.URL))
		_, err := client.ListSystems(ctx)
		gt.Error(t, err)
	})
}
