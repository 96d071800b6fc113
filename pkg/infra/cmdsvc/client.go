package cmdsvc

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/asteca/isofetch/pkg/domain/interfaces"
	"github.com/asteca/isofetch/pkg/domain/types"
)

// DefaultBaseURL is the CMD service endpoint
const DefaultBaseURL = "http://stev.oapd.inaf.it"

const formPath = "/cgi-bin/cmd"

// The acknowledgment page references the generated file by this name
var resultNameRe = regexp.MustCompile(`output\d+`)

// gzip stream magic, used to sniff compressed result files
var gzipMagic = []byte{0x1f, 0x8b, 0x08}

type client struct {
	httpClient *http.Client
	baseURL    string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the service endpoint
func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the CMD isochrone service
func NewClient(opts ...Option) interfaces.IsochroneService {
	c := &client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts the form fields as multipart/form-data and returns the
// acknowledgment page body.
func (c *client) Submit(ctx context.Context, fields map[string]string) (string, error) {
	logger := ctxlog.From(ctx)
	queryID := uuid.New().String()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", goerr.Wrap(err, "failed to encode form field",
				goerr.V("field", k))
		}
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize form body")
	}

	url := c.baseURL + formPath
	logger.Debug("Submitting isochrone request",
		"query_id", queryID,
		"url", url,
		"field_count", len(fields),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create submit request", goerr.V("url", url))
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "service is unreachable",
			goerr.V("url", url), goerr.V("query_id", queryID), goerr.T(types.ErrTagNetwork))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("unexpected status from service",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("query_id", queryID),
			goerr.T(types.ErrTagNetwork))
	}

	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read acknowledgment page",
			goerr.V("query_id", queryID), goerr.T(types.ErrTagNetwork))
	}

	logger.Debug("Received acknowledgment page",
		"query_id", queryID,
		"size_bytes", len(page),
	)

	return string(page), nil
}

// ExtractResultPath returns the generated result file name referenced by
// the acknowledgment page. When the reference is missing, the service's
// own error message is extracted from the page if present.
func (c *client) ExtractResultPath(page string) (string, error) {
	if name := resultNameRe.FindString(page); name != "" {
		return name, nil
	}

	if msg := serviceError(page); msg != "" {
		return "", goerr.New("service rejected the request",
			goerr.V("service_message", msg), goerr.T(types.ErrTagParse))
	}
	return "", goerr.New("acknowledgment page has no result link", goerr.T(types.ErrTagParse))
}

// serviceError pulls the errorwarning element the form renders on invalid
// input. Empty when the page carries none.
func serviceError(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(doc.Find(".errorwarning").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Find("#errorwarning").First().Text())
	}
	return text
}

// Fetch downloads the generated result file. Gzip-compressed bodies are
// decompressed transparently, sniffed by magic rather than headers since
// the service serves .dat regardless.
func (c *client) Fetch(ctx context.Context, name string) ([]byte, error) {
	logger := ctxlog.From(ctx)

	url := c.baseURL + "/tmp/" + name + ".dat"
	logger.Debug("Downloading result file", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download result file",
			goerr.V("url", url), goerr.T(types.ErrTagNetwork))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status for result file",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.T(types.ErrTagNetwork))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read result file",
			goerr.V("url", url), goerr.T(types.ErrTagNetwork))
	}

	if bytes.HasPrefix(data, gzipMagic) {
		logger.Debug("Compressed result detected", "url", url)
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open gzip stream",
				goerr.V("url", url), goerr.T(types.ErrTagParse))
		}
		defer gz.Close()

		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decompress result file",
				goerr.V("url", url), goerr.T(types.ErrTagParse))
		}
	}

	return data, nil
}
