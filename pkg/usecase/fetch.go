package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/asteca/isofetch/pkg/domain/interfaces"
	"github.com/asteca/isofetch/pkg/domain/model"
)

type fetchUseCase struct {
	svc    interfaces.IsochroneService
	outDir string
}

// NewFetch creates the pipeline use case writing into outDir
func NewFetch(svc interfaces.IsochroneService, outDir string) interfaces.FetchUseCase {
	return &fetchUseCase{
		svc:    svc,
		outDir: outDir,
	}
}

// Run executes the pipeline sequentially: one request per metallicity
// value, each response split into per-age files. The filters metadata is
// taken from the first acknowledgment page.
func (uc *fetchUseCase) Run(ctx context.Context, params *model.Params) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	dir := filepath.Join(uc.outDir, strings.ToLower(params.System))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	mets := params.Metallicities()
	logAges := params.LogAges()

	logger.Info("Querying isochrone service",
		"track", model.TrackFamilies[params.Track].Description,
		"system", params.System,
		"metallicity_count", len(mets),
		"age_count", len(logAges),
		"out_dir", dir,
	)

	result := &model.FetchResult{
		OutDir:        dir,
		Metallicities: len(mets),
	}

	for i, met := range mets {
		z := params.MassFraction(met)

		logger.Info("Requesting isochrones",
			"z", z,
			"index", i+1,
			"total", len(mets),
		)

		page, err := uc.svc.Submit(ctx, params.QueryFields(met))
		if err != nil {
			return nil, goerr.Wrap(err, "request failed", goerr.V("z", z))
		}

		name, err := uc.svc.ExtractResultPath(page)
		if err != nil {
			return nil, goerr.Wrap(err, "no result file for request", goerr.V("z", z))
		}

		raw, err := uc.svc.Fetch(ctx, name)
		if err != nil {
			return nil, goerr.Wrap(err, "download failed",
				goerr.V("z", z), goerr.V("result", name))
		}
		result.Bytes += int64(len(raw))

		if i == 0 {
			if err := WriteFilters(page, dir, params.Track); err != nil {
				return nil, err
			}
		}

		files, err := uc.splitTable(raw, z, logAges, dir, params.RemoveLabel9)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to split table", goerr.V("z", z))
		}
		result.Files = append(result.Files, files...)

		logger.Info("Wrote isochrone files",
			"z", z,
			"file_count", len(files),
			"size_bytes", len(raw),
		)
	}

	return result, nil
}

// splitTable walks the age bins of one downloaded table and writes a file
// per bin. The requested log-age sequence keeps full precision; the table
// column is rounded by the service, so the sequence wins when it lines up.
func (uc *fetchUseCase) splitTable(raw []byte, z float64, logAges []float64, dir string, dropLabel9 bool) ([]string, error) {
	br := NewBlockReader(bytes.NewReader(raw), dropLabel9)

	var files []string
	for {
		block, err := br.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return files, nil
			}
			return nil, err
		}

		logAge := block.LogAge
		if block.Index < len(logAges) {
			logAge = logAges[block.Index]
		}

		path, err := WriteBlock(dir, z, logAge, block)
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
}
