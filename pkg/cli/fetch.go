package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/asteca/isofetch/pkg/cli/config"
	"github.com/asteca/isofetch/pkg/infra/cmdsvc"
	"github.com/asteca/isofetch/pkg/usecase"
)

func cmdFetch() *cli.Command {
	var (
		serviceCfg config.Service
		paramsCfg  config.Params
		outputCfg  config.Output
	)

	flags := append(serviceCfg.Flags(), paramsCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Download isochrones and split them into per-age files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			params, err := paramsCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load parameters")
			}

			svc := cmdsvc.NewClient(
				cmdsvc.WithBaseURL(serviceCfg.BaseURL),
				cmdsvc.WithTimeout(serviceCfg.Timeout),
			)
			fetchUC := usecase.NewFetch(svc, outputCfg.Dir)

			result, err := fetchUC.Run(ctx, params)
			if err != nil {
				return err
			}

			logger.Info("All done",
				slog.String("out_dir", result.OutDir),
				slog.Int("file_count", len(result.Files)),
				slog.Int("metallicity_count", result.Metallicities),
				slog.Int64("downloaded_bytes", result.Bytes),
			)
			return nil
		},
	}
}
