package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/asteca/isofetch/pkg/cli/config"
	"github.com/asteca/isofetch/pkg/infra/cmdsvc"
)

func cmdSystems() *cli.Command {
	var serviceCfg config.Service

	return &cli.Command{
		Name:    "systems",
		Aliases: []string{"list"},
		Usage:   "List photometric systems supported by the service",
		Flags:   serviceCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			svc := cmdsvc.NewClient(
				cmdsvc.WithBaseURL(serviceCfg.BaseURL),
				cmdsvc.WithTimeout(serviceCfg.Timeout),
			)

			systems, err := svc.ListSystems(ctx)
			if err != nil {
				return err
			}

			header := color.New(color.Bold)
			header.Printf("%-40s %s\n", "System ID", "System name")
			fmt.Println("------------------------------------------------------")
			for _, s := range systems {
				fmt.Printf("%-40s %s\n", s.ID, s.Name)
			}
			fmt.Printf("\n%d systems listed\n", len(systems))
			return nil
		},
	}
}
