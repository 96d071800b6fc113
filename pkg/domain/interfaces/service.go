package interfaces

import (
	"context"

	"github.com/asteca/isofetch/pkg/domain/model"
)

// IsochroneService is the outbound contract with the CMD web service
type IsochroneService interface {
	// Submit posts the form fields and returns the acknowledgment page
	Submit(ctx context.Context, fields map[string]string) (string, error)

	// ExtractResultPath locates the generated result file name in the
	// acknowledgment page
	ExtractResultPath(page string) (string, error)

	// Fetch downloads the result file, decompressing gzip bodies
	Fetch(ctx context.Context, name string) ([]byte, error)

	// ListSystems scrapes the supported photometric systems from the form
	ListSystems(ctx context.Context) ([]model.System, error)
}

// FetchUseCase runs the full retrieve-and-reformat pipeline
type FetchUseCase interface {
	Run(ctx context.Context, params *model.Params) (*model.FetchResult, error)
}
