package cli

import (
	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/config"
	apihttp "github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/table"
)

func newArticClient(settings *config.Settings) *artic.Client {
	return artic.NewClient(
		apihttp.NewClient(settings.UserAgent, settings.Timeout()),
		settings.BaseURL,
		settings.Fields,
	)
}

func newExecutor(settings *config.Settings, onProgress func(artic.ProgressEvent)) table.Executor {
	client := newArticClient(settings)
	return table.Executor{
		Loader:   artic.NewPageLoader(client, settings.PageSize),
		Gatherer: artic.NewGatherer(client, settings.ToGatherConfig(), onProgress),
	}
}
