package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	alphavantage "github.com/minh-dng/alphavantage-go"
	"github.com/minh-dng/alphavantage-go/constants"
	"github.com/urfave/cli/v3"
	"k8s.io/apimachinery/pkg/util/sets"
)

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "alphavantage",
		Usage:  "Query the Alpha Vantage API",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "apikey",
				Aliases: []string{"k"},
				Usage:   "Alpha Vantage API key",
				Sources: cli.EnvVars(alphavantage.API_KEY_ENV),
			},
			&cli.StringFlag{
				Name:   "base-url",
				Usage:  "Override the API endpoint",
				Value:  alphavantage.API_BASE_URL,
				Hidden: true,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log requests to stderr",
			},
		},
		Commands: []*cli.Command{
			intradayCommand(),
			seriesCommand(),
			quoteCommand(),
			marketStatusCommand(),
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		var upErr *alphavantage.UpstreamError
		if errors.As(err, &upErr) {
			slog.Error(upErr.Details(), "status", upErr.StatusCode, "body", upErr.Body)
		} else {
			slog.Error(err.Error())
		}
		os.Exit(1)
	}
}

// newClient builds the client from the root flags. The key comes from
// --apikey or $ALPHA_VANTAGE_API_KEY, resolved by the flag source.
func newClient(cmd *cli.Command) (*alphavantage.Client, error) {
	root := cmd.Root()

	level := slog.LevelWarn
	if root.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return alphavantage.New(root.String("apikey"),
		alphavantage.WithBaseURL(root.String("base-url")),
		alphavantage.WithLogger(logger),
	)
}

func choices(set sets.Set[string]) string {
	return strings.Join(sets.List(set), ", ")
}

func datatypeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "datatype",
		Aliases: []string{"d"},
		Usage:   "json or csv",
		Value:   constants.DATATYPE_JSON,
	}
}

func outputSizeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "outputsize",
		Aliases: []string{"o"},
		Usage:   choices(constants.OutputSizeSet),
		Value:   constants.OUTPUTSIZE_COMPACT,
	}
}
