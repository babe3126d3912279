package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	alphavantage "github.com/minh-dng/alphavantage-go"
	"github.com/minh-dng/alphavantage-go/constants"
	"github.com/urfave/cli/v3"
)

func intradayCommand() *cli.Command {
	return &cli.Command{
		Name:  "intraday",
		Usage: "Intraday OHLCV series",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "Ticker, e.g. IBM", Required: true},
			&cli.StringFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   choices(constants.IntervalSet),
				Value:   constants.INTERVAL_5MIN,
			},
			&cli.BoolFlag{Name: "adjusted", Usage: "Adjust for splits and dividends"},
			&cli.BoolFlag{Name: "extended-hours", Usage: "Include pre and post market"},
			&cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "A past month, `YYYY-MM`"},
			outputSizeFlag(),
			datatypeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			builder := alphavantage.IntradayRequest{}.GetBuilder(cmd.String("symbol"), cmd.String("interval"))
			if cmd.IsSet("adjusted") {
				builder.SetAdjusted(cmd.Bool("adjusted"))
			}
			if cmd.IsSet("extended-hours") {
				builder.SetExtendedHours(cmd.Bool("extended-hours"))
			}
			builder.SetMonth(cmd.String("month")).
				SetOutputSize(cmd.String("outputsize")).
				SetDatatype(cmd.String("datatype"))
			req, err := builder.Build()
			if err != nil {
				return err
			}

			res, err := client.Intraday(ctx, req)
			if err != nil {
				return err
			}
			return writeResult(cmd, res)
		},
	}
}

func seriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "series",
		Usage: "Daily, weekly or monthly OHLCV series",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "symbol", Aliases: []string{"s"}, Usage: "Ticker, e.g. IBM", Required: true},
			&cli.StringFlag{
				Name:    "period",
				Aliases: []string{"p"},
				Usage:   choices(constants.PeriodSet),
				Value:   constants.PERIOD_DAILY,
			},
			&cli.BoolFlag{Name: "adjusted", Usage: "Use the adjusted series"},
			outputSizeFlag(),
			datatypeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			builder := alphavantage.TimeSeriesRequest{}.GetBuilder(cmd.String("symbol"), cmd.String("period"))
			builder.SetAdjusted(cmd.Bool("adjusted")).
				SetOutputSize(cmd.String("outputsize")).
				SetDatatype(cmd.String("datatype"))
			req, err := builder.Build()
			if err != nil {
				return err
			}

			res, err := client.TimeSeries(ctx, req)
			if err != nil {
				return err
			}
			return writeResult(cmd, res)
		},
	}
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Latest price and volume",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "Ticker, repeat with --bulk for up to 100",
				Required: true,
			},
			&cli.BoolFlag{Name: "bulk", Aliases: []string{"b"}, Usage: "One REALTIME_BULK_QUOTES request"},
			&cli.StringFlag{Name: "function", Usage: "Upstream function", Value: constants.FUNCTION_GLOBAL_QUOTE},
			datatypeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			builder := alphavantage.QuoteRequest{}.GetBuilder(cmd.StringSlice("symbol")...)
			builder.SetBulk(cmd.Bool("bulk")).
				SetFunction(cmd.String("function")).
				SetDatatype(cmd.String("datatype"))
			req, err := builder.Build()
			if err != nil {
				return err
			}

			res, err := client.Quote(ctx, req)
			if err != nil {
				return err
			}
			return writeResult(cmd, res)
		},
	}
}

func marketStatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "market-status",
		Usage: "Open or closed status of the major markets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.MarketStatus(ctx)
			if err != nil {
				return err
			}
			return writeResult(cmd, res)
		},
	}
}

// writeResult prints JSON indented in upstream key order and text as is.
func writeResult(cmd *cli.Command, res alphavantage.Result) error {
	out := cmd.Root().Writer

	if text, ok := res.Text(); ok {
		_, err := fmt.Fprint(out, text)
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, res.Raw(), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}
