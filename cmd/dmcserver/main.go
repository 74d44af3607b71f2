// Command dmcserver is the thin HTTP façade over the Data Matrix code
// generator service: it loads and logs the config settings, then serves
// spec §6's HTTP surface through httpapi.Server over the bundled catalogue
// with a zerolog-backed logger. The loaded settings are not passed to the
// server; its handlers take their options from each request.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/max-scw/dmc-service/config"
	"github.com/max-scw/dmc-service/httpapi"
	"github.com/max-scw/dmc-service/logx"
	"github.com/max-scw/dmc-service/service"
)

type options struct {
	Addr       string `short:"a" long:"addr" default:":8080" description:"address to listen on"`
	ConfigPath string `short:"c" long:"config" description:"path to a TOML settings file"`
	Prefix     string `long:"prefix" default:"DMC" description:"settings section/env-var prefix"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	logger := logx.NewZerologAdapter(zlog)

	settings, err := config.Load(opts.ConfigPath, opts.Prefix)
	if err != nil {
		logger.Error("failed to load configuration", logx.F("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("configuration loaded", logx.F("strict", settings.AppStrict), logx.F("rectangular", settings.RectangularDMC))

	cat, err := service.DefaultCatalogue()
	if err != nil {
		logger.Error("failed to load identifier catalogue", logx.F("error", err.Error()))
		os.Exit(1)
	}

	srv := httpapi.NewServer(service.New(cat), logger)
	httpSrv := &http.Server{Addr: opts.Addr, Handler: srv.Handler()}

	go func() {
		logger.Info("dmcserver listening", logx.F("addr", opts.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", logx.F("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	srv.Close()
}
