// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	api "github.com/optakt/swarm-tracker/api/tracker"
	"github.com/optakt/swarm-tracker/models/swarm"
	"github.com/optakt/swarm-tracker/service/chain"
	"github.com/optakt/swarm-tracker/service/leaderboard"
	"github.com/optakt/swarm-tracker/service/metrics"
	"github.com/optakt/swarm-tracker/service/presenter"
	"github.com/optakt/swarm-tracker/service/tracker"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagContract    string
		flagLabel       string
		flagLeaderboard string
		flagLevel       string
		flagMetrics     string
		flagPort        uint16
		flagRPC         string
		flagTimeout     time.Duration
		flagZone        string
	)

	pflag.StringVarP(&flagContract, "contract", "c", swarm.GensynContract, "address of the peer registry contract")
	pflag.StringVar(&flagLabel, "zone-label", swarm.DisplayLabel, "label appended to displayed timestamps")
	pflag.StringVarP(&flagLeaderboard, "leaderboard", "b", swarm.GensynLeaderboard, "URL of the leaderboard API endpoint")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address to serve prometheus metrics on (disabled if empty)")
	pflag.Uint16VarP(&flagPort, "port", "p", 5000, "port to host the tracker API on")
	pflag.StringVarP(&flagRPC, "rpc", "r", swarm.GensynRPC, "URL of the chain RPC endpoint")
	pflag.DurationVarP(&flagTimeout, "timeout", "t", swarm.DefaultTimeout, "timeout for leaderboard requests")
	pflag.StringVarP(&flagZone, "zone", "z", swarm.DisplayZone, "time zone used to display timestamps")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Check the network parameters before connecting to anything.
	params := swarm.Params{
		RPC:         flagRPC,
		Contract:    flagContract,
		Leaderboard: flagLeaderboard,
		Timeout:     flagTimeout,
		Zone:        flagZone,
		Label:       flagLabel,
	}
	err = params.Validate()
	if err != nil {
		log.Error().Err(err).Msg("invalid network parameters")
		return failure
	}
	zone, err := time.LoadLocation(params.Zone)
	if err != nil {
		log.Error().Str("zone", params.Zone).Err(err).Msg("could not load display zone")
		return failure
	}

	// Initialize the chain client.
	client, err := ethclient.DialContext(context.Background(), params.RPC)
	if err != nil {
		log.Error().Str("rpc", params.RPC).Err(err).Msg("could not dial RPC endpoint")
		return failure
	}
	defer client.Close()

	// Metrics are collected even when they are not exposed.
	registry := prometheus.NewRegistry()
	err = metrics.RegisterRuntimeMetrics(registry)
	if err != nil {
		log.Error().Err(err).Msg("could not register runtime metrics")
		return failure
	}

	// Tracker API initialization.
	reader := chain.NewMetricsReader(chain.New(log, client, params.Contract), registry)
	fetcher := leaderboard.NewMetricsFetcher(leaderboard.New(log, params.Leaderboard, params.Timeout), registry)
	track := tracker.New(log, reader, fetcher, presenter.New(zone, params.Label))
	ctrl := api.NewController(log, track)

	renderer, err := api.NewRenderer()
	if err != nil {
		log.Error().Err(err).Msg("could not initialize page renderer")
		return failure
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Renderer = renderer
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(middleware.Recover())
	server.GET("/", ctrl.Index)
	server.POST("/track", ctrl.Track)
	server.GET("/health", ctrl.Health)
	server.GET("/api/health", ctrl.Health)
	server.GET("/api/node/:eoa", ctrl.Node)

	var msvr *metrics.Server
	if flagMetrics != "" {
		msvr = metrics.NewServer(log, flagMetrics, registry)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Uint16("port", flagPort).Msg("Swarm Tracker starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Swarm Tracker failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Swarm Tracker stopped")
	}()
	if msvr != nil {
		go func() {
			err := msvr.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Swarm Tracker stopping")
	case <-done:
		log.Info().Msg("Swarm Tracker done")
	case <-failed:
		log.Warn().Msg("Swarm Tracker aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Swarm Tracker")
		return failure
	}
	if msvr != nil {
		err = msvr.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			return failure
		}
	}

	return success
}
