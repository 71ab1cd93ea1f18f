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
package tracker

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/optakt/swarm-tracker/models/swarm"
)

// Controller serves the tracker web page and its JSON endpoints.
type Controller struct {
	log      zerolog.Logger
	track    Tracker
	validate *validator.Validate
}

// NewController creates a controller answering requests with the given
// tracker.
func NewController(log zerolog.Logger, track Tracker) *Controller {
	c := Controller{
		log:      log.With().Str("component", "api").Logger(),
		track:    track,
		validate: newRequestValidator(),
	}
	return &c
}

// Index renders the landing page.
func (c *Controller) Index(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, pageIndex, nil)
}

// Track reports on the nodes of the address submitted in the form field
// `eoa_address`.
func (c *Controller) Track(ctx echo.Context) error {

	req := TrackRequest{
		EOA: strings.TrimSpace(ctx.FormValue("eoa_address")),
	}

	err := c.validate.Struct(req)
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 && verr[0].Tag() == tagRequired {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: addressRequired})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: addressInvalid})
	}

	report, err := c.track.Track(ctx.Request().Context(), req.EOA)
	if errors.Is(err, swarm.ErrAddressRequired) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: addressRequired})
	}
	if errors.Is(err, swarm.ErrInvalidAddress) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorResponse{Error: addressInvalid})
	}
	if errors.Is(err, swarm.ErrNoNodes) {
		return echo.NewHTTPError(http.StatusNotFound, MissingResponse{
			Error: nodesMissing,
			EOA:   req.EOA,
			Nodes: []swarm.Node{},
		})
	}
	if errors.Is(err, swarm.ErrUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, MissingResponse{
			Error: dataUnavailable,
			EOA:   req.EOA,
			Nodes: []swarm.Node{},
		})
	}
	if err != nil {
		c.log.Error().Str("eoa", req.EOA).Err(err).Msg("could not track address")
		return echo.NewHTTPError(http.StatusInternalServerError, ErrorResponse{Error: serverError})
	}

	return ctx.JSON(http.StatusOK, report)
}

// Node returns the raw peer and leaderboard data for the address given in the
// path, for programmatic access.
func (c *Controller) Node(ctx echo.Context) error {

	eoa := ctx.Param("eoa")

	lookup, err := c.track.Lookup(ctx.Request().Context(), eoa)
	if errors.Is(err, swarm.ErrNoNodes) {
		return echo.NewHTTPError(http.StatusNotFound, ErrorResponse{Error: lookupMissing})
	}
	if errors.Is(err, swarm.ErrUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, ErrorResponse{Error: lookupFailed})
	}
	if err != nil {
		c.log.Error().Str("eoa", eoa).Err(err).Msg("could not look up address")
		return echo.NewHTTPError(http.StatusInternalServerError, ErrorResponse{Error: serverError})
	}

	return ctx.JSON(http.StatusOK, lookup)
}

// Health reports whether the service is up and the chain endpoint reachable.
func (c *Controller) Health(ctx echo.Context) error {
	health := c.track.Health(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, health)
}
