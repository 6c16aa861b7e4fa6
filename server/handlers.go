// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/katalvlaran/salesman/geo"
)

const maxBodyBytes = 1 << 20

type tourRequest struct {
	Stops []int `json:"stops" validate:"required,min=1,max=64,dive,gte=0"`
}

type nearestRequest struct {
	Lat float64 `validate:"latitude"`
	Lng float64 `validate:"longitude"`
}

func (api *API) createTour(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "application/json" {
		api.errorResponse(w, r, http.StatusUnsupportedMediaType, "unsupported_media_type",
			"Content-Type header must be application/json")

		return
	}

	var req tourRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		api.badRequestResponse(w, r, fmt.Errorf("invalid body: %w", err))

		return
	}
	if err := api.validate.Struct(req); err != nil {
		api.badRequestResponse(w, r, err)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), api.cfg.Timeout)
	defer cancel()

	plan, err := api.planner.Plan(ctx, req.Stops)
	if err != nil {
		api.planErrorResponse(w, r, err)

		return
	}

	if err = api.writeJSON(w, http.StatusOK, envelope{"data": plan}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) listVertices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data := envelope{"depot": api.planner.Depot(), "vertices": api.planner.Catalogue()}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": data}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) nearestVertex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		req nearestRequest
		err error
	)
	query := r.URL.Query()
	req.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.badRequestResponse(w, r, errors.New("lat is required and must be a valid float"))

		return
	}
	req.Lng, err = strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		api.badRequestResponse(w, r, errors.New("lng is required and must be a valid float"))

		return
	}
	if err = api.validate.Struct(req); err != nil {
		api.badRequestResponse(w, r, err)

		return
	}

	v, dist, err := api.planner.Nearest(geo.NewPoint(req.Lat, req.Lng))
	if err != nil {
		api.serverErrorResponse(w, r, err)

		return
	}
	data := envelope{"id": v.ID, "label": v.Label(), "lat": v.Lat, "lng": v.Lng, "meters": dist}
	if err = api.writeJSON(w, http.StatusOK, envelope{"data": data}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"status": "ok"}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
