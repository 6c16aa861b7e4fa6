// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/dataset"
	"github.com/katalvlaran/salesman/dfs"
	"github.com/katalvlaran/salesman/tsp"
)

type envelope map[string]any

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (api *API) writeJSON(w http.ResponseWriter, status int, data envelope) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(js, '\n'))

	return err
}

func (api *API) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if err := api.writeJSON(w, status, envelope{"error": errorBody{Code: code, Message: message}}); err != nil {
		api.log.Error("write error response", zap.String("request_id", requestID(r.Context())), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *API) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *API) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("request_id", requestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()),
		zap.Error(err),
	)
	api.errorResponse(w, r, http.StatusInternalServerError, "internal",
		"the server encountered a problem and could not process your request")
}

func (api *API) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", "the requested resource could not be found")
}

func (api *API) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
}

// planErrorResponse maps planner errors to status codes.
func (api *API) planErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dataset.ErrUnknownVertex):
		api.errorResponse(w, r, http.StatusNotFound, "unknown_stop", err.Error())
	case errors.Is(err, dataset.ErrNoStops):
		api.errorResponse(w, r, http.StatusBadRequest, "no_stops", err.Error())
	case errors.Is(err, tsp.ErrTooManyVertices), errors.Is(err, dfs.ErrPathLimit):
		api.errorResponse(w, r, http.StatusUnprocessableEntity, "too_many_stops", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		api.errorResponse(w, r, http.StatusGatewayTimeout, "timeout", "the search did not finish in time")
	default:
		api.serverErrorResponse(w, r, err)
	}
}
