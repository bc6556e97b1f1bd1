package main

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service status and whether the store is reachable.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Failure		500	{object}	errorResponse	"Storage unavailable"
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.store.Venues.Ping(ctx); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Env:     app.config.env,
		Version: version,
	})
}
