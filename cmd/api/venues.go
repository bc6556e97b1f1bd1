package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ylyas2004/react-backend/internal/domain/venues"
)

// pathID parses a UUID path parameter. A malformed id becomes uuid.Nil,
// which is never assigned, so the lookup reports the usual not-found error
// for its kind.
func pathID(r *http.Request, param string) uuid.UUID {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ListVenues godoc
//
//	@Summary		List venues
//	@Description	Returns every venue with its embedded hours and comments.
//	@Tags			Venue
//	@Produce		json
//	@Success		200	{array}		venues.Venue
//	@Failure		500	{object}	errorResponse	"Internal server error"
//	@Router			/venues [get]
func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Venues.List(r.Context())
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, list)
}

// GetVenue godoc
//
//	@Summary		Fetch a venue
//	@Tags			Venue
//	@Produce		json
//	@Param			venueID	path		string	true	"Venue ID"
//	@Success		200		{object}	venues.Venue
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID} [get]
func (app *application) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	venue, err := app.store.Venues.GetByID(r.Context(), id)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, venue)
}

// CreateVenue godoc
//
//	@Summary		Create a venue
//	@Description	Creates a venue, optionally with initial hours and comments. Rating defaults to 0.
//	@Tags			Venue
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		venues.VenueInput	true	"Venue"
//	@Success		201		{object}	venues.Venue
//	@Failure		400		{object}	errorResponse	"Validation failed"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues [post]
func (app *application) createVenueHandler(w http.ResponseWriter, r *http.Request) {
	var payload venues.VenueInput
	if !app.readPayload(w, r, &payload) {
		return
	}

	venue, err := app.store.Venues.Create(r.Context(), payload)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, venue)
}

// UpdateVenue godoc
//
//	@Summary		Update a venue
//	@Description	Merges the provided fields into the venue. Hours and comments are managed through their own endpoints.
//	@Tags			Venue
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		string				true	"Venue ID"
//	@Param			payload	body		venues.VenuePatch	true	"Fields to change"
//	@Success		200		{object}	venues.Venue
//	@Failure		400		{object}	errorResponse	"Validation failed"
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID} [put]
func (app *application) updateVenueHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	var payload venues.VenuePatch
	if !app.readPayload(w, r, &payload) {
		return
	}

	venue, err := app.store.Venues.Update(r.Context(), id, payload)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, venue)
}

// DeleteVenue godoc
//
//	@Summary		Delete a venue
//	@Description	Deletes the venue together with all of its hours and comments.
//	@Tags			Venue
//	@Produce		json
//	@Param			venueID	path		string	true	"Venue ID"
//	@Success		200		{object}	messageResponse
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID} [delete]
func (app *application) deleteVenueHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	if err := app.store.Venues.Delete(r.Context(), id); err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "venue deleted successfully"})
}
