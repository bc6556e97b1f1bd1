package main

import (
	"net/http"

	"github.com/ylyas2004/react-backend/internal/domain/venues"
)

// ListHours godoc
//
//	@Summary		List opening hours of a venue
//	@Tags			Hours
//	@Produce		json
//	@Param			venueID	path	string	true	"Venue ID"
//	@Success		200		{array}		venues.Hour
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/hours [get]
func (app *application) listHoursHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	hours, err := app.store.Venues.Hours().ListFor(r.Context(), id)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, hours)
}

// CreateHour godoc
//
//	@Summary		Add opening hours to a venue
//	@Tags			Hours
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		string				true	"Venue ID"
//	@Param			payload	body		venues.HourInput	true	"Hours entry"
//	@Success		201		{object}	venues.Hour
//	@Failure		400		{object}	errorResponse	"Validation failed"
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/hours [post]
func (app *application) createHourHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	var payload venues.HourInput
	if !app.readPayload(w, r, &payload) {
		return
	}

	hour, err := app.store.Venues.Hours().AddTo(r.Context(), id, payload)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, hour)
}

// GetHour godoc
//
//	@Summary	Fetch one opening-hours entry
//	@Tags		Hours
//	@Produce	json
//	@Param		venueID	path		string	true	"Venue ID"
//	@Param		hourID	path		string	true	"Hour ID"
//	@Success	200		{object}	venues.Hour
//	@Failure	404		{object}	errorResponse	"Venue or hour not found"
//	@Router		/venues/{venueID}/hours/{hourID} [get]
func (app *application) getHourHandler(w http.ResponseWriter, r *http.Request) {
	vID, hID := pathID(r, "venueID"), pathID(r, "hourID")

	hour, err := app.store.Venues.Hours().GetWithin(r.Context(), vID, hID)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, hour)
}

// UpdateHour godoc
//
//	@Summary		Update an opening-hours entry
//	@Tags			Hours
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		string				true	"Venue ID"
//	@Param			hourID	path		string				true	"Hour ID"
//	@Param			payload	body		venues.HourPatch	true	"Fields to change"
//	@Success		200		{object}	venues.Hour
//	@Failure		400		{object}	errorResponse	"Validation failed"
//	@Failure		404		{object}	errorResponse	"Venue or hour not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/hours/{hourID} [put]
func (app *application) updateHourHandler(w http.ResponseWriter, r *http.Request) {
	vID, hID := pathID(r, "venueID"), pathID(r, "hourID")

	var payload venues.HourPatch
	if !app.readPayload(w, r, &payload) {
		return
	}

	hour, err := app.store.Venues.Hours().UpdateWithin(r.Context(), vID, hID, payload)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, hour)
}

// DeleteHour godoc
//
//	@Summary		Remove an opening-hours entry
//	@Tags			Hours
//	@Produce		json
//	@Param			venueID	path		string	true	"Venue ID"
//	@Param			hourID	path		string	true	"Hour ID"
//	@Success		200		{object}	messageResponse
//	@Failure		404		{object}	errorResponse	"Venue or hour not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/hours/{hourID} [delete]
func (app *application) deleteHourHandler(w http.ResponseWriter, r *http.Request) {
	vID, hID := pathID(r, "venueID"), pathID(r, "hourID")

	if err := app.store.Venues.Hours().RemoveFrom(r.Context(), vID, hID); err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "hour deleted successfully"})
}
