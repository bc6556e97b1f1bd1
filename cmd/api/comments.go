package main

import (
	"net/http"
	"time"

	"github.com/ylyas2004/react-backend/internal/domain/venues"
)

type createCommentPayload struct {
	Author       string             `json:"author"`
	Rating       *float64           `json:"rating"`
	Text         string             `json:"text"`
	Date         *time.Time         `json:"date"`
	VenueDetails *venues.VenuePatch `json:"venueDetails,omitempty"`
}

// ListComments godoc
//
//	@Summary		List comments of a venue
//	@Tags			Comments
//	@Produce		json
//	@Param			venueID	path		string	true	"Venue ID"
//	@Success		200		{array}		venues.Comment
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/comments [get]
func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	comments, err := app.store.Venues.Comments().ListFor(r.Context(), id)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, comments)
}

// CreateComment godoc
//
//	@Summary		Add a comment to a venue
//	@Description	Appends a comment. When venueDetails is present the venue is updated first;
//	@Description	the two writes are not atomic, so a rejected comment leaves the venue update in place.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		string					true	"Venue ID"
//	@Param			payload	body		createCommentPayload	true	"Comment and optional venue details"
//	@Success		201		{object}	venues.Comment
//	@Failure		400		{object}	errorResponse	"Validation failed"
//	@Failure		404		{object}	errorResponse	"Venue not found"
//	@Failure		500		{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/comments [post]
func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "venueID")

	var payload createCommentPayload
	if !app.readPayload(w, r, &payload) {
		return
	}

	ctx := r.Context()

	if payload.VenueDetails != nil {
		if _, err := app.store.Venues.Update(ctx, id, *payload.VenueDetails); err != nil {
			app.domainError(w, r, err)
			return
		}
	}

	comment, err := app.store.Venues.Comments().AddTo(ctx, id, venues.CommentInput{
		Author: payload.Author,
		Rating: payload.Rating,
		Text:   payload.Text,
		Date:   payload.Date,
	})
	if err != nil {
		if payload.VenueDetails != nil {
			app.logger.Warnw("venue details updated but comment was not added", "venue_id", id, "error", err.Error())
		}
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, comment)
}

// GetComment godoc
//
//	@Summary	Fetch one comment
//	@Tags		Comments
//	@Produce	json
//	@Param		venueID		path		string	true	"Venue ID"
//	@Param		commentID	path		string	true	"Comment ID"
//	@Success	200			{object}	venues.Comment
//	@Failure	404			{object}	errorResponse	"Venue or comment not found"
//	@Router		/venues/{venueID}/comments/{commentID} [get]
func (app *application) getCommentHandler(w http.ResponseWriter, r *http.Request) {
	vID, cID := pathID(r, "venueID"), pathID(r, "commentID")

	comment, err := app.store.Venues.Comments().GetWithin(r.Context(), vID, cID)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, comment)
}

// UpdateComment godoc
//
//	@Summary		Edit a comment
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			venueID		path		string				true	"Venue ID"
//	@Param			commentID	path		string				true	"Comment ID"
//	@Param			payload		body		venues.CommentPatch	true	"Fields to change"
//	@Success		200			{object}	venues.Comment
//	@Failure		400			{object}	errorResponse	"Validation failed"
//	@Failure		404			{object}	errorResponse	"Venue or comment not found"
//	@Failure		500			{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/comments/{commentID} [put]
func (app *application) updateCommentHandler(w http.ResponseWriter, r *http.Request) {
	vID, cID := pathID(r, "venueID"), pathID(r, "commentID")

	var payload venues.CommentPatch
	if !app.readPayload(w, r, &payload) {
		return
	}

	comment, err := app.store.Venues.Comments().UpdateWithin(r.Context(), vID, cID, payload)
	if err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, comment)
}

// DeleteComment godoc
//
//	@Summary		Remove a comment
//	@Tags			Comments
//	@Produce		json
//	@Param			venueID		path		string	true	"Venue ID"
//	@Param			commentID	path		string	true	"Comment ID"
//	@Success		200			{object}	messageResponse
//	@Failure		404			{object}	errorResponse	"Venue or comment not found"
//	@Failure		500			{object}	errorResponse	"Internal server error"
//	@Router			/venues/{venueID}/comments/{commentID} [delete]
func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	vID, cID := pathID(r, "venueID"), pathID(r, "commentID")

	if err := app.store.Venues.Comments().RemoveFrom(r.Context(), vID, cID); err != nil {
		app.domainError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, messageResponse{Message: "comment deleted successfully"})
}
