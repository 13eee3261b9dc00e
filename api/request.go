package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/helpconnect/helpconnect-api/feed"
	"github.com/helpconnect/helpconnect-api/realtime"
	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

const defaultFeedCount = 20
const maxFeedCount = 100

type requestParams struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Category       string `json:"category" binding:"required"`
	UrgencyLevel   string `json:"urgency_level" binding:"required"`
	Location       string `json:"location"`
	LocationHidden bool   `json:"location_hidden"`
}

func (p requestParams) form() feed.RequestForm {
	return feed.RequestForm{
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		UrgencyLevel:   p.UrgencyLevel,
		Location:       p.Location,
		LocationHidden: p.LocationHidden,
	}
}

// mutationGateway assembles the write pipeline acting as the requester:
// enum validation, geocode gating and coordinate reuse live in the feed
// gateway; the store writer makes the write durable and publishes the
// matching change event.
func (s *Server) mutationGateway(requester string) *feed.MutationGateway {
	return feed.NewMutationGateway(
		feed.NewStoreWriter(s.store, s.hub, requester),
		s.geocoder,
		nil,
		requester)
}

// createRequest is the API for asking help from the community
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params requestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	created, err := s.mutationGateway(requester).SubmitNew(c.Request.Context(), params.form())
	if err != nil {
		s.abortRequestMutationError(c, err)
		return
	}

	s.enqueueNewRequestBroadcast(created.ID)

	c.JSON(http.StatusOK, created)
}

// enqueueNewRequestBroadcast hands the community notification off to the
// background worker; a broken broker never fails the create itself.
func (s *Server) enqueueNewRequestBroadcast(requestID string) {
	if s.backgroundEnqueuer == nil {
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: "broadcast_new_request",
		Args: []tasks.Arg{
			{Type: "string", Value: requestID},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue new request broadcast")
	}
}

// listRequests returns the feed snapshot, newest first, capped, optionally
// filtered by status. Hidden locations are stripped for non-owners.
func (s *Server) listRequests(c *gin.Context) {
	requester := c.GetString("requester")

	status := c.Query("status")
	if status != "" && !schema.IsValidStatus(status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	count, err := strconv.ParseInt(c.DefaultQuery("count", strconv.Itoa(defaultFeedCount)), 10, 64)
	if err != nil || count <= 0 || count > maxFeedCount {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.store.ListRequests(status, count)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	projected := make([]schema.HelpRequest, 0, len(requests))
	for _, req := range requests {
		projected = append(projected, req.Projected(requester))
	}

	c.JSON(http.StatusOK, gin.H{"requests": projected})
}

// getRequest returns one request, location stripped for non-owners when hidden
func (s *Server) getRequest(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	req, err := s.store.GetRequest(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, req.Projected(requester))
}

// loadOwnedRequest fetches the target of a mutation and maps a missing row
// or a non-owner requester to the same not-exist response, so a caller
// cannot probe which of the two it was.
func (s *Server) loadOwnedRequest(c *gin.Context, id, requester string) (*schema.HelpRequest, bool) {
	existing, err := s.store.GetRequest(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, false
	}

	if existing.UserID != requester {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return nil, false
	}

	return existing, true
}

// editRequest is the API for the owner to update a request
func (s *Server) editRequest(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	var params requestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	existing, ok := s.loadOwnedRequest(c, id, requester)
	if !ok {
		return
	}

	updated, err := s.mutationGateway(requester).SubmitEdit(c.Request.Context(), *existing, params.form())
	if err != nil {
		s.abortRequestMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// changeRequestStatus is the API for the owner to move a request between
// open, in_progress, completed and cancelled
func (s *Server) changeRequestStatus(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	var params struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	existing, ok := s.loadOwnedRequest(c, id, requester)
	if !ok {
		return
	}

	updated, err := s.mutationGateway(requester).ChangeStatus(c.Request.Context(), *existing, params.Status)
	if err != nil {
		s.abortRequestMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// changeRequestUrgency is the API for the owner to change the urgency level
func (s *Server) changeRequestUrgency(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	var params struct {
		UrgencyLevel string `json:"urgency_level" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	existing, ok := s.loadOwnedRequest(c, id, requester)
	if !ok {
		return
	}

	updated, err := s.mutationGateway(requester).ChangeUrgency(c.Request.Context(), *existing, params.UrgencyLevel)
	if err != nil {
		s.abortRequestMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// deleteRequest removes one of the owner's requests; the feed learns about
// it through a delete event carrying only the id
func (s *Server) deleteRequest(c *gin.Context) {
	requester := c.GetString("requester")
	id := c.Param("requestID")

	if err := s.store.DeleteRequest(id, requester); err != nil {
		s.abortRequestMutationError(c, err)
		return
	}

	s.hub.Broadcast(realtime.NewDeleteEvent(id))

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) abortRequestMutationError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotExist, feed.ErrNotOwner:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
	case feed.ErrInvalidStatus, store.ErrInvalidEnumValue:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
	case feed.ErrInvalidUrgency:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidUrgency)
	case feed.ErrInvalidCategory:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCategory)
	case feed.ErrLocationNotFound:
		abortWithEncoding(c, http.StatusBadRequest, errorLocationNotResolved)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
