package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripmates/trip_planner_app/internal/apperrors"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/middleware"
)

// tripHandler handles HTTP requests related to trips and their memberships.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers routes related to trips and their members.
// It also registers EXPENSE and ACTIVITY routes nested under a specific trip.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade, expenseService portssvc.ExpenseSvcFacade, activityService portssvc.ActivitySvcFacade) {
	h := newTripHandler(tripService)

	// Routes for managing trips themselves
	tripsTopLevel := rg.Group("/trips")
	{
		tripsTopLevel.POST("", h.createTrip)
		tripsTopLevel.GET("", h.listUserTrips) // List trips the calling user belongs to
	}

	// Routes specific to a single trip (identified by trip_id)
	tripSpecific := rg.Group("/trips/:trip_id")
	{
		tripSpecific.GET("", h.getTrip)
		tripSpecific.PUT("", h.updateTrip)
		tripSpecific.POST("/deactivate", h.deactivateTrip)
		tripSpecific.POST("/activate", h.activateTrip)

		// Membership lifecycle within a trip
		tripSpecific.POST("/join", h.requestToJoin)
		members := tripSpecific.Group("/members")
		{
			members.GET("", h.listTripMembers)
			members.PATCH("/:user_id", h.reviewJoinRequest)
			members.DELETE("/:user_id", h.removeTripMember)
		}

		// -- NESTED EXPENSE ROUTES --
		registerExpenseRoutes(tripSpecific, expenseService)

		// -- NESTED ACTIVITY ROUTES --
		registerActivityRoutes(tripSpecific, activityService)
	}
}

// respondTripError maps common service errors for trip operations.
func respondTripError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not allowed"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// createTrip godoc
// @Summary Create a new trip
// @Description Creates a new trip and enrolls the creator as its approved owner.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondTripError(c, err, "create trip")
		return
	}

	logger.Info("Trip created successfully", slog.String("trip_id", trip.TripID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listUserTrips godoc
// @Summary List trips for current user
// @Description Retrieves trips the authenticated user is an approved member of.
// @Tags trips
// @Produce json
// @Param includeInactive query bool false "Include deactivated trips"
// @Success 200 {object} dto.ListTripsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listUserTrips(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeInactive := c.Query("includeInactive") == "true"

	trips, err := h.tripService.ListUserTrips(c.Request.Context(), userID, includeInactive)
	if err != nil {
		respondTripError(c, err, "list trips")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTripsResponse(trips))
}

// getTrip godoc
// @Summary Get trip details
// @Description Retrieves a trip's details. Approved members only.
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondTripError(c, err, "get trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip godoc
// @Summary Update trip
// @Description Updates a trip's details. Owner only.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("trip_id"), req, userID)
	if err != nil {
		respondTripError(c, err, "update trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deactivateTrip godoc
// @Summary Deactivate trip
// @Description Marks a trip as inactive, blocking further writes. Owner only.
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/deactivate [post]
func (h *tripHandler) deactivateTrip(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tripService.DeactivateTrip(c.Request.Context(), c.Param("trip_id"), userID); err != nil {
		respondTripError(c, err, "deactivate trip")
		return
	}

	c.Status(http.StatusNoContent)
}

// activateTrip godoc
// @Summary Reactivate trip
// @Description Marks a deactivated trip as active again. Owner only.
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activate [post]
func (h *tripHandler) activateTrip(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tripService.ActivateTrip(c.Request.Context(), c.Param("trip_id"), userID); err != nil {
		respondTripError(c, err, "activate trip")
		return
	}

	c.Status(http.StatusNoContent)
}

// requestToJoin godoc
// @Summary Request to join a trip
// @Description Creates a pending membership request for the authenticated user.
// @Tags trip-members
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 201 {object} dto.TripMemberResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already a member or request pending"
// @Security BearerAuth
// @Router /trips/{trip_id}/join [post]
func (h *tripHandler) requestToJoin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tripID := c.Param("trip_id")
	membership, err := h.tripService.RequestToJoinTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		respondTripError(c, err, "request to join trip")
		return
	}

	logger.Info("Join request submitted", slog.String("trip_id", tripID), slog.String("user_id", userID))
	c.JSON(http.StatusCreated, dto.ToTripMemberResponse(membership))
}

// listTripMembers godoc
// @Summary List trip members
// @Description Retrieves a trip's memberships. Owners see every status; members see approved only.
// @Tags trip-members
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param status query string false "Filter by membership status" Enums(PENDING, APPROVED, REJECTED, REMOVED)
// @Success 200 {object} dto.ListTripMembersResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/members [get]
func (h *tripHandler) listTripMembers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTripMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	members, err := h.tripService.ListTripMembers(c.Request.Context(), c.Param("trip_id"), userID, params.Status)
	if err != nil {
		respondTripError(c, err, "list trip members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTripMembersResponse(members))
}

// reviewJoinRequest godoc
// @Summary Review a join request
// @Description Approves or rejects a pending membership. Owner only.
// @Tags trip-members
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param user_id path string true "User ID of the join request"
// @Param review body dto.ReviewJoinRequestRequest true "Approve or reject"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Membership is not pending"
// @Security BearerAuth
// @Router /trips/{trip_id}/members/{user_id} [patch]
func (h *tripHandler) reviewJoinRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReviewJoinRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tripID := c.Param("trip_id")
	targetUserID := c.Param("user_id")
	if err := h.tripService.ReviewJoinRequest(c.Request.Context(), tripID, targetUserID, req.Approve, userID); err != nil {
		respondTripError(c, err, "review join request")
		return
	}

	logger.Info("Join request reviewed",
		slog.String("trip_id", tripID),
		slog.String("target_user_id", targetUserID),
		slog.Bool("approved", req.Approve))
	c.Status(http.StatusNoContent)
}

// removeTripMember godoc
// @Summary Remove a trip member
// @Description Removes an approved member. Owners remove anyone but themselves; members remove only themselves.
// @Tags trip-members
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param user_id path string true "User ID to remove"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Owner cannot be removed"
// @Security BearerAuth
// @Router /trips/{trip_id}/members/{user_id} [delete]
func (h *tripHandler) removeTripMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tripService.RemoveTripMember(c.Request.Context(), c.Param("trip_id"), c.Param("user_id"), userID); err != nil {
		respondTripError(c, err, "remove trip member")
		return
	}

	c.Status(http.StatusNoContent)
}
