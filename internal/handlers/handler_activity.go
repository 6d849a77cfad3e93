package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/middleware"
)

// activityHandler handles HTTP requests related to a trip's activities.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// newActivityHandler creates a new activityHandler.
func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{
		activityService: as,
	}
}

// registerActivityRoutes registers activity routes nested under a specific trip.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.POST("", h.createActivity)
		activities.GET("", h.listActivities)
		activities.GET("/:activity_id", h.getActivity)
		activities.PUT("/:activity_id", h.updateActivity)
		activities.DELETE("/:activity_id", h.deleteActivity)

		// Sign-ups for a single activity
		activities.POST("/:activity_id/join", h.joinActivity)
		activities.POST("/:activity_id/leave", h.leaveActivity)
		activities.GET("/:activity_id/participants", h.listParticipants)
	}

	// Day-by-day schedule derived from the trip's activities
	rg.GET("/itinerary", h.getItinerary)
}

// createActivity godoc
// @Summary Create an activity
// @Description Adds an activity to the trip's itinerary. The creator is signed up automatically.
// @Tags activities
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Trip is not active"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tripID := c.Param("trip_id")
	activity, err := h.activityService.CreateActivity(c.Request.Context(), tripID, req, userID)
	if err != nil {
		respondTripError(c, err, "create activity")
		return
	}

	logger.Info("Activity created successfully",
		slog.String("trip_id", tripID),
		slog.String("activity_id", activity.ActivityID))
	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

// listActivities godoc
// @Summary List trip activities
// @Description Retrieves all of the trip's activities in schedule order with participant counts.
// @Tags activities
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	activities, err := h.activityService.ListTripActivities(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondTripError(c, err, "list activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivitiesResponse(activities))
}

// getActivity godoc
// @Summary Get activity details
// @Description Retrieves an activity's details. Approved members only.
// @Tags activities
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [get]
func (h *activityHandler) getActivity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	activity, err := h.activityService.GetActivityByID(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID)
	if err != nil {
		respondTripError(c, err, "get activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// updateActivity godoc
// @Summary Update an activity
// @Description Updates an activity's details. Creator or trip owner only.
// @Tags activities
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Param activity body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [put]
func (h *activityHandler) updateActivity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), req, userID)
	if err != nil {
		respondTripError(c, err, "update activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// deleteActivity godoc
// @Summary Delete an activity
// @Description Removes an activity and its sign-ups. Creator or trip owner only.
// @Tags activities
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [delete]
func (h *activityHandler) deleteActivity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID); err != nil {
		respondTripError(c, err, "delete activity")
		return
	}

	c.Status(http.StatusNoContent)
}

// joinActivity godoc
// @Summary Join an activity
// @Description Signs the authenticated user up for an activity. Joining again is a no-op.
// @Tags activity-participants
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id}/join [post]
func (h *activityHandler) joinActivity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.activityService.JoinActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID); err != nil {
		respondTripError(c, err, "join activity")
		return
	}

	c.Status(http.StatusNoContent)
}

// leaveActivity godoc
// @Summary Leave an activity
// @Description Removes the authenticated user's sign-up from an activity.
// @Tags activity-participants
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id}/leave [post]
func (h *activityHandler) leaveActivity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.activityService.LeaveActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID); err != nil {
		respondTripError(c, err, "leave activity")
		return
	}

	c.Status(http.StatusNoContent)
}

// listParticipants godoc
// @Summary List activity participants
// @Description Retrieves everyone signed up for an activity, oldest first.
// @Tags activity-participants
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param activity_id path string true "Activity ID"
// @Success 200 {object} dto.ListActivityParticipantsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id}/participants [get]
func (h *activityHandler) listParticipants(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	participants, err := h.activityService.ListActivityParticipants(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID)
	if err != nil {
		respondTripError(c, err, "list activity participants")
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivityParticipantsResponse(participants))
}

// getItinerary godoc
// @Summary Get trip itinerary
// @Description Groups the trip's activities into a day-by-day schedule with per-day cost totals.
// @Tags activities
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/itinerary [get]
func (h *activityHandler) getItinerary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	days, err := h.activityService.GetTripItinerary(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondTripError(c, err, "build itinerary")
		return
	}

	c.JSON(http.StatusOK, dto.ToItineraryResponse(days))
}
