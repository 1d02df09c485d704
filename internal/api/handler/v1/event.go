package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haamee/haamee-api/internal/api/handler/v1/response"
	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/service"
)

type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id uint) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, id uint, event domain.Event) error
	Delete(ctx context.Context, id uint) error
	ListOrgCollaborators(ctx context.Context, eventID uint) ([]domain.EventOrgCollaborator, error)
	AddOrgCollaborator(ctx context.Context, collab domain.EventOrgCollaborator) (domain.EventOrgCollaborator, error)
	RemoveOrgCollaborator(ctx context.Context, id uint) error
	ListPersonCollaborators(ctx context.Context, eventID uint) ([]domain.EventPersonCollaborator, error)
	AddPersonCollaborator(ctx context.Context, collab domain.EventPersonCollaborator) (domain.EventPersonCollaborator, error)
	RemovePersonCollaborator(ctx context.Context, id uint) error
	ListParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error)
	AddParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error)
	RemoveParticipant(ctx context.Context, id uint) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Event  true  "event"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var event domain.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), event)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Event created",
	})
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int           true  "event ID"
// @Param        request  body      domain.Event  true  "event"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var event domain.Event
	if err = ctx.ShouldBindJSON(&event); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Update(ctx.Request.Context(), id, event); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Event updated"})
}

// HandleDeleteEvent godoc
// @Summary      Delete an event with its collaborators and participants
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Event deleted"})
}

// HandleListOrgCollaborators godoc
// @Summary      List organization collaborators of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.EventOrgCollaborator
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/org-collaborators [get]
// @Security BearerAuth
func (h *EventHandler) HandleListOrgCollaborators(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	collabs, err := h.svc.ListOrgCollaborators(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrgCollaborators -> h.svc.ListOrgCollaborators -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, collabs)
}

// HandleAddOrgCollaborator godoc
// @Summary      Add an organization collaborator to an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                          true  "event ID"
// @Param        request  body      domain.EventOrgCollaborator  true  "collaborator"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/org-collaborators [post]
// @Security BearerAuth
func (h *EventHandler) HandleAddOrgCollaborator(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var collab domain.EventOrgCollaborator
	if err = ctx.ShouldBindJSON(&collab); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	collab.ID = 0
	collab.EventID = eventID
	created, err := h.svc.AddOrgCollaborator(ctx.Request.Context(), collab)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddOrgCollaborator -> h.svc.AddOrgCollaborator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Organization collaborator added",
	})
}

// HandleDeleteOrgCollaborator godoc
// @Summary      Delete an organization collaborator
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        collabID  path      int  true  "collaborator ID"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/org-collaborators/{collabID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteOrgCollaborator(ctx *gin.Context) {
	collabID, err := parseIDParam(ctx, "collabID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveOrgCollaborator(ctx.Request.Context(), collabID); err != nil {
		if errors.Is(err, service.ErrEventCollaboratorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization collaborator", "ID", collabID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteOrgCollaborator -> h.svc.RemoveOrgCollaborator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Organization collaborator deleted"})
}

// HandleListPersonCollaborators godoc
// @Summary      List person collaborators of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.EventPersonCollaborator
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/person-collaborators [get]
// @Security BearerAuth
func (h *EventHandler) HandleListPersonCollaborators(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	collabs, err := h.svc.ListPersonCollaborators(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPersonCollaborators -> h.svc.ListPersonCollaborators -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, collabs)
}

// HandleAddPersonCollaborator godoc
// @Summary      Add a person collaborator to an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                             true  "event ID"
// @Param        request  body      domain.EventPersonCollaborator  true  "collaborator"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/person-collaborators [post]
// @Security BearerAuth
func (h *EventHandler) HandleAddPersonCollaborator(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var collab domain.EventPersonCollaborator
	if err = ctx.ShouldBindJSON(&collab); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	collab.ID = 0
	collab.EventID = eventID
	created, err := h.svc.AddPersonCollaborator(ctx.Request.Context(), collab)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddPersonCollaborator -> h.svc.AddPersonCollaborator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Person collaborator added",
	})
}

// HandleDeletePersonCollaborator godoc
// @Summary      Delete a person collaborator
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        collabID  path      int  true  "collaborator ID"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/person-collaborators/{collabID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeletePersonCollaborator(ctx *gin.Context) {
	collabID, err := parseIDParam(ctx, "collabID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemovePersonCollaborator(ctx.Request.Context(), collabID); err != nil {
		if errors.Is(err, service.ErrEventCollaboratorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person collaborator", "ID", collabID))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePersonCollaborator -> h.svc.RemovePersonCollaborator -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Person collaborator deleted"})
}

// HandleListParticipants godoc
// @Summary      List participants of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.EventParticipant
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/participants [get]
// @Security BearerAuth
func (h *EventHandler) HandleListParticipants(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleAddParticipant godoc
// @Summary      Add a participant to an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                      true  "event ID"
// @Param        request  body      domain.EventParticipant  true  "participant"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/participants [post]
// @Security BearerAuth
func (h *EventHandler) HandleAddParticipant(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var participant domain.EventParticipant
	if err = ctx.ShouldBindJSON(&participant); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant.ID = 0
	participant.EventID = eventID
	created, err := h.svc.AddParticipant(ctx.Request.Context(), participant)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddParticipant -> h.svc.AddParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Participant added",
	})
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         events
// @Produce      json
// @Param        eventID        path      int  true  "event ID"
// @Param        participantID  path      int  true  "participant ID"
// @Success      200            {object}  response.MessageResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /events/{eventID}/participants/{participantID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteParticipant(ctx *gin.Context) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveParticipant(ctx.Request.Context(), participantID); err != nil {
		if errors.Is(err, service.ErrEventParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.RemoveParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Participant deleted"})
}
