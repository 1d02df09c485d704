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

type OrganizationService interface {
	List(ctx context.Context) ([]domain.Organization, error)
	Get(ctx context.Context, id uint) (domain.Organization, error)
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)
	Update(ctx context.Context, id uint, org domain.Organization) error
	Delete(ctx context.Context, id uint) error
}

type OrganizationHandler struct {
	svc OrganizationService
}

func NewOrganizationHandler(svc OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		svc: svc,
	}
}

// HandleListOrganizations godoc
// @Summary      List all organizations
// @Tags         organizations
// @Produce      json
// @Success      200  {array}   domain.Organization
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organizations [get]
// @Security BearerAuth
func (h *OrganizationHandler) HandleListOrganizations(ctx *gin.Context) {
	orgs, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListOrganizations -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, orgs)
}

// HandleGetOrganization godoc
// @Summary      Get an organization by ID
// @Tags         organizations
// @Produce      json
// @Param        orgID  path      int  true  "organization ID"
// @Success      200    {object}  domain.Organization
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /organizations/{orgID} [get]
// @Security BearerAuth
func (h *OrganizationHandler) HandleGetOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	org, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetOrganization -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, org)
}

// HandleCreateOrganization godoc
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Organization  true  "organization"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /organizations [post]
// @Security BearerAuth
func (h *OrganizationHandler) HandleCreateOrganization(ctx *gin.Context) {
	var org domain.Organization
	if err := ctx.ShouldBindJSON(&org); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	org.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), org)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateOrganization -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Organization created",
	})
}

// HandleUpdateOrganization godoc
// @Summary      Update an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgID    path      int                  true  "organization ID"
// @Param        request  body      domain.Organization  true  "organization"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /organizations/{orgID} [put]
// @Security BearerAuth
func (h *OrganizationHandler) HandleUpdateOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var org domain.Organization
	if err = ctx.ShouldBindJSON(&org); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Update(ctx.Request.Context(), id, org); err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateOrganization -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Organization updated"})
}

// HandleDeleteOrganization godoc
// @Summary      Delete an organization
// @Tags         organizations
// @Produce      json
// @Param        orgID  path      int  true  "organization ID"
// @Success      200    {object}  response.MessageResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /organizations/{orgID} [delete]
// @Security BearerAuth
func (h *OrganizationHandler) HandleDeleteOrganization(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteOrganization -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Organization deleted"})
}
