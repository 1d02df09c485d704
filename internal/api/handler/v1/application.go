package v1

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haamee/haamee-api/internal/api/handler/v1/response"
	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/service"
)

type ApplicationService interface {
	List(ctx context.Context) ([]domain.Application, error)
	Get(ctx context.Context, id uint) (domain.Application, error)
	Create(ctx context.Context, application domain.Application) (domain.Application, error)
	Update(ctx context.Context, id uint, application domain.Application) error
	Delete(ctx context.Context, id uint) error
	ListDocuments(ctx context.Context, applicationID uint) ([]domain.ApplicationDocument, error)
	AttachDocument(ctx context.Context, applicationID uint, documentType string, fh *multipart.FileHeader) (domain.ApplicationDocument, error)
	RemoveDocument(ctx context.Context, id uint) error
	ExportCSV(ctx context.Context, filter service.ApplicationExportFilter) ([]byte, error)
}

type ApplicationHandler struct {
	svc ApplicationService
}

func NewApplicationHandler(svc ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		svc: svc,
	}
}

// HandleListApplications godoc
// @Summary      List all applications
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /applications [get]
// @Security BearerAuth
func (h *ApplicationHandler) HandleListApplications(ctx *gin.Context) {
	applications, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListApplications -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// HandleGetApplication godoc
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Param        applicationID  path      int  true  "application ID"
// @Success      200            {object}  domain.Application
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID} [get]
// @Security BearerAuth
func (h *ApplicationHandler) HandleGetApplication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	application, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetApplication -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, application)
}

// HandleCreateApplication godoc
// @Summary      Create an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Application  true  "application"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /applications [post]
// @Security BearerAuth
func (h *ApplicationHandler) HandleCreateApplication(ctx *gin.Context) {
	var application domain.Application
	if err := ctx.ShouldBindJSON(&application); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	application.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), application)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateApplication -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Application created",
	})
}

// HandleUpdateApplication godoc
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        applicationID  path      int                 true  "application ID"
// @Param        request        body      domain.Application  true  "application"
// @Success      200            {object}  response.MessageResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID} [put]
// @Security BearerAuth
func (h *ApplicationHandler) HandleUpdateApplication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var application domain.Application
	if err = ctx.ShouldBindJSON(&application); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Update(ctx.Request.Context(), id, application); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateApplication -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Application updated"})
}

// HandleDeleteApplication godoc
// @Summary      Delete an application with its documents and files
// @Tags         applications
// @Produce      json
// @Param        applicationID  path      int  true  "application ID"
// @Success      200            {object}  response.MessageResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID} [delete]
// @Security BearerAuth
func (h *ApplicationHandler) HandleDeleteApplication(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteApplication -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Application deleted"})
}

// HandleListApplicationDocuments godoc
// @Summary      List documents of an application
// @Tags         applications
// @Produce      json
// @Param        applicationID  path      int  true  "application ID"
// @Success      200            {array}   domain.ApplicationDocument
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID}/documents [get]
// @Security BearerAuth
func (h *ApplicationHandler) HandleListApplicationDocuments(ctx *gin.Context) {
	applicationID, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	documents, err := h.svc.ListDocuments(ctx.Request.Context(), applicationID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListApplicationDocuments -> h.svc.ListDocuments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, documents)
}

// HandleUploadApplicationDocument godoc
// @Summary      Upload a document for an application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        applicationID  path      int     true  "application ID"
// @Param        file           formData  file    true  "document file"
// @Param        documentType   formData  string  false "document type"
// @Success      200            {object}  response.UploadResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID}/documents [post]
// @Security BearerAuth
func (h *ApplicationHandler) HandleUploadApplicationDocument(ctx *gin.Context) {
	applicationID, err := parseIDParam(ctx, "applicationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	documentType := ctx.PostForm("documentType")
	document, err := h.svc.AttachDocument(ctx.Request.Context(), applicationID, documentType, fh)
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadApplicationDocument -> h.svc.AttachDocument -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.UploadResponse{
		ID:       document.ID,
		Message:  "Document uploaded",
		FileName: document.FileName,
		FilePath: document.FilePath,
	})
}

// HandleDeleteApplicationDocument godoc
// @Summary      Delete an application document and its file
// @Tags         applications
// @Produce      json
// @Param        applicationID  path      int  true  "application ID"
// @Param        documentID     path      int  true  "document ID"
// @Success      200            {object}  response.MessageResponse
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /applications/{applicationID}/documents/{documentID} [delete]
// @Security BearerAuth
func (h *ApplicationHandler) HandleDeleteApplicationDocument(ctx *gin.Context) {
	documentID, err := parseIDParam(ctx, "documentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveDocument(ctx.Request.Context(), documentID); err != nil {
		if errors.Is(err, service.ErrApplicationDocumentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("document", "ID", documentID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteApplicationDocument -> h.svc.RemoveDocument -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}

// HandleExportApplications godoc
// @Summary      Export applications as a CSV file
// @Tags         applications
// @Produce      text/csv
// @Param        status  query     string  false  "status filter"
// @Param        year    query     string  false  "submit year filter"
// @Param        season  query     string  false  "submit season filter"
// @Success      200     {string}  string  "CSV content"
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /applications/export [get]
// @Security BearerAuth
func (h *ApplicationHandler) HandleExportApplications(ctx *gin.Context) {
	filter := service.ApplicationExportFilter{
		Status: ctx.Query("status"),
		Year:   ctx.Query("year"),
		Season: ctx.Query("season"),
	}

	data, err := h.svc.ExportCSV(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleExportApplications -> h.svc.ExportCSV -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="applications.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
