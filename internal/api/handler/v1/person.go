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

type PersonService interface {
	List(ctx context.Context) ([]domain.Person, error)
	Get(ctx context.Context, id uint) (domain.Person, error)
	Create(ctx context.Context, person domain.Person) (domain.Person, error)
	Update(ctx context.Context, id uint, person domain.Person) error
	Delete(ctx context.Context, id uint) error
	ListContacts(ctx context.Context, personID uint) ([]domain.PersonContact, error)
	AddContact(ctx context.Context, contact domain.PersonContact) (domain.PersonContact, error)
	RemoveContact(ctx context.Context, id uint) error
	ListRoles(ctx context.Context, personID uint) ([]domain.PersonRole, error)
	AddRole(ctx context.Context, role domain.PersonRole) (domain.PersonRole, error)
	RemoveRole(ctx context.Context, id uint) error
	ListDocuments(ctx context.Context, personID uint) ([]domain.PersonDocument, error)
	AttachDocument(ctx context.Context, personID uint, documentType string, fh *multipart.FileHeader) (domain.PersonDocument, error)
	RemoveDocument(ctx context.Context, id uint) error
}

type PersonHandler struct {
	svc PersonService
}

func NewPersonHandler(svc PersonService) *PersonHandler {
	return &PersonHandler{
		svc: svc,
	}
}

// HandleListPersons godoc
// @Summary      List all persons
// @Tags         persons
// @Produce      json
// @Success      200  {array}   domain.Person
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /persons [get]
// @Security BearerAuth
func (h *PersonHandler) HandleListPersons(ctx *gin.Context) {
	persons, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPersons -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, persons)
}

// HandleGetPerson godoc
// @Summary      Get a person by ID
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Success      200       {object}  domain.Person
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [get]
// @Security BearerAuth
func (h *PersonHandler) HandleGetPerson(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	person, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPerson -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, person)
}

// HandleCreatePerson godoc
// @Summary      Create a person, optionally with contacts and roles
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Person  true  "person"
// @Success      200      {object}  response.CreatedResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /persons [post]
// @Security BearerAuth
func (h *PersonHandler) HandleCreatePerson(ctx *gin.Context) {
	var person domain.Person
	if err := ctx.ShouldBindJSON(&person); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	person.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), person)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePerson -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Person created",
	})
}

// HandleUpdatePerson godoc
// @Summary      Update a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        personID  path      int            true  "person ID"
// @Param        request   body      domain.Person  true  "person"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [put]
// @Security BearerAuth
func (h *PersonHandler) HandleUpdatePerson(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var person domain.Person
	if err = ctx.ShouldBindJSON(&person); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Update(ctx.Request.Context(), id, person); err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePerson -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Person updated"})
}

// HandleDeletePerson godoc
// @Summary      Delete a person with all child records and files
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [delete]
// @Security BearerAuth
func (h *PersonHandler) HandleDeletePerson(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePerson -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Person deleted"})
}

// HandleListContacts godoc
// @Summary      List contacts of a person
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Success      200       {array}   domain.PersonContact
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/contacts [get]
// @Security BearerAuth
func (h *PersonHandler) HandleListContacts(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contacts, err := h.svc.ListContacts(ctx.Request.Context(), personID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListContacts -> h.svc.ListContacts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, contacts)
}

// HandleAddContact godoc
// @Summary      Add a contact to a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        personID  path      int                   true  "person ID"
// @Param        request   body      domain.PersonContact  true  "contact"
// @Success      200       {object}  response.CreatedResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/contacts [post]
// @Security BearerAuth
func (h *PersonHandler) HandleAddContact(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var contact domain.PersonContact
	if err = ctx.ShouldBindJSON(&contact); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	contact.ID = 0
	contact.PersonID = personID
	created, err := h.svc.AddContact(ctx.Request.Context(), contact)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddContact -> h.svc.AddContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Contact added",
	})
}

// HandleDeleteContact godoc
// @Summary      Delete a contact
// @Tags         persons
// @Produce      json
// @Param        personID   path      int  true  "person ID"
// @Param        contactID  path      int  true  "contact ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /persons/{personID}/contacts/{contactID} [delete]
// @Security BearerAuth
func (h *PersonHandler) HandleDeleteContact(ctx *gin.Context) {
	contactID, err := parseIDParam(ctx, "contactID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveContact(ctx.Request.Context(), contactID); err != nil {
		if errors.Is(err, service.ErrPersonContactNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contact", "ID", contactID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteContact -> h.svc.RemoveContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Contact deleted"})
}

// HandleListRoles godoc
// @Summary      List roles of a person
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Success      200       {array}   domain.PersonRole
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/roles [get]
// @Security BearerAuth
func (h *PersonHandler) HandleListRoles(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	roles, err := h.svc.ListRoles(ctx.Request.Context(), personID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRoles -> h.svc.ListRoles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, roles)
}

// HandleAddRole godoc
// @Summary      Add a role to a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        personID  path      int                true  "person ID"
// @Param        request   body      domain.PersonRole  true  "role"
// @Success      200       {object}  response.CreatedResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/roles [post]
// @Security BearerAuth
func (h *PersonHandler) HandleAddRole(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var role domain.PersonRole
	if err = ctx.ShouldBindJSON(&role); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	role.ID = 0
	role.PersonID = personID
	created, err := h.svc.AddRole(ctx.Request.Context(), role)
	if err != nil {
		err = fmt.Errorf("v1.HandleAddRole -> h.svc.AddRole -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreatedResponse{
		ID:      created.ID,
		Message: "Role added",
	})
}

// HandleDeleteRole godoc
// @Summary      Delete a role
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Param        roleID    path      int  true  "role ID"
// @Success      200       {object}  response.MessageResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/roles/{roleID} [delete]
// @Security BearerAuth
func (h *PersonHandler) HandleDeleteRole(ctx *gin.Context) {
	roleID, err := parseIDParam(ctx, "roleID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveRole(ctx.Request.Context(), roleID); err != nil {
		if errors.Is(err, service.ErrPersonRoleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("role", "ID", roleID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRole -> h.svc.RemoveRole -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Role deleted"})
}

// HandleListPersonDocuments godoc
// @Summary      List documents of a person
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "person ID"
// @Success      200       {array}   domain.PersonDocument
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID}/documents [get]
// @Security BearerAuth
func (h *PersonHandler) HandleListPersonDocuments(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	documents, err := h.svc.ListDocuments(ctx.Request.Context(), personID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPersonDocuments -> h.svc.ListDocuments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, documents)
}

// HandleUploadPersonDocument godoc
// @Summary      Upload a document for a person
// @Tags         persons
// @Accept       multipart/form-data
// @Produce      json
// @Param        personID      path      int     true  "person ID"
// @Param        file          formData  file    true  "document file"
// @Param        documentType  formData  string  false "document type"
// @Success      200           {object}  response.UploadResponse
// @Failure      400           {object}  response.Err
// @Failure      401           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /persons/{personID}/documents [post]
// @Security BearerAuth
func (h *PersonHandler) HandleUploadPersonDocument(ctx *gin.Context) {
	personID, err := parseIDParam(ctx, "personID")
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
	document, err := h.svc.AttachDocument(ctx.Request.Context(), personID, documentType, fh)
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadPersonDocument -> h.svc.AttachDocument -> %w", err)
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

// HandleDeletePersonDocument godoc
// @Summary      Delete a person document and its file
// @Tags         persons
// @Produce      json
// @Param        personID    path      int  true  "person ID"
// @Param        documentID  path      int  true  "document ID"
// @Success      200         {object}  response.MessageResponse
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /persons/{personID}/documents/{documentID} [delete]
// @Security BearerAuth
func (h *PersonHandler) HandleDeletePersonDocument(ctx *gin.Context) {
	documentID, err := parseIDParam(ctx, "documentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveDocument(ctx.Request.Context(), documentID); err != nil {
		if errors.Is(err, service.ErrPersonDocumentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("document", "ID", documentID))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePersonDocument -> h.svc.RemoveDocument -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}
