package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/haamee/haamee-api/internal/api/handler/v1/request"
	"github.com/haamee/haamee-api/internal/api/handler/v1/response"
	"github.com/haamee/haamee-api/internal/domain"
)

// Client is a typed HTTP client for the Haamee API. It keeps the bearer
// token obtained at login and sends it on every call.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("c.hc.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr response.Err
		if err = json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Msg == "" {
			return fmt.Errorf("%v %v: unexpected status %v", method, path, resp.StatusCode)
		}
		apiErr.StatusCode = resp.StatusCode

		return &apiErr
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}

	return nil
}

// Login exchanges the credentials for a bearer token kept on the client.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Admin, error) {
	var resp response.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return domain.Admin{}, err
	}

	c.token = resp.Token

	return resp.User, nil
}

func (c *Client) Health(ctx context.Context) (response.HealthcheckResponse, error) {
	var resp response.HealthcheckResponse
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &resp)

	return resp, err
}

func (c *Client) ListPersons(ctx context.Context) ([]domain.Person, error) {
	var persons []domain.Person
	err := c.do(ctx, http.MethodGet, "/api/persons", nil, &persons)

	return persons, err
}

func (c *Client) GetPerson(ctx context.Context, id uint) (domain.Person, error) {
	var person domain.Person
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/persons/%d", id), nil, &person)

	return person, err
}

func (c *Client) CreatePerson(ctx context.Context, person domain.Person) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, "/api/persons", person, &resp)

	return resp.ID, err
}

func (c *Client) UpdatePerson(ctx context.Context, id uint, person domain.Person) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/persons/%d", id), person, nil)
}

func (c *Client) DeletePerson(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/persons/%d", id), nil, nil)
}

func (c *Client) ListContacts(ctx context.Context, personID uint) ([]domain.PersonContact, error) {
	var contacts []domain.PersonContact
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/persons/%d/contacts", personID), nil, &contacts)

	return contacts, err
}

func (c *Client) AddContact(ctx context.Context, personID uint, contact domain.PersonContact) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/persons/%d/contacts", personID), contact, &resp)

	return resp.ID, err
}

func (c *Client) DeleteContact(ctx context.Context, personID, contactID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/persons/%d/contacts/%d", personID, contactID), nil, nil)
}

func (c *Client) ListRoles(ctx context.Context, personID uint) ([]domain.PersonRole, error) {
	var roles []domain.PersonRole
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/persons/%d/roles", personID), nil, &roles)

	return roles, err
}

func (c *Client) AddRole(ctx context.Context, personID uint, role domain.PersonRole) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/persons/%d/roles", personID), role, &resp)

	return resp.ID, err
}

func (c *Client) DeleteRole(ctx context.Context, personID, roleID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/persons/%d/roles/%d", personID, roleID), nil, nil)
}

// UploadPersonDocument streams a local file to the API as a multipart form.
func (c *Client) ListPersonDocuments(ctx context.Context, personID uint) ([]domain.PersonDocument, error) {
	var docs []domain.PersonDocument
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/persons/%d/documents", personID), nil, &docs)

	return docs, err
}

func (c *Client) UploadPersonDocument(ctx context.Context, personID uint, documentType, filePath string) (response.UploadResponse, error) {
	return c.upload(ctx, fmt.Sprintf("/api/persons/%d/documents", personID), documentType, filePath)
}

func (c *Client) DeletePersonDocument(ctx context.Context, personID, documentID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/persons/%d/documents/%d", personID, documentID), nil, nil)
}

func (c *Client) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	err := c.do(ctx, http.MethodGet, "/api/organizations", nil, &orgs)

	return orgs, err
}

func (c *Client) GetOrganization(ctx context.Context, id uint) (domain.Organization, error) {
	var org domain.Organization
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/organizations/%d", id), nil, &org)

	return org, err
}

func (c *Client) CreateOrganization(ctx context.Context, org domain.Organization) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, "/api/organizations", org, &resp)

	return resp.ID, err
}

func (c *Client) UpdateOrganization(ctx context.Context, id uint, org domain.Organization) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/organizations/%d", id), org, nil)
}

func (c *Client) DeleteOrganization(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/organizations/%d", id), nil, nil)
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	err := c.do(ctx, http.MethodGet, "/api/events", nil, &events)

	return events, err
}

func (c *Client) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	var event domain.Event
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, &event)

	return event, err
}

func (c *Client) CreateEvent(ctx context.Context, event domain.Event) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, "/api/events", event, &resp)

	return resp.ID, err
}

func (c *Client) UpdateEvent(ctx context.Context, id uint, event domain.Event) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", id), event, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil)
}

func (c *Client) ListOrgCollaborators(ctx context.Context, eventID uint) ([]domain.EventOrgCollaborator, error) {
	var collabs []domain.EventOrgCollaborator
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d/org-collaborators", eventID), nil, &collabs)

	return collabs, err
}

func (c *Client) AddOrgCollaborator(ctx context.Context, eventID uint, collab domain.EventOrgCollaborator) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/org-collaborators", eventID), collab, &resp)

	return resp.ID, err
}

func (c *Client) DeleteOrgCollaborator(ctx context.Context, eventID, collabID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d/org-collaborators/%d", eventID, collabID), nil, nil)
}

func (c *Client) ListPersonCollaborators(ctx context.Context, eventID uint) ([]domain.EventPersonCollaborator, error) {
	var collabs []domain.EventPersonCollaborator
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d/person-collaborators", eventID), nil, &collabs)

	return collabs, err
}

func (c *Client) AddPersonCollaborator(ctx context.Context, eventID uint, collab domain.EventPersonCollaborator) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/person-collaborators", eventID), collab, &resp)

	return resp.ID, err
}

func (c *Client) DeletePersonCollaborator(ctx context.Context, eventID, collabID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d/person-collaborators/%d", eventID, collabID), nil, nil)
}

func (c *Client) ListParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error) {
	var participants []domain.EventParticipant
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d/participants", eventID), nil, &participants)

	return participants, err
}

func (c *Client) AddParticipant(ctx context.Context, eventID uint, participant domain.EventParticipant) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/participants", eventID), participant, &resp)

	return resp.ID, err
}

func (c *Client) DeleteParticipant(ctx context.Context, eventID, participantID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d/participants/%d", eventID, participantID), nil, nil)
}

func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var applications []domain.Application
	err := c.do(ctx, http.MethodGet, "/api/applications", nil, &applications)

	return applications, err
}

func (c *Client) GetApplication(ctx context.Context, id uint) (domain.Application, error) {
	var application domain.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil, &application)

	return application, err
}

func (c *Client) CreateApplication(ctx context.Context, application domain.Application) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, "/api/applications", application, &resp)

	return resp.ID, err
}

func (c *Client) UpdateApplication(ctx context.Context, id uint, application domain.Application) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/applications/%d", id), application, nil)
}

func (c *Client) DeleteApplication(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/applications/%d", id), nil, nil)
}

func (c *Client) ListApplicationDocuments(ctx context.Context, applicationID uint) ([]domain.ApplicationDocument, error) {
	var docs []domain.ApplicationDocument
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d/documents", applicationID), nil, &docs)

	return docs, err
}

func (c *Client) UploadApplicationDocument(ctx context.Context, applicationID uint, documentType, filePath string) (response.UploadResponse, error) {
	return c.upload(ctx, fmt.Sprintf("/api/applications/%d/documents", applicationID), documentType, filePath)
}

func (c *Client) DeleteApplicationDocument(ctx context.Context, applicationID, documentID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/applications/%d/documents/%d", applicationID, documentID), nil, nil)
}

// ExportApplicationsCSV downloads the CSV export. Empty filter values and
// "all" are treated by the server as no filter.
func (c *Client) ExportApplicationsCSV(ctx context.Context, status, year, season string) ([]byte, error) {
	path := fmt.Sprintf("/api/applications/export?status=%v&year=%v&season=%v", status, year, season)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.hc.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export: unexpected status %v", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := c.do(ctx, http.MethodGet, "/api/payments", nil, &payments)

	return payments, err
}

func (c *Client) GetPayment(ctx context.Context, id uint) (domain.Payment, error) {
	var payment domain.Payment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/payments/%d", id), nil, &payment)

	return payment, err
}

func (c *Client) CreatePayment(ctx context.Context, payment domain.Payment) (uint, error) {
	var resp response.CreatedResponse
	err := c.do(ctx, http.MethodPost, "/api/payments", payment, &resp)

	return resp.ID, err
}

func (c *Client) UpdatePayment(ctx context.Context, id uint, payment domain.Payment) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/payments/%d", id), payment, nil)
}

func (c *Client) DeletePayment(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/payments/%d", id), nil, nil)
}

func (c *Client) upload(ctx context.Context, path, documentType, filePath string) (response.UploadResponse, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return response.UploadResponse{}, fmt.Errorf("open %v -> %w", filePath, err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return response.UploadResponse{}, fmt.Errorf("writer.CreateFormFile -> %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return response.UploadResponse{}, fmt.Errorf("io.Copy -> %w", err)
	}
	if documentType != "" {
		if err = writer.WriteField("documentType", documentType); err != nil {
			return response.UploadResponse{}, fmt.Errorf("writer.WriteField -> %w", err)
		}
	}
	if err = writer.Close(); err != nil {
		return response.UploadResponse{}, fmt.Errorf("writer.Close -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return response.UploadResponse{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return response.UploadResponse{}, fmt.Errorf("c.hc.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response.UploadResponse{}, fmt.Errorf("upload: unexpected status %v", resp.StatusCode)
	}

	var uploaded response.UploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return response.UploadResponse{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return uploaded, nil
}
