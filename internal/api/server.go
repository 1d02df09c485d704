package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/haamee/haamee-api/docs"
	v1 "github.com/haamee/haamee-api/internal/api/handler/v1"
	"github.com/haamee/haamee-api/internal/api/middleware"
	"github.com/haamee/haamee-api/internal/config"
	"github.com/haamee/haamee-api/internal/repository"
	"github.com/haamee/haamee-api/internal/repository/dao"
	"github.com/haamee/haamee-api/internal/service"
	"github.com/haamee/haamee-api/internal/storage"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	uploads *storage.Store
}

func NewServer(conf *config.AppConfig, db *gorm.DB, uploads *storage.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		uploads: uploads,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	personHandler := s.initPersonHandler(db)
	organizationHandler := s.initOrganizationHandler(db)
	eventHandler := s.initEventHandler(db)
	applicationHandler := s.initApplicationHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	s.MountHandlers(authHandler, personHandler, organizationHandler, eventHandler, applicationHandler, paymentHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc, err := service.NewAuthService(s.Config.API.AdminUsername, s.Config.API.AdminPassword)
	if err != nil {
		zap.L().Fatal("failed to initialize auth service", zap.Error(err))
	}

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initPersonHandler(db *gorm.DB) *v1.PersonHandler {
	personDAO := dao.NewPersonDAO(db)
	repo := repository.NewPersonRepository(personDAO)
	svc := service.NewPersonService(repo, s.uploads)

	return v1.NewPersonHandler(svc)
}

func (s *Server) initOrganizationHandler(db *gorm.DB) *v1.OrganizationHandler {
	orgDAO := dao.NewOrganizationDAO(db)
	repo := repository.NewOrganizationRepository(orgDAO)
	svc := service.NewOrganizationService(repo)

	return v1.NewOrganizationHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)

	return v1.NewEventHandler(svc)
}

func (s *Server) initApplicationHandler(db *gorm.DB) *v1.ApplicationHandler {
	applicationDAO := dao.NewApplicationDAO(db)
	repo := repository.NewApplicationRepository(applicationDAO)
	svc := service.NewApplicationService(repo, s.uploads)

	return v1.NewApplicationHandler(svc)
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	paymentDAO := dao.NewPaymentDAO(db)
	repo := repository.NewPaymentRepository(paymentDAO)
	svc := service.NewPaymentService(repo)

	return v1.NewPaymentHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.CountRequests())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	personHandler *v1.PersonHandler,
	organizationHandler *v1.OrganizationHandler,
	eventHandler *v1.EventHandler,
	applicationHandler *v1.ApplicationHandler,
	paymentHandler *v1.PaymentHandler,
) {
	const basePath = "/api"

	open := s.Router.Group(basePath)
	{
		open.POST("/auth/login", authHandler.HandleLogin)
		open.GET("/health", v1.HandleHealthcheck)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/persons", personHandler.HandleListPersons)
		authenticated.GET("/persons/:personID", personHandler.HandleGetPerson)
		authenticated.POST("/persons", personHandler.HandleCreatePerson)
		authenticated.PUT("/persons/:personID", personHandler.HandleUpdatePerson)
		authenticated.DELETE("/persons/:personID", personHandler.HandleDeletePerson)
		authenticated.GET("/persons/:personID/contacts", personHandler.HandleListContacts)
		authenticated.POST("/persons/:personID/contacts", personHandler.HandleAddContact)
		authenticated.DELETE("/persons/:personID/contacts/:contactID", personHandler.HandleDeleteContact)
		authenticated.GET("/persons/:personID/roles", personHandler.HandleListRoles)
		authenticated.POST("/persons/:personID/roles", personHandler.HandleAddRole)
		authenticated.DELETE("/persons/:personID/roles/:roleID", personHandler.HandleDeleteRole)
		authenticated.GET("/persons/:personID/documents", personHandler.HandleListPersonDocuments)
		authenticated.POST("/persons/:personID/documents", personHandler.HandleUploadPersonDocument)
		authenticated.DELETE("/persons/:personID/documents/:documentID", personHandler.HandleDeletePersonDocument)

		authenticated.GET("/organizations", organizationHandler.HandleListOrganizations)
		authenticated.GET("/organizations/:orgID", organizationHandler.HandleGetOrganization)
		authenticated.POST("/organizations", organizationHandler.HandleCreateOrganization)
		authenticated.PUT("/organizations/:orgID", organizationHandler.HandleUpdateOrganization)
		authenticated.DELETE("/organizations/:orgID", organizationHandler.HandleDeleteOrganization)

		authenticated.GET("/events", eventHandler.HandleListEvents)
		authenticated.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authenticated.POST("/events", eventHandler.HandleCreateEvent)
		authenticated.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authenticated.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		authenticated.GET("/events/:eventID/org-collaborators", eventHandler.HandleListOrgCollaborators)
		authenticated.POST("/events/:eventID/org-collaborators", eventHandler.HandleAddOrgCollaborator)
		authenticated.DELETE("/events/:eventID/org-collaborators/:collabID", eventHandler.HandleDeleteOrgCollaborator)
		authenticated.GET("/events/:eventID/person-collaborators", eventHandler.HandleListPersonCollaborators)
		authenticated.POST("/events/:eventID/person-collaborators", eventHandler.HandleAddPersonCollaborator)
		authenticated.DELETE("/events/:eventID/person-collaborators/:collabID", eventHandler.HandleDeletePersonCollaborator)
		authenticated.GET("/events/:eventID/participants", eventHandler.HandleListParticipants)
		authenticated.POST("/events/:eventID/participants", eventHandler.HandleAddParticipant)
		authenticated.DELETE("/events/:eventID/participants/:participantID", eventHandler.HandleDeleteParticipant)

		authenticated.GET("/applications", applicationHandler.HandleListApplications)
		authenticated.GET("/applications/export", applicationHandler.HandleExportApplications)
		authenticated.GET("/applications/:applicationID", applicationHandler.HandleGetApplication)
		authenticated.POST("/applications", applicationHandler.HandleCreateApplication)
		authenticated.PUT("/applications/:applicationID", applicationHandler.HandleUpdateApplication)
		authenticated.DELETE("/applications/:applicationID", applicationHandler.HandleDeleteApplication)
		authenticated.GET("/applications/:applicationID/documents", applicationHandler.HandleListApplicationDocuments)
		authenticated.POST("/applications/:applicationID/documents", applicationHandler.HandleUploadApplicationDocument)
		authenticated.DELETE("/applications/:applicationID/documents/:documentID", applicationHandler.HandleDeleteApplicationDocument)

		authenticated.GET("/payments", paymentHandler.HandleListPayments)
		authenticated.GET("/payments/:paymentID", paymentHandler.HandleGetPayment)
		authenticated.POST("/payments", paymentHandler.HandleCreatePayment)
		authenticated.PUT("/payments/:paymentID", paymentHandler.HandleUpdatePayment)
		authenticated.DELETE("/payments/:paymentID", paymentHandler.HandleDeletePayment)
	}

	// Uploaded documents are served as-is under their stored names.
	s.Router.Static("/uploads", s.uploads.Dir())
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Haamee API"
	docs.SwaggerInfo.Description = "Administrative record keeping for persons, organizations, events, applications and payments."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
