package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/dkryuchkov/broker-api/docs"
	v1 "github.com/dkryuchkov/broker-api/internal/api/handler/v1"
	"github.com/dkryuchkov/broker-api/internal/api/middleware"
	"github.com/dkryuchkov/broker-api/internal/config"
	"github.com/dkryuchkov/broker-api/internal/repository"
	"github.com/dkryuchkov/broker-api/internal/repository/dao"
	"github.com/dkryuchkov/broker-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userHandler := s.initUserHandler(db)
	stockHandler := s.initStockHandler(db)
	portfolioHandler := s.initPortfolioHandler(db)
	s.MountHandlers(userHandler, stockHandler, portfolioHandler)

	return s
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewStockService(repo)
	handler := v1.NewStockHandler(svc)

	return handler
}

func (s *Server) initPortfolioHandler(db *gorm.DB) *v1.PortfolioHandler {
	holdingRepo := repository.NewHoldingRepository(dao.NewHoldingDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	stockRepo := repository.NewStockRepository(dao.NewStockDAO(db))
	svc := service.NewPortfolioService(holdingRepo, userRepo, stockRepo)
	handler := v1.NewPortfolioHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(userHandler *v1.UserHandler, stockHandler *v1.StockHandler, portfolioHandler *v1.PortfolioHandler) {
	users := s.Router.Group("/users")
	{
		users.POST("", userHandler.HandleCreateUser)
		users.GET("", userHandler.HandleListUsers)
		users.PUT("", userHandler.HandleUpdateUser)
		users.DELETE("/:userID", userHandler.HandleDeleteUser)

		users.POST("/:userID/portfolio", portfolioHandler.HandleAddToPortfolio)
		users.GET("/:userID/portfolio", portfolioHandler.HandleGetPortfolio)
		users.DELETE("/:userID/portfolio/:stockID", portfolioHandler.HandleRemoveFromPortfolio)
	}

	stocks := s.Router.Group("/stocks")
	{
		stocks.POST("", stockHandler.HandleCreateStock)
		stocks.GET("", stockHandler.HandleListStocks)
		stocks.PUT("", stockHandler.HandleUpdateStockPrice)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Broker API"
	docs.SwaggerInfo.Description = "Record-keeping service for users, stocks and portfolios."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
