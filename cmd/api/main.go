package main

import (
	"context"
	"net/http"

	"foodcart-api/internal/config"
	"foodcart-api/internal/geocoder"
	"foodcart-api/internal/handler"
	"foodcart-api/internal/repository"
	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	_ = godotenv.Load() // OK if no .env file

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	geocodingClient := geocoder.NewClient(config.Geocoder)

	locationService := service.NewLocationService(repo, geocodingClient)
	boardService := service.NewBoardService(repo, repo, locationService)
	menuService := service.NewMenuService(repo, repo)
	orderService := service.NewOrderService(repo)

	boardHandler := handler.NewOrderBoardHandler(boardService)
	productsHandler := handler.NewProductsHandler(menuService)
	registerHandler := handler.NewRegisterOrderHandler(orderService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/orders/board", boardHandler.Board)
		api.POST("/orders", registerHandler.Register)
		api.GET("/products", productsHandler.List)
		api.GET("/products/availability", productsHandler.Matrix)
		api.GET("/banners", handler.Banners)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
