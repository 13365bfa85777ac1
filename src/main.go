package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"github.com/YinkaFoster/fostertours/src/boot"
	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/middlewares"
	"github.com/covalenthq/lumberjack/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api"
)

var searchDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !datetime.Before(today)
}

func apiBanner(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Travel & Tours API",
		"version": "1.0.0",
	})
}

func apiHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", apiBanner)
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		enabled, err := strconv.ParseBool(mm)
		if mm != "" && (err != nil || enabled) {
			log.Println("server is under maintenance")
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "server is under maintenance"})
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.GET("", apiBanner)
	apiv1.GET("/health", apiHealth)

	catalogHandlers(apiv1)

	authHandlers(apiv1.Group("/auth"))
	userHandlers(apiv1.Group("/users"))

	paymentConfigHandlers(apiv1.Group("/payments"))
	chatbotHandlers(apiv1.Group("/chatbot"))

	flights := apiv1.Group("/flights")
	flights.Use(middlewares.OptionalAuthMiddleware)
	flightHandlers(flights)

	hotels := apiv1.Group("/hotels")
	hotels.Use(middlewares.OptionalAuthMiddleware)
	hotelHandlers(hotels)

	social := apiv1.Group("/social")
	social.Use(middlewares.OptionalAuthMiddleware)
	socialPublicHandlers(social)

	return apiv1
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()
	boot.InitScheduler()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		cc := cors.DefaultConfig()
		cc.AllowAllOrigins = false
		cc.AllowOriginFunc = func(origin string) bool { return true }
		cc.AllowCredentials = true
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		router.Use(cors.New(cc))
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("searchdate", searchDateValidatorFunc)
	}

	router = maintenanceModeMiddleware(router)

	publicRoutes(router)

	stripeWebhookRoute(router)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		bookingHandlers(authorized.Group("/bookings"))
		walletHandlers(authorized.Group("/wallet"))
		paymentHandlers(authorized.Group("/payments"))
		cartHandlers(authorized.Group("/cart"))
		orderHandlers(authorized.Group("/store/orders"))
		socialHandlers(authorized.Group("/social"))
		itineraryHandlers(authorized.Group("/itineraries"))
		aiPlannerHandlers(authorized.Group("/ai/itinerary"))
	}

	admin := router.Group(apiPrefix)
	admin.Use(middlewares.AdminMiddleware)
	adminHandlers(admin.Group("/admin"))

	emailHandlers(authorized.Group("/email"), admin.Group("/email"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
