package main

import (
	"net/http"
	"os"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/db"
	"rentacar/internal/repository"
	"rentacar/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	database, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	jobRepo := repository.NewJobRepository(database)

	authSvc := service.NewAuthService(userRepo, jwtSecret, log)
	userSvc := service.NewUserService(userRepo, bookingRepo, log)
	vehicleSvc := service.NewVehicleService(vehicleRepo, bookingRepo, log)
	bookingSvc := service.NewBookingService(bookingRepo, vehicleRepo, log)
	jobSvc := service.NewJobService(jobRepo, log)

	authHandler := api.NewAuthHandler(authSvc, log)
	userHandler := api.NewUserHandler(userSvc, log)
	vehicleHandler := api.NewVehicleHandler(vehicleSvc, bookingSvc, log)
	bookingHandler := api.NewBookingHandler(bookingSvc, log)

	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	v1.HandleFunc("/auth/signin", authHandler.Signin).Methods("POST")
	v1.HandleFunc("/vehicles", vehicleHandler.List).Methods("GET")
	v1.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods("GET")
	v1.HandleFunc("/vehicles/{id}/availability", vehicleHandler.Availability).Methods("GET")

	// Authenticated endpoints
	protected := v1.NewRoute().Subrouter()
	protected.Use(auth.Middleware(jwtSecret))
	protected.HandleFunc("/users", userHandler.List).Methods("GET")
	protected.HandleFunc("/users/{id}", userHandler.Update).Methods("PUT")
	protected.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods("PUT")
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	protected.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	protected.HandleFunc("/bookings/{id}", bookingHandler.UpdateStatus).Methods("PUT")

	// Hourly sweep keeps vehicle availability in step with expired bookings.
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.ReturnOverdueBookings(); err != nil {
			log.WithError(err).Error("overdue booking sweep failed")
		}
	}); err != nil {
		log.Fatalf("Failed to schedule sweep job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
