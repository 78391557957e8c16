package main

import (
	"context"
	"log"
	"net/http"

	"raeesatours/internal/api"
	"raeesatours/internal/auth"
	"raeesatours/internal/config"
	"raeesatours/internal/db"
	"raeesatours/internal/repository"
	"raeesatours/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	sender := service.NewSenderService()

	registrationRepo := repository.NewRegistrationRepository(client)
	registrationSvc := service.NewRegistrationService(registrationRepo, sender)

	contactRepo := repository.NewContactRepository(client)
	contactSvc := service.NewContactService(contactRepo, sender)

	adminAuthRepo := repository.NewAdminAuthRepository(client)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	registrationHandler := api.NewRegistrationHandler(registrationSvc)
	contactHandler := api.NewContactHandler(contactSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Welcome to Raeesa Tours API"}`))
	}).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/registrations", registrationHandler.CreateRegistration).Methods("POST")
	r.HandleFunc("/api/contact", contactHandler.CreateContact).Methods("POST")
	r.HandleFunc("/api/auth/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/registrations", registrationHandler.ListRegistrations).Methods("GET")
	admin.HandleFunc("/registrations/{id}", registrationHandler.GetRegistration).Methods("GET")
	admin.HandleFunc("/registrations/{id}", registrationHandler.DeleteRegistration).Methods("DELETE")
	admin.HandleFunc("/contact", contactHandler.ListContacts).Methods("GET")
	admin.HandleFunc("/contact/{id}", contactHandler.UpdateContact).Methods("PATCH")
	admin.HandleFunc("/contact/{id}", contactHandler.DeleteContact).Methods("DELETE")
	admin.HandleFunc("/auth/admins", adminAuthHandler.CreateAdmin).Methods("POST")

	// Daily unread-contact digest
	jobSvc := service.NewJobService(contactSvc)
	c := cron.New()
	if _, err := c.AddFunc("0 8 * * *", func() {
		if err := jobSvc.SendUnreadContactDigest(context.Background()); err != nil {
			log.Printf("Digest job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule digest job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.CORSOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
