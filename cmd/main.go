package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/RevOpsHQ/api-salesops/internal/closing"
	"github.com/RevOpsHQ/api-salesops/internal/config"
	"github.com/RevOpsHQ/api-salesops/internal/db"
	"github.com/RevOpsHQ/api-salesops/internal/funnel"
	"github.com/RevOpsHQ/api-salesops/internal/middleware"
	"github.com/RevOpsHQ/api-salesops/internal/mrrcommission"
	"github.com/RevOpsHQ/api-salesops/internal/mrrschedule"
	"github.com/RevOpsHQ/api-salesops/internal/notification"
	"github.com/RevOpsHQ/api-salesops/internal/product"
	"github.com/RevOpsHQ/api-salesops/internal/realtime"
	"github.com/RevOpsHQ/api-salesops/internal/report"
	"github.com/RevOpsHQ/api-salesops/internal/sale"
	"github.com/RevOpsHQ/api-salesops/internal/task"
	"github.com/RevOpsHQ/api-salesops/internal/team"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("could not load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	auth.Init(cfg.JWTSecret)

	database, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}

	if err := database.AutoMigrate(
		&team.Team{},
		&team.TeamMember{},
		&appointment.Appointment{},
		&sale.Sale{},
		&mrrcommission.MRRCommission{},
		&mrrschedule.MRRSchedule{},
		&task.Task{},
		&activity.Entry{},
		&funnel.Funnel{},
		&product.Product{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migration failed")
	}

	validate := validator.New()
	hub := realtime.NewHub()
	webhook := notification.NewWebhook(cfg.ReminderWebhookURL, log)

	// Repositories
	members := team.NewRepository()
	appointments := appointment.NewRepository(database)
	sales := sale.NewRepository(database)
	commissions := mrrcommission.NewRepository(database)
	schedules := mrrschedule.NewRepository(database)
	tasks := task.NewRepository(database)
	activities := activity.NewRepository(database)
	funnels := funnel.NewRepository(database)
	products := product.NewRepository(database)

	// Handlers
	teamHandler := team.NewHandler(database, validate)
	appointmentHandler := appointment.NewHandler(database, appointments, members, activities, hub, validate)
	saleHandler := sale.NewHandler(sales)
	commissionHandler := mrrcommission.NewHandler(commissions)
	scheduleHandler := mrrschedule.NewHandler(schedules)
	taskHandler := task.NewHandler(tasks, validate)
	activityHandler := activity.NewHandler(activities)
	funnelHandler := funnel.NewHandler(funnels, validate)
	productHandler := product.NewHandler(products, validate)
	reportHandler := report.NewHandler(database, members, appointments, tasks, activities)

	closeStore := closing.NewStore(database, members, appointments, sales, commissions,
		schedules, tasks, activities, cfg.CloserCommissionPct, cfg.SetterCommissionPct)
	closeHandler := closing.NewHandler(closing.NewService(closeStore, hub, webhook))

	wsHandler := realtime.NewWSHandler(hub, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))

	// Public routes
	r.HandleFunc("/login", teamHandler.Login).Methods("POST")
	r.HandleFunc("/p/{slug}", funnelHandler.GetPublic).Methods("GET")

	// Authenticated routes
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	api.Handle("/members", auth.RequireAdmin(http.HandlerFunc(teamHandler.CreateMember))).Methods("POST")
	api.HandleFunc("/members", teamHandler.ListMembers).Methods("GET")
	api.HandleFunc("/members/{id}", teamHandler.GetMember).Methods("GET")
	api.Handle("/members/{id}", auth.RequireAdmin(http.HandlerFunc(teamHandler.UpdateMember))).Methods("PUT")
	api.Handle("/members/{id}", auth.RequireAdmin(http.HandlerFunc(teamHandler.DeleteMember))).Methods("DELETE")
	api.HandleFunc("/members/{id}/mrr-commissions", commissionHandler.ListByMember).Methods("GET")

	api.HandleFunc("/appointments", appointmentHandler.Create).Methods("POST")
	api.HandleFunc("/appointments", appointmentHandler.List).Methods("GET")
	api.HandleFunc("/appointments/bulk-delete", appointmentHandler.BulkDelete).Methods("POST")
	api.HandleFunc("/appointments/{id}", appointmentHandler.Get).Methods("GET")
	api.HandleFunc("/appointments/{id}/assign", appointmentHandler.Assign).Methods("POST")
	api.HandleFunc("/appointments/{id}/confirm", appointmentHandler.Confirm).Methods("POST")
	api.HandleFunc("/appointments/{id}/cancel", appointmentHandler.Cancel).Methods("POST")
	api.HandleFunc("/appointments/{id}/reschedule", appointmentHandler.Reschedule).Methods("POST")
	api.HandleFunc("/appointments/{id}/close", closeHandler.Close).Methods("POST")
	api.HandleFunc("/appointments/{id}/activity", activityHandler.ListByAppointment).Methods("GET")
	api.HandleFunc("/appointments/{id}/mrr-commissions", commissionHandler.ListByAppointment).Methods("GET")

	api.HandleFunc("/sales", saleHandler.List).Methods("GET")
	api.HandleFunc("/sales/{id}", saleHandler.Get).Methods("GET")
	api.HandleFunc("/sales/{id}", saleHandler.Update).Methods("PUT")

	api.HandleFunc("/mrr-commissions/{id}/status", commissionHandler.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/mrr-schedules", scheduleHandler.List).Methods("GET")
	api.HandleFunc("/mrr-schedules/{id}", scheduleHandler.Get).Methods("GET")
	api.HandleFunc("/mrr-schedules/{id}/advance", scheduleHandler.Advance).Methods("POST")
	api.HandleFunc("/mrr-schedules/{id}/cancel", scheduleHandler.Cancel).Methods("POST")

	api.HandleFunc("/tasks", taskHandler.Create).Methods("POST")
	api.HandleFunc("/tasks", taskHandler.List).Methods("GET")
	api.HandleFunc("/tasks/{id}/complete", taskHandler.Complete).Methods("POST")

	api.HandleFunc("/reports/eod", reportHandler.EOD).Methods("GET")
	api.HandleFunc("/reports/weekly", reportHandler.Weekly).Methods("GET")

	api.HandleFunc("/funnels", funnelHandler.Create).Methods("POST")
	api.HandleFunc("/funnels", funnelHandler.List).Methods("GET")
	api.HandleFunc("/funnels/{id}", funnelHandler.Get).Methods("GET")
	api.HandleFunc("/funnels/{id}", funnelHandler.Update).Methods("PUT")
	api.HandleFunc("/funnels/{id}", funnelHandler.Delete).Methods("DELETE")
	api.HandleFunc("/funnels/{id}/publish", funnelHandler.Publish).Methods("POST")

	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	api.Handle("/realtime", wsHandler).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
