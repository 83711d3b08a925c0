package main

import (
	"flag"
	"net/http"
	"os"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/storage"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := storage.NewDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.CleanExpiredSessions(); err != nil {
		log.Warnf("failed to clean expired sessions: %v", err)
	}

	h := handlers.NewHandlers(db, cfg.Web.TemplateDir, cfg.Web.SecureCookie, cfg.Session.TTL)
	router := setupRouter(h, cfg.Web.StaticDir)

	log.Infof("listening on %s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, router))
}

func setupRouter(h *handlers.Handlers, staticDir string) *mux.Router {
	r := mux.NewRouter()
	r.Use(handlers.RequestLogger, handlers.NoCache)

	// Public routes
	r.HandleFunc("/login", h.LoginForm).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("GET")
	r.HandleFunc("/register", h.RegisterForm).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")

	// Protected routes: the auth guard runs before any store access
	protected := func(fn http.HandlerFunc) http.Handler {
		return h.RequireAuth(fn)
	}
	r.Handle("/", protected(h.Dashboard)).Methods("GET")
	r.Handle("/add_income", protected(h.AddIncomeForm)).Methods("GET")
	r.Handle("/add_income", protected(h.AddIncome)).Methods("POST")
	r.Handle("/add_expense", protected(h.AddExpenseForm)).Methods("GET")
	r.Handle("/add_expense", protected(h.AddExpense)).Methods("POST")
	r.Handle("/set_budget", protected(h.SetBudgetForm)).Methods("GET")
	r.Handle("/set_budget", protected(h.SetBudget)).Methods("POST")
	r.Handle("/set_goal", protected(h.SetGoalForm)).Methods("GET")
	r.Handle("/set_goal", protected(h.SetGoal)).Methods("POST")
	r.Handle("/change_password", protected(h.ChangePasswordForm)).Methods("GET")
	r.Handle("/change_password", protected(h.ChangePassword)).Methods("POST")

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r
}
