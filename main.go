package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/BazaarWorks/BW-Backend/internal/auth"
	"github.com/BazaarWorks/BW-Backend/internal/db"
	"github.com/BazaarWorks/BW-Backend/internal/gate"
	"github.com/BazaarWorks/BW-Backend/internal/middleware"
	"github.com/BazaarWorks/BW-Backend/internal/token"
	"github.com/BazaarWorks/BW-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

// DashboardHandler is a placeholder for the page layer: anything it serves
// has already passed the gate, so a principal is always on the context.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, gate.LoginPath, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "Welcome back, %s (%s)\n", principal.DisplayName, principal.Role)
}

func main() {
	_ = godotenv.Load(".env.local")

	issuer, err := token.NewIssuer(token.ConfigFromEnv())
	if err != nil {
		log.Fatal("Session signing misconfigured: ", err)
	}

	conn, err := db.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := auth.Init(conn); err != nil {
		log.Fatal(err)
	}

	store := auth.NewGormStore(conn)
	handler := auth.NewHandler(store, issuer)
	limiter := middleware.NewLoginLimiter(1, 5)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(gate.Middleware(issuer, store))

	r.Get("/", RootHandler)
	r.Get("/dashboard", DashboardHandler)
	r.Get("/{username}/dashboard", DashboardHandler)
	r.Mount("/api/auth", auth.SetupRoutes(handler, limiter))

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
