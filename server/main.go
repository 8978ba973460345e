package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// envOr returns the environment value for key, or def when unset
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// .env is optional; flags still win over environment
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("DIVER_ADDR", ":8080"), "HTTP listen address")
	clientDir := flag.String("client", envOr("DIVER_CLIENT_DIR", "../client"), "Path to client directory")
	publicURL := flag.String("public-url", envOr("DIVER_PUBLIC_URL", ""), "Public URL encoded into the share QR")
	flag.Parse()

	hub := NewHub()
	go hub.Run()

	janitorStop := make(chan struct{})
	go hub.runs.Janitor(30*time.Second, janitorStop)

	mux := SetupRoutes(hub, *clientDir, *publicURL)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Printf("Server starting on %s", *addr)
		log.Printf("Serving client files from %s", *clientDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down...")
	close(janitorStop)
	server.Close()
}
