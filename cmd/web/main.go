package main

import (
	_ "embed"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starwarp/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	dotErr := config.LoadDotEnv()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
		Level:           config.LogLevel(),
	})
	if dotErr != nil {
		logger.Warn("ignoring dotenv", "err", dotErr)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_PORT", "2222")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newHandler(renderPage(sshHost, sshPort), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// renderPage fills the connection details into the landing page.
func renderPage(sshHost, sshPort string) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHPort}}", sshPort,
	).Replace(htmlPage)
}

func newHandler(page string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := io.WriteString(w, page); err != nil {
			logger.Debug("write page", "remote", r.RemoteAddr, "err", err)
		}
	})
	return mux
}
