package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"cardturner/internal/config"
	"cardturner/internal/mux"
	"cardturner/pkg/ingest"
	"cardturner/pkg/session"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the build version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured value)")

func main() {
	flag.Parse()
	setupLogger()

	if flag.NArg() != 1 {
		logrus.Fatal("usage: cardturner [-addr host:port] <decks.ini|decks.xlsx>")
	}

	// fail fast: a bad source means no session
	res, err := ingest.FromFile(flag.Arg(0)).Parse()
	if err != nil {
		logrus.WithError(err).Fatal("could not read deck source")
	}

	sess := session.New(res)
	sess.Start()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = config.Instance().ListenAddr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, sess))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).WithField("title", res.Settings.Title).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
