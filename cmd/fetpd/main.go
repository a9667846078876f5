// fetpd runs a classic FTP server backed by a directory on the local
// filesystem.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	ftpserver "github.com/relayftp/fetpd"
	"github.com/relayftp/fetpd/log/gokit"
)

func main() {
	os.Exit(run())
}

func run() int {
	var confFile, listenOverride, rootOverride string

	flag.StringVar(&confFile, "conf", "fetpd.toml", "Configuration file (created if missing)")
	flag.StringVar(&listenOverride, "listen", "", "Override the configured listen address")
	flag.StringVar(&rootOverride, "root", "", "Override the configured root directory")
	flag.Parse()

	logger := gokit.NewGKLoggerStdoutLeveled(os.Getenv("FETP_LOG_LEVEL"))

	cfg, err := ftpserver.LoadConfig(confFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetpd: %v\n", err)

		return 1
	}

	if listenOverride != "" {
		cfg.ListenAddr = listenOverride
	}

	if rootOverride != "" {
		cfg.Root = rootOverride
	}

	env := &ftpserver.Environment{
		FS:   ftpserver.FileSystem(afero.NewBasePathFs(afero.NewOsFs(), cfg.Root)),
		Auth: ftpserver.AuthFuncFromAccounts(cfg.Users),
	}

	srv := ftpserver.NewFtpServer(ftpserver.Settings{ListenAddr: cfg.ListenAddr}, env, logger)

	if err := srv.Listen(); err != nil {
		logger.Error("could not bind listener", err, "address", cfg.ListenAddr)

		return 1
	}

	go waitForShutdown(srv, logger)

	if err := srv.Serve(); err != nil {
		logger.Error("server stopped", err)

		return 1
	}

	return 0
}

func waitForShutdown(srv *ftpserver.FtpServer, logger interface{ Info(string, ...interface{}) }) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	<-sig

	logger.Info("shutting down")
	_ = srv.Stop()
}
