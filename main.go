package main

import (
	"os"

	"snowman-meltdown/internal/app"
	"snowman-meltdown/internal/config"
	"snowman-meltdown/internal/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		config.Exitf("error: %v", err)
	}
	log, logFile, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		config.Exitf("error: %v", err)
	}

	_, err = app.New(cfg, app.DefaultContent(), log, os.Stdin, os.Stdout).Run()
	if err != nil {
		log.Error().Err(err).Msg("session aborted")
		logFile.Close()
		config.Exitf("error: %v", err)
	}
	logFile.Close()
}
