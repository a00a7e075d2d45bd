package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/app"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/config"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	if os.Getenv("CONFIG_PATH") == "" {
		_ = os.Setenv("CONFIG_PATH", defaultConfigPath)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
