package main

import (
	"os"

	"github.com/ZygmuntJakub/skat/internal/config"
	"github.com/ZygmuntJakub/skat/internal/handler"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}
	lvl, err := cfg.Level()
	if err != nil {
		logrus.WithError(err).Fatal("parsing log level")
	}
	logrus.SetLevel(lvl)

	if len(os.Args) > 1 && os.Args[1] == "simulation" {
		StartSimulation(cfg)
		return
	}
	h := &handler.Handler{Log: logrus.StandardLogger()}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/ping", func(c echo.Context) error {
		return c.String(200, "pong")
	})

	e.POST("/player", h.AddPlayer)
	e.GET("/player", h.ListPlayers)
	e.POST("/round", h.PlayRound)

	e.Logger.Fatal(e.Start(":" + cfg.HTTPPort))
}
