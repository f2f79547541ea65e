// Package main data-transfer API.
//
// @title           data-transfer API
// @version         1.0
// @description     Front-end service for purchasing and sending mobile-data bundles.
// @BasePath        /
// @schemes         http
package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/awal99/data-transfer/app/echoServer"
	historyctrl "github.com/awal99/data-transfer/app/echoServer/controller/history"
	orderctrl "github.com/awal99/data-transfer/app/echoServer/controller/order"
	settingsctrl "github.com/awal99/data-transfer/app/echoServer/controller/settings"
	"github.com/awal99/data-transfer/app/echoServer/validation"
	"github.com/awal99/data-transfer/config"
	"github.com/awal99/data-transfer/repository/datamart"
	"github.com/awal99/data-transfer/repository/kvstore"
	credsvc "github.com/awal99/data-transfer/service/credential"
	ordersvc "github.com/awal99/data-transfer/service/order"
	txlogsvc "github.com/awal99/data-transfer/service/txlog"
	"github.com/awal99/data-transfer/util/httpx"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// local store + upstream client
	kv := kvstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	dm := datamart.NewHTTP(cfg.UpstreamURL, httpx.NewClient(cfg.SubmitTimeout))

	// services
	cs := credsvc.New(kv, log)
	ts := txlogsvc.New(kv, log)
	osvc := ordersvc.New(cs, dm, ts, log)

	// controllers
	v := validator.New()
	orderC := &orderctrl.Controller{Svc: osvc, V: v, Log: log}
	historyC := &historyctrl.Controller{Svc: ts, Log: log}
	settingsC := &settingsctrl.Controller{Svc: cs, V: v, Log: log, Cfg: cfg}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Order:    orderC,
		History:  historyC,
		Settings: settingsC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
