package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/awal99/data-transfer/app/echoServer/controller/history"
	"github.com/awal99/data-transfer/app/echoServer/controller/order"
	"github.com/awal99/data-transfer/app/echoServer/controller/settings"
)

type C struct {
	Order    *order.Controller
	History  *history.Controller
	Settings *settings.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Send
	v1.POST("/orders", c.Order.Submit)

	// History
	v1.GET("/transactions", c.History.List)
	v1.DELETE("/transactions", c.History.Clear)

	// Settings
	v1.GET("/settings/credential", c.Settings.GetCredential)
	v1.PUT("/settings/credential", c.Settings.SaveCredential)
	v1.DELETE("/settings/credential", c.Settings.ClearCredential)
	v1.DELETE("/settings/data", c.Settings.ClearAll)
	v1.GET("/limits", c.Settings.Limits)
}
