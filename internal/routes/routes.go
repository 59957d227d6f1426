package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdKamrul-h/bulksms-proxy/internal/handler"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/config"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/gosms"
	"go.uber.org/zap"
)

func SMS(router *gin.RouterGroup, cfg config.Config, gw *gosms.Client, log *zap.Logger) {
	h := handler.NewSMSHandler(cfg, gw, log)

	router.GET("/balance", h.Balance)
	router.POST("/send-sms", h.SendSMS)
	router.POST("/send-sms-bulk", h.SendBulkSMS)
}
