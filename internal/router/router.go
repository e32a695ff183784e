package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jihanurrahman33/BREMS/internal/handler"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/token"
)

func Setup(l *ledger.Ledger, issuer *token.Issuer) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "brems",
		})
	})

	propertyHandler := handler.NewPropertyHandler(l)
	investmentHandler := handler.NewInvestmentHandler(l)
	platformHandler := handler.NewPlatformHandler(l, issuer)

	// API版本组
	v1 := r.Group("/api/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("", propertyHandler.GetProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.GET("/:id/stats", propertyHandler.GetPropertyStats)
			properties.POST("/:id/invest", investmentHandler.Invest)
			properties.POST("/:id/complete", propertyHandler.CompleteProperty)
			properties.GET("/:id/investors/:address", investmentHandler.GetUserInvestment)
		}

		investments := v1.Group("/investments")
		{
			investments.POST("/:id/withdraw", investmentHandler.WithdrawInvestment)
		}

		investors := v1.Group("/investors")
		{
			investors.GET("/:address/investments", investmentHandler.GetUserInvestments)
		}

		platform := v1.Group("/platform")
		{
			platform.GET("/fee", platformHandler.GetPlatformFee)
			platform.PUT("/fee", platformHandler.UpdatePlatformFee)
			platform.POST("/treasury/withdraw", platformHandler.WithdrawTreasury)
		}

		v1.GET("/stats", platformHandler.GetPlatformStats)
		v1.GET("/events", platformHandler.GetEvents)
		v1.GET("/token/balances/:address", platformHandler.GetTokenBalance)
	}

	return r
}

// corsMiddleware 跨域中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware 为每个请求分配追踪ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
