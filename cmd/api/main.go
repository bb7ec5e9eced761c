package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/barberclub/booking-api/internal/cache"
	"github.com/barberclub/booking-api/internal/config"
	dbpkg "github.com/barberclub/booking-api/internal/db"
	"github.com/barberclub/booking-api/internal/logging"
	"github.com/barberclub/booking-api/internal/metrics"
	"github.com/barberclub/booking-api/internal/payments"
	"github.com/barberclub/booking-api/internal/routes"
	"github.com/barberclub/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if !timezone.IsValid(cfg.Timezone) {
		log.Fatal().Str("timezone", cfg.Timezone).Msg("timezone IANA inválida")
	}

	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPass)
	availCache := cache.NewAvailabilityCache(redisClient, cfg.AvailabilityCacheTTL)

	var gateway payments.Gateway
	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Fatal().Err(err).Msg("falha ao configurar Mercado Pago")
		}
		gateway = mp
	} else {
		// sem token o webhook responde 500 e o provedor reentrega
		log.Warn().Msg("MP_ACCESS_TOKEN ausente, webhook de pagamento desabilitado")
		gateway = payments.Disabled{}
	}

	metrics.Register()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, availCache, gateway, log)

	log.Info().Str("addr", cfg.Addr()).Str("timezone", cfg.Timezone).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
