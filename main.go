package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/configs"
	"github.com/imeshiperera12/FoodOrdering-sub000/middlewares"
	"github.com/imeshiperera12/FoodOrdering-sub000/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg := configs.LoadConfig()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("app", "storefront").Logger()

	// DB (เก็บตะกร้าอย่างเดียว)
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowOrigins))

	cleanup := routes.RegisterRoutes(r, cfg, db, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Info().Str("addr", addr).Msg("🚀 storefront gateway running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	// รอ SIGINT/SIGTERM แล้วปิดแบบเรียบร้อย: หยุดรับ request ก่อน
	// ค่อยหยุด watcher/heartbeat ที่ยัง poll ค้างอยู่
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	cleanup()
}
