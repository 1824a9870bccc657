package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Inventario-admin/internal/application/analytics"
	"github.com/jhoicas/Inventario-admin/internal/application/auth"
	"github.com/jhoicas/Inventario-admin/internal/application/store"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/kvstore"
	"github.com/jhoicas/Inventario-admin/pkg/config"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
	"github.com/jhoicas/Inventario-admin/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento clave/valor")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	m := metrics.New(cfg.Metrics.Namespace)
	db, err := store.Open(ctx, kv, store.Options{
		Logger:            log,
		Metrics:           m,
		SimulatedLatency:  cfg.Store.SimulatedLatency,
		StrictPersistence: cfg.Store.StrictPersistence,
	})
	if err != nil {
		log.Error().Err(err).Msg("rehidratar stores")
		return
	}

	session := auth.NewAuthContext(db.Users, db.Roles, kv, auth.DemoVerifier{}, log)
	defer session.Close()
	if err := session.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("restaurar sesión")
	}
	if u := session.CurrentUser(); u != nil {
		log.Info().
			Str("username", u.Username).
			Bool("authenticated", session.IsAuthenticated()).
			Msg("sesión activa")
	}

	dashboard := analytics.NewDashboardUseCase(db.Items, db.Sales)
	report(log, dashboard)

	// Cada cambio confirmado en artículos o ventas recalcula el panel.
	itemsCh := db.Items.Changes(ctx)
	salesCh := db.Sales.Changes(ctx)
	<-itemsCh
	<-salesCh
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("señal de apagado recibida, cerrando...")
			log.Info().Msg("aplicación detenida")
			return
		case _, ok := <-itemsCh:
			if ok {
				report(log, dashboard)
			}
		case _, ok := <-salesCh:
			if ok {
				report(log, dashboard)
			}
		}
	}
}

func report(log *logger.Logger, dashboard *analytics.DashboardUseCase) {
	mt := dashboard.GetMetrics(time.Now())
	log.Info().
		Int("total_items_sold", mt.TotalItemsSold).
		Int("items_sold_today", mt.ItemsSoldToday).
		Str("most_popular_item", mt.MostPopularItem).
		Str("total_revenue", mt.TotalRevenue.StringFixed(2)).
		Str("revenue_today", mt.RevenueToday.StringFixed(2)).
		Int("low_stock_items", mt.LowStockItems).
		Int("out_of_stock_items", mt.OutOfStockItems).
		Msg("panel")

	for _, s := range dashboard.ReplenishmentList() {
		log.Warn().
			Str("item", s.ItemName).
			Int("stock", s.CurrentStock).
			Int("min_stock", s.MinStockLevel).
			Int("suggested_qty", s.SuggestedOrderQty).
			Msg("reposición sugerida")
	}
}
