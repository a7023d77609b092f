package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacationplanner/config"
	"vacationplanner/database"
	"vacationplanner/handlers"
	"vacationplanner/logger"
	"vacationplanner/middleware"
	"vacationplanner/observability"
	"vacationplanner/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel, cfg.IsRelease(), zap.String("service", "vacationplanner")); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.L()
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	shutdownMetrics, err := observability.InitProvider()
	if err != nil {
		return err
	}
	shutdownTracing, err := observability.InitTracing("vacationplanner")
	if err != nil {
		return err
	}
	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		return err
	}

	store, err := database.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	// keep a nil Store from becoming a non-nil interface
	var (
		planStore services.PlanStore
		pinger    handlers.Pinger
	)
	if store != nil {
		planStore, pinger = store, store
	}

	amadeus := services.NewAmadeusClient(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret, cfg.Amadeus.BaseURL(), log)
	warmCtx, cancelWarm := context.WithTimeout(ctx, cfg.SourceTimeout)
	amadeus.Warmup(warmCtx)
	cancelWarm()

	quotes := services.NewQuoteCache(cfg.QuoteCacheTTL)
	var (
		flightSources []services.FlightSource
		hotelSources  []services.HotelSource
	)
	if cfg.Amadeus.Enabled() {
		flightSources = append(flightSources, quotes.Flights(amadeus))
		hotelSources = append(hotelSources, quotes.Hotels(amadeus))
	}
	if cfg.AviationStack.APIKey != "" {
		flightSources = append(flightSources,
			quotes.Flights(services.NewAviationStackSource(cfg.AviationStack.APIKey, cfg.AviationStack.BaseURL)))
	}
	if cfg.Booking.APIKey != "" {
		hotelSources = append(hotelSources,
			quotes.Hotels(services.NewBookingComSource(cfg.Booking.APIKey, cfg.Booking.Host, cfg.Booking.BaseURL)))
	}
	log.Info("price sources",
		zap.Int("flight_sources", len(flightSources)),
		zap.Int("hotel_sources", len(hotelSources)))

	rng := services.NewLockedRand(time.Now().UnixNano())
	recommender := services.NewRecommender()
	flights := services.NewFlightService(rng, log,
		services.WithFlightSources(flightSources...),
		services.WithFlightTimeout(cfg.SourceTimeout),
		services.WithFlightMetrics(metrics))
	hotels := services.NewHotelService(log,
		services.WithHotelSources(hotelSources...),
		services.WithHotelTimeout(cfg.SourceTimeout),
		services.WithHotelMetrics(metrics))
	itinerary := services.NewItineraryBuilder(services.NewActivityService(rng))

	planner := services.NewTripPlanner(services.PlannerDeps{
		Recommender: recommender,
		Flights:     flights,
		Hotels:      hotels,
		Itinerary:   itinerary,
		Store:       planStore,
		Metrics:     metrics,
		Log:         log,
	})

	availabilityOpts := []services.AvailabilityOption{
		services.WithSimulatedDelay(cfg.AvailabilityDelay, cfg.AvailabilityDelay),
		services.WithAvailabilityTimeout(cfg.SourceTimeout),
	}
	if cfg.Amadeus.Enabled() {
		availabilityOpts = append(availabilityOpts, services.WithInventory(amadeus))
	}

	h := handlers.New(handlers.Deps{
		Planner:      planner,
		Recommender:  recommender,
		Availability: services.NewAvailabilityService(log, availabilityOpts...),
		Booking:      services.NewBookingService(),
		Maps:         services.NewMapService(cfg.MapProvider, cfg.GoogleMapsAPIKey),
		PDF:          services.NewPDFRenderer(cfg.PublicBaseURL),
		Excel:        services.NewExcelRenderer(),
		Store:        pinger,
		Metrics:      metrics,
		Log:          log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, h, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if cfg.PprofAddr != "" {
		startPprof(cfg.PprofAddr, log)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("vacation planner listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-sigCtx.Done():
		log.Info("shutting down gracefully, press Ctrl+C again to force")
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if store != nil {
		if err := store.Close(shutdownCtx); err != nil {
			log.Warn("closing trip store", zap.Error(err))
		}
	}
	if err := shutdownMetrics(shutdownCtx); err != nil {
		log.Warn("metrics provider shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer provider shutdown", zap.Error(err))
	}
	log.Info("server exiting")
	return nil
}

func newRouter(cfg *config.Config, h *handlers.Handler, log *zap.Logger) *gin.Engine {
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing("vacationplanner"))
	r.Use(middleware.Logger(log))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst).Limit())

	// nil trusts nobody, so ClientIP falls back to the socket address
	var proxies []string
	if len(cfg.TrustedProxies) > 0 {
		proxies = cfg.TrustedProxies
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		log.Warn("invalid TRUSTED_PROXIES, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h.Register(r.Group("/api"))
	r.GET("/metrics", gin.WrapH(observability.Handler()))
	return r
}

// startPprof serves net/http/pprof on a separate listener.
func startPprof(addr string, log *zap.Logger) {
	pprofRouter := gin.New()
	pprof.Register(pprofRouter)

	go func() {
		log.Info("pprof listening", zap.String("addr", addr))
		if err := pprofRouter.Run(addr); err != nil {
			log.Error("pprof server stopped", zap.Error(err))
		}
	}()
}
