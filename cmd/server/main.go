package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teatak/phonseg/config"
	"github.com/teatak/phonseg/dictionary"
	"github.com/teatak/phonseg/segmenter"
	"github.com/teatak/phonseg/store/postgres"
)

// Engine is hot-reloadable: /reload swaps it under the lock while
// in-flight requests keep the segmenter they already grabbed.
type engine struct {
	mu  sync.RWMutex
	seg *segmenter.Segmenter
}

func (e *engine) get() *segmenter.Segmenter {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seg
}

func (e *engine) set(s *segmenter.Segmenter) {
	e.mu.Lock()
	e.seg = s
	e.mu.Unlock()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)

	eng := &engine{}
	if err := reloadEngine(eng, cfg, logger); err != nil {
		logger.Error("initial load failed", "error", err)
		os.Exit(1)
	}

	accessLog, err := os.OpenFile(cfg.Server.AccessLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Error("open access log", "path", cfg.Server.AccessLog, "error", err)
		os.Exit(1)
	}
	defer accessLog.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/segment", handleSegment(eng, accessLog))
	router.POST("/reload", handleReload(eng, cfg, logger))
	router.GET("/healthz", handleHealth(eng))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Info("server started", "addr", srv.Addr, "dict_source", cfg.Dictionary.Source)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loadEntries fetches the dictionary from the configured source.
func loadEntries(cfg *config.Config) ([]dictionary.Entry, error) {
	switch cfg.Dictionary.Source {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		defer pool.Close()
		return postgres.New(pool).ListAll(ctx)
	default:
		return dictionary.LoadFile(cfg.Dictionary.Path)
	}
}

func reloadEngine(eng *engine, cfg *config.Config, logger *slog.Logger) error {
	entries, err := loadEntries(cfg)
	if err != nil {
		return err
	}
	idx, err := dictionary.BuildIndex(entries)
	if err != nil {
		return err
	}
	eng.set(segmenter.NewSegmenter(idx))
	logger.Info("engine reloaded", "entries", idx.Len(), "max_pronunciation", idx.MaxLen())
	return nil
}

type segRequest struct {
	Phonemes []string `json:"phonemes"`
}

type segResponse struct {
	Combinations [][]string `json:"combinations"`
}

func handleSegment(eng *engine, accessLog io.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req segRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Log inputs for later discovery of missing pronunciations.
		if len(req.Phonemes) > 0 {
			go func(line string) {
				accessLog.Write([]byte(line + "\n"))
			}(strings.Join(req.Phonemes, " "))
		}

		combos := eng.get().Segment(req.Phonemes)
		c.JSON(http.StatusOK, segResponse{Combinations: combos})
	}
}

func handleReload(eng *engine, cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := reloadEngine(eng, cfg, logger); err != nil {
			logger.Error("reload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
	}
}

func handleHealth(eng *engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"entries": eng.get().Index.Len(),
		})
	}
}
