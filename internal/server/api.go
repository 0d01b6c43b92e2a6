package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
	"github.com/socialinept/princessplatelets-server-go/internal/config"
	"github.com/socialinept/princessplatelets-server-go/internal/game"
)

// Server exposes the rules engine over a REST API plus a websocket event
// stream.
type Server struct {
	cfg       config.ServerConfig
	manager   *game.Manager
	cardTypes []*catalog.CardType
	logger    *zap.Logger
	router    *gin.Engine

	// The engine is single-threaded by design; engineMu serializes all
	// handler access to it.
	engineMu chMutex
}

// chMutex is a channel-based mutex so lock acquisition can respect request
// context cancellation.
type chMutex chan struct{}

func newCHMutex() chMutex {
	m := make(chMutex, 1)
	m <- struct{}{}
	return m
}

func (m chMutex) lock(ctx context.Context) bool {
	select {
	case <-m:
		return true
	case <-ctx.Done():
		return false
	}
}

func (m chMutex) unlock() {
	m <- struct{}{}
}

// New builds the server and its routes.
func New(cfg config.ServerConfig, manager *game.Manager, cardTypes []*catalog.CardType, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		manager:   manager,
		cardTypes: cardTypes,
		logger:    logger,
		engineMu:  newCHMutex(),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	v1 := router.Group("/v1")
	{
		v1.GET("/cardTypes", s.handleCardTypes)
		v1.POST("/games", s.handleCreateGame)
		v1.GET("/games/:id", s.handleGetGame)
		v1.DELETE("/games/:id", s.handleDeleteGame)
		v1.POST("/games/:id/actions", s.handleSubmitAction)
		v1.POST("/games/:id/reset", s.handleResetGame)
		v1.GET("/games/:id/events", s.handleEvents)
	}

	s.router = router
	return s
}

// Router returns the underlying gin engine, exposed for tests.
func (s *Server) Router() http.Handler { return s.router }

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("address", s.cfg.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// handleCardTypes serves the card catalog.
func (s *Server) handleCardTypes(c *gin.Context) {
	c.JSON(http.StatusOK, s.cardTypes)
}

func (s *Server) handleCreateGame(c *gin.Context) {
	if !s.engineMu.lock(c.Request.Context()) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	defer s.engineMu.unlock()

	g := s.manager.CreateGame()
	c.JSON(http.StatusCreated, newGameView(g))
}

func (s *Server) handleGetGame(c *gin.Context) {
	g, ok := s.manager.Game(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if !s.engineMu.lock(c.Request.Context()) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	defer s.engineMu.unlock()

	c.JSON(http.StatusOK, newGameView(g))
}

func (s *Server) handleDeleteGame(c *gin.Context) {
	if !s.engineMu.lock(c.Request.Context()) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	defer s.engineMu.unlock()

	if err := s.manager.RemoveGame(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleResetGame(c *gin.Context) {
	g, ok := s.manager.Game(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if !s.engineMu.lock(c.Request.Context()) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	defer s.engineMu.unlock()

	g.Reset()
	c.JSON(http.StatusOK, newGameView(g))
}

// actionRequest is the wire shape of a submitted action.
type actionRequest struct {
	Kind     string   `json:"kind" binding:"required"`
	PlayerID string   `json:"playerId"`
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	CardID   string   `json:"cardId"`
	CardIDs  []string `json:"cardIds"`
}

// actionResponse mirrors the engine's ActionResult.
type actionResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode,omitempty"`
}

func (s *Server) handleSubmitAction(c *gin.Context) {
	g, ok := s.manager.Game(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var action game.Action
	switch game.ActionKind(req.Kind) {
	case game.ActionKindReroll:
		action = game.RerollAction{PlayerID: req.PlayerID, CardIDs: req.CardIDs}
	case game.ActionKindPass:
		action = game.PassAction{PlayerID: req.PlayerID}
	case game.ActionKindPlayCard:
		action = game.PlayCardAction{
			Row:      req.Row,
			Col:      req.Col,
			PlayerID: req.PlayerID,
			CardID:   req.CardID,
		}
	default:
		c.JSON(http.StatusOK, actionResponse{
			Success:   false,
			ErrorCode: string(game.ErrUnknownAction),
		})
		return
	}

	if !s.engineMu.lock(c.Request.Context()) {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	result := g.Act(action)
	s.engineMu.unlock()

	c.JSON(http.StatusOK, actionResponse{
		Success:   result.Success,
		ErrorCode: string(result.ErrorCode),
	})
}
