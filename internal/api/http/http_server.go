package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/api/dto"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/core"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/domain"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/middleware"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/stream"
)

// Server exposes the engine's computations over HTTP and streams depth views
// over websocket. It never submits transactions; all results are reports.
type Server struct {
	eng      *core.Engine
	hub      *stream.Hub[stream.DepthUpdate]
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewServer(eng *core.Engine, hub *stream.Hub[stream.DepthUpdate], log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		eng: eng,
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

func (s *Server) Run(addr string) error {
	return s.routes().Run(addr)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rl := middleware.NewRateLimiter(100 * time.Millisecond)

	api := r.Group("/", rl.Middleware())
	api.GET("/orderbook", s.getOrderbook)
	api.GET("/orderbook/depth", s.getDepth)
	api.GET("/orderbook/matches", s.getMatches)
	api.POST("/orders/simulate", s.simulateOrder)
	api.POST("/orders/check", s.checkFill)
	api.POST("/orderbook/snapshot", s.snapshotOrderbook)
	api.POST("/orderbook/restore", s.restoreOrderbook)

	// rate limiter stays off the stream; one connection serves many updates
	r.GET("/ws/depth", s.streamDepth)
	return r
}

func (s *Server) getOrderbook(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter required"})
		return
	}
	ob, err := s.eng.GetOrderbook(c.Request.Context(), symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GetOrderbookResponse{
		Symbol:    ob.Symbol,
		Bids:      convertOrders(ob.Bids),
		Asks:      convertOrders(ob.Asks),
		Timestamp: ob.Timestamp,
	})
}

func (s *Server) getDepth(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter required"})
		return
	}
	view, err := s.eng.Depth(c.Request.Context(), symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, convertDepth(symbol, view))
}

func (s *Server) getMatches(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter required"})
		return
	}
	matches, err := s.eng.Matches(c.Request.Context(), symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GetMatchesResponse{
		Symbol:  symbol,
		Matches: convertMatches(matches),
	})
}

func (s *Server) simulateOrder(c *gin.Context) {
	var req dto.SimulateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := s.eng.SimulateMarketOrder(c.Request.Context(), req.Symbol, req.Amount, domain.Side(req.Side))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SimulateOrderResponse{
		Matches:   convertMatches(res.Matches),
		Remaining: res.Remaining,
	})
}

func (s *Server) checkFill(c *gin.Context) {
	var req dto.CheckFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := s.eng.CheckImmediateFill(c.Request.Context(), req.Symbol, req.Price, req.Amount, domain.Side(req.Side))
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := dto.CheckFillResponse{
		CanFill:    res.CanFill,
		FillAmount: res.FillAmount,
	}
	if res.Priced {
		fillPrice := res.FillPrice
		slippage := res.Slippage
		resp.FillPrice = &fillPrice
		resp.Slippage = &slippage
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) snapshotOrderbook(c *gin.Context) {
	var req dto.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := s.eng.SnapshotOrderbook(c.Request.Context(), req.Symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SnapshotResponse{SnapshotID: id})
}

func (s *Server) restoreOrderbook(c *gin.Context) {
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := s.eng.RestoreOrderbook(c.Request.Context(), req.SnapshotID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RestoreResponse{Symbol: snap.Symbol, Ok: true})
}

// streamDepth upgrades the connection and forwards depth broadcasts for the
// requested symbol until the client goes away.
func (s *Server) streamDepth(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol query parameter required"})
		return
	}
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe(16)
	defer s.hub.Unsubscribe(sub)

	// drain client messages so pings and close frames are processed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case update, ok := <-sub.C():
			if !ok {
				return
			}
			if update.Symbol != symbol {
				continue
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		}
	}
}

func abortWithError(c *gin.Context, err error) {
	var invalid *domain.InvalidOrderError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func convertOrders(orders []domain.Order) []dto.Order {
	res := make([]dto.Order, len(orders))
	for i, o := range orders {
		res[i] = dto.Order{
			ID:        o.ID,
			Trader:    o.Trader,
			Symbol:    o.Symbol,
			Side:      dto.Side(o.Side),
			Price:     o.Price,
			Amount:    o.Amount,
			CreatedAt: o.CreatedAt,
		}
	}
	return res
}

func convertMatches(matches []domain.Match) []dto.Match {
	res := make([]dto.Match, len(matches))
	for i, m := range matches {
		res[i] = dto.Match{
			ID:          m.ID,
			BuyOrderID:  m.BuyOrderID,
			SellOrderID: m.SellOrderID,
			Amount:      m.Amount,
			Price:       m.Price,
			Timestamp:   m.Timestamp,
		}
	}
	return res
}

func convertDepth(symbol string, view domain.DepthView) dto.GetDepthResponse {
	resp := dto.GetDepthResponse{
		Symbol:    symbol,
		BuyDepth:  make([]dto.DepthLevel, len(view.BuyDepth)),
		SellDepth: make([]dto.DepthLevel, len(view.SellDepth)),
	}
	for i, l := range view.BuyDepth {
		resp.BuyDepth[i] = dto.DepthLevel{Price: l.Price, Amount: l.Amount}
	}
	for i, l := range view.SellDepth {
		resp.SellDepth[i] = dto.DepthLevel{Price: l.Price, Amount: l.Amount}
	}
	if view.HasBid {
		bestBid := view.BestBid
		resp.BestBid = &bestBid
	}
	if view.HasAsk {
		bestAsk := view.BestAsk
		resp.BestAsk = &bestAsk
	}
	// spread and mid stay absent rather than pretending zero is a quote
	if view.HasBid && view.HasAsk {
		spread := view.Spread
		mid := view.MidPrice
		resp.Spread = &spread
		resp.MidPrice = &mid
	}
	return resp
}
