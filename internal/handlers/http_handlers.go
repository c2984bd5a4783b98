package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"minilotto/internal/models"
	"minilotto/internal/services"
)

// HTTPHandler exposes the lottery service as a JSON API.
type HTTPHandler struct {
	service *services.LotteryService
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(service *services.LotteryService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// purchaseRequest carries the player's picks. A null entry is a slot the
// player has not filled in yet.
type purchaseRequest struct {
	Numbers []*int `json:"numbers"`
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
	router.GET("/config", h.ShowConfig)
	router.GET("/state", h.ShowState)
	router.POST("/tickets", h.PurchaseTicket)
	router.POST("/tickets/quick-pick", h.QuickPick)
	router.GET("/tickets/:id", h.ShowTicket)
	router.POST("/tickets/:id/claim", h.ClaimTicket)
	router.POST("/draws", h.PerformDraw)
	router.GET("/draws", h.ListDraws)
	router.GET("/draws/export", h.ExportDrawsCSV)
	router.GET("/draws/:number", h.ShowDraw)
	router.GET("/wallet/ledger", h.ShowLedger)
	router.POST("/cleanup", h.Cleanup)
}

// Health reports liveness.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
}

// ShowConfig returns the fixed game settings the number picker needs.
func (h *HTTPHandler) ShowConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"range":       h.service.Range(),
		"ticketPrice": h.service.TicketPrice(),
		"prizeTable":  h.service.PrizeTable(),
	})
}

// ShowState returns the render snapshot.
func (h *HTTPHandler) ShowState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CurrentState())
}

// PurchaseTicket handles a ticket bought with hand-picked numbers.
func (h *HTTPHandler) PurchaseTicket(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.JSON(http.StatusUnprocessableEntity, models.PurchaseResult{Reason: models.ReasonInvalidSelection})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	numbers := make([]int, 0, len(req.Numbers))
	for _, n := range req.Numbers {
		if n == nil {
			c.JSON(http.StatusUnprocessableEntity, models.PurchaseResult{Reason: models.ReasonInvalidSelection})
			return
		}
		numbers = append(numbers, *n)
	}

	h.writePurchase(c, h.service.Purchase(numbers))
}

// QuickPick handles a ticket bought with sampler-chosen numbers.
func (h *HTTPHandler) QuickPick(c *gin.Context) {
	result, err := h.service.QuickPick()
	if err != nil {
		logger.Errorf("Quick pick failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.writePurchase(c, result)
}

func (h *HTTPHandler) writePurchase(c *gin.Context, result models.PurchaseResult) {
	switch {
	case result.OK:
		c.JSON(http.StatusCreated, result)
	case result.Reason == models.ReasonInsufficientFunds:
		c.JSON(http.StatusPaymentRequired, result)
	default:
		c.JSON(http.StatusUnprocessableEntity, result)
	}
}

// ShowTicket returns one scored ticket.
func (h *HTTPHandler) ShowTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	view, err := h.service.Ticket(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClaimTicket pays a winning ticket into the wallet.
func (h *HTTPHandler) ClaimTicket(c *gin.Context) {
	id, ok := ticketID(c)
	if !ok {
		return
	}
	result := h.service.Claim(id)
	if !result.OK {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

func ticketID(c *gin.Context) (models.TicketID, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return 0, false
	}
	return models.TicketID(id), true
}

// PerformDraw runs the next draw.
func (h *HTTPHandler) PerformDraw(c *gin.Context) {
	result, err := h.service.RunDraw()
	if err != nil {
		logger.Errorf("Draw failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListDraws returns every completed draw.
func (h *HTTPHandler) ListDraws(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"draws": h.service.Draws()})
}

// ShowDraw returns one completed draw.
func (h *HTTPHandler) ShowDraw(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draw number"})
		return
	}
	result, ok := h.service.Draw(n)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "draw has not happened yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ShowLedger returns the wallet movements.
func (h *HTTPHandler) ShowLedger(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.service.Ledger()})
}

// Cleanup drops resolved tickets that cannot pay out any more.
func (h *HTTPHandler) Cleanup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"removed": h.service.Cleanup()})
}

// ExportDrawsCSV handles the request to download the draw history as a CSV file.
func (h *HTTPHandler) ExportDrawsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=draw_history.csv")

	// Add BOM to ensure UTF-8 compatibility in Excel
	c.Writer.Write([]byte("\xef\xbb\xbf"))

	w := csv.NewWriter(c.Writer)

	if err := w.Write([]string{"draw_number", "numbers", "drawn_at"}); err != nil {
		logger.Infof("Error writing CSV header: %v", err)
		c.String(http.StatusInternalServerError, "Error writing CSV")
		return
	}

	for _, result := range h.service.Draws() {
		numbers := make([]string, len(result.Numbers))
		for i, n := range result.Numbers {
			numbers[i] = strconv.Itoa(n)
		}
		row := []string{strconv.Itoa(result.DrawNumber), strings.Join(numbers, " "), result.DrawnAt.Format(time.RFC3339)}
		if err := w.Write(row); err != nil {
			logger.Infof("Error writing CSV row: %v", err)
			c.String(http.StatusInternalServerError, "Error writing CSV")
			return
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		logger.Infof("Error flushing CSV writer: %v", err)
		c.String(http.StatusInternalServerError, "Error writing CSV")
	}
}
