package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotelens/internal/domain/dto"
	"github.com/guttosm/quotelens/internal/logger"
	"github.com/guttosm/quotelens/internal/middleware"
	"github.com/guttosm/quotelens/internal/service"
)

// Handler provides the HTTP handlers for the symbol quote endpoint.
//
// Responsibilities:
//   - Bind and validate query parameters
//   - Delegate to the quote service
//   - Translate service errors into HTTP statuses
//   - Render the quote as a dto.QuoteResponse
type Handler struct {
	svc service.QuoteService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.QuoteService) *Handler {
	registerValidators()
	return &Handler{svc: svc}
}

// symbolQuery is the query string of GET /api/v1/symbol/:symbol.
// range_ is accepted as an alias of range.
type symbolQuery struct {
	AsOf       string `form:"asOf"`
	Range      string `form:"range" binding:"omitempty,quote_range"`
	RangeAlias string `form:"range_" binding:"omitempty,quote_range"`
	Interval   string `form:"interval" binding:"omitempty,quote_interval"`
}

func (q symbolQuery) rangeCode() string {
	if q.Range != "" {
		return q.Range
	}
	return q.RangeAlias
}

// GetSymbol godoc
// @Summary      Get statistics for a ticker
// @Description  Fetches history for the range ending at asOf and returns price change, range extremes, average volume, annualized volatility, raw candles and company profile
// @Tags         symbol
// @Produce      json
// @Param        symbol    path      string  true   "Ticker symbol" example(AAPL)
// @Param        asOf      query     string  false  "Reference instant (RFC3339 or YYYY-MM-DD, UTC when no zone); defaults to now" example(2024-06-15)
// @Param        range     query     string  false  "Lookback range"  Enums(1D, 1W, 1M, 3M, 1Y, MAX) default(1Y)
// @Param        interval  query     string  false  "Sampling interval" Enums(1h, 1d, 1mo, 3mo) default(1mo)
// @Success      200       {object}  dto.QuoteResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse  "Unsupported parameter"
// @Failure      404       {object}  dto.ErrorResponse  "No data for symbol"
// @Failure      500       {object}  dto.ErrorResponse  "Provider or internal failure"
// @Router       /api/v1/symbol/{symbol} [get]
func (h *Handler) GetSymbol(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))

	var q symbolQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, bindingMessage(err), nil)
		return
	}

	var asOf time.Time
	if q.AsOf != "" {
		parsed, err := service.ParseAsOf(q.AsOf)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		asOf = parsed
	}

	quote, err := h.svc.GetQuote(c.Request.Context(), service.QuoteRequest{
		Symbol:   symbol,
		AsOf:     asOf,
		Range:    q.rangeCode(),
		Interval: q.Interval,
	})
	if err != nil {
		h.fail(c, symbol, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

func (h *Handler) fail(c *gin.Context, symbol string, err error) {
	var pe *service.ParamError
	switch {
	case errors.As(err, &pe):
		middleware.AbortWithError(c, http.StatusBadRequest, pe.Reason, nil)
	case errors.Is(err, service.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "No data found for "+strings.ToUpper(symbol), nil)
	default:
		logger.L().Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("symbol", symbol).
			Msg("symbol request failed")
		middleware.AbortWithError(c, http.StatusInternalServerError, "Server error while fetching symbol", err)
	}
}
