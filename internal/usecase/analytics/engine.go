package analytics

import (
	"context"
	"log/slog"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
)

const (
	defaultTopItemsLimit = 5
	defaultTrendDays     = 30
	defaultPaymentsDays  = 7
)

// Dashboard is the admin dashboard view.
type Dashboard struct {
	TopItems []ItemCount     `json:"top_items"`
	Trend    []RevenueBucket `json:"trend"`
	Statuses StatusBreakdown `json:"statuses"`
}

// PaymentsSummary is the headline block of the admin payments view.
type PaymentsSummary struct {
	TotalRevenue      float64         `json:"total_revenue"`
	PendingCount      int             `json:"pending_count"`
	TotalTransactions int             `json:"total_transactions"`
	Daily             []RevenueBucket `json:"daily"`
}

// Engine computes the dashboard and payments figures with configured limits.
type Engine struct {
	logger        *slog.Logger
	topItemsLimit int
	trendWindow   time.Duration
	paymentsDays  int
}

// NewEngine creates an engine. Missing settings fall back to five items, thirty days and seven buckets.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	engine := &Engine{
		logger:        logger,
		topItemsLimit: defaultTopItemsLimit,
		trendWindow:   defaultTrendDays * 24 * time.Hour,
		paymentsDays:  defaultPaymentsDays,
	}
	if cfg != nil && cfg.Canteen != nil {
		if cfg.Canteen.TopItemsLimit > 0 {
			engine.topItemsLimit = cfg.Canteen.TopItemsLimit
		}
		if cfg.Canteen.TrendDays > 0 {
			engine.trendWindow = time.Duration(cfg.Canteen.TrendDays) * 24 * time.Hour
		}
		if cfg.Canteen.PaymentsDays > 0 {
			engine.paymentsDays = cfg.Canteen.PaymentsDays
		}
	}

	return engine
}

// Dashboard computes the dashboard view at now.
func (e *Engine) Dashboard(ctx context.Context, orders []*entity.Order, now time.Time) Dashboard {
	return Dashboard{
		TopItems: TopItems(orders, e.topItemsLimit),
		Trend:    RevenueTrend(orders, now, e.trendWindow),
		Statuses: e.statuses(ctx, orders),
	}
}

// Payments computes the payments summary. The daily series covers the most recent
// buckets over all time, not a calendar window.
func (e *Engine) Payments(orders []*entity.Order) PaymentsSummary {
	pending := 0
	for _, order := range orders {
		if order.Status == entity.OrderStatusPending {
			pending++
		}
	}

	return PaymentsSummary{
		TotalRevenue:      Revenue(orders),
		PendingCount:      pending,
		TotalTransactions: len(orders),
		Daily:             LastBuckets(DailyRevenue(orders, time.Time{}), e.paymentsDays),
	}
}

func (e *Engine) statuses(ctx context.Context, orders []*entity.Order) StatusBreakdown {
	breakdown, unknown := CountStatuses(orders)
	if breakdown.Unrecognized > 0 {
		logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)
		logger.Warn("Orders with unrecognized status",
			slog.Int("count", breakdown.Unrecognized),
			slog.Any("statuses", unknown),
		)
	}

	return breakdown
}
