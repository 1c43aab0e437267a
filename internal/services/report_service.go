// internal/services/report_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

type MonthlySalesRow struct {
	Month      string  `json:"month"` // YYYY-MM
	TotalSales float64 `json:"total_sales"`
	OrderCount int64   `json:"order_count"`
}

type PopularProductRow struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	TotalOrdered int64     `json:"total_ordered"`
	AvgRating    *float64  `json:"avg_rating"` // null when unreviewed
}

type TopBuyerRow struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	TotalSpent float64   `json:"total_spent"`
	OrderCount int64     `json:"order_count"`
}

type RecentOrderRow struct {
	OrderID     uuid.UUID `json:"order_id"`
	UserEmail   string    `json:"user_email"`
	TotalAmount float64   `json:"total_amount"`
	PlacedAt    time.Time `json:"placed_at"`
}

type Statistics struct {
	MonthlySales    []MonthlySalesRow   `json:"monthly_sales"`
	PopularProducts []PopularProductRow `json:"popular_products"`
	TopBuyers       []TopBuyerRow       `json:"top_buyers"`
	RecentOrders    []RecentOrderRow    `json:"recent_orders"`
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// GetStatistics assembles the admin dashboard. Each section is one grouped
// query; revenue is always SUM(unit_price * quantity) over order lines.
func (s *ReportService) GetStatistics() (*Statistics, error) {
	stats := &Statistics{
		MonthlySales:    []MonthlySalesRow{},
		PopularProducts: []PopularProductRow{},
		TopBuyers:       []TopBuyerRow{},
		RecentOrders:    []RecentOrderRow{},
	}

	if err := s.monthlySales(stats); err != nil {
		return nil, err
	}
	if err := s.popularProducts(stats); err != nil {
		return nil, err
	}
	if err := s.topBuyers(stats); err != nil {
		return nil, err
	}
	if err := s.recentOrders(stats); err != nil {
		return nil, err
	}

	return stats, nil
}

// monthlySales buckets the trailing 365 days of orders by calendar month.
// COUNT(DISTINCT o.id) keeps the order count from being inflated by the join
// onto order lines.
func (s *ReportService) monthlySales(stats *Statistics) error {
	since := time.Now().AddDate(0, 0, -365)

	err := s.db.Raw(`
		SELECT
			to_char(date_trunc('month', o.placed_at), 'YYYY-MM') AS month,
			COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS total_sales,
			COUNT(DISTINCT o.id) AS order_count
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL
		WHERE o.placed_at >= ? AND o.deleted_at IS NULL
		GROUP BY 1
		ORDER BY 1 ASC
	`, since).Scan(&stats.MonthlySales).Error
	if err != nil {
		return fmt.Errorf("failed to compute monthly sales: %w", err)
	}
	return nil
}

// popularProducts ranks the ten most ordered products by order-line count.
// Subqueries keep the line count and the rating average independent; joining
// both tables at once would cross-multiply the rows.
func (s *ReportService) popularProducts(stats *Statistics) error {
	err := s.db.Raw(`
		SELECT
			p.id AS product_id,
			p.name,
			(SELECT COUNT(*) FROM order_items oi
				WHERE oi.product_id = p.id AND oi.deleted_at IS NULL) AS total_ordered,
			(SELECT AVG(r.rating) FROM reviews r
				WHERE r.product_id = p.id AND r.deleted_at IS NULL) AS avg_rating
		FROM products p
		WHERE p.deleted_at IS NULL
		ORDER BY total_ordered DESC, p.created_at DESC
		LIMIT 10
	`).Scan(&stats.PopularProducts).Error
	if err != nil {
		return fmt.Errorf("failed to compute popular products: %w", err)
	}
	return nil
}

func (s *ReportService) topBuyers(stats *Statistics) error {
	err := s.db.Raw(`
		SELECT
			u.id AS user_id,
			u.email,
			COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS total_spent,
			COUNT(DISTINCT o.id) AS order_count
		FROM users u
		JOIN orders o ON o.user_id = u.id AND o.deleted_at IS NULL
		JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL
		GROUP BY u.id, u.email
		ORDER BY total_spent DESC
		LIMIT 10
	`).Scan(&stats.TopBuyers).Error
	if err != nil {
		return fmt.Errorf("failed to compute top buyers: %w", err)
	}
	return nil
}

func (s *ReportService) recentOrders(stats *Statistics) error {
	err := s.db.Raw(`
		SELECT
			o.id AS order_id,
			u.email AS user_email,
			COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS total_amount,
			o.placed_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		LEFT JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL
		WHERE o.deleted_at IS NULL
		GROUP BY o.id, u.email, o.placed_at
		ORDER BY o.placed_at DESC
		LIMIT 5
	`).Scan(&stats.RecentOrders).Error
	if err != nil {
		return fmt.Errorf("failed to compute recent orders: %w", err)
	}
	return nil
}
