package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo adaptador PostgreSQL del puerto de lectura de analítica.
// Todas las consultas son read-only; el motor nunca escribe por aquí.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

const productColumns = `id, name, category, price, stock, views, add_to_cart_count, total_sold, created_at, updated_at`

// orderWhere construye la cláusula WHERE dinámica del filtro de órdenes.
// Devuelve la cláusula (vacía si no hay condiciones) y los argumentos
// posicionales. La ubicación se compara como subcadena sin distinguir
// mayúsculas (ILIKE).
func orderWhere(f repository.OrderFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Start != nil {
		add("o.created_at >= $%d", *f.Start)
	}
	if f.End != nil {
		add("o.created_at <= $%d", *f.End)
	}
	if f.DeliveryType != "" {
		add("o.delivery_type = $%d", f.DeliveryType)
	}
	if f.Location != "" {
		add("o.address ILIKE '%%' || $%d || '%%'", f.Location)
	}
	if f.Status != "" {
		add("o.status = $%d", string(f.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListProducts devuelve el catálogo completo.
func (r *AnalyticsRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListProducts: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListProductsByCategory devuelve los productos de una categoría exacta.
func (r *AnalyticsRepo) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListProductsByCategory: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// LowStockProducts devuelve los productos con stock ≤ threshold, de menor a
// mayor stock.
func (r *AnalyticsRepo) LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock <= $1 ORDER BY stock ASC, name ASC`
	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("analytics.LowStockProducts: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
			&p.Views, &p.AddToCartCount, &p.TotalSold, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListOrders devuelve las órdenes del filtro con sus líneas.
func (r *AnalyticsRepo) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	where, args := orderWhere(filter)
	query := `
		SELECT o.id, o.order_number, o.created_at, o.status, o.delivery_type, o.address,
		       o.total_amount, o.original_amount, o.discount_amount, o.user_id, o.phone
		FROM orders o` + where + ` ORDER BY o.created_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListOrders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	index := make(map[string]int)
	var ids []string
	for rows.Next() {
		var o entity.Order
		var userID *string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CreatedAt, &o.Status, &o.DeliveryType, &o.Address,
			&o.TotalAmount, &o.OriginalAmount, &o.DiscountAmount, &userID, &o.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if userID != nil {
			o.UserID = *userID
		}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.ListOrders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListOrders items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item entity.OrderItem
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

// CountOrders cuenta las órdenes del filtro.
func (r *AnalyticsRepo) CountOrders(ctx context.Context, filter repository.OrderFilter) (int, error) {
	where, args := orderWhere(filter)
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders o`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOrders: %w", err)
	}
	return count, nil
}

// SumRevenue agrega los montos del filtro. Los montos opcionales se
// coalescen en SQL: original_amount cae a total_amount y discount_amount a
// cero. COALESCE externo devuelve ceros en períodos sin órdenes.
func (r *AnalyticsRepo) SumRevenue(ctx context.Context, filter repository.OrderFilter) (repository.RevenueTotals, error) {
	where, args := orderWhere(filter)
	query := `
		SELECT
		    COALESCE(SUM(o.total_amount), 0)                               AS gross,
		    COALESCE(SUM(COALESCE(o.original_amount, o.total_amount)), 0)  AS original,
		    COALESCE(SUM(COALESCE(o.discount_amount, 0)), 0)               AS discount
		FROM orders o` + where

	var totals repository.RevenueTotals
	err := r.pool.QueryRow(ctx, query, args...).Scan(&totals.Gross, &totals.Original, &totals.Discount)
	if err != nil {
		return repository.RevenueTotals{}, fmt.Errorf("analytics.SumRevenue: %w", err)
	}
	return totals, nil
}

// CountUniqueCustomers cuenta clientes distintos agrupando por usuario
// registrado o, para invitados (user_id nulo, vacío o "guest"), por teléfono.
// Misma regla que entity.Order.CustomerKey.
func (r *AnalyticsRepo) CountUniqueCustomers(ctx context.Context, filter repository.OrderFilter) (int, error) {
	where, args := orderWhere(filter)
	query := `
		SELECT COUNT(DISTINCT CASE
		    WHEN o.user_id IS NULL OR o.user_id = '' OR o.user_id = 'guest'
		    THEN 'guest:' || o.phone
		    ELSE 'user:' || o.user_id
		END)
		FROM orders o` + where

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountUniqueCustomers: %w", err)
	}
	return count, nil
}

// GroupOrdersByDay agrega ingresos y órdenes por día calendario, ascendente.
func (r *AnalyticsRepo) GroupOrdersByDay(ctx context.Context, filter repository.OrderFilter) ([]repository.DailyOrderGroup, error) {
	where, args := orderWhere(filter)
	query := `
		SELECT date_trunc('day', o.created_at)::date AS day,
		       COALESCE(SUM(o.total_amount), 0)      AS revenue,
		       COUNT(*)                              AS orders
		FROM orders o` + where + `
		GROUP BY day ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GroupOrdersByDay: %w", err)
	}
	defer rows.Close()

	var groups []repository.DailyOrderGroup
	for rows.Next() {
		var g repository.DailyOrderGroup
		if err := rows.Scan(&g.Day, &g.Revenue, &g.Orders); err != nil {
			return nil, fmt.Errorf("analytics.GroupOrdersByDay scan: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CountOrdersByStatus cuenta órdenes por estado dentro del filtro.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, filter repository.OrderFilter) ([]repository.StatusCount, error) {
	where, args := orderWhere(filter)
	query := `SELECT o.status, COUNT(*) FROM orders o` + where + ` GROUP BY o.status`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountOrdersByStatus: %w", err)
	}
	defer rows.Close()

	var counts []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("analytics.CountOrdersByStatus scan: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// EarliestOrderDate devuelve la fecha de la primera orden, o nil sin órdenes.
func (r *AnalyticsRepo) EarliestOrderDate(ctx context.Context) (*time.Time, error) {
	var at *time.Time
	err := r.pool.QueryRow(ctx, `SELECT MIN(created_at) FROM orders`).Scan(&at)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("analytics.EarliestOrderDate: %w", err)
	}
	return at, nil
}

// LatestOrders devuelve las últimas n órdenes sin líneas (widget del
// dashboard).
func (r *AnalyticsRepo) LatestOrders(ctx context.Context, n int) ([]entity.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.created_at, o.status, o.delivery_type, o.address,
		       o.total_amount, o.original_amount, o.discount_amount, o.user_id, o.phone
		FROM orders o ORDER BY o.created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("analytics.LatestOrders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		var userID *string
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CreatedAt, &o.Status, &o.DeliveryType, &o.Address,
			&o.TotalAmount, &o.OriginalAmount, &o.DiscountAmount, &userID, &o.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan latest order: %w", err)
		}
		if userID != nil {
			o.UserID = *userID
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// TotalStoreRevenue devuelve Σ precio × unidades vendidas sobre el catálogo.
func (r *AnalyticsRepo) TotalStoreRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(price * total_sold), 0) FROM products`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.TotalStoreRevenue: %w", err)
	}
	return total, nil
}
