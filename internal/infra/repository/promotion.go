package repository

import (
	"context"
	"errors"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/domain/promotion"
	"promo-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const promotionColumns = `
	id, code, name, description, type, status,
	minimum_order_amount::text, maximum_discount_amount::text,
	usage_limit, usage_limit_per_customer, total_usage_count,
	is_stackable, is_exclusive, priority,
	target_customer_segments, target_product_categories,
	excluded_products, applicable_channels,
	active_from, active_until, is_active`

const promotionRuleColumns = `
	id, promotion_id, rule_type, condition, discount_type, discount_value::text,
	applicable_products, applicable_categories,
	minimum_quantity, maximum_quantity,
	free_product_id, free_product_quantity, sort_order`

type PromotionRepository struct {
	db DBTX
}

func NewPromotionRepository(db DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) FindByCode(ctx context.Context, code string) (*promotion.Rule, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+promotionColumns+` FROM promotions WHERE code = $1`, code)
	return r.loadOne(ctx, row, "failed to find promotion by code")
}

func (r *PromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Rule, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+promotionColumns+` FROM promotions WHERE id = $1`, id)
	return r.loadOne(ctx, row, "failed to find promotion by id")
}

// FindActive returns promotions in Active status whose window covers now.
// Eligibility beyond that stays with the engine; the store only prunes rows
// that can never match.
func (r *PromotionRepository) FindActive(ctx context.Context) ([]promotion.Rule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+promotionColumns+`
		 FROM promotions
		 WHERE is_active AND status = $1 AND active_from <= now() AND active_until >= now()
		 ORDER BY priority DESC, code`,
		string(promotion.StatusActive))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}
	defer rows.Close()

	var rules []promotion.Rule
	for rows.Next() {
		rule, err := scanPromotion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}

	for i := range rules {
		if err := r.attachLineRules(ctx, &rules[i]); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// IncrementUsage advances the total counter; with a limit set the WHERE
// clause refuses the increment that would pass it.
func (r *PromotionRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE promotions
		 SET total_usage_count = total_usage_count + 1
		 WHERE id = $1 AND (usage_limit IS NULL OR total_usage_count < usage_limit)`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment promotion usage", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM promotions WHERE id = $1)`, id).Scan(&exists)
	switch {
	case err != nil:
		return infra.WrapRepoErr("failed to check promotion existence", err)
	case !exists:
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	default:
		return infra.WrapRepoErr("promotion usage limit reached", nil, infra.KindConflict)
	}
}

func (r *PromotionRepository) loadOne(ctx context.Context, row pgx.Row, msg string) (*promotion.Rule, error) {
	rule, err := scanPromotion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	if err := r.attachLineRules(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *PromotionRepository) attachLineRules(ctx context.Context, rule *promotion.Rule) error {
	rows, err := r.db.Query(ctx,
		`SELECT`+promotionRuleColumns+` FROM promotion_rules WHERE promotion_id = $1 ORDER BY sort_order`,
		rule.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load promotion rules", err)
	}
	defer rows.Close()

	for rows.Next() {
		line, err := scanPromotionRule(rows)
		if err != nil {
			return infra.WrapRepoErr("failed to scan promotion rule row", err)
		}
		rule.LineRules = append(rule.LineRules, *line)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to load promotion rules", err)
	}

	rule.SortLineRules()
	return nil
}

func scanPromotion(row pgx.Row) (*promotion.Rule, error) {
	var (
		r                     promotion.Rule
		code                  string
		promoType             string
		status                string
		minOrder, maxDiscount *string
		excluded              *string
	)
	err := row.Scan(
		&r.ID, &code, &r.Name, &r.Description, &promoType, &status,
		&minOrder, &maxDiscount,
		&r.UsageLimit, &r.UsageLimitPerCustomer, &r.TotalUsageCount,
		&r.IsStackable, &r.IsExclusive, &r.Priority,
		&r.TargetCustomerSegments, &r.TargetProductCategories,
		&excluded, &r.ApplicableChannels,
		&r.ActiveFrom, &r.ActiveUntil, &r.IsActive,
	)
	if err != nil {
		return nil, err
	}

	r.Code = discount.Code(code)
	r.Type = promotion.Type(promoType)
	r.Status = promotion.Status(status)

	if r.MinimumOrderAmount, err = parseNullableDecimal(minOrder); err != nil {
		return nil, err
	}
	if r.MaximumDiscountAmount, err = parseNullableDecimal(maxDiscount); err != nil {
		return nil, err
	}
	r.ExcludedProducts = parseIDColumn(excluded)

	return &r, nil
}

func scanPromotionRule(row pgx.Row) (*promotion.LineRule, error) {
	var (
		line          promotion.LineRule
		promotionID   uuid.UUID
		ruleType      string
		discountType  string
		discountValue string
		products      *string
		categories    *string
	)
	err := row.Scan(
		&line.ID, &promotionID, &ruleType, &line.Condition, &discountType, &discountValue,
		&products, &categories,
		&line.MinimumQuantity, &line.MaximumQuantity,
		&line.FreeProductID, &line.FreeProductQuantity, &line.SortOrder,
	)
	if err != nil {
		return nil, err
	}

	line.RuleType = promotion.RuleType(ruleType)
	line.DiscountType = discount.ValueType(discountType)
	if line.DiscountValue, err = parseDecimal(discountValue); err != nil {
		return nil, err
	}
	line.ApplicableProducts = parseIDColumn(products)
	line.ApplicableCategories = parseIDColumn(categories)

	return &line, nil
}
