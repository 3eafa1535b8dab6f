package repository

import (
	"context"
	"errors"

	"promo-engine/internal/domain/discount"
	"promo-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const discountColumns = `
	id, code, name, description, kind, value_type, value::text,
	minimum_order_amount::text, maximum_discount_amount::text, minimum_quantity,
	applicable_customer_ids, applicable_product_ids, applicable_category_ids,
	excluded_product_ids, excluded_category_ids,
	is_stackable, priority, active_from, active_until, is_active,
	usage_limit, usage_count`

type DiscountRepository struct {
	db DBTX
}

func NewDiscountRepository(db DBTX) *DiscountRepository {
	return &DiscountRepository{db: db}
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Rule, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+discountColumns+` FROM discounts WHERE code = $1`, code)
	rule, err := scanDiscount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by code", err)
	}
	return rule, nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Rule, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+discountColumns+` FROM discounts WHERE id = $1`, id)
	rule, err := scanDiscount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by id", err)
	}
	return rule, nil
}

func (r *DiscountRepository) FindByKind(ctx context.Context, kind discount.Kind) ([]discount.Rule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+discountColumns+` FROM discounts WHERE kind = $1 AND is_active ORDER BY priority, code`,
		kind.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts by kind", err)
	}
	defer rows.Close()

	var rules []discount.Rule
	for rows.Next() {
		rule, err := scanDiscount(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount row", err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts by kind", err)
	}
	return rules, nil
}

// IncrementUsage advances the usage counter only while it is below the
// limit; the WHERE clause makes check and increment one atomic statement.
// Rules without a limit are left untouched.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE discounts
		 SET usage_count = usage_count + 1
		 WHERE id = $1 AND usage_limit IS NOT NULL AND usage_count < usage_limit`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var usageLimit *int
	err = r.db.QueryRow(ctx, `SELECT usage_limit FROM discounts WHERE id = $1`, id).Scan(&usageLimit)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
	case err != nil:
		return infra.WrapRepoErr("failed to check discount usage limit", err)
	case usageLimit == nil:
		return nil
	default:
		return infra.WrapRepoErr("discount usage limit reached", nil, infra.KindConflict)
	}
}

func scanDiscount(row pgx.Row) (*discount.Rule, error) {
	var (
		r                     discount.Rule
		code                  string
		kind                  string
		valueType             string
		value                 string
		minOrder, maxDiscount *string
		customers, products   *string
		categories            *string
		exProducts            *string
		exCategories          *string
	)
	err := row.Scan(
		&r.ID, &code, &r.Name, &r.Description, &kind, &valueType, &value,
		&minOrder, &maxDiscount, &r.MinimumQuantity,
		&customers, &products, &categories, &exProducts, &exCategories,
		&r.IsStackable, &r.Priority, &r.ActiveFrom, &r.ActiveUntil, &r.IsActive,
		&r.UsageLimit, &r.UsageCount,
	)
	if err != nil {
		return nil, err
	}

	r.Code = discount.Code(code)
	r.Kind = discount.Kind(kind)
	r.ValueType = discount.ValueType(valueType)

	if r.Value, err = parseDecimal(value); err != nil {
		return nil, err
	}
	if r.MinimumOrderAmount, err = parseNullableDecimal(minOrder); err != nil {
		return nil, err
	}
	if r.MaximumDiscountAmount, err = parseNullableDecimal(maxDiscount); err != nil {
		return nil, err
	}

	r.ApplicableCustomerIDs = parseIDColumn(customers)
	r.ApplicableProductIDs = parseIDColumn(products)
	r.ApplicableCategoryIDs = parseIDColumn(categories)
	r.ExcludedProductIDs = parseIDColumn(exProducts)
	r.ExcludedCategoryIDs = parseIDColumn(exCategories)

	return &r, nil
}

func parseIDColumn(raw *string) discount.IDSet {
	if raw == nil {
		return nil
	}
	return discount.ParseIDSet(*raw)
}
