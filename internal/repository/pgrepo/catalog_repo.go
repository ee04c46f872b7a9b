package pgrepo

import (
	"context"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
)

// CatalogRepository читает бизнесы, продукты и их назначения. Каталог ведется внешней системой,
// здесь он только читается.
type CatalogRepository struct {
	conn uow.DBTX
}

func NewCatalogRepository(conn uow.DBTX) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

func (c *CatalogRepository) FindBusinessProduct(
	ctx context.Context,
	businessID, productID uuid.UUID,
) (*domain.BusinessProduct, error) {
	var bp domain.BusinessProduct
	err := c.conn.QueryRow(ctx, `
		SELECT id, created_at, business_id, product_id, price_override
		FROM business_products
		WHERE business_id = $1 AND product_id = $2`,
		businessID,
		productID,
	).Scan(&bp.ID, &bp.CreatedAt, &bp.BusinessID, &bp.ProductID, &bp.PriceOverride)
	if err != nil {
		return nil, convertErr(err, "finding assignment of product `%s` to business `%s`", productID, businessID)
	}
	return &bp, nil
}

func (c *CatalogRepository) FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := c.conn.QueryRow(ctx, `
		SELECT id, created_at, name, base_price, currency
		FROM products
		WHERE id = $1`,
		id,
	).Scan(&product.ID, &product.CreatedAt, &product.Name, &product.BasePrice, &product.Currency)
	if err != nil {
		return nil, convertErr(err, "finding product `%s`", id)
	}
	return &product, nil
}

// OwnerStats количество бизнесов владельца и число назначений продуктов этим бизнесам.
func (c *CatalogRepository) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*repoargs.OwnerCatalogStats, error) {
	var stats repoargs.OwnerCatalogStats
	err := c.conn.QueryRow(ctx, `
		SELECT
		    (SELECT count(*) FROM businesses WHERE owner_id = $1),
		    (SELECT count(*)
		     FROM business_products bp
		     JOIN businesses b ON b.id = bp.business_id
		     WHERE b.owner_id = $1)`,
		ownerID,
	).Scan(&stats.BusinessCount, &stats.AssignedProductCount)
	if err != nil {
		return nil, convertErr(err, "getting catalog stats of owner `%s`", ownerID)
	}
	return &stats, nil
}
