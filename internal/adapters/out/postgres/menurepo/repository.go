package menurepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db   *gorm.DB
	inTx bool
}

// NewGormMenuRepository creates a repository over db. inTx tells the repository
// that db is a transaction, which enables the identity lock taken by
// FindByNameAndCategory.
func NewGormMenuRepository(db *gorm.DB, inTx bool) *GormMenuRepository {
	return &GormMenuRepository{
		db:   db,
		inTx: inTx,
	}
}

// Add saves a new menu item.
func (r *GormMenuRepository) Add(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Omit("Seq").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause(
				"menu item", fmt.Errorf("%s %q already exists: %w", item.Category(), item.Name(), err),
			)
		}
		return err
	}

	return nil
}

// Update saves the price of an existing item.
func (r *GormMenuRepository) Update(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", item.ID().Bytes()).
		Update("price", item.Price().Decimal())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemID", item.ID())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.MenuItem{}, errs.NewObjectNotFoundError("menuItemID", id)
		}
		return menu.MenuItem{}, err
	}

	return toDomain(dto)
}

// FindByNameAndCategory looks up the upsert identity. Inside a transaction it
// first takes a transaction-scoped advisory lock on the identity, so concurrent
// upserts of the same item run one after another instead of racing to insert.
func (r *GormMenuRepository) FindByNameAndCategory(
	ctx context.Context,
	name string,
	category menu.Category,
) (menu.MenuItem, bool, error) {
	name = menu.NormalizeName(name)
	db := r.db.WithContext(ctx)

	if r.inTx {
		key := category.String() + "/" + name
		if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return menu.MenuItem{}, false, err
		}
	}

	var dtos []MenuItemDTO
	if err := db.Where("name = ? AND category = ?", name, category.String()).Limit(1).Find(&dtos).Error; err != nil {
		return menu.MenuItem{}, false, err
	}

	if len(dtos) == 0 {
		return menu.MenuItem{}, false, nil
	}

	item, err := toDomain(dtos[0])
	if err != nil {
		return menu.MenuItem{}, false, err
	}
	return item, true, nil
}

// GetAll retrieves every item in insertion order.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
