package store

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/mengsruy/webstore/internal/domain"
)

var (
	// ErrNotFound signals an unknown product id.
	ErrNotFound = errors.New("product not found")
	// ErrValidation signals a rejected create/update; no mutation occurred.
	ErrValidation = errors.New("missing required field")
)

// ProductForm carries raw form values for create/update. Price arrives as
// text and is coerced with cast; garbage or absence becomes 0.
type ProductForm struct {
	Title       string
	Description string
	Price       string
	Image       string
}

func (f ProductForm) normalize() (domain.Product, error) {
	p := domain.Product{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Image:       strings.TrimSpace(f.Image),
		Price:       cast.ToFloat64(strings.TrimSpace(f.Price)),
	}
	var missing []string
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return domain.Product{}, errors.Wrapf(ErrValidation, "%s", strings.Join(missing, ", "))
	}
	return p, nil
}

// Catalog is the product catalog store contract.
type Catalog interface {
	// InitSchema idempotently ensures the products table exists.
	InitSchema(ctx context.Context) error

	// SeedIfEmpty inserts the 10 default products when the table holds no
	// rows, establishing ids 1..10 in insertion order. No-op otherwise.
	SeedIfEmpty(ctx context.Context) error

	// ListAll returns every product ordered by id descending.
	ListAll(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves one product or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Search matches query as a case-insensitive substring of title or
	// description, id descending. A blank query yields an empty result
	// without touching the database.
	Search(ctx context.Context, query string) ([]domain.Product, error)

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)

	// Create validates and inserts a new product.
	Create(ctx context.Context, form ProductForm) (*domain.Product, error)

	// Update validates and overwrites all four fields of an existing row.
	Update(ctx context.Context, id int64, form ProductForm) (*domain.Product, error)

	// Delete permanently removes a product.
	Delete(ctx context.Context, id int64) error
}

// GormCatalog is the GORM implementation of Catalog. It wraps a
// request-scoped database handle and is cheap to construct per call.
type GormCatalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (s *GormCatalog) InitSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Migrator().AutoMigrate(domain.Tables...); err != nil {
		return errors.Wrap(err, "init schema")
	}
	return nil
}

func (s *GormCatalog) SeedIfEmpty(ctx context.Context) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range seedProducts {
		p := seedProducts[i]
		if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
			return errors.Wrapf(err, "seed product %q", p.Title)
		}
	}
	return nil
}

func (s *GormCatalog) ListAll(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := s.db.WithContext(ctx).Order("id DESC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (s *GormCatalog) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (s *GormCatalog) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}
	like := "%" + strings.ToLower(query) + "%"
	var rows []domain.Product
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	return rows, nil
}

func (s *GormCatalog) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return count, nil
}

func (s *GormCatalog) Create(ctx context.Context, form ProductForm) (*domain.Product, error) {
	p, err := form.normalize()
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &p, nil
}

func (s *GormCatalog) Update(ctx context.Context, id int64, form ProductForm) (*domain.Product, error) {
	// existence first: an unknown id is ErrNotFound even when the form is
	// also invalid
	var existing domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	p, err := form.normalize()
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	return &p, nil
}

func (s *GormCatalog) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete product")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
