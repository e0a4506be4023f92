package main

import (
	"context"
	"time"

	"supplyhub/internal/domain/entity"
	"supplyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Fixtures is the YAML document accepted by the seed command.
// Products reference their supplier and category by fixture key.
type Fixtures struct {
	Categories []CategoryFixture `yaml:"categories"`
	Suppliers  []SupplierFixture `yaml:"suppliers"`
	Products   []ProductFixture  `yaml:"products"`
	Branches   []BranchFixture   `yaml:"branches"`
}

type CategoryFixture struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type AddressFixture struct {
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postalCode"`
	Country    string `yaml:"country"`
}

func (a AddressFixture) toEntity() entity.Address {
	return entity.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode, Country: a.Country}
}

type SupplierFixture struct {
	Key           string         `yaml:"key"`
	Name          string         `yaml:"name"`
	Email         string         `yaml:"email"`
	Phone         string         `yaml:"phone"`
	Address       AddressFixture `yaml:"address"`
	DeliveryAreas []string       `yaml:"deliveryAreas"`
	Holidays      []string       `yaml:"holidays"`
}

type ProductFixture struct {
	Supplier    string `yaml:"supplier"`
	Category    string `yaml:"category"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SKU         string `yaml:"sku"`
	VAT         string `yaml:"vat"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
}

type BranchFixture struct {
	FirstName     string         `yaml:"firstName"`
	LastName      string         `yaml:"lastName"`
	Email         string         `yaml:"email"`
	Password      string         `yaml:"password"`
	PaymentMethod string         `yaml:"paymentMethod"`
	Address       AddressFixture `yaml:"address"`
}

// SeedReport counts the records created by a seed run.
type SeedReport struct {
	Categories int
	Suppliers  int
	Products   int
	Branches   int
}

type seeder struct {
	catalog   usecase.CatalogUsecase
	suppliers usecase.SupplierUsecase
	branches  usecase.BranchUsecase
}

func newSeeder(catalog usecase.CatalogUsecase, suppliers usecase.SupplierUsecase, branches usecase.BranchUsecase) *seeder {
	return &seeder{catalog: catalog, suppliers: suppliers, branches: branches}
}

// Run creates the fixtures in dependency order. It stops at the first failure;
// records created before it are kept.
func (s *seeder) Run(ctx context.Context, f *Fixtures) (*SeedReport, error) {
	report := &SeedReport{}

	categories := make(map[string]uuid.UUID, len(f.Categories))
	for _, c := range f.Categories {
		category, err := s.catalog.AddCategory(ctx, &usecase.AddCategoryInput{
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
		if err != nil {
			return report, errors.Wrapf(err, "category %q", c.Key)
		}
		categories[c.Key] = category.ID
		report.Categories++
	}

	suppliers := make(map[string]uuid.UUID, len(f.Suppliers))
	for _, sf := range f.Suppliers {
		holidays, err := parseFixtureDates(sf.Holidays)
		if err != nil {
			return report, errors.Wrapf(err, "supplier %q", sf.Key)
		}

		supplier, err := s.suppliers.CreateSupplier(ctx, &usecase.CreateSupplierInput{
			Name:          sf.Name,
			Email:         sf.Email,
			Phone:         sf.Phone,
			Address:       sf.Address.toEntity(),
			DeliveryAreas: sf.DeliveryAreas,
			Holidays:      holidays,
		})
		if err != nil {
			return report, errors.Wrapf(err, "supplier %q", sf.Key)
		}
		suppliers[sf.Key] = supplier.ID
		report.Suppliers++
	}

	for _, p := range f.Products {
		input, err := productInput(p, suppliers, categories)
		if err != nil {
			return report, errors.Wrapf(err, "product %q", p.Name)
		}
		if _, err := s.catalog.AddProduct(ctx, input); err != nil {
			return report, errors.Wrapf(err, "product %q", p.Name)
		}
		report.Products++
	}

	for _, b := range f.Branches {
		if _, err := s.branches.CreateBranch(ctx, &usecase.CreateBranchInput{
			FirstName:     b.FirstName,
			LastName:      b.LastName,
			Email:         b.Email,
			Password:      b.Password,
			PaymentMethod: b.PaymentMethod,
			Address:       b.Address.toEntity(),
		}); err != nil {
			return report, errors.Wrapf(err, "branch %q", b.Email)
		}
		report.Branches++
	}

	return report, nil
}

func productInput(p ProductFixture, suppliers, categories map[string]uuid.UUID) (*usecase.AddProductInput, error) {
	supplierID, ok := suppliers[p.Supplier]
	if !ok {
		return nil, errors.Errorf("unknown supplier key %q", p.Supplier)
	}
	categoryID, ok := categories[p.Category]
	if !ok {
		return nil, errors.Errorf("unknown category key %q", p.Category)
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "price %q", p.Price)
	}

	vat := decimal.Zero
	if p.VAT != "" {
		if vat, err = decimal.NewFromString(p.VAT); err != nil {
			return nil, errors.Wrapf(err, "vat %q", p.VAT)
		}
	}

	return &usecase.AddProductInput{
		SupplierID:  supplierID,
		CategoryID:  categoryID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		VAT:         vat,
		Price:       price,
		Stock:       p.Stock,
	}, nil
}

func parseFixtureDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return nil, errors.Wrapf(err, "holiday %q", v)
		}
		dates = append(dates, d)
	}

	return dates, nil
}
