package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/sentinel"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres persists the registry in PostgreSQL. Config and record updates
// run inside a transaction with SELECT ... FOR UPDATE, so the
// load-validate-mutate-persist cycle of one name serializes against
// concurrent writers.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate applies the embedded schema migrations. It is safe to call on
// every startup.
func (s *Postgres) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}
	driver, err := migratepg.WithInstance(s.db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("prepare migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *Postgres) InitConfig(ctx context.Context, cfg *models.Config) error {
	purchaseDenom, purchaseAmount := priceColumns(cfg.PurchasePrice)
	transferDenom, transferAmount := priceColumns(cfg.TransferPrice)
	editDenom, editAmount := priceColumns(cfg.EditPrice)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO registry_config
		     (singleton, owner, purchase_denom, purchase_amount, transfer_denom, transfer_amount, edit_denom, edit_amount)
		 VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (singleton) DO NOTHING`,
		string(cfg.Owner), purchaseDenom, purchaseAmount, transferDenom, transferAmount, editDenom, editAmount)
	if err != nil {
		return fmt.Errorf("insert registry config: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert registry config: %w", err)
	}
	if inserted == 0 {
		return fmt.Errorf("registry config already present: %w", sentinel.ErrConflict)
	}
	return nil
}

func (s *Postgres) LoadConfig(ctx context.Context) (*models.Config, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT owner, purchase_denom, purchase_amount, transfer_denom, transfer_amount, edit_denom, edit_amount
		 FROM registry_config WHERE singleton`)
	cfg, err := scanConfig(row)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Postgres) UpdateConfig(ctx context.Context, validate func(*models.Config) error, mutate func(*models.Config)) (*models.Config, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin config update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT owner, purchase_denom, purchase_amount, transfer_denom, transfer_amount, edit_denom, edit_amount
		 FROM registry_config WHERE singleton FOR UPDATE`)
	cfg, err := scanConfig(row)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg.Clone()); err != nil {
		return nil, err
	}
	mutate(cfg)

	purchaseDenom, purchaseAmount := priceColumns(cfg.PurchasePrice)
	transferDenom, transferAmount := priceColumns(cfg.TransferPrice)
	editDenom, editAmount := priceColumns(cfg.EditPrice)

	_, err = tx.ExecContext(ctx,
		`UPDATE registry_config
		 SET owner = $1,
		     purchase_denom = $2, purchase_amount = $3,
		     transfer_denom = $4, transfer_amount = $5,
		     edit_denom = $6, edit_amount = $7
		 WHERE singleton`,
		string(cfg.Owner), purchaseDenom, purchaseAmount, transferDenom, transferAmount, editDenom, editAmount)
	if err != nil {
		return nil, fmt.Errorf("update registry config: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit config update: %w", err)
	}
	return cfg, nil
}

func (s *Postgres) LoadVersion(ctx context.Context) (*models.VersionInfo, error) {
	var v models.VersionInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT name, version FROM registry_version WHERE singleton`).
		Scan(&v.Name, &v.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("version marker not found: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load version marker: %w", err)
	}
	return &v, nil
}

func (s *Postgres) SaveVersion(ctx context.Context, v *models.VersionInfo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO registry_version (singleton, name, version) VALUES (TRUE, $1, $2)
		 ON CONFLICT (singleton) DO UPDATE SET name = excluded.name, version = excluded.version`,
		v.Name, v.Version)
	if err != nil {
		return fmt.Errorf("save version marker: %w", err)
	}
	return nil
}

func (s *Postgres) CreateName(ctx context.Context, name string, rec *models.NameRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO name_records (name, owner, bio, website) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		name, string(rec.Owner), rec.Bio, rec.Website)
	if err != nil {
		return fmt.Errorf("insert name record: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert name record: %w", err)
	}
	if inserted == 0 {
		return fmt.Errorf("name %q already registered: %w", name, sentinel.ErrConflict)
	}
	return nil
}

func (s *Postgres) FindName(ctx context.Context, name string) (*models.NameRecord, error) {
	var rec models.NameRecord
	var owner string
	err := s.db.QueryRowContext(ctx,
		`SELECT owner, bio, website FROM name_records WHERE name = $1`, name).
		Scan(&owner, &rec.Bio, &rec.Website)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find name record: %w", err)
	}
	rec.Owner = models.Identity(owner)
	return &rec, nil
}

func (s *Postgres) UpdateName(ctx context.Context, name string, validate func(*models.NameRecord) error, mutate func(*models.NameRecord)) (*models.NameRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin name update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var rec models.NameRecord
	var owner string
	err = tx.QueryRowContext(ctx,
		`SELECT owner, bio, website FROM name_records WHERE name = $1 FOR UPDATE`, name).
		Scan(&owner, &rec.Bio, &rec.Website)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock name record: %w", err)
	}
	rec.Owner = models.Identity(owner)

	if err := validate(rec.Clone()); err != nil {
		return nil, err
	}
	mutate(&rec)

	_, err = tx.ExecContext(ctx,
		`UPDATE name_records SET owner = $2, bio = $3, website = $4, updated_at = now() WHERE name = $1`,
		name, string(rec.Owner), rec.Bio, rec.Website)
	if err != nil {
		return nil, fmt.Errorf("update name record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit name update: %w", err)
	}
	return &rec, nil
}

func scanConfig(row *sql.Row) (*models.Config, error) {
	var owner string
	var purchaseDenom, transferDenom, editDenom sql.NullString
	var purchaseAmount, transferAmount, editAmount decimal.NullDecimal

	err := row.Scan(&owner, &purchaseDenom, &purchaseAmount, &transferDenom, &transferAmount, &editDenom, &editAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("registry config not found: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan registry config: %w", err)
	}

	return &models.Config{
		Owner:         models.Identity(owner),
		PurchasePrice: scanPrice(purchaseDenom, purchaseAmount),
		TransferPrice: scanPrice(transferDenom, transferAmount),
		EditPrice:     scanPrice(editDenom, editAmount),
	}, nil
}

func scanPrice(denom sql.NullString, amount decimal.NullDecimal) *models.Coin {
	if !denom.Valid || !amount.Valid {
		return nil
	}
	return &models.Coin{Denom: denom.String, Amount: amount.Decimal}
}

func priceColumns(price *models.Coin) (sql.NullString, decimal.NullDecimal) {
	if price == nil {
		return sql.NullString{}, decimal.NullDecimal{}
	}
	return sql.NullString{String: price.Denom, Valid: true},
		decimal.NullDecimal{Decimal: price.Amount, Valid: true}
}
