package bank

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"nomen/internal/registry/models"
	"nomen/pkg/requestcontext"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteLedger persists the account balance in a SQLite database, making
// settlement survive restarts on single-node deployments. Outgoing payments
// are journaled in a transfers table.
type SQLiteLedger struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the ledger database at path and
// ensures its schema.
func OpenSQLite(path string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}
	// modernc's driver serializes writers per connection; a single
	// connection avoids SQLITE_BUSY under concurrent transactions.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}
	return &SQLiteLedger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}

func (l *SQLiteLedger) Balance(ctx context.Context) (models.Funds, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT denom, amount FROM balances WHERE amount != '0' ORDER BY denom`)
	if err != nil {
		return nil, fmt.Errorf("query balance: %w", err)
	}
	defer rows.Close()

	var funds models.Funds
	for rows.Next() {
		var denom, amount string
		if err := rows.Scan(&denom, &amount); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q for %s: %w", amount, denom, err)
		}
		funds = append(funds, models.Coin{Denom: denom, Amount: parsed})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance rows: %w", err)
	}
	return funds, nil
}

func (l *SQLiteLedger) Deposit(ctx context.Context, funds models.Funds) error {
	if err := funds.Validate(); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if funds.IsZero() {
		return nil
	}

	return l.withTx(ctx, func(tx *sql.Tx) error {
		for _, coin := range funds {
			held, err := l.heldAmount(ctx, tx, coin.Denom)
			if err != nil {
				return err
			}
			if err := l.setAmount(ctx, tx, coin.Denom, held.Add(coin.Amount)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l *SQLiteLedger) Send(ctx context.Context, to models.Identity, funds models.Funds) error {
	if err := funds.Validate(); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if funds.IsZero() {
		return nil
	}
	if to == "" {
		return fmt.Errorf("send: recipient is required")
	}

	now := requestcontext.Now(ctx)
	return l.withTx(ctx, func(tx *sql.Tx) error {
		for _, coin := range funds {
			held, err := l.heldAmount(ctx, tx, coin.Denom)
			if err != nil {
				return err
			}
			if held.LessThan(coin.Amount) {
				return fmt.Errorf("send %s to %s: %w", coin, to, ErrInsufficientBalance)
			}
			if err := l.setAmount(ctx, tx, coin.Denom, held.Sub(coin.Amount)); err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO outgoing_transfers (recipient, denom, amount, created_at) VALUES (?, ?, ?, ?)`,
				string(to), coin.Denom, coin.Amount.String(), now)
			if err != nil {
				return fmt.Errorf("journal transfer: %w", err)
			}
		}
		return nil
	})
}

func (l *SQLiteLedger) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback ledger tx: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger tx: %w", err)
	}
	return nil
}

func (l *SQLiteLedger) heldAmount(ctx context.Context, tx *sql.Tx, denom string) (decimal.Decimal, error) {
	var amount string
	err := tx.QueryRowContext(ctx, `SELECT amount FROM balances WHERE denom = ?`, denom).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("read balance for %s: %w", denom, err)
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stored amount %q for %s: %w", amount, denom, err)
	}
	return parsed, nil
}

func (l *SQLiteLedger) setAmount(ctx context.Context, tx *sql.Tx, denom string, amount decimal.Decimal) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO balances (denom, amount) VALUES (?, ?)
		 ON CONFLICT (denom) DO UPDATE SET amount = excluded.amount`,
		denom, amount.String())
	if err != nil {
		return fmt.Errorf("write balance for %s: %w", denom, err)
	}
	return nil
}
