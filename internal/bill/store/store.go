package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/bill"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, owner_id, name, total_amount, installments,
// installments_paid, installment_amount, due_date, paid, category, created_at
func scanBill(s scanner) (*bill.Bill, error) {
	var b bill.Bill

	if err := s.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.TotalAmount, &b.Installments,
		&b.PaidInstallments, &b.InstallmentAmount, &b.DueDate, &b.Paid,
		&b.Category, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

const selectBillColumns = `
	b.id, b.owner_id, b.name, b.total_amount, b.installments,
	b.installments_paid, b.installment_amount, b.due_date, b.paid,
	b.category, b.created_at
`

func (s *Store) CreateBill(ctx context.Context, b *bill.Bill) error {
	query := `
		INSERT INTO bills (owner_id, name, total_amount, installments, installments_paid, installment_amount, due_date, paid, category, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, FALSE, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.OwnerID,
		b.Name,
		b.TotalAmount,
		b.Installments,
		b.InstallmentAmount,
		b.DueDate,
		b.Category,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bill: %w", err)
	}

	return nil
}

func (s *Store) GetBill(ctx context.Context, ownerID, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills b
		WHERE b.owner_id = $1 AND b.id = $2`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Store) ListBills(ctx context.Context, ownerID uuid.UUID) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills b
		WHERE b.owner_id = $1
		ORDER BY b.due_date ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}

// RegisterPayment advances the installment counter in a single conditional
// update; a fully paid bill never matches the guard.
func (s *Store) RegisterPayment(ctx context.Context, ownerID, id uuid.UUID) (*bill.Bill, error) {
	query := `
		UPDATE bills b
		SET installments_paid = installments_paid + 1,
		    paid = (installments_paid + 1 >= installments)
		WHERE b.owner_id = $1 AND b.id = $2 AND b.installments_paid < b.installments
		RETURNING ` + selectBillColumns

	b, err := scanBill(s.db.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("registering payment: %w", err)
	}

	return b, nil
}

func (s *Store) DeleteBill(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM bills WHERE owner_id = $1 AND id = $2`

	res, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bill: %w", err)
	}

	if affected == 0 {
		return bill.ErrNotFound
	}

	return nil
}
