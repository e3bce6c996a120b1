package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samirrijal/tunimap/internal/core/domain"
)

// MunicipalityRepo implements ports.DatasetSource and ports.DatasetWriter with pgx.
type MunicipalityRepo struct {
	db *DB
}

// NewMunicipalityRepo creates a new MunicipalityRepo.
func NewMunicipalityRepo(db *DB) *MunicipalityRepo {
	return &MunicipalityRepo{db: db}
}

// Load returns every governorate with its delegations, in stored order.
func (r *MunicipalityRepo) Load(ctx context.Context) ([]domain.Governorate, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT g.id, g.name, g.name_ar, g.code,
		       d.name, d.name_ar, d.code, d.postal_code, d.latitude, d.longitude
		FROM governorates g
		LEFT JOIN delegations d ON d.governorate_id = g.id
		ORDER BY g.position, d.position
	`)
	if err != nil {
		return nil, fmt.Errorf("query governorates: %w", err)
	}
	defer rows.Close()

	var (
		govs   []domain.Governorate
		lastID = -1
	)
	for rows.Next() {
		var (
			id                           int
			g                            domain.Governorate
			dName, dNameAr, dCode, dPost *string
			dLat, dLon                   *float64
		)
		if err := rows.Scan(&id, &g.Name, &g.NameAr, &g.Code,
			&dName, &dNameAr, &dCode, &dPost, &dLat, &dLon); err != nil {
			return nil, fmt.Errorf("scan governorate: %w", err)
		}
		if id != lastID {
			g.Delegations = []domain.Delegation{}
			govs = append(govs, g)
			lastID = id
		}
		if dName == nil {
			continue
		}
		cur := &govs[len(govs)-1]
		cur.Delegations = append(cur.Delegations, domain.Delegation{
			Name:       *dName,
			NameAr:     deref(dNameAr),
			Code:       deref(dCode),
			PostalCode: deref(dPost),
			Latitude:   derefFloat(dLat),
			Longitude:  derefFloat(dLon),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate governorates: %w", err)
	}
	return govs, nil
}

// Seed replaces the stored dataset with govs in one transaction. progress is
// called after each governorate with the number of delegations written.
func (r *MunicipalityRepo) Seed(ctx context.Context, govs []domain.Governorate, progress func(n int)) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `TRUNCATE delegations, governorates RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for i, g := range govs {
		var govID int
		err := tx.QueryRow(ctx, `
			INSERT INTO governorates (position, name, name_ar, code)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, i, g.Name, g.NameAr, g.Code).Scan(&govID)
		if err != nil {
			return fmt.Errorf("insert governorate %s: %w", g.Name, err)
		}

		batch := &pgx.Batch{}
		for j, d := range g.Delegations {
			batch.Queue(`
				INSERT INTO delegations (governorate_id, position, name, name_ar, code, postal_code, latitude, longitude)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, govID, j, d.Name, d.NameAr, d.Code, d.PostalCode, d.Latitude, d.Longitude)
		}
		br := tx.SendBatch(ctx, batch)
		for range g.Delegations {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("insert delegations of %s: %w", g.Name, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("batch close: %w", err)
		}

		if progress != nil {
			progress(len(g.Delegations))
		}
	}

	return tx.Commit(ctx)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
