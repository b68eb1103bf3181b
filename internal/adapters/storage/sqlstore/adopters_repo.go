package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/errs"
)

const selectAdopters = `SELECT id, name, email FROM adopters`

type AdoptersRepo struct {
	db *DB
}

var _ adopters.Repository = (*AdoptersRepo)(nil)

func NewAdoptersRepo(db *DB) *AdoptersRepo {
	return &AdoptersRepo{db: db}
}

// findQuery traduce el filtro a un AND de igualdades. Las columnas vienen
// del conjunto cerrado de adopters.Filter, nunca del input crudo.
func findQuery(d Dialect, f adopters.Filter) *query {
	q := newQuery(d, selectAdopters)
	for i, c := range f.Conditions() {
		if i == 0 {
			q.write(" WHERE ")
		} else {
			q.write(" AND ")
		}
		q.write(string(c.Column) + " = " + q.arg(c.Value))
	}
	return q.write(" ORDER BY id")
}

func (r *AdoptersRepo) Find(ctx context.Context, f adopters.Filter) ([]adopters.Adopter, error) {
	q := findQuery(r.db.dialect, f)

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, translate("find adopters", err)
	}
	defer rows.Close()

	out := make([]adopters.Adopter, 0)
	for rows.Next() {
		a, err := scanAdopter(rows)
		if err != nil {
			return nil, translate("scan adopter", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find adopters", err)
	}
	return out, nil
}

func (r *AdoptersRepo) FindByID(ctx context.Context, id int64) (adopters.Adopter, error) {
	q := newQuery(r.db.dialect, selectAdopters)
	q.write(" WHERE id = " + q.arg(id))

	a, err := scanAdopter(r.db.QueryRowContext(ctx, q.String(), q.args...))
	if err != nil {
		return adopters.Adopter{}, translate("find adopter", err)
	}
	return a, nil
}

func (r *AdoptersRepo) Add(ctx context.Context, in adopters.NewAdopter) (adopters.Adopter, error) {
	q := newQuery(r.db.dialect, "INSERT INTO adopters (name, email) VALUES (")
	q.write(q.arg(nullString(in.Name)) + ", " + q.arg(nullString(in.Email)) + ")")

	if r.db.dialect.returning() {
		q.write(" RETURNING id, name, email")
		a, err := scanAdopter(r.db.QueryRowContext(ctx, q.String(), q.args...))
		if err != nil {
			return adopters.Adopter{}, translate("add adopter", err)
		}
		return a, nil
	}

	res, err := r.db.ExecContext(ctx, q.String(), q.args...)
	if err != nil {
		return adopters.Adopter{}, translate("add adopter", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return adopters.Adopter{}, translate("add adopter", err)
	}
	return r.FindByID(ctx, id)
}

// Update escribe sólo las columnas presentes en p.
func (r *AdoptersRepo) Update(ctx context.Context, id int64, p adopters.Patch) (adopters.Adopter, error) {
	if p.Empty() {
		return r.FindByID(ctx, id)
	}

	q := newQuery(r.db.dialect, "UPDATE adopters SET ")
	sets := make([]string, 0, 2)
	if p.Name.Set {
		sets = append(sets, "name = "+q.arg(nullString(p.Name.Value)))
	}
	if p.Email.Set {
		sets = append(sets, "email = "+q.arg(nullString(p.Email.Value)))
	}
	q.write(strings.Join(sets, ", "))
	q.write(" WHERE id = " + q.arg(id))

	if r.db.dialect.returning() {
		q.write(" RETURNING id, name, email")
		a, err := scanAdopter(r.db.QueryRowContext(ctx, q.String(), q.args...))
		if err != nil {
			return adopters.Adopter{}, translate("update adopter", err)
		}
		return a, nil
	}

	res, err := r.db.ExecContext(ctx, q.String(), q.args...)
	if err != nil {
		return adopters.Adopter{}, translate("update adopter", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return adopters.Adopter{}, translate("update adopter", err)
	}
	if n == 0 {
		return adopters.Adopter{}, errs.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *AdoptersRepo) Remove(ctx context.Context, id int64) (bool, error) {
	q := newQuery(r.db.dialect, "DELETE FROM adopters")
	q.write(" WHERE id = " + q.arg(id))

	res, err := r.db.ExecContext(ctx, q.String(), q.args...)
	if err != nil {
		return false, translate("remove adopter", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, translate("remove adopter", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdopter(s scanner) (adopters.Adopter, error) {
	var (
		a     adopters.Adopter
		email sql.NullString
	)
	if err := s.Scan(&a.ID, &a.Name, &email); err != nil {
		return adopters.Adopter{}, err
	}
	if email.Valid {
		v := email.String
		a.Email = &v
	}
	return a, nil
}
