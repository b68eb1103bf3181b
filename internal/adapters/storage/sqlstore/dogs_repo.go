package sqlstore

import (
	"context"
	"database/sql"

	"shelter-api/internal/domain/dogs"
)

const (
	// LEFT JOIN: un perro sin adoptante (o con adopter_id huérfano) sale con adopter_name NULL
	selectDogListings = `SELECT d.id, d.name, d.weight, a.name AS adopter_name
		FROM dogs AS d
		LEFT JOIN adopters AS a ON a.id = d.adopter_id
		ORDER BY d.id`

	selectDogs = `SELECT id, name, weight, adopter_id FROM dogs`
)

type DogsRepo struct {
	db *DB
}

var _ dogs.Repository = (*DogsRepo)(nil)

func NewDogsRepo(db *DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Listing, error) {
	rows, err := r.db.QueryContext(ctx, selectDogListings)
	if err != nil {
		return nil, translate("list dogs", err)
	}
	defer rows.Close()

	out := make([]dogs.Listing, 0)
	for rows.Next() {
		var (
			l           dogs.Listing
			adopterName sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Weight, &adopterName); err != nil {
			return nil, translate("scan dog listing", err)
		}
		if adopterName.Valid {
			v := adopterName.String
			l.AdopterName = &v
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list dogs", err)
	}
	return out, nil
}

func (r *DogsRepo) ListByAdopter(ctx context.Context, adopterID int64) ([]dogs.Dog, error) {
	q := newQuery(r.db.dialect, selectDogs)
	q.write(" WHERE adopter_id = " + q.arg(adopterID))
	q.write(" ORDER BY id")

	rows, err := r.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, translate("list dogs by adopter", err)
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, translate("scan dog", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list dogs by adopter", err)
	}
	return out, nil
}

func (r *DogsRepo) Add(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	q := newQuery(r.db.dialect, "INSERT INTO dogs (name, weight, adopter_id) VALUES (")
	q.write(q.arg(in.Name) + ", " + q.arg(in.Weight) + ", " + q.arg(nullInt(in.AdopterID)) + ")")

	if r.db.dialect.returning() {
		q.write(" RETURNING id, name, weight, adopter_id")
		d, err := scanDog(r.db.QueryRowContext(ctx, q.String(), q.args...))
		if err != nil {
			return dogs.Dog{}, translate("add dog", err)
		}
		return d, nil
	}

	res, err := r.db.ExecContext(ctx, q.String(), q.args...)
	if err != nil {
		return dogs.Dog{}, translate("add dog", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return dogs.Dog{}, translate("add dog", err)
	}

	sel := newQuery(r.db.dialect, selectDogs)
	sel.write(" WHERE id = " + sel.arg(id))
	d, err := scanDog(r.db.QueryRowContext(ctx, sel.String(), sel.args...))
	if err != nil {
		return dogs.Dog{}, translate("add dog", err)
	}
	return d, nil
}

func scanDog(s scanner) (dogs.Dog, error) {
	var (
		d         dogs.Dog
		adopterID sql.NullInt64
	)
	if err := s.Scan(&d.ID, &d.Name, &d.Weight, &adopterID); err != nil {
		return dogs.Dog{}, err
	}
	if adopterID.Valid {
		v := adopterID.Int64
		d.AdopterID = &v
	}
	return d, nil
}
