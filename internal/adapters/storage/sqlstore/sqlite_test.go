package sqlstore

import (
	"context"
	"testing"

	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/domain/dogs"
	"shelter-api/internal/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, Options{Dialect: SQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, zerolog.Nop()))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(v int64) *int64   { return &v }

func mustAddAdopter(t *testing.T, repo *AdoptersRepo, name string, email *string) adopters.Adopter {
	t.Helper()
	a, err := repo.Add(context.Background(), adopters.NewAdopter{Name: strPtr(name), Email: email})
	require.NoError(t, err)
	return a
}

func TestSQLite_Migrate_IsIdempotent(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, zerolog.Nop()))

	v, err := Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestSQLite_AdoptersRepo_AddThenFindByID(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	ctx := context.Background()

	created := mustAddAdopter(t, repo, "Jane", strPtr("jane@example.com"))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jane", created.Name)
	require.NotNil(t, created.Email)
	assert.Equal(t, "jane@example.com", *created.Email)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSQLite_AdoptersRepo_Add_MissingNameIsValidationError(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))

	_, err := repo.Add(context.Background(), adopters.NewAdopter{Email: strPtr("x@example.com")})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err), "got %v", err)
	assert.Contains(t, err.Error(), "NOT NULL")
}

func TestSQLite_AdoptersRepo_FindByID_NotFound(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSQLite_AdoptersRepo_Find_Filters(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	ctx := context.Background()

	jane := mustAddAdopter(t, repo, "Jane", strPtr("jane@example.com"))
	mustAddAdopter(t, repo, "John", nil)
	jane2 := mustAddAdopter(t, repo, "Jane", strPtr("jane2@example.com"))

	all, err := repo.Find(ctx, adopters.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tests := []struct {
		name   string
		filter map[string]any
		want   []int64
	}{
		{"by name", map[string]any{"name": "Jane"}, []int64{jane.ID, jane2.ID}},
		{"by name and email", map[string]any{"name": "Jane", "email": "jane2@example.com"}, []int64{jane2.ID}},
		{"by id", map[string]any{"id": jane.ID}, []int64{jane.ID}},
		{"no match", map[string]any{"name": "Nobody"}, []int64{}},
		{"null email never matches", map[string]any{"name": "John", "email": ""}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := adopters.NewFilter(tt.filter)
			require.NoError(t, err)

			got, err := repo.Find(ctx, f)
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]int64, 0, len(got))
			for _, a := range got {
				assert.True(t, f.Matches(a))
				assert.Contains(t, all, a)
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSQLite_AdoptersRepo_Update_IsSparse(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	ctx := context.Background()

	a := mustAddAdopter(t, repo, "Jane", strPtr("jane@example.com"))

	updated, err := repo.Update(ctx, a.ID, adopters.Patch{Email: adopters.SetField("new@example.com")})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "Jane", updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "new@example.com", *updated.Email)

	cleared, err := repo.Update(ctx, a.ID, adopters.Patch{Email: adopters.NullField[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)
	assert.Equal(t, "Jane", cleared.Name)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, cleared, got)
}

func TestSQLite_AdoptersRepo_Update_NotFoundMutatesNothing(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	ctx := context.Background()

	mustAddAdopter(t, repo, "Jane", nil)
	before, err := repo.Find(ctx, adopters.Filter{})
	require.NoError(t, err)

	_, err = repo.Update(ctx, 999, adopters.Patch{Name: adopters.SetField("Ghost")})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	after, err := repo.Find(ctx, adopters.Filter{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSQLite_AdoptersRepo_Update_NullNameIsValidationError(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	a := mustAddAdopter(t, repo, "Jane", nil)

	_, err := repo.Update(context.Background(), a.ID, adopters.Patch{Name: adopters.NullField[string]()})
	assert.True(t, errs.IsValidation(err), "got %v", err)
}

func TestSQLite_AdoptersRepo_Remove_OnceThenFalse(t *testing.T) {
	repo := NewAdoptersRepo(newSQLiteDB(t))
	ctx := context.Background()

	a := mustAddAdopter(t, repo, "Jane", nil)

	ok, err := repo.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSQLite_DogsRepo_List_ToleratesOrphans(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()

	// fila escrita por fuera del servicio, con foreign keys apagadas
	_, err := db.ExecContext(ctx, `PRAGMA foreign_keys = OFF`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO dogs (name, weight, adopter_id) VALUES ('Ghost', 3, 999)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	got, err := NewDogsRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ghost", got[0].Name)
	assert.Nil(t, got[0].AdopterName)
}

func TestSQLite_AdoptersRepo_Remove_WithDogsIsRejected(t *testing.T) {
	db := newSQLiteDB(t)
	adoptersRepo := NewAdoptersRepo(db)
	dogsRepo := NewDogsRepo(db)
	ctx := context.Background()

	a := mustAddAdopter(t, adoptersRepo, "Jane", nil)
	_, err := dogsRepo.Add(ctx, dogs.NewDog{Name: "Rex", Weight: 12.5, AdopterID: intPtr(a.ID)})
	require.NoError(t, err)

	ok, err := adoptersRepo.Remove(ctx, a.ID)
	assert.False(t, ok)
	assert.True(t, errs.IsValidation(err), "got %v", err)

	_, err = adoptersRepo.FindByID(ctx, a.ID)
	assert.NoError(t, err)
}

func TestSQLite_DogsRepo_JoinScenario(t *testing.T) {
	db := newSQLiteDB(t)
	adoptersRepo := NewAdoptersRepo(db)
	dogsRepo := NewDogsRepo(db)
	ctx := context.Background()

	jane := mustAddAdopter(t, adoptersRepo, "Jane", nil)
	rex, err := dogsRepo.Add(ctx, dogs.NewDog{Name: "Rex", Weight: 30, AdopterID: intPtr(jane.ID)})
	require.NoError(t, err)
	stray, err := dogsRepo.Add(ctx, dogs.NewDog{Name: "Stray", Weight: 8.2})
	require.NoError(t, err)
	assert.Nil(t, stray.AdopterID)

	listing, err := dogsRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 2)

	assert.Equal(t, rex.ID, listing[0].ID)
	assert.Equal(t, "Rex", listing[0].Name)
	assert.Equal(t, 30.0, listing[0].Weight)
	require.NotNil(t, listing[0].AdopterName)
	assert.Equal(t, "Jane", *listing[0].AdopterName)

	assert.Equal(t, stray.ID, listing[1].ID)
	assert.Nil(t, listing[1].AdopterName)

	owned, err := dogsRepo.ListByAdopter(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, []dogs.Dog{rex}, owned)

	none, err := dogsRepo.ListByAdopter(ctx, jane.ID+1)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSQLite_DogsRepo_Add_UnknownAdopterIsValidationError(t *testing.T) {
	dogsRepo := NewDogsRepo(newSQLiteDB(t))

	_, err := dogsRepo.Add(context.Background(), dogs.NewDog{Name: "Rex", AdopterID: intPtr(77)})
	assert.True(t, errs.IsValidation(err), "got %v", err)
}
