package adopters

import (
	"net/url"
	"testing"

	"shelter-api/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      []Condition
		wantField string
	}{
		{name: "empty", query: "", want: []Condition{}},
		{name: "name only", query: "name=Jane", want: []Condition{{ColumnName, "Jane"}}},
		{
			name:  "sorted by column",
			query: "name=Jane&id=3&email=j%40x.io",
			want: []Condition{
				{ColumnEmail, "j@x.io"},
				{ColumnID, int64(3)},
				{ColumnName, "Jane"},
			},
		},
		{name: "unknown column", query: "password=x", wantField: "password"},
		{name: "injection as column", query: "name%3D1%20OR%201=1", wantField: "name=1 OR 1"},
		{name: "repeated key", query: "name=a&name=b", wantField: "name"},
		{name: "repeated key after trim", query: "name=a&name%20=b", wantField: "name"},
		{name: "non integer id", query: "id=abc", wantField: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			f, err := ParseFilter(q)
			if tt.wantField != "" {
				var ve *errs.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Conditions())
		})
	}
}

func TestNewFilter_CoercesValues(t *testing.T) {
	f, err := NewFilter(map[string]any{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, []Condition{{ColumnID, int64(7)}}, f.Conditions())

	f, err = NewFilter(map[string]any{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, []Condition{{ColumnID, int64(12)}}, f.Conditions())

	_, err = NewFilter(map[string]any{"name": 12})
	assert.True(t, errs.IsValidation(err))

	_, err = NewFilter(map[string]any{"id": 1.5})
	assert.True(t, errs.IsValidation(err))
}

func TestNewFilter_RejectsSameColumnTwice(t *testing.T) {
	_, err := NewFilter(map[string]any{"email": "a@x.io", " email": "b@x.io"})

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestFilter_ConditionsIsACopy(t *testing.T) {
	f, err := NewFilter(map[string]any{"name": "Jane"})
	require.NoError(t, err)

	c := f.Conditions()
	c[0].Value = "John"

	assert.Equal(t, "Jane", f.Conditions()[0].Value)
}

func TestFilter_Matches(t *testing.T) {
	email := "jane@example.com"
	jane := Adopter{ID: 1, Name: "Jane", Email: &email}
	john := Adopter{ID: 2, Name: "John"}

	var zero Filter
	assert.True(t, zero.Empty())
	assert.True(t, zero.Matches(jane))
	assert.True(t, zero.Matches(john))

	byEmail, err := NewFilter(map[string]any{"email": email})
	require.NoError(t, err)
	assert.True(t, byEmail.Matches(jane))
	assert.False(t, byEmail.Matches(john))

	byBoth, err := NewFilter(map[string]any{"id": int64(1), "name": "John"})
	require.NoError(t, err)
	assert.False(t, byBoth.Matches(jane))
	assert.False(t, byBoth.Matches(john))
}

func TestPatch_Apply(t *testing.T) {
	email := "old@example.com"
	a := Adopter{ID: 1, Name: "Jane", Email: &email}

	assert.True(t, Patch{}.Empty())
	assert.Equal(t, a, Patch{}.Apply(a))

	got := Patch{Email: NullField[string]()}.Apply(a)
	assert.Equal(t, "Jane", got.Name)
	assert.Nil(t, got.Email)

	got = Patch{Name: SetField("Janet")}.Apply(a)
	assert.Equal(t, "Janet", got.Name)
	assert.Equal(t, &email, got.Email)
}
