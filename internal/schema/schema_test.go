package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidDescriptor(t *testing.T) {
	d, err := New("orders", "order_id", []Column{
		{Name: "order_id", Type: Text},
		{Name: "total", Type: Real},
	})
	require.NoError(t, err)

	assert.Equal(t, "orders", d.Table())
	assert.Equal(t, "order_id", d.PrimaryKey())
	assert.Equal(t, []string{"order_id", "total"}, d.Names())
}

func TestNew_PrimaryKeyMustBeDeclared(t *testing.T) {
	_, err := New("orders", "missing", []Column{
		{Name: "order_id", Type: Text},
	})
	require.Error(t, err)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Error(), "missing")
}

func TestNew_Rejections(t *testing.T) {
	cols := []Column{{Name: "id", Type: Text}}

	tests := []struct {
		name    string
		table   string
		pk      string
		columns []Column
	}{
		{"empty table name", "", "id", cols},
		{"no columns", "t", "id", nil},
		{"empty column name", "t", "id", []Column{{Name: "", Type: Text}}},
		{"duplicate column", "t", "id", []Column{{Name: "id", Type: Text}, {Name: "id", Type: Integer}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.table, tt.pk, tt.columns)
			assert.Error(t, err)
		})
	}
}

func TestDescriptor_ColumnOrderIsStable(t *testing.T) {
	cols := []Column{
		{Name: "z", Type: Text},
		{Name: "a", Type: Integer},
		{Name: "m", Type: Blob},
	}
	d, err := New("t", "z", cols)
	require.NoError(t, err)

	// Declaration order, not lexical order.
	assert.Equal(t, []string{"z", "a", "m"}, d.Names())

	// Columns() hands out a copy.
	got := d.Columns()
	got[0].Name = "mutated"
	assert.Equal(t, []string{"z", "a", "m"}, d.Names())
}

func TestDescriptor_AddColumnAppends(t *testing.T) {
	d, err := New("t", "id", []Column{{Name: "id", Type: Text}})
	require.NoError(t, err)

	require.NoError(t, d.AddColumn("extra", Integer))
	assert.Equal(t, []string{"id", "extra"}, d.Names())

	typ, ok := d.TypeOf("extra")
	require.True(t, ok)
	assert.Equal(t, Integer, typ)

	// Appending an existing name is rejected and changes nothing.
	assert.Error(t, d.AddColumn("extra", Text))
	assert.Equal(t, []string{"id", "extra"}, d.Names())
}

func TestTypeOf_AbsentColumn(t *testing.T) {
	d, err := New("t", "id", []Column{{Name: "id", Type: Text}})
	require.NoError(t, err)

	_, ok := d.TypeOf("nope")
	assert.False(t, ok)
	assert.False(t, d.Has("nope"))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "INTEGER", Integer.String())
	assert.Equal(t, "REAL", Real.String())
	assert.Equal(t, "TEXT", Text.String())
	assert.Equal(t, "BLOB", Blob.String())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"INTEGER", Integer},
		{"int", Integer},
		{"BIGINT", Integer},
		{"REAL", Real},
		{"DOUBLE", Real},
		{"FLOAT", Real},
		{"TEXT", Text},
		{"VARCHAR(30)", Text},
		{"CLOB", Text},
		{"BLOB", Blob},
		{"", Blob},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		require.NoError(t, err, "ParseType(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseType(%q)", tt.in)
	}

	_, err := ParseType("GEOMETRY")
	assert.Error(t, err)
}
