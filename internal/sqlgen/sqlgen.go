package sqlgen

import (
	"fmt"
	"strings"

	"github.com/roach88/dynstore/internal/schema"
)

// Statement is a parameterized SQL statement: template text with positional
// ? placeholders and the arguments bound to them, in order.
type Statement struct {
	SQL  string
	Args []any
}

// CreateTable renders CREATE TABLE IF NOT EXISTS with one clause per
// declared column, in declaration order. The primary-key column's clause
// carries PRIMARY KEY.
func CreateTable(d *schema.Descriptor) Statement {
	parts := make([]string, 0, len(d.Columns()))
	for _, c := range d.Columns() {
		clause := c.Name + " " + c.Type.String()
		if c.Name == d.PrimaryKey() {
			clause += " PRIMARY KEY"
		}
		parts = append(parts, clause)
	}
	return Statement{
		SQL: fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.Table(), strings.Join(parts, ", ")),
	}
}

// Insert renders INSERT for the columns the record supplies, restricted to
// declared columns and ordered by declaration order. A record supplying no
// declared column still yields a syntactically complete statement with an
// empty column and placeholder list; the engine rejects it, which is the
// intended surfacing of that edge rather than a silent no-op.
func Insert(d *schema.Descriptor, rec schema.Record) Statement {
	var cols []string
	var args []any
	for _, c := range d.Columns() {
		if v, ok := rec[c.Name]; ok {
			cols = append(cols, c.Name)
			args = append(args, v)
		}
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return Statement{
		SQL:  fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.Table(), strings.Join(cols, ", "), placeholders),
		Args: args,
	}
}

// Update renders UPDATE ... SET for the supplied columns, excluding the
// primary key, in declaration order. The primary-key value is always the
// last bound argument, after every SET argument.
func Update(d *schema.Descriptor, rec schema.Record) Statement {
	var sets []string
	var args []any
	for _, c := range d.Columns() {
		if c.Name == d.PrimaryKey() {
			continue
		}
		if v, ok := rec[c.Name]; ok {
			sets = append(sets, c.Name+" = ?")
			args = append(args, v)
		}
	}
	args = append(args, rec[d.PrimaryKey()])
	return Statement{
		SQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			d.Table(), strings.Join(sets, ", "), d.PrimaryKey()),
		Args: args,
	}
}

// Delete renders a delete by primary key.
func Delete(d *schema.Descriptor, key any) Statement {
	return Statement{
		SQL:  fmt.Sprintf("DELETE FROM %s WHERE %s = ?", d.Table(), d.PrimaryKey()),
		Args: []any{key},
	}
}

// SelectByKey renders a full-row select by primary key.
func SelectByKey(d *schema.Descriptor, key any) Statement {
	return Statement{
		SQL:  fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", d.Table(), d.PrimaryKey()),
		Args: []any{key},
	}
}

// SelectAll renders a full-table select.
func SelectAll(d *schema.Descriptor) Statement {
	return Statement{SQL: fmt.Sprintf("SELECT * FROM %s", d.Table())}
}

// Exists renders the COUNT probe used to decide between insert and update.
func Exists(d *schema.Descriptor, key any) Statement {
	return Statement{
		SQL:  fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", d.Table(), d.PrimaryKey()),
		Args: []any{key},
	}
}

// AddColumn renders the additive ALTER TABLE. Type names are rendered from
// the type family's canonical spelling.
func AddColumn(d *schema.Descriptor, name string, typ schema.Type) Statement {
	return Statement{
		SQL: fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", d.Table(), name, typ),
	}
}

// DropTable renders DROP TABLE IF EXISTS.
func DropTable(d *schema.Descriptor) Statement {
	return Statement{SQL: fmt.Sprintf("DROP TABLE IF EXISTS %s", d.Table())}
}

// ClearTable renders the delete-all-rows statement. The table itself stays.
func ClearTable(d *schema.Descriptor) Statement {
	return Statement{SQL: fmt.Sprintf("DELETE FROM %s", d.Table())}
}

// TableInfo renders the catalog probe for the managed table's live columns.
func TableInfo(d *schema.Descriptor) Statement {
	return Statement{SQL: fmt.Sprintf("PRAGMA table_info(%s)", d.Table())}
}

// TableExists renders the catalog probe for a named table.
func TableExists(name string) Statement {
	return Statement{
		SQL:  "SELECT name FROM sqlite_master WHERE type='table' AND name = ?",
		Args: []any{name},
	}
}

// ListTables renders the catalog query for all user tables, excluding the
// engine's internal sqlite_* entries.
func ListTables() Statement {
	return Statement{
		SQL: "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'",
	}
}
