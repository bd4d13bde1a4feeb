package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(") VALUES ")

	args := make([]any, 0, len(b.rows)*len(b.columns))
	argIndex := 1
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(placeholder(argIndex))
			args = append(args, value)
			argIndex++
		}
		buf.WriteString(")")
	}

	if b.suffix != "" {
		buf.WriteString(" ")
		buf.WriteString(b.suffix)
	}

	return buf.String(), args, nil
}

type columnDef struct {
	name    string
	sqlType string
}

type CreateTableBuilder struct {
	table       string
	ifNotExists bool
	columns     []columnDef
}

func CreateTable(table string) *CreateTableBuilder {
	return &CreateTableBuilder{table: table}
}

func (b *CreateTableBuilder) IfNotExists() *CreateTableBuilder {
	b.ifNotExists = true
	return b
}

func (b *CreateTableBuilder) Column(name, sqlType string) *CreateTableBuilder {
	b.columns = append(b.columns, columnDef{name: name, sqlType: sqlType})
	return b
}

func (b *CreateTableBuilder) ToSQL() (string, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", fmt.Errorf("create table name is required")
	}
	if len(b.columns) == 0 {
		return "", fmt.Errorf("create table columns are required")
	}

	var buf strings.Builder
	buf.WriteString("CREATE TABLE ")
	if b.ifNotExists {
		buf.WriteString("IF NOT EXISTS ")
	}
	buf.WriteString(b.table)
	buf.WriteString(" (")
	for i, col := range b.columns {
		if strings.TrimSpace(col.name) == "" || strings.TrimSpace(col.sqlType) == "" {
			return "", fmt.Errorf("column %d needs a name and a type", i)
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(col.name)
		buf.WriteString(" ")
		buf.WriteString(col.sqlType)
	}
	buf.WriteString(")")

	return buf.String(), nil
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
