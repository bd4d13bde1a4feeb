package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// CreateTableFromModel derives an idempotent CREATE TABLE statement from the db and
// sqltype tags of model, so the DDL and the insert column list cannot drift apart.
func CreateTableFromModel(table string, model any) (string, error) {
	fields, err := taggedFields(model)
	if err != nil {
		return "", err
	}

	builder := CreateTable(table).IfNotExists()
	for _, f := range fields {
		sqlType := strings.TrimSpace(f.field.Tag.Get("sqltype"))
		if sqlType == "" {
			return "", fmt.Errorf("column %s has no sqltype tag", f.column)
		}
		builder.Column(f.column, sqlType)
	}
	return builder.ToSQL()
}

type taggedField struct {
	column string
	field  reflect.StructField
	value  reflect.Value
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	fields, err := taggedFields(model)
	if err != nil {
		return nil, nil, err
	}

	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
		vals = append(vals, f.value.Interface())
	}
	return cols, vals, nil
}

func taggedFields(model any) ([]taggedField, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	out := make([]taggedField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		out = append(out, taggedField{column: col, field: field, value: value.Field(i)})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return out, nil
}
