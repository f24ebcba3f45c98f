package gormstore

import (
	"reflect"
	"time"

	"canteen/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columns maps stored document field names onto table columns.
type columns map[string]string

// apply translates q into WHERE, ORDER BY and LIMIT clauses.
func (c columns) apply(db *gorm.DB, q repository.Query) (*gorm.DB, error) {
	for _, f := range q.Filters {
		col, ok := c[f.Field]
		if !ok {
			return nil, errors.Errorf("unsupported query field %q", f.Field)
		}
		expr, err := filterExpr(clause.Column{Name: col}, f)
		if err != nil {
			return nil, err
		}
		db = db.Where(expr)
	}

	for _, o := range q.Orderings {
		col, ok := c[o.Field]
		if !ok {
			return nil, errors.Errorf("unsupported order field %q", o.Field)
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Direction == repository.Descending})
	}

	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	return db, nil
}

func filterExpr(col clause.Column, f repository.Filter) (clause.Expression, error) {
	switch f.Op {
	case repository.OpEqual:
		return clause.Eq{Column: col, Value: normalizeValue(f.Value)}, nil
	case repository.OpLess:
		return clause.Lt{Column: col, Value: normalizeValue(f.Value)}, nil
	case repository.OpLessEqual:
		return clause.Lte{Column: col, Value: normalizeValue(f.Value)}, nil
	case repository.OpGreater:
		return clause.Gt{Column: col, Value: normalizeValue(f.Value)}, nil
	case repository.OpGreaterEqual:
		return clause.Gte{Column: col, Value: normalizeValue(f.Value)}, nil
	case repository.OpIn:
		values := normalizeList(f.Value)
		if len(values) > repository.MaxInValues {
			return nil, errors.Errorf("%q filter on %s carries %d values, at most %d allowed", f.Op, f.Field, len(values), repository.MaxInValues)
		}
		if len(values) == 0 {
			return clause.Expr{SQL: "1 = 0"}, nil
		}

		return clause.IN{Column: col, Values: values}, nil
	default:
		return nil, errors.Errorf("unsupported operator %q", f.Op)
	}
}

// normalizeValue turns named string and bool types into their base types and times into UTC,
// the form every column is written in.
func normalizeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	default:
		return v
	}
}

func normalizeList(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{normalizeValue(v)}
	}

	values := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		values = append(values, normalizeValue(rv.Index(i).Interface()))
	}

	return values
}
