package sqlite

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/store/base"
)

// ResourceStore persists any gorm model. One store serves every resource.
type ResourceStore struct {
	db      *gorm.DB
	schemas sync.Map
}

func NewResourceStore(db *gorm.DB) *ResourceStore {
	return &ResourceStore{db: db}
}

var _ base.Repository = (*ResourceStore)(nil)

func (s *ResourceStore) parse(model any) (*schema.Schema, error) {
	sch, err := schema.Parse(model, &s.schemas, s.db.NamingStrategy)
	if err != nil {
		return nil, errors.ErrInvalidInput.WithReason(err.Error())
	}
	return sch, nil
}

func (s *ResourceStore) Fill(ctx context.Context, model any, values map[string]any) error {
	sch, err := s.parse(model)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(model)
	for name, value := range values {
		field := sch.LookUpField(name)
		if field == nil {
			return errors.ErrUnknownAttribute.WithReason(fmt.Sprintf("%s.%s", sch.Name, name))
		}
		// an empty input clears a nullable column
		if str, ok := value.(string); ok && str == "" && field.FieldType.Kind() == reflect.Ptr {
			value = nil
		}
		if err := field.Set(ctx, rv, value); err != nil {
			return errors.ErrInvalidInput.WithReason(fmt.Sprintf("%s: %v", name, err))
		}
	}
	return nil
}

// Save inserts a model with a zero primary key and updates it otherwise.
// Loaded associations are not written back; relations change through their
// foreign key columns only.
func (s *ResourceStore) Save(ctx context.Context, model any) error {
	result := s.db.WithContext(ctx).Omit(clause.Associations).Save(model)
	if result.Error != nil {
		if s.IsUniqueViolation(result.Error) {
			return errors.ErrAlreadyExists.WithReason(result.Error.Error())
		}
		return errors.ErrStorageOperation.WithReason(result.Error.Error())
	}
	return nil
}

func (s *ResourceStore) Find(ctx context.Context, model any, id string, with ...string) error {
	sch, err := s.parse(model)
	if err != nil {
		return err
	}
	pk := sch.PrioritizedPrimaryField
	if pk == nil {
		return errors.ErrInvalidInput.WithReason(sch.Name + " has no primary key")
	}

	tx := s.db.WithContext(ctx)
	for _, relation := range with {
		tx = tx.Preload(relation)
	}

	result := tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: pk.DBName}, Value: id}).First(model)
	if result.Error != nil {
		if s.IsNotFound(result.Error) {
			return errors.ErrNotFound.WithReason(fmt.Sprintf("%s/%s", sch.Table, id))
		}
		return errors.ErrStorageOperation.WithReason(result.Error.Error())
	}
	return nil
}

func (s *ResourceStore) List(ctx context.Context, model any, q base.ListQuery) (any, int64, error) {
	sch, err := s.parse(model)
	if err != nil {
		return nil, 0, err
	}

	conds := make([]clause.Expression, 0, len(q.Filters))
	for _, f := range q.Filters {
		field := sch.LookUpField(f.Column)
		if field == nil || field.DBName == "" {
			return nil, 0, errors.ErrUnknownAttribute.WithReason(fmt.Sprintf("%s.%s", sch.Name, f.Column))
		}
		col := clause.Column{Table: clause.CurrentTable, Name: field.DBName}
		switch strings.ToLower(f.Operator) {
		case "like":
			conds = append(conds, clause.Like{Column: col, Value: fmt.Sprintf("%%%v%%", f.Value)})
		case "", "=":
			conds = append(conds, clause.Eq{Column: col, Value: coerce(field, f.Value)})
		default:
			return nil, 0, errors.ErrInvalidInput.WithReason("unsupported operator " + f.Operator)
		}
	}

	order := clause.OrderByColumn{Desc: q.Desc}
	switch {
	case q.SortBy != "":
		field := sch.LookUpField(q.SortBy)
		if field == nil || field.DBName == "" {
			return nil, 0, errors.ErrUnknownAttribute.WithReason(fmt.Sprintf("%s.%s", sch.Name, q.SortBy))
		}
		order.Column = clause.Column{Table: clause.CurrentTable, Name: field.DBName}
	case sch.PrioritizedPrimaryField != nil:
		order.Column = clause.Column{Table: clause.CurrentTable, Name: sch.PrioritizedPrimaryField.DBName}
	}

	filtered := func(tx *gorm.DB) *gorm.DB {
		if len(conds) > 0 {
			tx = tx.Where(clause.And(conds...))
		}
		return tx
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(model).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.ErrStorageOperation.WithReason(err.Error())
	}

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(model)))
	tx := s.db.WithContext(ctx).Model(model).Scopes(filtered)
	for _, relation := range q.With {
		tx = tx.Preload(relation)
	}
	if order.Column.Name != "" {
		tx = tx.Order(order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if err := tx.Find(rows.Interface()).Error; err != nil {
		return nil, 0, errors.ErrStorageOperation.WithReason(err.Error())
	}
	return rows.Elem().Interface(), total, nil
}

// coerce converts query string values to the column's type so that equality
// holds for numeric and boolean columns.
func coerce(field *schema.Field, value any) any {
	str, ok := value.(string)
	if !ok {
		return value
	}
	switch field.DataType {
	case schema.Bool:
		if b, err := strconv.ParseBool(str); err == nil {
			return b
		}
	case schema.Int, schema.Uint:
		if i, err := strconv.ParseInt(str, 10, 64); err == nil {
			return i
		}
	case schema.Float:
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f
		}
	}
	return value
}

func (s *ResourceStore) Delete(ctx context.Context, model any) error {
	sch, err := s.parse(model)
	if err != nil {
		return err
	}
	if pk := sch.PrioritizedPrimaryField; pk != nil {
		if _, zero := pk.ValueOf(ctx, reflect.ValueOf(model)); zero {
			return errors.ErrInvalidInput.WithReason("cannot delete an unsaved " + sch.Name)
		}
	}

	result := s.db.WithContext(ctx).Delete(model)
	if result.Error != nil {
		return errors.ErrStorageOperation.WithReason(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.ErrNotFound.WithReason(sch.Table)
	}
	return nil
}

func (s *ResourceStore) IsNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}

func (s *ResourceStore) IsUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
