// Package repository: kontrak Record Store generik (filter, sort, limit, upsert, partial update)
// di atas gorm. Semua error keluar sudah diklasifikasi lewat database.Classify.
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "schoolsite_backend/internals/databases"
)

type Filter struct {
	Column string
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

type ListOptions struct {
	Filters []Filter
	OrderBy []Order
	Limit   int
}

// Eq: shortcut untuk filter kesamaan.
func Eq(column string, value any) Filter { return Filter{Column: column, Value: value} }

func Asc(column string) Order  { return Order{Column: column} }
func Desc(column string) Order { return Order{Column: column, Desc: true} }

type Repository[T any] struct {
	db       *gorm.DB
	name     string
	idColumn string
	scope    []Filter
}

func New[T any](db *gorm.DB, name, idColumn string) *Repository[T] {
	return &Repository[T]{db: db, name: name, idColumn: idColumn}
}

// Scoped: salinan repository yang semua operasinya dibatasi filter tambahan
// (mis. program_type = 'additional').
func (r *Repository[T]) Scoped(filters ...Filter) *Repository[T] {
	cp := *r
	cp.scope = append(append([]Filter(nil), r.scope...), filters...)
	return &cp
}

func (r *Repository[T]) op(action string) string { return r.name + "." + action }

func (r *Repository[T]) base(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	for _, f := range r.scope {
		q = q.Where(eqClause(f))
	}
	return q
}

func eqClause(f Filter) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value}
}

func (r *Repository[T]) byID(id uuid.UUID) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: r.idColumn}, Value: id}
}

func (r *Repository[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	q := r.base(ctx)
	for _, f := range opts.Filters {
		q = q.Where(eqClause(f))
	}
	for _, o := range opts.OrderBy {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, database.Classify(r.op("list"), err)
	}
	return rows, nil
}

func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var m T
	if err := r.base(ctx).Where(r.byID(id)).Take(&m).Error; err != nil {
		return nil, database.Classify(r.op("get"), err)
	}
	return &m, nil
}

// FindOne: satu baris berdasarkan kolom unik (mis. slug).
func (r *Repository[T]) FindOne(ctx context.Context, column string, value any) (*T, error) {
	var m T
	err := r.base(ctx).Where(eqClause(Eq(column, value))).Take(&m).Error
	if err != nil {
		return nil, database.Classify(r.op("find"), err)
	}
	return &m, nil
}

func (r *Repository[T]) Create(ctx context.Context, m *T) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return database.Classify(r.op("create"), err)
	}
	return nil
}

func (r *Repository[T]) CreateMany(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&rows, 100).Error; err != nil {
		return database.Classify(r.op("create_many"), err)
	}
	return nil
}

// Update hanya menulis kolom yang ada di cols. cols kosong = tidak ada write sama sekali.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, cols map[string]any) (*T, error) {
	if len(cols) == 0 {
		return r.Get(ctx, id)
	}
	res := r.base(ctx).Where(r.byID(id)).Updates(cols)
	if res.Error != nil {
		return nil, database.Classify(r.op("update"), res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, database.NotFound(r.op("update"))
	}
	return r.Get(ctx, id)
}

// Delete idempoten: 0 baris terhapus tetap sukses.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.base(ctx).Where(r.byID(id)).Delete(new(T))
	if res.Error != nil {
		return 0, database.Classify(r.op("delete"), res.Error)
	}
	return res.RowsAffected, nil
}

func (r *Repository[T]) DeleteAll(ctx context.Context) (int64, error) {
	res := r.base(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T))
	if res.Error != nil {
		return 0, database.Classify(r.op("delete_all"), res.Error)
	}
	return res.RowsAffected, nil
}

// Upsert: INSERT ... ON CONFLICT (conflictCols) DO UPDATE SET updateCols, lalu baca ulang
// via kolom konflik pertama karena id di struct belum tentu id yang tersimpan.
func (r *Repository[T]) Upsert(ctx context.Context, m *T, conflictCols []string, updateCols []string, key any) (*T, error) {
	cols := make([]clause.Column, 0, len(conflictCols))
	for _, c := range conflictCols {
		cols = append(cols, clause.Column{Name: c})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   cols,
			DoUpdates: clause.AssignmentColumns(updateCols),
		}).
		Create(m).Error
	if err != nil {
		return nil, database.Classify(r.op("upsert"), err)
	}
	return r.FindOne(ctx, conflictCols[0], key)
}
