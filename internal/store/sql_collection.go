// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	idColumn  = "id"
	docColumn = "doc"
	seqColumn = "seq"
)

// sqlCollection stores each document as JSON in the doc column of a table
// named after the collection. The _id field is mirrored in the id column and
// seq keeps insertion order.
type sqlCollection struct {
	db      *sql.DB
	table   string
	dialect sqlDialect
	schema  *schemaState
	err     error
}

func (c *sqlCollection) check(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	return c.schema.ensure(ctx)
}

func (c *sqlCollection) FindOne(ctx context.Context, filter Filter, dst any) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	where, err := c.where(filter)
	if err != nil {
		return err
	}

	query, args, err := sq.Select(docColumn).
		From(c.table).
		Where(where).
		OrderBy(seqColumn).
		Limit(1).
		PlaceholderFormat(c.dialect.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return nil
}

func (c *sqlCollection) Find(ctx context.Context, filter Filter, dst any) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	where, err := c.where(filter)
	if err != nil {
		return err
	}

	query, args, err := sq.Select(docColumn).
		From(c.table).
		Where(where).
		OrderBy(seqColumn).
		PlaceholderFormat(c.dialect.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	// documents are collected into one JSON array and decoded at once
	buf := bytes.NewBufferString("[")
	first := true
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		buf.Write(raw)
		first = false
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return nil
}

func (c *sqlCollection) InsertOne(ctx context.Context, doc Document) error {
	if err := c.check(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := sq.Insert(c.table).
		Columns(idColumn, docColumn).
		Values(doc.DocumentID(), sq.Expr(c.dialect.docExpr(), string(raw))).
		PlaceholderFormat(c.dialect.placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		if c.dialect.isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateDocument, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *sqlCollection) UpdateOne(ctx context.Context, filter Filter, fields Fields) (bool, error) {
	if err := c.check(ctx); err != nil {
		return false, err
	}

	for _, name := range sortedKeys(fields) {
		if name == IDField {
			return false, fmt.Errorf("%w: %q cannot be updated", ErrInvalidField, name)
		}
		if err := validateField(name); err != nil {
			return false, err
		}
	}

	where, err := c.where(filter)
	if err != nil {
		return false, err
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := sq.Update(c.table).
		Set(docColumn, sq.Expr(c.dialect.patchExpr(), string(patch))).
		Where(where).
		PlaceholderFormat(c.dialect.placeholder()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, query, args)
}

func (c *sqlCollection) DeleteOne(ctx context.Context, filter Filter) (bool, error) {
	if err := c.check(ctx); err != nil {
		return false, err
	}

	where, err := c.where(filter)
	if err != nil {
		return false, err
	}

	query, args, err := sq.Delete(c.table).
		Where(where).
		PlaceholderFormat(c.dialect.placeholder()).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, query, args)
}

// exec runs a DML statement and reports whether any row was affected.
// Filters select by unique id, so at most one row changes.
func (c *sqlCollection) exec(ctx context.Context, query string, args []any) (bool, error) {
	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// where turns filter into an AND of equality predicates on document fields.
func (c *sqlCollection) where(filter Filter) (sq.And, error) {
	where := make(sq.And, 0, len(filter))
	for _, name := range sortedKeys(filter) {
		if err := validateField(name); err != nil {
			return nil, err
		}

		column := idColumn
		if name != IDField {
			column = c.dialect.fieldExpr(name)
		}
		where = append(where, sq.Expr(column+" = ?", fmt.Sprint(filter[name])))
	}
	return where, nil
}
