package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, translateNoRows(err)
	}
	return rowToTransaction(row), nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now().UTC()
	}

	description := sql.NullString{}
	if create.Description != nil {
		description = sql.NullString{String: *create.Description, Valid: true}
	}
	groupID := uuid.NullUUID{}
	if create.GroupID != nil {
		groupID = uuid.NullUUID{UUID: *create.GroupID, Valid: true}
	}

	query := psql.Insert(
		im.Into(transactionsTableName,
			"user_id", "name", "description", "amount", "currency",
			"transaction_type", "group_id", "transaction_date",
		),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(description),
			psql.Arg(create.Amount),
			psql.Arg(create.Currency.String()),
			psql.Arg(int16(create.Type)),
			psql.Arg(groupID),
			psql.Arg(transactionDate),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest first. Nil filter returns all.
// When a limit is set one extra row is fetched so callers can detect a further page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_type").EQ(psql.Arg(int16(*filter.Type)))))
		}
		if filter.GroupID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("group_id").EQ(psql.Arg(*filter.GroupID))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}
