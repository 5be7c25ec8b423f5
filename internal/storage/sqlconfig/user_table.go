package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-fx/internal/currency"
)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[userRow]())
	if err != nil {
		return nil, translateNoRows(err)
	}
	return rowToUser(row), nil
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(usersTableName, "email", "display_name", "base_currency"),
		im.Values(
			psql.Arg(create.Email),
			psql.Arg(create.DisplayName),
			psql.Arg(create.BaseCurrency.String()),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, translateUniqueViolation(err)
	}
	return id, nil
}

// UpdateBaseCurrency sets the currency a user's listings are normalized into.
func (t *UsersTable) UpdateBaseCurrency(ctx context.Context, id uuid.UUID, code currency.Code) error {
	query := psql.Update(
		um.Table(usersTableName),
		um.SetCol("base_currency").ToArg(code.String()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
