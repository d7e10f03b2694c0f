package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrOpportunityNotFound  = errors.New("opportunity not found")

	// ErrDuplicate - нарушение уникального индекса (23505)
	ErrDuplicate = errors.New("duplicate key")
	// ErrStillReferenced - на запись ссылаются другие строки (23503)
	ErrStillReferenced = errors.New("record is still referenced")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate переводит ошибки GORM/Postgres в сентинелы пакета
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case pgForeignKeyViolation:
			return errors.Join(ErrStillReferenced, err)
		}
	}
	return err
}

// affected возвращает notFound, если запрос не затронул ни одной строки
func affected(res *gorm.DB, notFound error) error {
	if res.Error != nil {
		return translate(res.Error, notFound)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}
