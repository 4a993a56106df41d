package services

import (
	"errors"
	"gin-storefront/constants"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUser      = errors.New(constants.ErrDuplicateUser)
	ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)
	ErrNotAuthenticated   = errors.New(constants.ErrNotAuthenticated)
	ErrEmptyCart          = errors.New(constants.ErrEmptyCart)
	ErrProductNotFound    = errors.New(constants.ErrProductNotFound)
	ErrUserNotFound       = errors.New(constants.ErrUserNotFound)
)

// isDuplicateKey gorm.ErrDuplicatedKeyはTranslateError有効時のみ返るため、pgのエラーコードも確認する
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func translateNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
