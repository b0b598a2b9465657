package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// Классы SQLSTATE, которые переводятся в доменные ошибки
const (
	sqlStateClassDataException       = "22"
	sqlStateClassIntegrityConstraint = "23"
)

// translateError переводит ошибку драйвера в ошибку приложения.
// Исходная ошибка сохраняется в тексте, чтобы ее можно было залогировать.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case sqlStateClassIntegrityConstraint:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrConstraintViolation, pgErr.Message, pgErr.ConstraintName)
		case sqlStateClassDataException:
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Message)
		}
	}
	return err
}
