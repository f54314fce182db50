package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	ErrUserNotFound        = errors.New("user not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillInUse          = errors.New("skill is referenced by swap requests")
	ErrSwapRequestNotFound = errors.New("swap request not found")

	ErrSelfSwap             = errors.New("requester and recipient are the same user")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrSwapNotDeletable     = errors.New("only pending swap requests can be deleted")
	ErrNoCustomProfilePhoto = errors.New("no custom profile photo")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
