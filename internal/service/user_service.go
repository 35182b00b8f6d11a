package service

import (
	"strings"

	"rentacar/internal/apperr"
	"rentacar/internal/auth"
	"rentacar/internal/db"
	"rentacar/internal/repository"

	"github.com/sirupsen/logrus"
)

type UpdateUserParams struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Role     *string
}

type UserService struct {
	users    repository.UserRepository
	bookings repository.BookingRepository
	log      *logrus.Logger
}

func NewUserService(users repository.UserRepository, bookings repository.BookingRepository, log *logrus.Logger) *UserService {
	return &UserService{users: users, bookings: bookings, log: log}
}

func (s *UserService) List(ident auth.Identity) ([]db.User, error) {
	if err := auth.Authorize(ident, auth.OpUserList, 0); err != nil {
		return nil, err
	}
	return s.users.List()
}

// Update applies a partial update. Admins may update anyone and change
// roles; customers may update only themselves, and a role they supply is
// ignored rather than rejected.
func (s *UserService) Update(ident auth.Identity, userID int, params UpdateUserParams) (*db.User, error) {
	if err := auth.Authorize(ident, auth.OpUserUpdate, userID); err != nil {
		return nil, err
	}

	repoParams := repository.UpdateUserParams{
		Name:  params.Name,
		Phone: params.Phone,
	}
	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		repoParams.Email = &email
	}
	if params.Password != nil {
		if len(*params.Password) < 6 {
			return nil, apperr.New(apperr.KindInvalidArgument, "password must be at least 6 characters")
		}
		hash, err := hashPassword(*params.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "hash password", err)
		}
		repoParams.PasswordHash = &hash
	}
	if params.Role != nil && ident.IsAdmin() {
		if *params.Role != db.RoleAdmin && *params.Role != db.RoleCustomer {
			return nil, apperr.New(apperr.KindInvalidArgument, "unknown role")
		}
		repoParams.Role = params.Role
	}

	user, err := s.users.Update(userID, repoParams)
	if err != nil {
		return nil, err
	}
	s.log.WithField("user_id", userID).Info("user updated")
	return user, nil
}

// Delete removes a user; refused while the user still holds a booking.
func (s *UserService) Delete(ident auth.Identity, userID int) error {
	if err := auth.Authorize(ident, auth.OpUserDelete, userID); err != nil {
		return err
	}

	holding, err := s.bookings.CustomerHasHolding(userID)
	if err != nil {
		return err
	}
	if holding {
		return apperr.New(apperr.KindConflict, "cannot delete user with active bookings")
	}

	if err := s.users.Delete(userID); err != nil {
		return err
	}
	s.log.WithField("user_id", userID).Info("user deleted")
	return nil
}
