package converter

import (
	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/infra/pgquery"
)

func UserToCreateParams(u *user.User) pgquery.CreateUserParams {
	return pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FullName:     u.FullName().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}
