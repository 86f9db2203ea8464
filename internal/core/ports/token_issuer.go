package ports

import "github.com/taskhive/todo-api/internal/core/domain"

// TokenIssuer mints signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
