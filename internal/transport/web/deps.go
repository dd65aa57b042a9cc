package web

import (
	"blogapi/internal/domain"
	"blogapi/internal/transport/web/mw"
)

type Repos struct {
	Users domain.UsersRepo
	Blogs domain.BlogsRepo
}

type AuthDeps struct {
	Hasher  domain.PasswordHasher
	Tokens  domain.TokenManager
	Session mw.Authenticator
}
