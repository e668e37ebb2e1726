package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"litboard/internal/core/repository"
	"litboard/internal/core/service"
	"litboard/internal/session"
)

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	return r.users.List(p.Context)
}

// resolveMe returns the logged-in user, or null for the normal
// "not logged in" state. A session pointing at a deleted user is treated
// the same way.
func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	sess, ok := session.FromContext(p.Context)
	if !ok {
		return nil, nil
	}
	userID, ok := sess.UserID()
	if !ok {
		return nil, nil
	}

	user, err := r.users.FindByID(p.Context, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Resolver) resolveRegister(p graphql.ResolveParams) (interface{}, error) {
	username, password := credentials(p)

	if len(username) <= 2 {
		return fieldError("username", "username length must be greater than 2"), nil
	}
	if len(password) <= 3 {
		return fieldError("password", "password length must be greater than 3"), nil
	}

	user, err := r.auth.Register(p.Context, username, password)
	if errors.Is(err, service.ErrUsernameTaken) {
		return fieldError("username", "username already exists"), nil
	}
	if err != nil {
		return nil, err
	}

	// Log the caller in immediately.
	if sess, ok := session.FromContext(p.Context); ok {
		sess.SetUserID(user.ID)
	}
	return &UserResponse{User: user}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	username, password := credentials(p)

	user, err := r.auth.Login(p.Context, username, password)
	if errors.Is(err, service.ErrUserNotFound) {
		return fieldError("username", fmt.Sprintf("%s does not exist", username)), nil
	}
	if errors.Is(err, service.ErrWrongPassword) {
		return fieldError("password", "wrong password"), nil
	}
	if err != nil {
		return nil, err
	}

	if sess, ok := session.FromContext(p.Context); ok {
		sess.SetUserID(user.ID)
	}
	return &UserResponse{User: user}, nil
}

func (r *Resolver) resolveLogout(p graphql.ResolveParams) (interface{}, error) {
	sess, ok := session.FromContext(p.Context)
	if !ok {
		return false, nil
	}
	sess.Destroy()
	return true, nil
}

func credentials(p graphql.ResolveParams) (username, password string) {
	options := p.Args["options"].(map[string]interface{})
	username, _ = options["username"].(string)
	password, _ = options["password"].(string)
	return username, password
}
