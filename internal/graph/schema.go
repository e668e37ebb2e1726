// Package graph defines the GraphQL schema as explicit schema objects,
// validated once at startup by graphql.NewSchema.
package graph

import (
	"github.com/graphql-go/graphql"

	"litboard/internal/core/repository"
	"litboard/internal/core/service"
)

// Resolver holds the dependencies shared by every query and mutation.
// Resolvers are stateless; per-request state (the session) travels in the
// resolve context.
type Resolver struct {
	auth  *service.AuthService
	users repository.UserRepository
	posts repository.PostRepository
}

func NewResolver(auth *service.AuthService, users repository.UserRepository, posts repository.PostRepository) *Resolver {
	return &Resolver{
		auth:  auth,
		users: users,
		posts: posts,
	}
}

// NewSchema assembles and validates the schema. An invalid schema is a
// programming error and fails startup.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	postType := newPostType()
	userType := newUserType()
	userResponseType := newUserResponseType(userType, newFieldErrorType())
	usernamePasswordInput := newUsernamePasswordInput()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"posts": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(postType)),
				Resolve: r.resolvePosts,
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePost,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(userType)),
				Resolve: r.resolveUsers,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type: graphql.NewNonNull(postType),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveCreatePost,
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdatePost,
			},
			"deletePost": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveDeletePost,
			},
			"register": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"options": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usernamePasswordInput)},
				},
				Resolve: r.resolveRegister,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(userResponseType),
				Args: graphql.FieldConfigArgument{
					"options": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usernamePasswordInput)},
				},
				Resolve: r.resolveLogin,
			},
			"logout": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.resolveLogout,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
