package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"litboard/internal/core/domain"
	"litboard/internal/core/repository"
)

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	return r.posts.List(p.Context)
}

func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	id := int64(p.Args["id"].(int))

	post, err := r.posts.FindByID(p.Context, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *Resolver) resolveCreatePost(p graphql.ResolveParams) (interface{}, error) {
	post := &domain.Post{Title: p.Args["title"].(string)}
	if err := r.posts.Create(p.Context, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *Resolver) resolveUpdatePost(p graphql.ResolveParams) (interface{}, error) {
	id := int64(p.Args["id"].(int))

	post, err := r.posts.FindByID(p.Context, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// An omitted title returns the row unchanged, without a write.
	title, ok := p.Args["title"].(string)
	if !ok {
		return post, nil
	}

	post.Title = title
	if err := r.posts.Update(p.Context, post); err != nil {
		return nil, err
	}
	return post, nil
}

// resolveDeletePost reports false only when the id matched no row; a failed
// deletion is a real error and propagates instead of masquerading as false.
func (r *Resolver) resolveDeletePost(p graphql.ResolveParams) (interface{}, error) {
	id := int64(p.Args["id"].(int))

	deleted, err := r.posts.Delete(p.Context, id)
	if err != nil {
		return nil, err
	}
	return deleted > 0, nil
}
