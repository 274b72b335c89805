// Package policy decides who may do what. Every rule is a pure function of
// the acting user (nil or zero ID for anonymous visitors) and the entities
// involved; redirects for denied actions are the caller's business.
package policy

import "yatube/models"

// CanCreatePost allows any signed-in author to publish
func CanCreatePost(actor *models.User) bool {
	return actor.IsAuthenticated()
}

// CanEditPost allows only the post's own author. A post whose author
// account was removed can no longer be edited by anyone.
func CanEditPost(actor *models.User, post *models.Post) bool {
	if post == nil {
		return false
	}
	return post.IsAuthor(actor)
}

func CanComment(actor *models.User) bool {
	return actor.IsAuthenticated()
}

// CanFollow allows signed-in authors to follow anybody but themselves
func CanFollow(actor, target *models.User) bool {
	if !actor.IsAuthenticated() || target == nil || target.ID == 0 {
		return false
	}
	return actor.ID != target.ID
}
