package domain

// Ownership and commenting rules. Kept in the domain so handlers and tests
// share one source of truth.

// CanModifyPost permits edit/delete only for the post's author.
func CanModifyPost(me User, p BlogPost) error {
	if p.AuthorID != me.ID {
		return ErrForbidden
	}
	return nil
}

// CanComment permits any authenticated identity except the post's author.
func CanComment(me User, p BlogPost) error {
	if p.AuthorID == me.ID {
		return ErrAuthorComment
	}
	return nil
}
