package domain

import "context"

// List filter + pagination for /all.
type ListFilter struct {
	Title string // case-insensitive substring match, empty = no filter
	Page  int    // 1-based
	Limit int
}

func (f ListFilter) Norm() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}
	return f
}

func (f ListFilter) Offset() int { return (f.Page - 1) * f.Limit }

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, name, email, passHash string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	// SetActiveToken overwrites the stored token unconditionally: the
	// single-session enforcement point (last login wins).
	SetActiveToken(ctx context.Context, id UserID, token string) error
	// ClearActiveToken clears the slot only when a session exists;
	// returns ErrNotLoggedIn otherwise.
	ClearActiveToken(ctx context.Context, id UserID) error
}

// BlogPatch carries partial edits; nil fields are left unchanged.
type BlogPatch struct {
	Title   *string
	Content *string
	Files   *[]string
}

type BlogsRepo interface {
	CreateBlog(ctx context.Context, b BlogPost) (BlogPost, error)
	BlogByID(ctx context.Context, id BlogID) (BlogPost, error)
	// BlogViewByID expands author and commenters.
	BlogViewByID(ctx context.Context, id BlogID) (BlogView, error)
	// BlogsList returns the page plus the total match count.
	BlogsList(ctx context.Context, f ListFilter) ([]BlogView, int64, error)
	// UpdateBlog is a compare-and-swap on version; a lost race returns
	// ErrEditConflict.
	UpdateBlog(ctx context.Context, id BlogID, version int64, p BlogPatch) (BlogPost, error)
	DeleteBlog(ctx context.Context, id BlogID) error
	// AddComment appends atomically at the store level.
	AddComment(ctx context.Context, id BlogID, c Comment) error
}
