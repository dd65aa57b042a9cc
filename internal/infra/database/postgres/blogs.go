package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"blogapi/internal/domain"
)

func (r *PGRepo) CreateBlog(ctx context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	if b.Files == nil {
		b.Files = []string{}
	}
	q := r.qb().Insert(r.tbl("blogs")).
		Columns("title", "content", "author_id", "files").
		Values(b.Title, b.Content, b.AuthorID, b.Files).
		Suffix("RETURNING id, title, content, author_id, files, publish_date, version, created_at, updated_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateBlog", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.BlogPost
	if err := row.Scan(
		&out.ID, &out.Title, &out.Content, &out.AuthorID, &out.Files,
		&out.PublishDate, &out.Version, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			r.logger.Printf("CreateBlog duplicate (title, author) after %s title=%q", time.Since(start), b.Title)
			return domain.BlogPost{}, fmt.Errorf("%w: title %q", domain.ErrDuplicateData, b.Title)
		}
		r.logger.Printf("CreateBlog scan error after %s: %v", time.Since(start), err)
		return domain.BlogPost{}, err
	}
	r.logger.Printf("CreateBlog ok in %s id=%s title=%q", time.Since(start), out.ID, out.Title)
	return out, nil
}

func (r *PGRepo) BlogByID(ctx context.Context, id domain.BlogID) (domain.BlogPost, error) {
	q := r.qb().Select("id", "title", "content", "author_id", "files",
		"publish_date", "version", "created_at", "updated_at").
		From(r.tbl("blogs")).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("BlogByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var b domain.BlogPost
	if err := row.Scan(
		&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.Files,
		&b.PublishDate, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			r.logger.Printf("BlogByID not found in %s id=%s", time.Since(start), id)
			return domain.BlogPost{}, domain.ErrNotFound
		}
		r.logger.Printf("BlogByID scan error after %s: %v", time.Since(start), err)
		return domain.BlogPost{}, err
	}
	r.logger.Printf("BlogByID ok in %s id=%s", time.Since(start), b.ID)
	return b, nil
}

// BlogViewByID returns the post with author and commenters expanded.
func (r *PGRepo) BlogViewByID(ctx context.Context, id domain.BlogID) (domain.BlogView, error) {
	views, err := r.blogViews(ctx, "BlogViewByID", sq.Eq{"b.id": id}, "", 1, 0)
	if err != nil {
		return domain.BlogView{}, err
	}
	if len(views) == 0 {
		return domain.BlogView{}, domain.ErrNotFound
	}
	return views[0], nil
}

// BlogsList pages over posts sorted by publish_date DESC, optionally
// filtered by case-insensitive title substring. Returns the total match
// count alongside the page.
func (r *PGRepo) BlogsList(ctx context.Context, f domain.ListFilter) ([]domain.BlogView, int64, error) {
	f = f.Norm()

	var where sq.Sqlizer = sq.Expr("TRUE")
	var countWhere sq.Sqlizer = sq.Expr("TRUE")
	if f.Title != "" {
		where = sq.ILike{"b.title": "%" + f.Title + "%"}
		countWhere = sq.ILike{"title": "%" + f.Title + "%"}
	}

	views, err := r.blogViews(ctx, "BlogsList", where,
		"b.publish_date DESC", uint64(f.Limit), uint64(f.Offset()))
	if err != nil {
		return nil, 0, err
	}

	cq := r.qb().Select("COUNT(*)").From(r.tbl("blogs")).Where(countWhere)
	sqlStr, args, _ := cq.ToSql()
	r.logSQL("BlogsList.count", sqlStr, args)

	var total int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		r.logger.Printf("BlogsList count error: %v", err)
		return nil, 0, err
	}
	return views, total, nil
}

// blogViews is the shared select: blogs joined with the author, comments
// attached afterwards in one batch.
func (r *PGRepo) blogViews(ctx context.Context, op string, where sq.Sqlizer, orderBy string, limit, offset uint64) ([]domain.BlogView, error) {
	sb := r.qb().Select(
		"b.id", "b.title", "b.content", "b.files", "b.publish_date",
		"b.created_at", "b.updated_at",
		"a.id", "a.name", "a.email",
	).From(r.tbl("blogs") + " b").
		Join(r.tbl("users") + " a ON a.id = b.author_id").
		Where(where)

	if orderBy != "" {
		sb = sb.OrderBy(orderBy)
	}
	if limit > 0 {
		sb = sb.Limit(limit)
	}
	if offset > 0 {
		sb = sb.Offset(offset)
	}

	sqlStr, args, _ := sb.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("%s query error after %s: %v", op, time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	var res []domain.BlogView
	var ids []domain.BlogID
	for rows.Next() {
		var v domain.BlogView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Content, &v.Files, &v.PublishDate,
			&v.CreatedAt, &v.UpdatedAt,
			&v.Author.ID, &v.Author.Name, &v.Author.Email,
		); err != nil {
			r.logger.Printf("%s scan error: %v", op, err)
			return nil, err
		}
		v.Comments = []domain.CommentView{}
		res = append(res, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("%s rows error: %v", op, err)
		return nil, err
	}

	if len(ids) > 0 {
		byBlog, err := r.commentsForBlogs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range res {
			if cs, ok := byBlog[res[i].ID]; ok {
				res[i].Comments = cs
			}
		}
	}

	r.logger.Printf("%s ok in %s count=%d", op, time.Since(start), len(res))
	return res, nil
}

// commentsForBlogs loads expanded comments for a batch of posts, in append
// order (posted_at, then insertion id for same-timestamp ties).
func (r *PGRepo) commentsForBlogs(ctx context.Context, ids []domain.BlogID) (map[domain.BlogID][]domain.CommentView, error) {
	q := r.qb().Select("c.blog_id", "c.body", "c.posted_at", "u.id", "u.name", "u.email").
		From(r.tbl("comments") + " c").
		Join(r.tbl("users") + " u ON u.id = c.posted_by").
		Where(sq.Eq{"c.blog_id": ids}).
		OrderBy("c.blog_id", "c.posted_at ASC", "c.id ASC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("commentsForBlogs", sqlStr, args)

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("commentsForBlogs query error: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.BlogID][]domain.CommentView, len(ids))
	for rows.Next() {
		var blogID domain.BlogID
		var cv domain.CommentView
		if err := rows.Scan(&blogID, &cv.Text, &cv.PostedAt,
			&cv.PostedBy.ID, &cv.PostedBy.Name, &cv.PostedBy.Email); err != nil {
			r.logger.Printf("commentsForBlogs scan error: %v", err)
			return nil, err
		}
		out[blogID] = append(out[blogID], cv)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("commentsForBlogs rows error: %v", err)
		return nil, err
	}
	return out, nil
}

// UpdateBlog applies a partial patch with a compare-and-swap on version.
// Zero rows means either the post vanished or a concurrent edit won; the
// caller sees ErrNotFound or ErrEditConflict accordingly.
func (r *PGRepo) UpdateBlog(ctx context.Context, id domain.BlogID, version int64, p domain.BlogPatch) (domain.BlogPost, error) {
	upd := r.qb().Update(r.tbl("blogs")).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"version": version}}).
		Suffix("RETURNING id, title, content, author_id, files, publish_date, version, created_at, updated_at")

	if p.Title != nil {
		upd = upd.Set("title", *p.Title)
	}
	if p.Content != nil {
		upd = upd.Set("content", *p.Content)
	}
	if p.Files != nil {
		upd = upd.Set("files", *p.Files)
	}

	sqlStr, args, _ := upd.ToSql()
	r.logSQL("UpdateBlog", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.BlogPost
	if err := row.Scan(
		&out.ID, &out.Title, &out.Content, &out.AuthorID, &out.Files,
		&out.PublishDate, &out.Version, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			// Distinguish a missing post from a lost CAS race.
			if _, err2 := r.BlogByID(ctx, id); err2 != nil {
				return domain.BlogPost{}, err2
			}
			r.logger.Printf("UpdateBlog version conflict in %s id=%s version=%d", time.Since(start), id, version)
			return domain.BlogPost{}, domain.ErrEditConflict
		}
		if isUniqueViolation(err) {
			return domain.BlogPost{}, fmt.Errorf("%w: title", domain.ErrDuplicateData)
		}
		r.logger.Printf("UpdateBlog scan error after %s: %v", time.Since(start), err)
		return domain.BlogPost{}, err
	}
	r.logger.Printf("UpdateBlog ok in %s id=%s version=%d", time.Since(start), out.ID, out.Version)
	return out, nil
}

func (r *PGRepo) DeleteBlog(ctx context.Context, id domain.BlogID) error {
	// Comments go with the post (ON DELETE CASCADE).
	q := r.qb().Delete(r.tbl("blogs")).Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteBlog", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteBlog exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteBlog no rows in %s id=%s", time.Since(start), id)
		return domain.ErrNotFound
	}
	r.logger.Printf("DeleteBlog ok in %s id=%s", time.Since(start), id)
	return nil
}

// AddComment appends as a single insert: atomic at the store level, so
// concurrent appends to one post interleave instead of losing updates.
func (r *PGRepo) AddComment(ctx context.Context, id domain.BlogID, c domain.Comment) error {
	if c.PostedAt.IsZero() {
		c.PostedAt = time.Now().UTC()
	}
	q := r.qb().Insert(r.tbl("comments")).
		Columns("blog_id", "posted_by", "body", "posted_at").
		Values(id, c.PostedBy, c.Text, c.PostedAt)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("AddComment", sqlStr, args)

	start := time.Now()
	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		r.logger.Printf("AddComment exec error after %s: %v", time.Since(start), err)
		return err
	}
	r.logger.Printf("AddComment ok in %s blog_id=%s", time.Since(start), id)
	return nil
}
