package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/domain"
)

// in-memory BlogsRepo mirroring the postgres semantics the handlers rely on
type memBlogs struct {
	posts    map[domain.BlogID]*domain.BlogPost
	comments map[domain.BlogID][]domain.Comment
	users    map[domain.UserID]domain.UserRef

	viewCalls     int
	forceConflict bool
}

func newMemBlogs() *memBlogs {
	return &memBlogs{
		posts:    map[domain.BlogID]*domain.BlogPost{},
		comments: map[domain.BlogID][]domain.Comment{},
		users:    map[domain.UserID]domain.UserRef{},
	}
}

func (m *memBlogs) addUser(name, email string) domain.User {
	u := domain.User{ID: uuid.New(), Name: name, Email: email}
	m.users[u.ID] = u.Ref()
	return u
}

func (m *memBlogs) CreateBlog(_ context.Context, b domain.BlogPost) (domain.BlogPost, error) {
	for _, p := range m.posts {
		if p.Title == b.Title && p.AuthorID == b.AuthorID {
			return domain.BlogPost{}, domain.ErrDuplicateData
		}
	}
	now := time.Now().UTC()
	b.ID = uuid.New()
	b.Version = 1
	b.PublishDate = now
	b.CreatedAt = now
	b.UpdatedAt = now
	m.posts[b.ID] = &b
	return b, nil
}

func (m *memBlogs) BlogByID(_ context.Context, id domain.BlogID) (domain.BlogPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return domain.BlogPost{}, domain.ErrNotFound
	}
	return *p, nil
}

func (m *memBlogs) view(p domain.BlogPost) domain.BlogView {
	cs := make([]domain.CommentView, 0, len(m.comments[p.ID]))
	for _, c := range m.comments[p.ID] {
		cs = append(cs, domain.CommentView{Text: c.Text, PostedBy: m.users[c.PostedBy], PostedAt: c.PostedAt})
	}
	return domain.BlogView{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Author:      m.users[p.AuthorID],
		Files:       p.Files,
		PublishDate: p.PublishDate,
		Comments:    cs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *memBlogs) BlogViewByID(_ context.Context, id domain.BlogID) (domain.BlogView, error) {
	m.viewCalls++
	p, ok := m.posts[id]
	if !ok {
		return domain.BlogView{}, domain.ErrNotFound
	}
	return m.view(*p), nil
}

func (m *memBlogs) BlogsList(_ context.Context, f domain.ListFilter) ([]domain.BlogView, int64, error) {
	var all []domain.BlogPost
	for _, p := range m.posts {
		if f.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Title)) {
			continue
		}
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].PublishDate.After(all[j].PublishDate) })

	total := int64(len(all))
	start := f.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}

	views := make([]domain.BlogView, 0, end-start)
	for _, p := range all[start:end] {
		views = append(views, m.view(p))
	}
	return views, total, nil
}

func (m *memBlogs) UpdateBlog(_ context.Context, id domain.BlogID, version int64, patch domain.BlogPatch) (domain.BlogPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return domain.BlogPost{}, domain.ErrNotFound
	}
	if m.forceConflict || p.Version != version {
		return domain.BlogPost{}, domain.ErrEditConflict
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Files != nil {
		p.Files = *patch.Files
	}
	p.Version++
	p.UpdatedAt = time.Now().UTC()
	return *p, nil
}

func (m *memBlogs) DeleteBlog(_ context.Context, id domain.BlogID) error {
	if _, ok := m.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.posts, id)
	delete(m.comments, id)
	return nil
}

func (m *memBlogs) AddComment(_ context.Context, id domain.BlogID, c domain.Comment) error {
	if _, ok := m.posts[id]; !ok {
		return domain.ErrNotFound
	}
	m.comments[id] = append(m.comments[id], c)
	return nil
}

var _ domain.BlogsRepo = (*memBlogs)(nil)

type memCache struct {
	data map[string][]byte
	ctr  map[string]int64
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ctr: map[string]int64{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := c.ctr[key]; ok {
		return []byte(strconv.FormatInt(v, 10)), nil
	}
	return c.data[key], nil
}

func (c *memCache) Set(_ context.Context, key string, val []byte, _ int) error {
	c.data[key] = val
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) Incr(_ context.Context, key string) (int64, error) {
	c.ctr[key]++
	return c.ctr[key], nil
}

func (c *memCache) Ping(context.Context) error { return nil }
func (c *memCache) Close()                     {}

var _ domain.Cache = (*memCache)(nil)

type memStorage struct {
	lastName string
}

func (s *memStorage) Put(_ context.Context, r io.Reader, name, _ string) (domain.BlobPutResult, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return domain.BlobPutResult{}, err
	}
	s.lastName = name
	return domain.BlobPutResult{
		URL:        "https://cdn.example.com/uploads/" + name,
		StorageKey: "uploads/" + name,
		Size:       n,
	}, nil
}

func (s *memStorage) Delete(context.Context, string) error { return nil }
func (s *memStorage) Ping(context.Context) error           { return nil }

var _ domain.BlobStorage = (*memStorage)(nil)

func testHandler(repo *memBlogs) (*Handler, *memCache, *memStorage) {
	cache := newMemCache()
	storage := &memStorage{}
	h := &Handler{
		Log:     log.New(io.Discard, "", 0),
		Blogs:   repo,
		Storage: storage,
		Cache:   cache,
		ListTTL: 30,
		BlogTTL: 60,
	}
	return h, cache, storage
}

func authed(req *http.Request, u domain.User) *http.Request {
	return req.WithContext(domain.WithUser(req.Context(), u))
}

func withID(req *http.Request, id domain.BlogID) *http.Request {
	req.SetPathValue("id", id.String())
	return req
}

func jsonReq(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domain.APIEnvelope {
	t.Helper()
	var env domain.APIEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func seedPost(t *testing.T, repo *memBlogs, author domain.User, title string) domain.BlogPost {
	t.Helper()
	b, err := repo.CreateBlog(context.Background(), domain.BlogPost{
		Title:    title,
		Content:  "content of " + title,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return b
}

func TestCreate(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	h, cache, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.Create(rec, authed(jsonReq(http.MethodPost, "/addBlog", `{"title":"First","content":"hello"}`), alice))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.posts) != 1 {
		t.Fatalf("posts stored = %d", len(repo.posts))
	}
	for _, p := range repo.posts {
		if p.AuthorID != alice.ID {
			t.Fatalf("author = %s, want %s", p.AuthorID, alice.ID)
		}
	}
	if cache.ctr[domain.CacheKeyListVersion] == 0 {
		t.Fatal("list version not bumped after create")
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	h, _, _ := testHandler(repo)

	cases := []struct {
		name string
		body string
	}{
		{"no title", `{"content":"hello"}`},
		{"blank title", `{"title":"   ","content":"hello"}`},
		{"no content", `{"title":"First"}`},
		{"overlong title", `{"title":"` + strings.Repeat("x", domain.MaxTitleLen+1) + `","content":"hello"}`},
		{"bad json", `{`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, authed(jsonReq(http.MethodPost, "/addBlog", c.body), alice))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
	if len(repo.posts) != 0 {
		t.Fatalf("invalid requests stored %d posts", len(repo.posts))
	}
}

func TestCreateDuplicateTitleSameAuthor(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	bob := repo.addUser("Bob", "bob@example.com")
	h, _, _ := testHandler(repo)

	body := `{"title":"First","content":"hello"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authed(jsonReq(http.MethodPost, "/addBlog", body), alice))
	if rec.Code != http.StatusOK {
		t.Fatalf("first create: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Create(rec, authed(jsonReq(http.MethodPost, "/addBlog", body), alice))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != domain.MsgDuplicateData {
		t.Fatalf("message = %q", env.Message)
	}

	// Same title under a different author is fine.
	rec = httptest.NewRecorder()
	h.Create(rec, authed(jsonReq(http.MethodPost, "/addBlog", body), bob))
	if rec.Code != http.StatusOK {
		t.Fatalf("other author create status = %d, want 200", rec.Code)
	}
}

func TestGetOne(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.GetOne(rec, withID(httptest.NewRequest(http.MethodGet, "/single/"+b.ID.String(), nil), b.ID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data shape: %T", env.Data)
	}
	if data["title"] != "First" {
		t.Fatalf("title = %v", data["title"])
	}
	author, _ := data["author"].(map[string]any)
	if author["email"] != "alice@example.com" {
		t.Fatalf("author not expanded: %v", data["author"])
	}
}

func TestGetOneCaches(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.GetOne(rec, withID(httptest.NewRequest(http.MethodGet, "/single/"+b.ID.String(), nil), b.ID))
		return rec
	}

	first := get()
	second := get()
	if repo.viewCalls != 1 {
		t.Fatalf("repo hit %d times, want 1 (second read from cache)", repo.viewCalls)
	}
	if strings.TrimSpace(first.Body.String()) != strings.TrimSpace(second.Body.String()) {
		t.Fatal("cached body differs from origin body")
	}
}

func TestGetOneNotFound(t *testing.T) {
	repo := newMemBlogs()
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.GetOne(rec, withID(httptest.NewRequest(http.MethodGet, "/single/x", nil), uuid.New()))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/single/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	h.GetOne(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("bad id status = %d, want 404", rec.Code)
	}
}

func TestList(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	for i := 0; i < 15; i++ {
		seedPost(t, repo, alice, "Post "+strconv.Itoa(i))
	}
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/all?page=2&limit=10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var env domain.ListEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Total != 15 || env.Page != 2 || env.Pages != 2 {
		t.Fatalf("total/page/pages = %d/%d/%d, want 15/2/2", env.Total, env.Page, env.Pages)
	}
	items, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("data shape: %T", env.Data)
	}
	if len(items) != 5 {
		t.Fatalf("second page size = %d, want 5", len(items))
	}
}

func TestListTitleFilter(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	seedPost(t, repo, alice, "Cooking with Go")
	seedPost(t, repo, alice, "Gardening 101")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/all?title=cook", nil))

	var env domain.ListEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Total != 1 {
		t.Fatalf("filtered total = %d, want 1", env.Total)
	}
}

func TestListEmpty(t *testing.T) {
	h, _, _ := testHandler(newMemBlogs())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/all", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	// data must be [], never null
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty list body = %s", rec.Body.String())
	}
}

func TestUpdateByAuthor(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	req := withID(jsonReq(http.MethodPut, "/update/"+b.ID.String(), `{"title":"Renamed"}`), b.ID)
	h.Update(rec, authed(req, alice))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	got := repo.posts[b.ID]
	if got.Title != "Renamed" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Content != b.Content {
		t.Fatal("untouched field changed")
	}
	if got.Version != b.Version+1 {
		t.Fatalf("version = %d, want %d", got.Version, b.Version+1)
	}
}

func TestUpdateByNonAuthor(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	bob := repo.addUser("Bob", "bob@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	req := withID(jsonReq(http.MethodPut, "/update/"+b.ID.String(), `{"title":"Hijacked"}`), b.ID)
	h.Update(rec, authed(req, bob))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != domain.MsgUnauthorized {
		t.Fatalf("message = %q", env.Message)
	}
	if repo.posts[b.ID].Title != "First" {
		t.Fatal("post changed by non-author")
	}
}

func TestUpdateConflict(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	repo.forceConflict = true
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	req := withID(jsonReq(http.MethodPut, "/update/"+b.ID.String(), `{"title":"Renamed"}`), b.ID)
	h.Update(rec, authed(req, alice))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	bob := repo.addUser("Bob", "bob@example.com")
	b := seedPost(t, repo, alice, "First")
	if err := repo.AddComment(context.Background(), b.ID, domain.Comment{Text: "hi", PostedBy: bob.ID}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	h, _, _ := testHandler(repo)

	// non-author first
	rec := httptest.NewRecorder()
	h.Delete(rec, authed(withID(httptest.NewRequest(http.MethodDelete, "/delete/"+b.ID.String(), nil), b.ID), bob))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-author delete status = %d, want 401", rec.Code)
	}
	if _, ok := repo.posts[b.ID]; !ok {
		t.Fatal("post deleted by non-author")
	}

	rec = httptest.NewRecorder()
	h.Delete(rec, authed(withID(httptest.NewRequest(http.MethodDelete, "/delete/"+b.ID.String(), nil), b.ID), alice))
	if rec.Code != http.StatusOK {
		t.Fatalf("author delete status = %d body = %s", rec.Code, rec.Body.String())
	}
	if env := decodeEnvelope(t, rec); env.Message != domain.MsgDeleted {
		t.Fatalf("message = %q", env.Message)
	}
	if _, ok := repo.posts[b.ID]; ok {
		t.Fatal("post still present")
	}
	if len(repo.comments[b.ID]) != 0 {
		t.Fatal("comments survived the post")
	}
}

func TestAddComment(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	bob := repo.addUser("Bob", "bob@example.com")
	carol := repo.addUser("Carol", "carol@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	comment := func(u domain.User, text string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := withID(jsonReq(http.MethodPut, "/addcomment/"+b.ID.String(), `{"text":"`+text+`"}`), b.ID)
		h.AddComment(rec, authed(req, u))
		return rec
	}

	if rec := comment(bob, "first!"); rec.Code != http.StatusOK {
		t.Fatalf("bob comment status = %d body = %s", rec.Code, rec.Body.String())
	}
	rec := comment(carol, "second")
	if rec.Code != http.StatusOK {
		t.Fatalf("carol comment status = %d", rec.Code)
	}

	// response carries the updated view with comments in append order
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]any)
	comments, _ := data["comments"].([]any)
	if len(comments) != 2 {
		t.Fatalf("comments in view = %d, want 2", len(comments))
	}
	c0 := comments[0].(map[string]any)
	c1 := comments[1].(map[string]any)
	if c0["text"] != "first!" || c1["text"] != "second" {
		t.Fatalf("comment order: %v then %v", c0["text"], c1["text"])
	}
}

func TestAddCommentByAuthor(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	req := withID(jsonReq(http.MethodPut, "/addcomment/"+b.ID.String(), `{"text":"my own post"}`), b.ID)
	h.AddComment(rec, authed(req, alice))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != domain.MsgAuthorComment {
		t.Fatalf("message = %q", env.Message)
	}
	if len(repo.comments[b.ID]) != 0 {
		t.Fatal("author comment was stored")
	}
}

func TestAddCommentValidation(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	bob := repo.addUser("Bob", "bob@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	req := withID(jsonReq(http.MethodPut, "/addcomment/"+b.ID.String(), `{"text":"   "}`), b.ID)
	h.AddComment(rec, authed(req, bob))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank comment status = %d, want 400", rec.Code)
	}
}

func multipartReq(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/uploadImage", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	repo := newMemBlogs()
	h, _, storage := testHandler(repo)

	rec := httptest.NewRecorder()
	h.UploadImage(rec, multipartReq(t, "file", "cat.PNG", []byte("png-bytes")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]any)
	url, _ := data["url"].(string)
	if url == "" {
		t.Fatal("no url in response")
	}
	if storage.lastName != "cat.PNG" {
		t.Fatalf("stored name = %q", storage.lastName)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	repo := newMemBlogs()
	h, _, storage := testHandler(repo)

	rec := httptest.NewRecorder()
	h.UploadImage(rec, multipartReq(t, "file", "evil.exe", []byte("mz")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if storage.lastName != "" {
		t.Fatal("rejected file reached storage")
	}
}

func TestUploadImageMissingPart(t *testing.T) {
	repo := newMemBlogs()
	h, _, _ := testHandler(repo)

	rec := httptest.NewRecorder()
	h.UploadImage(rec, multipartReq(t, "wrong-field", "cat.png", []byte("png-bytes")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMutationsRequireIdentity(t *testing.T) {
	repo := newMemBlogs()
	alice := repo.addUser("Alice", "alice@example.com")
	b := seedPost(t, repo, alice, "First")
	h, _, _ := testHandler(repo)

	calls := []struct {
		name string
		run  func(rec *httptest.ResponseRecorder)
	}{
		{"create", func(rec *httptest.ResponseRecorder) {
			h.Create(rec, jsonReq(http.MethodPost, "/addBlog", `{"title":"T","content":"c"}`))
		}},
		{"update", func(rec *httptest.ResponseRecorder) {
			h.Update(rec, withID(jsonReq(http.MethodPut, "/update/"+b.ID.String(), `{}`), b.ID))
		}},
		{"delete", func(rec *httptest.ResponseRecorder) {
			h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/delete/"+b.ID.String(), nil), b.ID))
		}},
		{"comment", func(rec *httptest.ResponseRecorder) {
			h.AddComment(rec, withID(jsonReq(http.MethodPut, "/addcomment/"+b.ID.String(), `{"text":"hi"}`), b.ID))
		}},
	}
	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c.run(rec)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}
