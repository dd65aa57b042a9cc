package blog

import (
	"log"

	"blogapi/internal/domain"
)

type Handler struct {
	Log     *log.Logger
	Blogs   domain.BlogsRepo
	Storage domain.BlobStorage
	Cache   domain.Cache

	ListTTL int // seconds
	BlogTTL int // seconds
}
