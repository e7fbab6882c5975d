package usecase

import "errors"

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDestinationInUse    = errors.New("destination is still used by packages")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInUse       = errors.New("category still has packages")
	ErrSessionNotFound     = errors.New("booking session not found or expired")
	ErrNotSubmitted        = errors.New("booking has not been submitted yet")
)
