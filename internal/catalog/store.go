package catalog

import (
	"slices"
	"sync"

	"travel-agency/internal/data/entity"
)

// Store owns the catalog collections. Readers receive copies; writers
// replace a whole collection at once.
type Store struct {
	mu        sync.RWMutex
	packages  []entity.Package
	posts     []entity.BlogPost
	packageBy map[int]int
	postBy    map[int]int
}

func NewStore(packages []entity.Package, posts []entity.BlogPost) *Store {
	s := &Store{}
	s.ReplacePackages(packages)
	s.ReplaceBlogPosts(posts)
	return s
}

func (s *Store) Packages() []entity.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.packages)
}

func (s *Store) BlogPosts() []entity.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.posts)
}

func (s *Store) Package(id int) (entity.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.packageBy[id]
	if !ok {
		return entity.Package{}, false
	}
	return s.packages[i], true
}

func (s *Store) BlogPost(id int) (entity.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.postBy[id]
	if !ok {
		return entity.BlogPost{}, false
	}
	return s.posts[i], true
}

func (s *Store) ReplacePackages(packages []entity.Package) {
	packages = slices.Clone(packages)
	index := make(map[int]int, len(packages))
	for i, p := range packages {
		if _, dup := index[p.ID]; !dup {
			index[p.ID] = i
		}
	}

	s.mu.Lock()
	s.packages = packages
	s.packageBy = index
	s.mu.Unlock()
}

func (s *Store) ReplaceBlogPosts(posts []entity.BlogPost) {
	posts = slices.Clone(posts)
	index := make(map[int]int, len(posts))
	for i, b := range posts {
		if _, dup := index[b.ID]; !dup {
			index[b.ID] = i
		}
	}

	s.mu.Lock()
	s.posts = posts
	s.postBy = index
	s.mu.Unlock()
}
