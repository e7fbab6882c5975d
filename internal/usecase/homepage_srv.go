package usecase

import (
	"context"
	"fmt"
	"sync"

	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/response"
	"travel-agency/pkg/utils"

	"go.uber.org/zap"
)

const homepageCards = 3

type HomepageService interface {
	Load(ctx context.Context) error
	Content(ctx context.Context) entity.Homepage
	View(ctx context.Context) *response.HomepageResponse
	Update(ctx context.Context, doc entity.Homepage) (*entity.Homepage, error)
}

type homepageService struct {
	remote HomepageStore
	store  *catalog.Store
	log    *zap.Logger

	mu      sync.Mutex
	current entity.Homepage
	version uint64
}

func NewHomepageService(remote HomepageStore, store *catalog.Store, log *zap.Logger) HomepageService {
	return &homepageService{
		remote:  remote,
		store:   store,
		log:     log.With(zap.String("service", "homepage")),
		current: DefaultHomepage(),
	}
}

// Load replaces the local document with the backend's copy.
func (s *homepageService) Load(ctx context.Context) error {
	doc, err := s.remote.Get(ctx)
	if err != nil {
		return fmt.Errorf("load homepage: %w", err)
	}

	s.mu.Lock()
	s.current = doc
	s.version++
	s.mu.Unlock()
	return nil
}

// Content returns the document with unsupported icons resolved.
func (s *homepageService) Content(ctx context.Context) entity.Homepage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Normalized()
}

// View assembles the landing page: the document plus the package and blog
// cards it refers to.
func (s *homepageService) View(ctx context.Context) *response.HomepageResponse {
	content := s.Content(ctx)

	return &response.HomepageResponse{
		Content:          content,
		FeaturedPackages: response.PackagesToResponse(s.featuredPackages(content.FeaturedPackages.PackageIDs)),
		LatestPosts:      s.latestPosts(),
	}
}

// Update applies doc locally at once, then saves it. When the save fails the
// snapshot taken before the change is put back, unless a later change has
// already replaced the document.
func (s *homepageService) Update(ctx context.Context, doc entity.Homepage) (*entity.Homepage, error) {
	if err := utils.Validate(doc); err != nil {
		return nil, err
	}
	tentative := doc.Clone()

	s.mu.Lock()
	snapshot := s.current.Clone()
	s.current = tentative
	s.version++
	version := s.version
	s.mu.Unlock()

	saved, err := s.remote.Put(ctx, tentative)
	if err != nil {
		s.mu.Lock()
		if s.version == version {
			s.current = snapshot
			s.version++
		}
		s.mu.Unlock()

		s.log.Warn("Homepage save failed, previous content restored", zap.Error(err))
		return nil, fmt.Errorf("save homepage: %w", err)
	}

	s.mu.Lock()
	if s.version == version {
		s.current = saved
	}
	s.mu.Unlock()

	s.log.Info("Homepage updated")
	out := saved.Normalized()
	return &out, nil
}

func (s *homepageService) featuredPackages(ids []int) []entity.Package {
	if len(ids) == 0 {
		top := catalog.QueryPackages(s.store.Packages(), catalog.Filters{Sort: catalog.SortRating})
		return top[:min(homepageCards, len(top))]
	}

	out := make([]entity.Package, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.store.Package(id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *homepageService) latestPosts() []entity.BlogPost {
	posts := catalog.QueryBlogPosts(s.store.BlogPosts(), catalog.Filters{Sort: catalog.SortLatest})
	return response.BlogPostSummaries(posts[:min(homepageCards, len(posts))])
}

// DefaultHomepage is served until the backend copy has been loaded.
func DefaultHomepage() entity.Homepage {
	return entity.Homepage{
		Hero: entity.Hero{
			Title:    "Discover Your Next Adventure",
			Subtitle: "Handpicked travel packages to destinations around the world",
			CTAText:  "Explore Packages",
			CTALink:  "/packages",
		},
		FeaturedPackages: entity.FeaturedPackages{
			SectionHeading: entity.SectionHeading{
				Title:    "Featured Packages",
				Subtitle: "Our most loved journeys",
			},
		},
		LatestBlogs: entity.SectionHeading{
			Title:    "Latest from the Blog",
			Subtitle: "Travel stories, tips and guides",
		},
		WhyChooseUs: entity.WhyChooseUs{
			SectionHeading: entity.SectionHeading{Title: "Why Choose Us"},
			Features: []entity.Feature{
				{Icon: entity.IconUsers, Title: "Expert Guides", Description: "Local guides who know every corner."},
				{Icon: entity.IconShield, Title: "Safe Travel", Description: "Vetted partners and 24/7 support."},
				{Icon: entity.IconAward, Title: "Best Value", Description: "Fair prices with no hidden fees."},
				{Icon: entity.IconHeart, Title: "Made for You", Description: "Trips tailored to how you travel."},
			},
		},
		Testimonials: entity.Testimonials{
			SectionHeading: entity.SectionHeading{Title: "What Our Travelers Say"},
		},
		CTA: entity.CTA{
			Title:      "Ready to Start Your Journey?",
			Subtitle:   "Book your dream trip today",
			ButtonText: "Get Started",
			ButtonLink: "/packages",
		},
	}
}
