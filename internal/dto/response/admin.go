package response

import "travel-agency/internal/data/entity"

type DestinationResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Country       string                  `json:"country"`
	Scope         entity.DestinationScope `json:"scope"`
	PackagesCount int                     `json:"packagesCount"`
}

type HomepageResponse struct {
	Content          entity.Homepage   `json:"content"`
	FeaturedPackages []PackageResponse `json:"featuredPackages"`
	LatestPosts      []entity.BlogPost `json:"latestPosts"`
}

type RefreshResponse struct {
	Packages  int `json:"packages"`
	BlogPosts int `json:"blogPosts"`
}
