package entity

type Hero struct {
	Title           string `json:"title" validate:"required,max=200"`
	Subtitle        string `json:"subtitle" validate:"max=500"`
	BackgroundImage string `json:"backgroundImage"`
	CTAText         string `json:"ctaText" validate:"max=60"`
	CTALink         string `json:"ctaLink"`
}

type SectionHeading struct {
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle" validate:"max=500"`
}

type FeaturedPackages struct {
	SectionHeading
	PackageIDs []int `json:"packageIds,omitempty"`
}

type Feature struct {
	Icon        Icon   `json:"icon" validate:"required,icon"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type WhyChooseUs struct {
	SectionHeading
	Features []Feature `json:"features" validate:"dive"`
}

type Testimonial struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating" validate:"min=0,max=5"`
	Text     string  `json:"text" validate:"required"`
	Image    string  `json:"image"`
}

type Testimonials struct {
	SectionHeading
	Items []Testimonial `json:"items" validate:"dive"`
}

type CTA struct {
	Title      string `json:"title" validate:"required,max=200"`
	Subtitle   string `json:"subtitle" validate:"max=500"`
	ButtonText string `json:"buttonText" validate:"max=60"`
	ButtonLink string `json:"buttonLink"`
}

// Homepage is the editable content document behind the landing page.
type Homepage struct {
	Hero             Hero             `json:"hero"`
	FeaturedPackages FeaturedPackages `json:"featuredPackages"`
	LatestBlogs      SectionHeading   `json:"latestBlogs"`
	WhyChooseUs      WhyChooseUs      `json:"whyChooseUs"`
	Testimonials     Testimonials     `json:"testimonials"`
	CTA              CTA              `json:"cta"`
}

// Clone returns a deep copy so snapshots never share slices with live state.
func (h Homepage) Clone() Homepage {
	out := h
	out.FeaturedPackages.PackageIDs = append([]int(nil), h.FeaturedPackages.PackageIDs...)
	out.WhyChooseUs.Features = append([]Feature(nil), h.WhyChooseUs.Features...)
	out.Testimonials.Items = append([]Testimonial(nil), h.Testimonials.Items...)
	return out
}

// Normalized replaces unsupported feature icons with DefaultIcon.
func (h Homepage) Normalized() Homepage {
	out := h.Clone()
	for i := range out.WhyChooseUs.Features {
		out.WhyChooseUs.Features[i].Icon = out.WhyChooseUs.Features[i].Icon.Resolve()
	}
	return out
}
