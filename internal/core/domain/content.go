package domain

import (
	"regexp"
	"strings"
	"time"
)

// Author is the denormalised byline stored on a blog post.
type Author struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Blog is a published or draft article.
type Blog struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Content     string    `json:"content" bson:"content"`
	Author      Author    `json:"author" bson:"author"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Tags        []string  `json:"tags" bson:"tags"`
	IsPublished bool      `json:"isPublished" bson:"is_published"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Product is a catalogue entry.
type Product struct {
	ID             string            `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Slug           string            `json:"slug" bson:"slug"`
	Description    string            `json:"description" bson:"description"`
	Category       string            `json:"category" bson:"category"`
	Images         []string          `json:"images" bson:"images"`
	Specifications map[string]string `json:"specifications" bson:"specifications"`
	IsFeatured     bool              `json:"isFeatured" bson:"is_featured"`
	CreatedAt      time.Time         `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updated_at"`
}

// Certificate is a compliance document (image or PDF).
type Certificate struct {
	ID        string     `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Issuer    string     `json:"issuer" bson:"issuer"`
	IssueDate *time.Time `json:"issueDate,omitempty" bson:"issue_date,omitempty"`
	FileURL   string     `json:"fileUrl" bson:"file_url"`
	Thumbnail string     `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updated_at"`
}

// GalleryItem is a single gallery image.
type GalleryItem struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	ImageURL  string    `json:"imageUrl" bson:"image_url"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// InquiryStatus tracks the handling of a contact-form submission.
type InquiryStatus string

const (
	InquiryNew     InquiryStatus = "new"
	InquiryRead    InquiryStatus = "read"
	InquiryReplied InquiryStatus = "replied"
)

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string        `json:"message" bson:"message"`
	Status    InquiryStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// Testimonial is a customer quote. Email is kept for moderation only.
type Testimonial struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email,omitempty" bson:"email"`
	Rating      int       `json:"rating" bson:"rating"`
	Content     string    `json:"content" bson:"content"`
	Designation string    `json:"designation,omitempty" bson:"designation,omitempty"`
	Avatar      string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	IsApproved  bool      `json:"isApproved" bson:"is_approved"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Public strips fields that must not be rendered to anonymous visitors.
func (t Testimonial) Public() Testimonial {
	t.Email = ""
	return t
}

// Page holds free-form structured content for a static site page.
type Page struct {
	ID        string         `json:"id" bson:"_id"`
	Title     string         `json:"title" bson:"title"`
	Slug      string         `json:"slug" bson:"slug"`
	Content   map[string]any `json:"content" bson:"content"`
	IsActive  bool           `json:"isActive" bson:"is_active"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updated_at"`
}

// DefaultSiteName is used when settings have never been saved.
const DefaultSiteName = "NJR EXIM"

// Settings is the singleton site configuration document.
type Settings struct {
	ID              string    `json:"id" bson:"_id"`
	SiteName        string    `json:"siteName" bson:"site_name"`
	SiteDescription string    `json:"siteDescription,omitempty" bson:"site_description,omitempty"`
	ContactEmail    string    `json:"contactEmail,omitempty" bson:"contact_email,omitempty"`
	ContactPhone    string    `json:"contactPhone,omitempty" bson:"contact_phone,omitempty"`
	AlternatePhone  string    `json:"alternatePhone,omitempty" bson:"alternate_phone,omitempty"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	City            string    `json:"city,omitempty" bson:"city,omitempty"`
	State           string    `json:"state,omitempty" bson:"state,omitempty"`
	Pincode         string    `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Country         string    `json:"country,omitempty" bson:"country,omitempty"`
	FacebookURL     string    `json:"facebookUrl,omitempty" bson:"facebook_url,omitempty"`
	TwitterURL      string    `json:"twitterUrl,omitempty" bson:"twitter_url,omitempty"`
	LinkedinURL     string    `json:"linkedinUrl,omitempty" bson:"linkedin_url,omitempty"`
	InstagramURL    string    `json:"instagramUrl,omitempty" bson:"instagram_url,omitempty"`
	OGImageURL      string    `json:"ogImageUrl,omitempty" bson:"og_image_url,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}

var slugStrip = regexp.MustCompile(`[^\w-]+`)

// Slugify lower-cases s, turns spaces into dashes and drops every character
// outside [A-Za-z0-9_-].
func Slugify(s string) string {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "-")
	return slugStrip.ReplaceAllString(s, "")
}
