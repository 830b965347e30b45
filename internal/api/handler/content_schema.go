package handler

type blogRequest struct {
	Title       string     `json:"title"       form:"title"       validate:"omitempty,min=5,max=150"`
	Content     string     `json:"content"     form:"content"     validate:"omitempty,min=10"`
	Tags        stringList `json:"tags"        form:"tags"`
	IsPublished optBool    `json:"isPublished" form:"isPublished"`
}

type productRequest struct {
	Name           string    `json:"name"           form:"name"        validate:"omitempty,min=2,max=100"`
	Description    string    `json:"description"    form:"description" validate:"omitempty,min=10,max=2000"`
	Category       string    `json:"category"       form:"category"    validate:"omitempty,max=100"`
	Specifications stringMap `json:"specifications" form:"specifications"`
	IsFeatured     optBool   `json:"isFeatured"     form:"isFeatured"`
}

type certificateRequest struct {
	Title     string  `json:"title"     form:"title"  validate:"required,min=2,max=100"`
	Issuer    string  `json:"issuer"    form:"issuer" validate:"required,min=2,max=100"`
	IssueDate optDate `json:"issueDate" form:"issueDate"`
}

type galleryRequest struct {
	Title    string `json:"title"    form:"title"    validate:"required,min=2,max=100"`
	Category string `json:"category" form:"category" validate:"omitempty,max=100"`
}

type inquiryRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=50"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,min=10,max=15,phone"`
	Subject string `json:"subject" validate:"omitempty,min=3,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

type testimonialRequest struct {
	Name        string  `json:"name"        form:"name"        validate:"omitempty,min=2,max=50"`
	Email       string  `json:"email"       form:"email"       validate:"omitempty,email"`
	Rating      optInt  `json:"rating"      form:"rating"`
	Content     string  `json:"content"     form:"content"     validate:"omitempty,min=10,max=500"`
	Designation string  `json:"designation" form:"designation" validate:"omitempty,max=50"`
	IsApproved  optBool `json:"isApproved"  form:"isApproved"`
}

type pageRequest struct {
	Title    *string        `json:"title"    validate:"omitempty,min=2,max=150"`
	Slug     string         `json:"slug"     validate:"omitempty,max=100"`
	Content  map[string]any `json:"content"`
	IsActive *bool          `json:"isActive"`
}

type settingsRequest struct {
	SiteName        *string `json:"siteName"        validate:"omitempty,max=50"`
	SiteDescription *string `json:"siteDescription" validate:"omitempty,max=500"`
	ContactEmail    *string `json:"contactEmail"    validate:"omitempty,email|eq="`
	ContactPhone    *string `json:"contactPhone"    validate:"omitempty,max=20"`
	AlternatePhone  *string `json:"alternatePhone"  validate:"omitempty,max=20"`
	Address         *string `json:"address"         validate:"omitempty,max=200"`
	City            *string `json:"city"            validate:"omitempty,max=100"`
	State           *string `json:"state"           validate:"omitempty,max=100"`
	Pincode         *string `json:"pincode"         validate:"omitempty,max=20"`
	Country         *string `json:"country"         validate:"omitempty,max=100"`
	FacebookURL     *string `json:"facebookUrl"     validate:"omitempty,url|eq="`
	TwitterURL      *string `json:"twitterUrl"      validate:"omitempty,url|eq="`
	LinkedinURL     *string `json:"linkedinUrl"     validate:"omitempty,url|eq="`
	InstagramURL    *string `json:"instagramUrl"    validate:"omitempty,url|eq="`
	OGImageURL      *string `json:"ogImageUrl"      validate:"omitempty,url|eq="`
}

// patch lists only the fields present in the request, keyed by JSON name.
func (r settingsRequest) patch() map[string]string {
	out := map[string]string{}
	for key, v := range map[string]*string{
		"siteName":        r.SiteName,
		"siteDescription": r.SiteDescription,
		"contactEmail":    r.ContactEmail,
		"contactPhone":    r.ContactPhone,
		"alternatePhone":  r.AlternatePhone,
		"address":         r.Address,
		"city":            r.City,
		"state":           r.State,
		"pincode":         r.Pincode,
		"country":         r.Country,
		"facebookUrl":     r.FacebookURL,
		"twitterUrl":      r.TwitterURL,
		"linkedinUrl":     r.LinkedinURL,
		"instagramUrl":    r.InstagramURL,
		"ogImageUrl":      r.OGImageURL,
	} {
		if v != nil {
			out[key] = *v
		}
	}
	return out
}
