package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type stubPageService struct {
	created *ports.PageInput
}

func (s *stubPageService) ListActive(context.Context) ([]domain.Page, error) { return nil, nil }
func (s *stubPageService) GetBySlug(context.Context, string) (*domain.Page, error) {
	return nil, domain.ErrPageNotFound
}
func (s *stubPageService) Create(_ context.Context, in ports.PageInput) (*domain.Page, error) {
	s.created = &in
	return &domain.Page{Slug: in.Slug}, nil
}
func (s *stubPageService) Update(context.Context, string, ports.PageInput) (*domain.Page, error) {
	return nil, nil
}

type stubSettingsService struct {
	created bool
	patch   ports.SettingsPatch
}

func (s *stubSettingsService) Get(context.Context) (*domain.Settings, error) {
	return &domain.Settings{SiteName: domain.DefaultSiteName}, nil
}
func (s *stubSettingsService) Update(_ context.Context, patch ports.SettingsPatch) (*domain.Settings, bool, error) {
	s.patch = patch
	return &domain.Settings{SiteName: patch["siteName"]}, s.created, nil
}

type stubTestimonialService struct {
	submitted *ports.TestimonialInput
}

func (s *stubTestimonialService) ListApproved(context.Context) ([]domain.Testimonial, error) {
	return nil, nil
}
func (s *stubTestimonialService) ListAll(context.Context) ([]domain.Testimonial, error) {
	return nil, nil
}
func (s *stubTestimonialService) Submit(_ context.Context, in ports.TestimonialInput) (*domain.Testimonial, error) {
	s.submitted = &in
	return &domain.Testimonial{Name: *in.Name, Email: *in.Email, Rating: *in.Rating, Content: *in.Content}, nil
}
func (s *stubTestimonialService) Update(context.Context, string, ports.TestimonialInput) (*domain.Testimonial, error) {
	return nil, nil
}
func (s *stubTestimonialService) Delete(context.Context, string) error { return nil }

func TestPageHandler_Create_RequiresTitleAndSlug(t *testing.T) {
	e := newTestEcho()
	stub := &stubPageService{}
	h := NewPageHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/pages", `{"content":{"hero":"hi"}}`)
	var ve *domain.ValidationError
	if err := h.Create(c); !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected title and slug errors, got %v", err)
	}
	if stub.created != nil {
		t.Fatal("service must not be called on invalid input")
	}
}

func TestPageHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubPageService{}
	h := NewPageHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/pages", `{"title":"About us","slug":"about","content":{"hero":"hi"}}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created.Content["hero"] != "hi" {
		t.Fatalf("content not forwarded: %+v", stub.created)
	}
}

func TestSettingsHandler_Update_StatusReflectsCreation(t *testing.T) {
	for _, tc := range []struct {
		created bool
		want    int
	}{
		{created: true, want: http.StatusCreated},
		{created: false, want: http.StatusOK},
	} {
		e := newTestEcho()
		stub := &stubSettingsService{created: tc.created}
		h := NewSettingsHandler(stub)

		c, rec := jsonRequest(e, http.MethodPut, "/api/settings", `{"siteName":"Acme","facebookUrl":""}`)
		if err := h.Update(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != tc.want {
			t.Fatalf("created=%v: expected %d, got %d", tc.created, tc.want, rec.Code)
		}
		if len(stub.patch) != 2 || stub.patch["facebookUrl"] != "" {
			t.Fatalf("unexpected patch: %+v", stub.patch)
		}
	}
}

func TestSettingsHandler_Update_RejectsBadURL(t *testing.T) {
	e := newTestEcho()
	h := NewSettingsHandler(&stubSettingsService{})

	c, _ := jsonRequest(e, http.MethodPut, "/api/settings", `{"twitterUrl":"not a url"}`)
	var ve *domain.ValidationError
	if err := h.Update(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTestimonialHandler_Submit_RatingBounds(t *testing.T) {
	e := newTestEcho()
	h := NewTestimonialHandler(&stubTestimonialService{})

	for _, body := range []string{
		`{"name":"Ann","email":"ann@example.com","content":"Great service overall","rating":6}`,
		`{"name":"Ann","email":"ann@example.com","content":"Great service overall"}`,
	} {
		c, _ := jsonRequest(e, http.MethodPost, "/api/testimonials", body)
		var ve *domain.ValidationError
		if err := h.Submit(c); !errors.As(err, &ve) || ve.Fields[0].Field != "rating" {
			t.Fatalf("expected rating error for %s, got %v", body, err)
		}
	}
}

func TestTestimonialHandler_Submit_MultipartHidesEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{}
	h := NewTestimonialHandler(stub)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("name", "Ann")
	_ = w.WriteField("email", "ann@example.com")
	_ = w.WriteField("content", "Great service overall")
	_ = w.WriteField("rating", "5")
	fw, _ := w.CreateFormFile("avatar", "me.png")
	_, _ = fw.Write(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.submitted.Avatar == nil || stub.submitted.Avatar.ContentType != "image/png" {
		t.Fatalf("avatar not forwarded: %+v", stub.submitted.Avatar)
	}
	if resp := decode(t, rec); resp["email"] != nil {
		t.Fatalf("email leaked in public response: %+v", resp)
	}
}

func TestCMSHandler_CreateInquiry_Validates(t *testing.T) {
	e := newTestEcho()
	h := NewCMSHandler(nil, nil, nil)

	c, _ := jsonRequest(e, http.MethodPost, "/api/inquiries", `{"name":"A","email":"bad","phone":"abc","message":"short"}`)
	var ve *domain.ValidationError
	if err := h.CreateInquiry(c); !errors.As(err, &ve) || len(ve.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %v", err)
	}
}
