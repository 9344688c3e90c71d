package http

import (
	"net/http"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/forms"
)

func statusFor(outcome fallback.Outcome) int {
	if outcome == fallback.NotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Home(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.HomePage(page))
}

func (s *Site) handleAbout(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.About(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.AboutPage(page))
}

func (s *Site) handleCareers(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Careers(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.CareersPage(page))
}

func (s *Site) handleJob(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Job(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, statusFor(page.Outcome), page.Chrome, s.view.JobPage(page, forms.Snapshot{}))
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Contact(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.ContactPage(page, forms.Snapshot{}))
}

func (s *Site) handleConsultation(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Contact(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	snap := forms.Snapshot{}
	if service := r.URL.Query().Get("service"); service != "" {
		snap.Values = map[string]string{"service": service}
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.ConsultationPage(page, snap))
}

func (s *Site) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	chrome, err := s.pages.Chrome(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, chrome, s.view.NewsletterPage(chrome, forms.Snapshot{}))
}

func (s *Site) handleServices(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Services(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.ServicesPage(page))
}

func (s *Site) handleService(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Service(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, statusFor(page.Outcome), page.Chrome, s.view.ServicePage(page))
}

func (s *Site) handleIndustries(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Industries(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.IndustriesPage(page))
}

func (s *Site) handleIndustry(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Industry(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, statusFor(page.Outcome), page.Chrome, s.view.IndustryPage(page))
}

func (s *Site) handleInsights(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.InsightsLanding(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.InsightsPage(page))
}

func (s *Site) handleListing(w http.ResponseWriter, r *http.Request) {
	collection, ok := content.ParseCollection(r.PathValue("collection"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	query := r.URL.Query()
	page, err := s.pages.Listing(r.Context(), collection, query.Get("category"), parsePage(query.Get("page")))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.ListingPage(page))
}

func (s *Site) handleEntry(w http.ResponseWriter, r *http.Request) {
	collection, ok := content.ParseCollection(r.PathValue("collection"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	page, err := s.pages.Entry(r.Context(), collection, r.PathValue("slug"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, statusFor(page.Outcome), page.Chrome, s.view.EntryPage(page))
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	page, err := s.pages.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, page.Chrome, s.view.SearchPage(page))
}
