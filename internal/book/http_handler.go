package book

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"

	"libraryapi/internal/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler exposes the catalog service over HTTP. Capability gating happens in
// the middleware chain; by the time a mutating handler runs, the caller has
// already been authorized.
type Handler struct {
	svc *Service
}

// NewHandler creates the catalog HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createBookRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Author        string   `json:"author" validate:"required,max=100"`
	ISBN          string   `json:"isbn" validate:"required,isbn_digits"`
	PublishedYear int      `json:"published_year" validate:"required,gte=1000"`
	Genre         string   `json:"genre" validate:"required,max=50"`
	Description   string   `json:"description"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type updateBookRequest struct {
	Title         *string  `json:"title" validate:"omitempty,max=200"`
	Author        *string  `json:"author" validate:"omitempty,max=100"`
	ISBN          *string  `json:"isbn" validate:"omitempty,isbn_digits"`
	PublishedYear *int     `json:"published_year" validate:"omitempty,gte=1000"`
	Genre         *string  `json:"genre" validate:"omitempty,max=50"`
	Description   *string  `json:"description"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type borrowRequest struct {
	HolderID string `json:"holder_id"`
}

type rateRequest struct {
	Rating float64 `json:"rating"`
}

// Search handles GET /v1/books: conjunctive filters, optional sort, optional
// pagination.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f Filters
	f.Genre = q.Get("genre")
	f.Author = q.Get("author")
	if v := q.Get("available"); v != "" {
		available := v == "true"
		f.Available = &available
	}
	if v := q.Get("year_from"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "year_from must be an integer", nil)
			return
		}
		f.YearFrom = &year
	}
	if v := q.Get("year_to"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "year_to must be an integer", nil)
			return
		}
		f.YearTo = &year
	}
	if v := q.Get("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "min_rating must be a number", nil)
			return
		}
		f.MinRating = &rating
	}

	var sortSpec *SortSpec
	if v := q.Get("sort"); v != "" {
		field, err := ParseSortField(v)
		if err != nil {
			h.writeServiceError(r, w, err)
			return
		}
		sortSpec = &SortSpec{Field: field, Desc: q.Get("order") == "desc"}
	}

	var page *PageSpec
	if q.Get("page") != "" || q.Get("limit") != "" {
		spec := PageSpec{Page: 1, Limit: 20}
		if v := q.Get("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "page must be an integer", nil)
				return
			}
			spec.Page = n
		}
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be an integer", nil)
				return
			}
			spec.Limit = n
		}
		page = &spec
	}

	result, err := h.svc.Search(f, sortSpec, page)
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, result)
}

// Create handles POST /v1/books (manage capability).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if details := validateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book fields", details)
		return
	}

	created, err := h.svc.Create(CreateParams{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Description:   req.Description,
		Rating:        req.Rating,
	})
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, created)
}

// GetByID handles GET /v1/books/:id.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByID(pathID(r))
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, b)
}

// Update handles PATCH /v1/books/:id (manage capability).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if details := validateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book fields", details)
		return
	}

	updated, err := h.svc.Update(pathID(r), UpdateFields{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Description:   req.Description,
		Rating:        req.Rating,
	})
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated)
}

// Delete handles DELETE /v1/books/:id (manage capability).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Delete(pathID(r))
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	if !removed {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Borrow handles POST /v1/books/:id/borrow (borrow capability). The holder is
// the authenticated caller unless the body names someone else.
func (h *Handler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	holderID := req.HolderID
	if holderID == "" {
		holderID = httpx.UserIDFrom(r)
	}

	b, err := h.svc.Borrow(pathID(r), holderID)
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, b)
}

// Return handles POST /v1/books/:id/return (borrow capability).
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Return(pathID(r))
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, b)
}

// Rate handles POST /v1/books/:id/rating. Range errors are rejected here,
// unlike the entity's lenient SetRating.
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}

	b, err := h.svc.Rate(pathID(r), req.Rating)
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, b)
}

// Stats handles GET /v1/catalog/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.Statistics())
}

// Genres handles GET /v1/catalog/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.Genres())
}

// Authors handles GET /v1/catalog/authors.
func (h *Handler) Authors(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.Authors())
}

// Popular handles GET /v1/catalog/popular.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.PopularBooks(viewLimit(r)))
}

// Recent handles GET /v1/catalog/recent.
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.RecentBooks(viewLimit(r)))
}

// Available handles GET /v1/catalog/available.
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.AvailableBooks())
}

// Borrowed handles GET /v1/catalog/borrowed.
func (h *Handler) Borrowed(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.BorrowedBooks())
}

// Overdue handles GET /v1/catalog/overdue.
func (h *Handler) Overdue(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.OverdueBooks())
}

// ByTitle handles GET /v1/catalog/by-title?q=term.
func (h *Handler) ByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.GetByTitle(r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, books)
}

// ByAuthor handles GET /v1/catalog/by-author?q=term.
func (h *Handler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.GetByAuthor(r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, books)
}

// ByGenre handles GET /v1/catalog/by-genre?q=term.
func (h *Handler) ByGenre(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.GetByGenre(r.URL.Query().Get("q")))
}

// writeServiceError maps the service error taxonomy onto HTTP responses:
// validation 400, not found 404, state conflict 409.
func (h *Handler) writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, nil)
		return
	}
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		httpx.JSONError(r, w, http.StatusConflict, "CONFLICT", ce.Message, nil)
		return
	}
	httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
}

func pathID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func viewLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 || n > 100 {
		return 0 // service falls back to its default
	}
	return n
}
