package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxFormBytes = 1 << 20

//go:embed templates/*.html
var templateFS embed.FS

var moneyPrinter = message.NewPrinter(language.English)

var templateFuncs = template.FuncMap{
	"money":    formatMoney,
	"datetime": formatDateTime,
	"yesno":    yesNo,
	"plural":   plural,
	"itoa":     strconv.Itoa,
}

type CostumeHandler struct {
	costumeService costume.ServiceAPI
	pages          map[string]*template.Template
}

func NewCostumeHandler(costumeService costume.ServiceAPI) *CostumeHandler {
	return &CostumeHandler{
		costumeService: costumeService,
		pages:          parsePages("index.html", "add.html", "rentals.html"),
	}
}

/* Each page is parsed together with the layout and the shared form partials. */
func parsePages(names ...string) map[string]*template.Template {
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		pages[name] = template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html", "templates/forms.html", "templates/"+name))
	}
	return pages
}

/* Dollar amount with two decimals and thousands separators, like "$1,234.50". */
func formatMoney(d decimal.Decimal) string {
	fixed := d.Round(2).StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "$" + fixed
	}
	return "$" + moneyPrinter.Sprintf("%d", n) + "." + cents
}

func formatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func plural(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}

type costumeForm struct {
	Entry               costume.CreateCostumeRequest
	Branches            []costume.Branch
	BranchesUnavailable bool
}

type indexPage struct {
	Costumes []costume.CostumeView
	Error    string
	Form     costumeForm
}

type addPage struct {
	Created *costume.CostumeView
	Message string
	Error   string
	Errors  []string
	Form    costumeForm
}

type rentalsPage struct {
	CostumeID        string
	Error            string
	History          *costume.RentalHistory
	NoHistoryMessage string
}

/* Main page: costume inventory, rental lookup form and add costume form. */
func (h *CostumeHandler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	status := http.StatusOK
	page := indexPage{}

	costumes, err := h.costumeService.ListCostumes(r.Context())
	if err != nil {
		logRequestError(r, err)
		status = statusFor(err)
		page.Error = userMessage(err)
	}
	page.Costumes = costumes
	page.Form = h.costumeForm(r, costume.CreateCostumeRequest{})

	h.render(w, r, "index.html", status, page)
}

/* Validates the submitted form, then stores the entry as a new costume. */
func (h *CostumeHandler) addCostume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, "add.html", http.StatusMethodNotAllowed, addPage{Error: costume.ErrResponseNotFormSubmission.Message})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	err := r.ParseForm()
	if err != nil {
		logRequestError(r, err)
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.render(w, r, "add.html", status, addPage{Error: costume.ErrResponseInvalidForm.Message})
		return
	}

	entry := costume.CreateCostumeRequest{
		Name:        r.PostForm.Get("name"),
		Size:        r.PostForm.Get("size"),
		Category:    r.PostForm.Get("category"),
		DailyRate:   r.PostForm.Get("daily_rate"),
		BranchID:    r.PostForm.Get("branch_id"),
		IsAvailable: r.PostForm.Get("is_available"),
	}

	created, err := h.costumeService.CreateCostume(r.Context(), entry)
	if err != nil {
		page := addPage{Error: userMessage(err)}
		var verr costume.ErrValidation
		if errors.As(err, &verr) {
			page.Errors = verr.Messages
			page.Form = h.costumeForm(r, entry)
		} else {
			logRequestError(r, err)
		}
		h.render(w, r, "add.html", statusFor(err), page)
		return
	}

	h.render(w, r, "add.html", http.StatusOK, addPage{
		Created: &created,
		Message: costume.CreatedMessage(created),
	})
}

/* Rental history of the costume given by the costume_id query parameter. */
func (h *CostumeHandler) rentals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	costumeID := r.URL.Query().Get("costume_id")
	page := rentalsPage{CostumeID: costumeID, NoHistoryMessage: costume.NoHistoryMessage}

	history, err := h.costumeService.GetRentalHistory(r.Context(), costumeID)
	if err != nil {
		if costume.KindOf(err) != costume.KindInvalidInput {
			logRequestError(r, err)
		}
		page.Error = userMessage(err)
		h.render(w, r, "rentals.html", statusFor(err), page)
		return
	}

	page.History = &history
	h.render(w, r, "rentals.html", http.StatusOK, page)
}

/* Branches for the add costume form. Without them the form asks for a branch ID. */
func (h *CostumeHandler) costumeForm(r *http.Request, entry costume.CreateCostumeRequest) costumeForm {
	form := costumeForm{Entry: entry}
	branches, err := h.costumeService.ListBranches(r.Context())
	if err != nil {
		logRequestError(r, err)
		form.BranchesUnavailable = true
		return form
	}
	form.Branches = branches
	return form
}

func (h *CostumeHandler) render(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	var buf bytes.Buffer
	err := h.pages[name].ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		logRequestError(r, err)
		http.Error(w, costume.ErrResponseUnexpected.Message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	if err != nil {
		log.Println(err)
	}
}

func statusFor(err error) int {
	switch costume.KindOf(err) {
	case costume.KindValidation, costume.KindInvalidInput:
		return http.StatusBadRequest
	case costume.KindReferenceNotFound:
		if errors.Is(err, costume.ErrResponseCostumeNotFound) {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	case costume.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

/* The message shown to staff and API callers. Store internals never reach it. */
func errorResponse(err error) costume.ErrResponse {
	var notFound costume.ErrCostumeNotFound
	var resp costume.ErrResponse
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return costume.ErrResponse{
			Code:    costume.ErrResponseRequestTimeout.Code,
			Message: costume.ErrResponseRequestTimeout.Message + context.DeadlineExceeded.Error(),
		}
	case errors.Is(err, context.Canceled):
		return costume.ErrResponse{
			Code:    costume.ErrResponseRequestTimeout.Code,
			Message: costume.ErrResponseRequestTimeout.Message + context.Canceled.Error(),
		}
	case errors.Is(err, costume.ErrResponseValidation):
		return costume.ErrResponseValidation
	case errors.As(err, &notFound):
		return notFound.Response()
	case errors.As(err, &resp):
		return resp
	default:
		return costume.ErrResponseUnexpected
	}
}

func userMessage(err error) string {
	return errorResponse(err).Message
}
