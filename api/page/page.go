package page

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/ChokeGuy/coin-change/form"
	sv "github.com/ChokeGuy/coin-change/server/http"
	"github.com/ChokeGuy/coin-change/util"
	"github.com/ChokeGuy/coin-change/validations"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

var Template = template.Must(template.ParseFS(templates, "templates/*.html"))

type SubmitFormRequest struct {
	TargetAmount  string `form:"targetAmount"`
	Denominations string `form:"denominations"`
}

type view struct {
	State    form.State
	Allowed  string
	Warning  string
	Rejected string
	Coins    []string
	Count    int
	Total    string
}

type PageHandler struct {
	*sv.Server
}

func NewPageHandler(server *sv.Server) *PageHandler {
	return &PageHandler{Server: server}
}

func (h *PageHandler) MapRoutes() {
	router := h.Router

	router.SetHTMLTemplate(Template)
	router.GET("/", h.showForm)
	router.POST("/", h.submitForm)
}

func (h *PageHandler) showForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", newView(h.Form.Snapshot()))
}

func (h *PageHandler) submitForm(ctx *gin.Context) {
	var req SubmitFormRequest

	if err := ctx.ShouldBind(&req); err != nil {
		snapshot := h.Form.Snapshot()
		failed := snapshot.Fail(err.Error())
		failed.Loading = snapshot.Loading
		ctx.HTML(http.StatusBadRequest, "index.html", newView(failed))
		return
	}

	state, err := h.Form.Submit(ctx, req.TargetAmount, req.Denominations)
	if errors.Is(err, form.ErrSubmissionInFlight) {
		ctx.HTML(http.StatusConflict, "index.html", newView(state))
		return
	}

	ctx.HTML(http.StatusOK, "index.html", newView(state))
}

func newView(state form.State) view {
	v := view{
		State:    state,
		Allowed:  strings.ReplaceAll(util.FormatNumbers(util.SupportedDenominations()), ",", ", "),
		Warning:  validations.DenominationWarning,
		Rejected: strings.ReplaceAll(util.FormatNumbers(state.Rejected), ",", ", "),
	}

	if state.HasResult() {
		v.Count = state.Result.Count()
		v.Total = state.Result.Total().String()
		for _, c := range state.Result {
			v.Coins = append(v.Coins, util.FormatNumber(c))
		}
	}

	return v
}
