package server

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"league_table/internal/domain"
	"league_table/internal/domain/entity"
	"league_table/internal/domain/value"
	"league_table/pkg/errcodes"
	"league_table/pkg/httpx/reply"
	"league_table/pkg/httpx/req"
	"league_table/pkg/lox"
	"league_table/pkg/rest"
)

const (
	pageTemplate = "index.html.tmpl"
	pageTitle    = "Football League Table Sorting"
	inputHint    = "Input format: Team, Won, Drawn, Lost"
	defaultInput = "Liverpool,12,3,1\nChelsea,10,5,2\nArsenal,9,6,2"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type pageData struct {
	Title    string
	Hint     string
	Input    string
	Order    string
	Orders   []string
	Error    string
	Teams    []rest.Team
	Names    []string
	Selected string
	Chart    *pieChart
}

type PageServer struct {
	leagueService leagueService
	page          *template.Template
}

func NewPageServer(leagueService leagueService) PageServer {
	return PageServer{
		leagueService: leagueService,
		page:          template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")),
	}
}

func (s PageServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	return s.render(w, r, rest.LeagueTableRequest{
		Input: defaultInput,
		Order: value.SortOrderDescending.String(),
	})
}

func (s PageServer) postIndex(w http.ResponseWriter, r *http.Request) error {
	if err := req.ParseForm(r); err != nil {
		return fmt.Errorf("req.ParseForm: %w", err)
	}

	return s.render(w, r, rest.LeagueTableRequest{
		Input: r.PostForm.Get("input"),
		Order: r.PostForm.Get("order"),
		Team:  r.PostForm.Get("team"),
	})
}

// render always answers with the page; bad input is shown in the error box
// next to the submitted form instead of failing the request.
func (s PageServer) render(w http.ResponseWriter, r *http.Request, form rest.LeagueTableRequest) error {
	ctx := r.Context()
	status := http.StatusOK

	data := pageData{
		Title:  pageTitle,
		Hint:   inputHint,
		Input:  form.Input,
		Order:  form.Order,
		Orders: []string{value.SortOrderDescending.String(), value.SortOrderAscending.String()},
	}

	view, err := s.view(ctx, form)

	switch {
	case err == nil:
		data.Order = view.Order.String()
		data.Teams = lox.Map(view.Teams, newRESTTeam)
		data.Names = view.Names
		data.Selected = view.Selected

		if view.Breakdown != nil {
			chart := newPieChart(*view.Breakdown)
			data.Chart = &chart
		}
	case domain.IsUserError(err):
		status = failure.HTTPStatus(err)
		data.Error = domain.UserMessage(err)
	default:
		return fmt.Errorf("view: %w", err)
	}

	var buf bytes.Buffer

	if err := s.page.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		return fmt.Errorf("page.ExecuteTemplate: %w", err)
	}

	reply.HTML(ctx, w, status, buf.Bytes())

	return nil
}

func (s PageServer) view(ctx context.Context, form rest.LeagueTableRequest) (entity.View, error) {
	if err := req.Validate(ctx, &form); err != nil {
		return entity.View{}, fmt.Errorf("req.Validate: %w", err)
	}

	order, err := value.ParseSortOrder(form.Order)
	if err != nil {
		return entity.View{}, fmt.Errorf("value.ParseSortOrder: %w", err)
	}

	view, err := s.leagueService.Render(ctx, form.Input, order, form.Team)
	if form.Team != "" && failure.HasCode(err, errcodes.TeamNotFound) {
		// The selector lists the new table; a stale selection falls back
		// to its first entry.
		view, err = s.leagueService.Render(ctx, form.Input, order, "")
	}

	if err != nil {
		return entity.View{}, fmt.Errorf("leagueService.Render: %w", err)
	}

	return view, nil
}
