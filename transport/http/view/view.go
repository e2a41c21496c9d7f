package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	carDto "rentacar/internal/domains/car/model/dto"
	"rentacar/shared/constant"
	"rentacar/shared/logger"
	"rentacar/shared/rental"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var index = template.Must(template.ParseFS(templates, "templates/index.html"))

// SearchForm holds the values the search form is pre-filled with.
type SearchForm struct {
	PickupLocation string
	StartDate      string
	ReturnDate     string
	CarType        string
	FuelType       string
	Brand          string
	Sort           string
}

type Banner struct {
	Message string
	IsError bool
}

type Page struct {
	Title        string
	Form         SearchForm
	CityGroups   []rental.CityGroup
	CarTypes     []string
	FuelTypes    []string
	Brands       []string
	SortOptions  []rental.SortOption
	Error        string
	Confirmation *Banner
	Searched     bool
	Cars         []carDto.CarResponse
	NoResults    string
	Prompt       string
}

// NewPage returns a page with the form choices filled in.
func NewPage(title string, form SearchForm) Page {
	return Page{
		Title:       title,
		Form:        form,
		CityGroups:  rental.CityGroups,
		CarTypes:    rental.CarTypes,
		FuelTypes:   rental.FuelTypes,
		Brands:      rental.Brands,
		SortOptions: rental.SortOptions,
	}
}

// Render executes the page into a buffer first so a template error never sends a partial document.
func Render(writer http.ResponseWriter, code int, page Page) error {
	var buf bytes.Buffer
	if err := index.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := buf.WriteTo(writer); err != nil {
		logger.ErrorWithStack(err)
	}

	return nil
}

// Static serves the embedded stylesheet and script under the path it is mounted on.
func Static() http.Handler {
	files, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	return http.FileServerFS(files)
}
