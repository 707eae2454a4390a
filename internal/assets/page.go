package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-shellmenu/internal/fileutil"
)

// Page is the data rendered into the "page" template.
type Page struct {
	Title string
	Lang  string
	CSS   string // style sheet inlined in <style>
	Body  string // trusted HTML fragment produced by the Markdown converter
}

// ImageSheet is the data rendered into the "images" template: one page
// image per printed page with an optional footer.
type ImageSheet struct {
	Title  string
	Footer string
	Images []string // absolute image paths
}

type pageData struct {
	Title string
	Lang  string
	CSS   template.CSS
	Body  template.HTML
}

type sheetPage struct {
	Src    template.URL
	Number int
}

type sheetData struct {
	Title  string
	Footer string
	Pages  []sheetPage
}

// RenderPage renders p into a standalone HTML document using the "page"
// template from loader.
func RenderPage(loader Loader, p Page) (string, error) {
	tmpl, err := parse(loader, PageTemplateName)
	if err != nil {
		return "", err
	}

	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	// #nosec G203 -- style sheets come from embedded or user-owned files and
	// the body is converter output.
	data := pageData{
		Title: p.Title,
		Lang:  lang,
		CSS:   template.CSS(sanitizeCSS(p.CSS)),
		Body:  template.HTML(p.Body),
	}
	return execute(tmpl, data)
}

// RenderImageSheet renders s into an HTML document with one image per page.
func RenderImageSheet(loader Loader, s ImageSheet) (string, error) {
	tmpl, err := parse(loader, ImagesTemplateName)
	if err != nil {
		return "", err
	}

	data := sheetData{Title: s.Title, Footer: s.Footer}
	for i, img := range s.Images {
		data.Pages = append(data.Pages, sheetPage{
			// html/template rejects file: URLs unless marked as trusted.
			Src:    template.URL(fileutil.FileURL(img)), // #nosec G203 -- local paths from our own output directory
			Number: i + 1,
		})
	}
	return execute(tmpl, data)
}

func parse(loader Loader, name string) (*template.Template, error) {
	src, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS prevents a style sheet from closing the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
